package bestiary

// Instance is a live, combat-ready monster minted from a Template. Each
// instance owns its own hit-point state; mutating it never affects the
// template or any sibling instance.
type Instance struct {
	// ID uniquely identifies this runtime instance.
	ID string
	// TemplateID is the source template's ID.
	TemplateID string
	// Name is copied from the template for display.
	Name string
	// Description is copied from the template.
	Description string
	// CurrentHP is the instance's current hit points.
	//
	// Invariant: 0 <= CurrentHP <= MaxHP.
	CurrentHP int
	// MaxHP is the instance's maximum hit points, fixed from the template.
	MaxHP int
	// ArmorClass is the instance's armor class.
	ArmorClass int
	// Abilities are the six ability modifiers copied from the template.
	Abilities AbilityModifiers
	// AttackBonus is the instance's attack roll bonus.
	AttackBonus int
	// DamageDice is the attack damage expression copied from the template.
	DamageDice string
	// XP is the experience value awarded when the instance is defeated.
	XP int
}

// NewInstance creates a live instance from a template.
//
// Precondition: id must be non-empty; tmpl must be non-nil.
// Postcondition: CurrentHP equals tmpl.MaxHP.
func NewInstance(id string, tmpl *Template) *Instance {
	return &Instance{
		ID:          id,
		TemplateID:  tmpl.ID,
		Name:        tmpl.Name,
		Description: tmpl.Description,
		CurrentHP:   tmpl.MaxHP,
		MaxHP:       tmpl.MaxHP,
		ArmorClass:  tmpl.ArmorClass,
		Abilities:   tmpl.Abilities,
		AttackBonus: tmpl.AttackBonus,
		DamageDice:  tmpl.DamageDice,
		XP:          tmpl.XP,
	}
}

// TakeDamage reduces CurrentHP by amount, flooring at zero.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHP >= 0.
func (i *Instance) TakeDamage(amount int) {
	i.CurrentHP -= amount
	if i.CurrentHP < 0 {
		i.CurrentHP = 0
	}
}

// Heal raises CurrentHP by amount, clamping at MaxHP.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHP <= MaxHP.
func (i *Instance) Heal(amount int) {
	i.CurrentHP += amount
	if i.CurrentHP > i.MaxHP {
		i.CurrentHP = i.MaxHP
	}
}

// IsDead reports whether the instance has zero hit points.
func (i *Instance) IsDead() bool {
	return i.CurrentHP <= 0
}

// HealthDescription returns a visible health state string suitable for examine output.
//
// Postcondition: Returns a non-empty string.
func (i *Instance) HealthDescription() string {
	if i.CurrentHP <= 0 {
		return "dead"
	}
	pct := float64(i.CurrentHP) / float64(i.MaxHP)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.40:
		return "moderately wounded"
	case pct >= 0.20:
		return "heavily wounded"
	default:
		return "critically wounded"
	}
}
