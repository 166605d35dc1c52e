package item

import (
	"fmt"
	"strings"
)

// DamageType classifies the damage a weapon or effect deals.
type DamageType string

// The damage type vocabulary.
const (
	DamageSlashing    DamageType = "slashing"
	DamagePiercing    DamageType = "piercing"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageFire        DamageType = "fire"
	DamageCold        DamageType = "cold"
	DamageLightning   DamageType = "lightning"
	DamageAcid        DamageType = "acid"
	DamagePoison      DamageType = "poison"
	DamageNecrotic    DamageType = "necrotic"
	DamageRadiant     DamageType = "radiant"
	DamagePsychic     DamageType = "psychic"
	DamageForce       DamageType = "force"
	DamageThunder     DamageType = "thunder"
)

// DefaultDamageType is the fallback substituted for unrecognized damage tokens.
const DefaultDamageType = DamageBludgeoning

var validDamageTypes = map[DamageType]bool{
	DamageSlashing: true, DamagePiercing: true, DamageBludgeoning: true,
	DamageFire: true, DamageCold: true, DamageLightning: true,
	DamageAcid: true, DamagePoison: true, DamageNecrotic: true,
	DamageRadiant: true, DamagePsychic: true, DamageForce: true,
	DamageThunder: true,
}

// ParseDamageType matches a case-insensitive token against the damage type
// vocabulary.
//
// Postcondition: ok is true iff token names a known damage type; on failure
// the returned DamageType is DefaultDamageType.
func ParseDamageType(token string) (DamageType, bool) {
	d := DamageType(strings.ToLower(strings.TrimSpace(token)))
	if validDamageTypes[d] {
		return d, true
	}
	return DefaultDamageType, false
}

// WeaponCategory separates simple from martial weapons.
type WeaponCategory string

// The weapon category vocabulary.
const (
	CategorySimple  WeaponCategory = "simple"
	CategoryMartial WeaponCategory = "martial"
)

// DefaultWeaponCategory is the fallback substituted for unrecognized
// category tokens.
const DefaultWeaponCategory = CategorySimple

// ParseWeaponCategory matches a case-insensitive token against the weapon
// category vocabulary.
//
// Postcondition: ok is true iff token names a known category; on failure the
// returned WeaponCategory is DefaultWeaponCategory.
func ParseWeaponCategory(token string) (WeaponCategory, bool) {
	c := WeaponCategory(strings.ToLower(strings.TrimSpace(token)))
	if c == CategorySimple || c == CategoryMartial {
		return c, true
	}
	return DefaultWeaponCategory, false
}

// RangedProfile holds the range increments of a ranged weapon.
type RangedProfile struct {
	// Normal is the normal range in feet.
	Normal int
	// Long is the long range in feet.
	Long int
}

// Weapon is an Item specialization carrying attack statistics.
type Weapon struct {
	Item
	// DiceCount and DieSize describe the damage roll, e.g. 1d8.
	DiceCount int
	DieSize   int
	DamageType DamageType
	Category   WeaponCategory
	// Ranged is nil for melee weapons.
	Ranged *RangedProfile
	// Properties is the set of weapon property tokens (finesse, light, ...).
	Properties map[string]bool
	// VersatileDieSize is the die used two-handed; 0 means not versatile.
	VersatileDieSize int
	// AttackBonus and DamageBonus are flat magic bonuses.
	AttackBonus int
	DamageBonus int
}

// IsRanged reports whether the weapon has a ranged profile.
func (w *Weapon) IsRanged() bool {
	return w.Ranged != nil
}

// HasProperty reports whether the weapon carries the named property token.
func (w *Weapon) HasProperty(prop string) bool {
	return w.Properties[strings.ToLower(prop)]
}

// DamageExpression returns the weapon damage as a dice expression string,
// e.g. "1d8+1".
//
// Postcondition: Returns a non-empty string parseable by the dice package.
func (w *Weapon) DamageExpression() string {
	expr := fmt.Sprintf("%dd%d", w.DiceCount, w.DieSize)
	if w.DamageBonus != 0 {
		expr = fmt.Sprintf("%s%+d", expr, w.DamageBonus)
	}
	return expr
}

// Validate checks that the Weapon satisfies its invariants.
//
// Postcondition: returns nil iff the base item is valid and the damage dice
// are well-formed.
func (w *Weapon) Validate() error {
	if err := w.Item.Validate(); err != nil {
		return err
	}
	if w.DiceCount < 1 {
		return fmt.Errorf("weapon %q: damage dice count must be >= 1", w.ID)
	}
	if w.DieSize < 2 {
		return fmt.Errorf("weapon %q: damage die size must be >= 2", w.ID)
	}
	if w.Ranged != nil && w.Ranged.Normal < 1 {
		return fmt.Errorf("weapon %q: ranged normal range must be >= 1", w.ID)
	}
	return nil
}
