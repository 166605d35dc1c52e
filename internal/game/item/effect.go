package item

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tabletop/internal/game/character"
	"github.com/cory-johannsen/tabletop/internal/scripting"
)

// EffectKind names a variant of the closed effect sum type. Adding a new
// variant means adding a constant here, a payload field on Effect, and a
// case in invoke.
type EffectKind string

// The effect variants.
const (
	EffectTeleport  EffectKind = "teleport"
	EffectStatBonus EffectKind = "stat_bonus"
	EffectResistance EffectKind = "resistance"
	EffectSpell     EffectKind = "spell"
	EffectScript    EffectKind = "script"
)

var validEffectKinds = map[EffectKind]bool{
	EffectTeleport: true, EffectStatBonus: true, EffectResistance: true,
	EffectSpell: true, EffectScript: true,
}

// ParseEffectKind matches a case-insensitive token against the effect
// vocabulary.
//
// Postcondition: ok is true iff token names a known effect kind.
func ParseEffectKind(token string) (EffectKind, bool) {
	k := EffectKind(strings.ToLower(strings.TrimSpace(token)))
	return k, validEffectKinds[k]
}

// ResetEvent names the rest event that replenishes an effect's charges.
type ResetEvent string

// The reset events. ResetNone marks unlimited-use effects.
const (
	ResetNone     ResetEvent = ""
	ResetDaily    ResetEvent = "daily"
	ResetLongRest ResetEvent = "long_rest"
)

// Cadence is an effect's usage budget: how many charges it holds and which
// rest event refills them. The zero value means unlimited use.
type Cadence struct {
	// Reset is the event that restores charges; ResetNone means unlimited.
	Reset ResetEvent
	// Max is the charge maximum; meaningful only when Reset != ResetNone.
	Max int
}

// Unlimited reports whether the cadence imposes no charge budget.
func (c Cadence) Unlimited() bool {
	return c.Reset == ResetNone
}

// PerDay returns a Cadence of n charges restored daily.
func PerDay(n int) Cadence { return Cadence{Reset: ResetDaily, Max: n} }

// PerLongRest returns a Cadence of n charges restored on a long rest.
func PerLongRest(n int) Cadence { return Cadence{Reset: ResetLongRest, Max: n} }

// Effect is one power carried by a magic item. Exactly one variant payload
// is meaningful, selected by Kind.
//
// Invariant: 0 <= Charges <= Cadence.Max for limited cadences.
type Effect struct {
	// Name is the display name, e.g. "Misty Step".
	Name string
	Kind EffectKind
	// Passive effects contribute to derived stats at all times and consume
	// no charges; only active effects are invoked.
	Passive bool
	Cadence Cadence
	// Charges is the current charge count for limited cadences.
	Charges int

	// Destination is the teleport target description (EffectTeleport).
	Destination string
	// Stat and Bonus describe a stat adjustment (EffectStatBonus).
	Stat  string
	Bonus int
	// Resist is the damage type resisted (EffectResistance).
	Resist DamageType
	// Spell and SpellLevel describe a stored spell (EffectSpell).
	Spell      string
	SpellLevel int
	// Script is the Lua chunk run on invocation (EffectScript).
	Script string
}

// Usable reports whether the effect can be invoked right now: it must be
// active, and either unlimited or holding at least one charge.
func (e *Effect) Usable() bool {
	if e.Passive {
		return false
	}
	return e.Cadence.Unlimited() || e.Charges > 0
}

// Depleted reports whether a limited active effect is out of charges.
func (e *Effect) Depleted() bool {
	return !e.Passive && !e.Cadence.Unlimited() && e.Charges <= 0
}

// resetOn restores full charges when event matches the effect's cadence.
// Non-matching events leave the effect untouched.
func (e *Effect) resetOn(event ResetEvent) {
	if e.Passive || e.Cadence.Unlimited() {
		return
	}
	if e.Cadence.Reset == event {
		e.Charges = e.Cadence.Max
	}
}

// invoke dispatches on the effect's variant and returns the result text.
// It consumes one charge for limited cadences.
//
// Precondition: e.Usable() must be true; user must be non-nil.
func (e *Effect) invoke(itemName string, user *character.Character) string {
	if !e.Cadence.Unlimited() {
		e.Charges--
	}

	switch e.Kind {
	case EffectTeleport:
		return fmt.Sprintf("%s is whisked away to %s.", user.Name, e.Destination)
	case EffectStatBonus:
		return fmt.Sprintf("%s surges with power: %s %+d.", user.Name, e.Stat, e.Bonus)
	case EffectResistance:
		return fmt.Sprintf("%s is wreathed in protection against %s damage.", user.Name, e.Resist)
	case EffectSpell:
		return fmt.Sprintf("%s casts %s (level %d) from %s.", user.Name, e.Spell, e.SpellLevel, itemName)
	case EffectScript:
		out, err := scripting.RunChunk(e.Script, 0, map[string]string{
			"item_name": itemName,
			"user_name": user.Name,
		})
		if err != nil {
			return fmt.Sprintf("%s fizzles and sputters.", e.Name)
		}
		return out
	default:
		return fmt.Sprintf("%s hums faintly but nothing happens.", e.Name)
	}
}

// Clone returns a deep copy of the effect.
func (e *Effect) Clone() *Effect {
	dup := *e
	return &dup
}

// Validate checks effect invariants.
//
// Postcondition: returns nil iff Kind is known, charge counts respect the
// cadence, and the variant payload required by Kind is present.
func (e *Effect) Validate() error {
	if !validEffectKinds[e.Kind] {
		return fmt.Errorf("effect %q: unknown kind %q", e.Name, e.Kind)
	}
	if !e.Cadence.Unlimited() {
		if e.Cadence.Max < 1 {
			return fmt.Errorf("effect %q: cadence max must be >= 1", e.Name)
		}
		if e.Charges < 0 || e.Charges > e.Cadence.Max {
			return fmt.Errorf("effect %q: charges %d outside [0, %d]", e.Name, e.Charges, e.Cadence.Max)
		}
	}
	if e.Kind == EffectScript && e.Script == "" {
		return fmt.Errorf("effect %q: script chunk must not be empty", e.Name)
	}
	return nil
}
