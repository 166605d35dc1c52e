// Package bestiary provides immutable monster templates and the registry
// that mints independent combat-ready instances from them.
package bestiary

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tabletop/internal/game/dice"
)

// Size classifies a creature's physical size category.
type Size string

// The six standard size categories.
const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
)

// DefaultSize is the fallback substituted for unrecognized size tokens.
const DefaultSize = SizeMedium

var validSizes = map[Size]bool{
	SizeTiny: true, SizeSmall: true, SizeMedium: true,
	SizeLarge: true, SizeHuge: true, SizeGargantuan: true,
}

// ParseSize matches a case-insensitive token against the size vocabulary.
//
// Postcondition: ok is true iff token names a known size; on failure the
// returned Size is DefaultSize.
func ParseSize(token string) (Size, bool) {
	s := Size(strings.ToLower(strings.TrimSpace(token)))
	if validSizes[s] {
		return s, true
	}
	return DefaultSize, false
}

// CreatureType classifies a creature's nature.
type CreatureType string

// The standard creature types.
const (
	TypeAberration  CreatureType = "aberration"
	TypeBeast       CreatureType = "beast"
	TypeCelestial   CreatureType = "celestial"
	TypeConstruct   CreatureType = "construct"
	TypeDragon      CreatureType = "dragon"
	TypeElemental   CreatureType = "elemental"
	TypeFey         CreatureType = "fey"
	TypeFiend       CreatureType = "fiend"
	TypeGiant       CreatureType = "giant"
	TypeHumanoid    CreatureType = "humanoid"
	TypeMonstrosity CreatureType = "monstrosity"
	TypeOoze        CreatureType = "ooze"
	TypePlant       CreatureType = "plant"
	TypeUndead      CreatureType = "undead"
)

// DefaultCreatureType is the fallback substituted for unrecognized type tokens.
const DefaultCreatureType = TypeBeast

var validCreatureTypes = map[CreatureType]bool{
	TypeAberration: true, TypeBeast: true, TypeCelestial: true,
	TypeConstruct: true, TypeDragon: true, TypeElemental: true,
	TypeFey: true, TypeFiend: true, TypeGiant: true, TypeHumanoid: true,
	TypeMonstrosity: true, TypeOoze: true, TypePlant: true, TypeUndead: true,
}

// ParseCreatureType matches a case-insensitive token against the creature
// type vocabulary.
//
// Postcondition: ok is true iff token names a known type; on failure the
// returned CreatureType is DefaultCreatureType.
func ParseCreatureType(token string) (CreatureType, bool) {
	ct := CreatureType(strings.ToLower(strings.TrimSpace(token)))
	if validCreatureTypes[ct] {
		return ct, true
	}
	return DefaultCreatureType, false
}

// AbilityModifiers holds the six core ability modifiers for a template.
type AbilityModifiers struct {
	Str int
	Dex int
	Con int
	Int int
	Wis int
	Cha int
}

// Template defines an immutable monster stat block loaded from content.
// Templates are never mutated after load; play-time state lives on Instance.
type Template struct {
	ID              string
	Name            string
	Size            Size
	Type            CreatureType
	ArmorClass      int
	MaxHP           int
	Abilities       AbilityModifiers
	Alignment       string
	Speed           int
	ChallengeRating float64
	XP              int
	AttackBonus     int
	// DamageDice is the attack damage expression, e.g. "1d4".
	DamageDice  string
	Description string
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, MaxHP >= 1, and
// DamageDice (if set) parses as a dice expression.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("monster template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("monster template %q: name must not be empty", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("monster template %q: hit_points must be >= 1", t.ID)
	}
	if t.ArmorClass < 0 {
		return fmt.Errorf("monster template %q: armor_class must be >= 0", t.ID)
	}
	if t.DamageDice != "" {
		if _, err := dice.Parse(t.DamageDice); err != nil {
			return fmt.Errorf("monster template %q: damage_dice %q: %w", t.ID, t.DamageDice, err)
		}
	}
	return nil
}
