package item

import (
	"fmt"
	"strings"
)

// ArmorCategory classifies armor weight classes and shields.
type ArmorCategory string

// The armor category vocabulary.
const (
	ArmorLight  ArmorCategory = "light"
	ArmorMedium ArmorCategory = "medium"
	ArmorHeavy  ArmorCategory = "heavy"
	ArmorShield ArmorCategory = "shield"
)

// DefaultArmorCategory is the fallback substituted for unrecognized
// category tokens.
const DefaultArmorCategory = ArmorLight

var validArmorCategories = map[ArmorCategory]bool{
	ArmorLight: true, ArmorMedium: true, ArmorHeavy: true, ArmorShield: true,
}

// ParseArmorCategory matches a case-insensitive token against the armor
// category vocabulary.
//
// Postcondition: ok is true iff token names a known category; on failure the
// returned ArmorCategory is DefaultArmorCategory.
func ParseArmorCategory(token string) (ArmorCategory, bool) {
	c := ArmorCategory(strings.ToLower(strings.TrimSpace(token)))
	if validArmorCategories[c] {
		return c, true
	}
	return DefaultArmorCategory, false
}

// Armor is an Item specialization carrying defensive statistics.
type Armor struct {
	Item
	// BaseAC is the armor class granted before dexterity.
	BaseAC int
	Category ArmorCategory
	// StrengthReq is the minimum strength score to wear the armor without
	// penalty. Nil means no requirement.
	StrengthReq *int
	// StealthDisadvantage reports whether the armor hampers stealth checks.
	StealthDisadvantage bool
	// MagicBonus is the flat enhancement bonus; 0 for mundane armor.
	MagicBonus int
}

// EffectiveAC returns the armor class including any magic bonus.
func (a *Armor) EffectiveAC() int {
	return a.BaseAC + a.MagicBonus
}

// Validate checks that the Armor satisfies its invariants.
//
// Postcondition: returns nil iff the base item is valid and BaseAC >= 0.
func (a *Armor) Validate() error {
	if err := a.Item.Validate(); err != nil {
		return err
	}
	if a.BaseAC < 0 {
		return fmt.Errorf("armor %q: base_ac must be >= 0", a.ID)
	}
	if a.StrengthReq != nil && *a.StrengthReq < 1 {
		return fmt.Errorf("armor %q: strength_req must be >= 1", a.ID)
	}
	return nil
}
