// Package item provides the item family (base items, weapons, armor, magic
// items) and the effect/attunement rule engine shared by every magic item.
package item

import (
	"fmt"
	"strings"
)

// Type classifies an item's broad category.
type Type string

// The item type vocabulary.
const (
	TypeWeapon   Type = "weapon"
	TypeArmor    Type = "armor"
	TypePotion   Type = "potion"
	TypeScroll   Type = "scroll"
	TypeWondrous Type = "wondrous"
	TypeRing     Type = "ring"
	TypeTool     Type = "tool"
	TypeTreasure Type = "treasure"
	TypeJunk     Type = "junk"
)

// DefaultType is the fallback substituted for unrecognized type tokens.
const DefaultType = TypeJunk

var validTypes = map[Type]bool{
	TypeWeapon: true, TypeArmor: true, TypePotion: true, TypeScroll: true,
	TypeWondrous: true, TypeRing: true, TypeTool: true, TypeTreasure: true,
	TypeJunk: true,
}

// ParseType matches a case-insensitive token against the item type vocabulary.
//
// Postcondition: ok is true iff token names a known type; on failure the
// returned Type is DefaultType.
func ParseType(token string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(token)))
	if validTypes[t] {
		return t, true
	}
	return DefaultType, false
}

// Rarity classifies how rare an item is.
type Rarity string

// The rarity vocabulary.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "very_rare"
	RarityLegendary Rarity = "legendary"
	RarityArtifact  Rarity = "artifact"
)

// DefaultRarity is the fallback substituted for unrecognized rarity tokens.
const DefaultRarity = RarityCommon

var validRarities = map[Rarity]bool{
	RarityCommon: true, RarityUncommon: true, RarityRare: true,
	RarityVeryRare: true, RarityLegendary: true, RarityArtifact: true,
}

// ParseRarity matches a case-insensitive token against the rarity vocabulary.
//
// Postcondition: ok is true iff token names a known rarity; on failure the
// returned Rarity is DefaultRarity.
func ParseRarity(token string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(token)))
	if validRarities[r] {
		return r, true
	}
	return DefaultRarity, false
}

// Item holds the properties common to every item. An item is owned by
// whichever container holds it; moving it between containers transfers
// ownership rather than duplicating it.
type Item struct {
	ID          string
	Name        string
	Type        Type
	Rarity      Rarity
	Description string
	// Weight is in pounds.
	Weight float64
	// Value is in gold pieces.
	Value int
	// Stackable reports whether multiple copies merge into one stack.
	Stackable bool
	// QuestItem marks items that must not be sold or discarded.
	QuestItem bool
}

// Validate checks that the Item satisfies its invariants.
//
// Postcondition: returns nil iff ID and Name are non-empty and Weight >= 0.
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item: id must not be empty")
	}
	if i.Name == "" {
		return fmt.Errorf("item %q: name must not be empty", i.ID)
	}
	if i.Weight < 0 {
		return fmt.Errorf("item %q: weight must be >= 0", i.ID)
	}
	return nil
}
