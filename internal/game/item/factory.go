package item

import (
	"fmt"
	"strings"
)

// NewNamedItem builds one of the staple magic items by display name. The
// catalog gives content authors well-known items without restating their
// effects in YAML.
//
// Postcondition: returns a fully-charged, unattuned MagicItem, or an error
// for an unknown name.
func NewNamedItem(name string) (*MagicItem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "flame tongue":
		return &MagicItem{
			Item: Item{
				ID:          "flame_tongue",
				Name:        "Flame Tongue",
				Type:        TypeWeapon,
				Rarity:      RarityRare,
				Description: "A longsword whose blade ignites in flame on command.",
				Weight:      3,
				Value:       5000,
			},
			RequiresAttunement: true,
			Effects: []*Effect{
				{
					Name:    "Ignite",
					Kind:    EffectStatBonus,
					Cadence: Cadence{},
					Stat:    "fire damage",
					Bonus:   7,
				},
			},
		}, nil
	case "ring of warmth":
		return &MagicItem{
			Item: Item{
				ID:          "ring_of_warmth",
				Name:        "Ring of Warmth",
				Type:        TypeRing,
				Rarity:      RarityUncommon,
				Description: "A plain copper band that is always warm to the touch.",
				Weight:      0,
				Value:       1000,
			},
			RequiresAttunement: true,
			Effects: []*Effect{
				{
					Name:    "Warmth",
					Kind:    EffectResistance,
					Passive: true,
					Resist:  DamageCold,
				},
			},
		}, nil
	case "cape of the mountebank":
		return &MagicItem{
			Item: Item{
				ID:          "cape_of_the_mountebank",
				Name:        "Cape of the Mountebank",
				Type:        TypeWondrous,
				Rarity:      RarityRare,
				Description: "A theatrical cape smelling faintly of brimstone.",
				Weight:      1,
				Value:       8000,
			},
			Effects: []*Effect{
				{
					Name:        "Dimension Door",
					Kind:        EffectTeleport,
					Cadence:     PerDay(1),
					Charges:     1,
					Destination: "a spot within 500 feet",
				},
			},
		}, nil
	case "wand of magic missiles":
		return &MagicItem{
			Item: Item{
				ID:          "wand_of_magic_missiles",
				Name:        "Wand of Magic Missiles",
				Type:        TypeWondrous,
				Rarity:      RarityUncommon,
				Description: "A slender wand tipped with a darting point of light.",
				Weight:      1,
				Value:       2000,
			},
			Effects: []*Effect{
				{
					Name:       "Magic Missile",
					Kind:       EffectSpell,
					Cadence:    PerDay(7),
					Charges:    7,
					Spell:      "magic missile",
					SpellLevel: 1,
				},
			},
		}, nil
	default:
		return nil, fmt.Errorf("item: no named item %q", name)
	}
}
