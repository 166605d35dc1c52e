package bestiary

import (
	"fmt"

	"github.com/cory-johannsen/tabletop/internal/document"
)

// ParseTemplate builds a Template from a decoded monster record.
//
// Unrecognized size or creature-type tokens are reported as warnings and the
// documented fallback is substituted; the record is still returned. A record
// with no id has no safe fallback and yields an error instead.
//
// Postcondition: on nil error the returned Template passes Validate.
func ParseTemplate(rec document.Record) (*Template, []string, error) {
	id := rec.Str("id", "")
	if id == "" {
		return nil, nil, fmt.Errorf("monster record has no id")
	}

	var warnings []string

	size, ok := ParseSize(rec.Str("size", string(DefaultSize)))
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"monster %q: unknown size %q, using %q", id, rec.Str("size", ""), DefaultSize))
	}

	ctype, ok := ParseCreatureType(rec.Str("type", string(DefaultCreatureType)))
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"monster %q: unknown creature type %q, using %q", id, rec.Str("type", ""), DefaultCreatureType))
	}

	abilities, _ := rec.Record("abilities")
	tmpl := &Template{
		ID:         id,
		Name:       rec.Str("name", id),
		Size:       size,
		Type:       ctype,
		ArmorClass: rec.Int("armor_class", 10),
		MaxHP:      rec.Int("hit_points", 1),
		Abilities: AbilityModifiers{
			Str: abilities.Int("str", 0),
			Dex: abilities.Int("dex", 0),
			Con: abilities.Int("con", 0),
			Int: abilities.Int("int", 0),
			Wis: abilities.Int("wis", 0),
			Cha: abilities.Int("cha", 0),
		},
		Alignment:       rec.Str("alignment", "unaligned"),
		Speed:           rec.Int("speed", 30),
		ChallengeRating: rec.Float("challenge_rating", 0),
		XP:              rec.Int("xp", 0),
		AttackBonus:     rec.Int("attack_bonus", 0),
		DamageDice:      rec.Str("damage_dice", "1d4"),
		Description:     rec.Str("description", ""),
	}

	if err := tmpl.Validate(); err != nil {
		return nil, warnings, err
	}
	return tmpl, warnings, nil
}
