package item

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tabletop/internal/document"
)

// parseBase reads the fields common to every item record, accumulating
// warnings for unrecognized type and rarity tokens.
func parseBase(rec document.Record, warnings *[]string) (Item, error) {
	id := rec.Str("id", "")
	if id == "" {
		return Item{}, fmt.Errorf("item record has no id")
	}

	itemType, ok := ParseType(rec.Str("type", string(DefaultType)))
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf(
			"item %q: unknown type %q, using %q", id, rec.Str("type", ""), DefaultType))
	}
	rarity, ok := ParseRarity(rec.Str("rarity", string(DefaultRarity)))
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf(
			"item %q: unknown rarity %q, using %q", id, rec.Str("rarity", ""), DefaultRarity))
	}

	return Item{
		ID:          id,
		Name:        rec.Str("name", id),
		Type:        itemType,
		Rarity:      rarity,
		Description: rec.Str("description", ""),
		Weight:      rec.Float("weight", 0),
		Value:       rec.Int("value", 0),
		Stackable:   rec.Bool("stackable", false),
		QuestItem:   rec.Bool("quest_item", false),
	}, nil
}

// ParseWeapon builds a Weapon from a decoded weapon record.
//
// Unrecognized damage-type and category tokens are reported as warnings with
// the documented fallback substituted; the record is kept. A record with no
// id yields an error.
//
// Postcondition: on nil error the returned Weapon passes Validate.
func ParseWeapon(rec document.Record) (*Weapon, []string, error) {
	var warnings []string
	base, err := parseBase(rec, &warnings)
	if err != nil {
		return nil, nil, fmt.Errorf("weapon: %w", err)
	}
	if !rec.Has("type") {
		base.Type = TypeWeapon
	}

	damageType, ok := ParseDamageType(rec.Str("damage_type", string(DamageSlashing)))
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"weapon %q: unknown damage type %q, using %q", base.ID, rec.Str("damage_type", ""), DefaultDamageType))
	}
	category, ok := ParseWeaponCategory(rec.Str("category", string(DefaultWeaponCategory)))
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"weapon %q: unknown category %q, using %q", base.ID, rec.Str("category", ""), DefaultWeaponCategory))
	}

	w := &Weapon{
		Item:             base,
		DiceCount:        rec.Int("dice_count", 1),
		DieSize:          rec.Int("die_size", 4),
		DamageType:       damageType,
		Category:         category,
		Properties:       make(map[string]bool),
		VersatileDieSize: rec.Int("versatile_die_size", 0),
		AttackBonus:      rec.Int("attack_bonus", 0),
		DamageBonus:      rec.Int("damage_bonus", 0),
	}
	for _, p := range rec.StrList("properties") {
		w.Properties[strings.ToLower(p)] = true
	}
	if ranged, ok := rec.Record("ranged"); ok {
		w.Ranged = &RangedProfile{
			Normal: ranged.Int("normal", 0),
			Long:   ranged.Int("long", 0),
		}
	}

	if err := w.Validate(); err != nil {
		return nil, warnings, err
	}
	return w, warnings, nil
}

// ParseArmor builds an Armor from a decoded armor record.
//
// An unrecognized category token is reported as a warning with the
// documented fallback substituted. A record with no id yields an error.
//
// Postcondition: on nil error the returned Armor passes Validate.
func ParseArmor(rec document.Record) (*Armor, []string, error) {
	var warnings []string
	base, err := parseBase(rec, &warnings)
	if err != nil {
		return nil, nil, fmt.Errorf("armor: %w", err)
	}
	if !rec.Has("type") {
		base.Type = TypeArmor
	}

	category, ok := ParseArmorCategory(rec.Str("category", string(DefaultArmorCategory)))
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"armor %q: unknown category %q, using %q", base.ID, rec.Str("category", ""), DefaultArmorCategory))
	}

	a := &Armor{
		Item:                base,
		BaseAC:              rec.Int("base_ac", 10),
		Category:            category,
		StealthDisadvantage: rec.Bool("stealth_disadvantage", false),
		MagicBonus:          rec.Int("magic_bonus", 0),
	}
	if rec.Has("strength_req") {
		req := rec.Int("strength_req", 0)
		a.StrengthReq = &req
	}

	if err := a.Validate(); err != nil {
		return nil, warnings, err
	}
	return a, warnings, nil
}

// ParseItem builds a generic item from a decoded record. A record carrying
// effects or an attunement requirement becomes a MagicItem; a record naming
// a catalog item via "named" is built by NewNamedItem with the record's id.
// Exactly one of the two returns is non-nil on success.
func ParseItem(rec document.Record) (*Item, *MagicItem, []string, error) {
	if rec.Has("named") {
		m, err := NewNamedItem(rec.Str("named", ""))
		if err != nil {
			return nil, nil, nil, err
		}
		if id := rec.Str("id", ""); id != "" {
			m.ID = id
		}
		return nil, m, nil, nil
	}

	var warnings []string
	base, err := parseBase(rec, &warnings)
	if err != nil {
		return nil, nil, nil, err
	}

	effectRecs, _ := rec.Records("effects")
	requiresAttunement := rec.Bool("requires_attunement", false)
	if len(effectRecs) == 0 && !requiresAttunement {
		if err := base.Validate(); err != nil {
			return nil, nil, warnings, err
		}
		return &base, nil, warnings, nil
	}

	m := &MagicItem{
		Item:               base,
		RequiresAttunement: requiresAttunement,
		Requirement:        AttunementReq(strings.ToLower(rec.Str("attunement_requirement", ""))),
	}
	for _, er := range effectRecs {
		e, ws, err := ParseEffect(er)
		warnings = append(warnings, ws...)
		if err != nil {
			return nil, nil, warnings, fmt.Errorf("item %q: %w", base.ID, err)
		}
		m.Effects = append(m.Effects, e)
	}

	if err := m.Validate(); err != nil {
		return nil, nil, warnings, err
	}
	return nil, m, warnings, nil
}

// ParseEffect builds an Effect from a decoded effect record. The cadence is
// read from "uses" (charge maximum) and "reset" ("daily" or "long_rest");
// absent both, the effect is unlimited. New effects start fully charged.
func ParseEffect(rec document.Record) (*Effect, []string, error) {
	name := rec.Str("name", "")
	kindToken := rec.Str("kind", "")
	kind, ok := ParseEffectKind(kindToken)
	if !ok {
		return nil, nil, fmt.Errorf("effect %q: unknown kind %q", name, kindToken)
	}

	var warnings []string
	e := &Effect{
		Name:        name,
		Kind:        kind,
		Passive:     rec.Bool("passive", false),
		Destination: rec.Str("destination", ""),
		Stat:        rec.Str("stat", ""),
		Bonus:       rec.Int("bonus", 0),
		Spell:       rec.Str("spell", ""),
		SpellLevel:  rec.Int("spell_level", 0),
		Script:      rec.Str("script", ""),
	}
	if e.Name == "" {
		e.Name = string(kind)
	}

	if kind == EffectResistance {
		resist, ok := ParseDamageType(rec.Str("resist", string(DefaultDamageType)))
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"effect %q: unknown damage type %q, using %q", e.Name, rec.Str("resist", ""), DefaultDamageType))
		}
		e.Resist = resist
	}

	if rec.Has("uses") {
		uses := rec.Int("uses", 1)
		switch reset := strings.ToLower(rec.Str("reset", "daily")); reset {
		case "daily":
			e.Cadence = PerDay(uses)
		case "long_rest":
			e.Cadence = PerLongRest(uses)
		default:
			warnings = append(warnings, fmt.Sprintf(
				"effect %q: unknown reset %q, using daily", e.Name, reset))
			e.Cadence = PerDay(uses)
		}
		e.Charges = uses
	}

	if err := e.Validate(); err != nil {
		return nil, warnings, err
	}
	return e, warnings, nil
}
