package bestiary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tabletop/internal/document"
	"github.com/cory-johannsen/tabletop/internal/game/bestiary"
)

func goblinRecord() document.Record {
	return document.Record{
		"id":               "goblin",
		"name":             "Goblin",
		"size":             "Small",
		"type":             "humanoid",
		"armor_class":      15,
		"hit_points":       7,
		"abilities":        map[string]any{"str": -1, "dex": 2, "con": 0, "int": 0, "wis": -1, "cha": -1},
		"alignment":        "neutral evil",
		"speed":            30,
		"challenge_rating": 0.25,
		"xp":               50,
		"attack_bonus":     4,
		"damage_dice":      "1d6+2",
		"description":      "A small, black-hearted humanoid.",
	}
}

func TestParseTemplate_Valid(t *testing.T) {
	tmpl, warnings, err := bestiary.ParseTemplate(goblinRecord())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "goblin", tmpl.ID)
	assert.Equal(t, bestiary.SizeSmall, tmpl.Size, "size tokens are case-insensitive")
	assert.Equal(t, bestiary.TypeHumanoid, tmpl.Type)
	assert.Equal(t, 15, tmpl.ArmorClass)
	assert.Equal(t, 7, tmpl.MaxHP)
	assert.Equal(t, 2, tmpl.Abilities.Dex)
	assert.InDelta(t, 0.25, tmpl.ChallengeRating, 1e-9)
	assert.Equal(t, "1d6+2", tmpl.DamageDice)
}

func TestParseTemplate_UnknownEnumsFallBack(t *testing.T) {
	rec := goblinRecord()
	rec["size"] = "colossal"
	rec["type"] = "kaiju"

	tmpl, warnings, err := bestiary.ParseTemplate(rec)
	require.NoError(t, err, "unknown enum tokens must not discard the record")
	assert.Equal(t, bestiary.DefaultSize, tmpl.Size)
	assert.Equal(t, bestiary.DefaultCreatureType, tmpl.Type)

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], `"goblin"`, "warning must reference the record's identifier")
	assert.Contains(t, warnings[0], "colossal")
	assert.Contains(t, warnings[1], "kaiju")
}

func TestParseTemplate_MissingID(t *testing.T) {
	rec := goblinRecord()
	delete(rec, "id")
	_, _, err := bestiary.ParseTemplate(rec)
	assert.Error(t, err, "a record without an id has no safe fallback")
}

func TestParseTemplate_BadDamageDice(t *testing.T) {
	rec := goblinRecord()
	rec["damage_dice"] = "lots"
	_, _, err := bestiary.ParseTemplate(rec)
	assert.Error(t, err)
}

func TestRegistry_DuplicateID(t *testing.T) {
	reg := bestiary.NewRegistry()
	tmpl, _, err := bestiary.ParseTemplate(goblinRecord())
	require.NoError(t, err)

	require.NoError(t, reg.Register(tmpl))
	assert.Error(t, reg.Register(tmpl), "duplicate IDs must be rejected")
	assert.Equal(t, 1, reg.Len())
}

// TestInstantiate_Independence covers the template/instance contract:
// instantiating twice yields equal stats but independently mutable hit
// points; damaging one leaves the other and the template unchanged.
func TestInstantiate_Independence(t *testing.T) {
	reg := bestiary.NewRegistry()
	tmpl, _, err := bestiary.ParseTemplate(goblinRecord())
	require.NoError(t, err)
	require.NoError(t, reg.Register(tmpl))

	first, err := reg.Instantiate("goblin")
	require.NoError(t, err)
	second, err := reg.Instantiate("goblin")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "synthesized instance IDs must be unique")
	assert.Equal(t, first.MaxHP, second.MaxHP)
	assert.Equal(t, first.CurrentHP, second.CurrentHP)

	first.TakeDamage(5)
	assert.Equal(t, 2, first.CurrentHP)
	assert.Equal(t, 7, second.CurrentHP, "sibling instance must be unaffected")
	assert.Equal(t, 7, tmpl.MaxHP, "template must be unaffected")
}

func TestInstantiate_ExplicitID(t *testing.T) {
	reg := bestiary.NewRegistry()
	tmpl, _, err := bestiary.ParseTemplate(goblinRecord())
	require.NoError(t, err)
	require.NoError(t, reg.Register(tmpl))

	inst, err := reg.Instantiate("goblin", "goblin-boss-1")
	require.NoError(t, err)
	assert.Equal(t, "goblin-boss-1", inst.ID)
	assert.Equal(t, "goblin", inst.TemplateID)
}

func TestInstantiate_UnknownTemplate(t *testing.T) {
	reg := bestiary.NewRegistry()
	_, err := reg.Instantiate("tarrasque")
	assert.Error(t, err)
}

// TestInstance_HPClamp_Property verifies the invariant
// 0 <= CurrentHP <= MaxHP under arbitrary damage/heal sequences.
func TestInstance_HPClamp_Property(t *testing.T) {
	tmpl, _, err := bestiary.ParseTemplate(goblinRecord())
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		inst := bestiary.NewInstance("goblin-test", tmpl)
		steps := rapid.SliceOf(rapid.IntRange(-20, 20)).Draw(rt, "steps")
		for _, s := range steps {
			if s < 0 {
				inst.TakeDamage(-s)
			} else {
				inst.Heal(s)
			}
			assert.GreaterOrEqual(rt, inst.CurrentHP, 0, "CurrentHP must never go negative")
			assert.LessOrEqual(rt, inst.CurrentHP, inst.MaxHP, "CurrentHP must never exceed MaxHP")
		}
	})
}

func TestInstance_HealthDescription(t *testing.T) {
	tmpl, _, err := bestiary.ParseTemplate(goblinRecord())
	require.NoError(t, err)

	inst := bestiary.NewInstance("g", tmpl)
	assert.Equal(t, "unharmed", inst.HealthDescription())
	assert.False(t, inst.IsDead())

	inst.TakeDamage(7)
	assert.Equal(t, "dead", inst.HealthDescription())
	assert.True(t, inst.IsDead())
}

func TestRegistry_AllSorted(t *testing.T) {
	reg := bestiary.NewRegistry()
	for _, id := range []string{"wolf", "bandit", "goblin"} {
		rec := goblinRecord()
		rec["id"] = id
		tmpl, _, err := bestiary.ParseTemplate(rec)
		require.NoError(t, err)
		require.NoError(t, reg.Register(tmpl))
	}

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "bandit", all[0].ID)
	assert.Equal(t, "goblin", all[1].ID)
	assert.Equal(t, "wolf", all[2].ID)
}
