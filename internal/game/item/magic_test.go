package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tabletop/internal/game/character"
	"github.com/cory-johannsen/tabletop/internal/game/item"
)

func wizard() *character.Character {
	return &character.Character{Name: "Elara", Class: "wizard", Spellcaster: true}
}

func fighter() *character.Character {
	return &character.Character{Name: "Borin", Class: "fighter"}
}

// wandItem builds an attunement-gated item with one limited active effect.
func wandItem(t *testing.T) *item.MagicItem {
	t.Helper()
	m := &item.MagicItem{
		Item: item.Item{
			ID:     "test_wand",
			Name:   "Test Wand",
			Type:   item.TypeWondrous,
			Rarity: item.RarityRare,
		},
		RequiresAttunement: true,
		Requirement:        "spellcaster",
		Effects: []*item.Effect{
			{
				Name:       "Zap",
				Kind:       item.EffectSpell,
				Cadence:    item.PerDay(2),
				Charges:    2,
				Spell:      "shocking grasp",
				SpellLevel: 1,
			},
		},
	}
	require.NoError(t, m.Validate())
	return m
}

func TestAttune_NoAttunementRequired(t *testing.T) {
	m := &item.MagicItem{Item: item.Item{ID: "trinket", Name: "Trinket"}}
	msg, err := m.Attune(fighter())
	require.NoError(t, err, "attuning an ungated item is informational, not an error")
	assert.Contains(t, msg, "does not require attunement")
	_, attuned := m.AttunedTo()
	assert.False(t, attuned, "state must be unchanged")
}

func TestAttune_RequirementRefused(t *testing.T) {
	m := wandItem(t)
	_, err := m.Attune(fighter())
	require.ErrorIs(t, err, item.ErrAttunementRefused)
	_, attuned := m.AttunedTo()
	assert.False(t, attuned, "state must be unchanged on refusal")
}

func TestAttune_StateMachine(t *testing.T) {
	m := wandItem(t)
	a, b := wizard(), wizard()
	b.Name = "Mirela"

	// Unattuned → AttunedTo(a).
	_, err := m.Attune(a)
	require.NoError(t, err)
	who, attuned := m.AttunedTo()
	require.True(t, attuned)
	assert.Equal(t, "Elara", who)

	// Same character again: informational no-op.
	msg, err := m.Attune(a)
	require.NoError(t, err)
	assert.Contains(t, msg, "already attuned")

	// Another character while bound: AlreadyAttuned, state unchanged.
	_, err = m.Attune(b)
	require.ErrorIs(t, err, item.ErrAlreadyAttuned)
	who, _ = m.AttunedTo()
	assert.Equal(t, "Elara", who)

	// Unattune then attune(b) succeeds.
	m.Unattune()
	_, err = m.Attune(b)
	require.NoError(t, err)
	who, _ = m.AttunedTo()
	assert.Equal(t, "Mirela", who)
}

func TestAttune_NilCharacter(t *testing.T) {
	m := wandItem(t)
	_, err := m.Attune(nil)
	assert.ErrorIs(t, err, item.ErrNilCharacter)
}

func TestUnattune_WhileUnattuned(t *testing.T) {
	m := wandItem(t)
	msg := m.Unattune()
	assert.Contains(t, msg, "not attuned", "unattuning an unattuned item is informational")
}

func TestUse_GatedByAttunement(t *testing.T) {
	m := wandItem(t)
	a := wizard()

	// Non-attuned use of a gated item is a state violation.
	_, err := m.Use(a)
	require.ErrorIs(t, err, item.ErrNotAttuned)

	_, err = m.Attune(a)
	require.NoError(t, err)
	assert.True(t, m.CanUse(a))
	assert.False(t, m.CanUse(fighter()))

	out, err := m.Use(a)
	require.NoError(t, err, "the attuned character may use the item")
	assert.Contains(t, out, "shocking grasp")
	assert.Equal(t, 1, m.Effects[0].Charges, "a limited effect consumes one charge per use")

	// A different character is still gated even after someone attunes.
	_, err = m.Use(fighter())
	assert.ErrorIs(t, err, item.ErrNotAttuned)
}

func TestUse_NothingUsable(t *testing.T) {
	m := &item.MagicItem{
		Item: item.Item{ID: "cloak", Name: "Cloak"},
		Effects: []*item.Effect{
			{Name: "Guard", Kind: item.EffectStatBonus, Passive: true, Stat: "ac", Bonus: 1},
		},
	}
	out, err := m.Use(fighter())
	require.NoError(t, err, "only-passive items yield an informational result")
	assert.Contains(t, out, "nothing usable")
}

func TestUseEffectAt_Bounds(t *testing.T) {
	m := wandItem(t)
	a := wizard()
	_, err := m.Attune(a)
	require.NoError(t, err)

	_, err = m.UseEffectAt(a, 5)
	assert.ErrorIs(t, err, item.ErrEffectIndex)
	_, err = m.UseEffectAt(a, -1)
	assert.ErrorIs(t, err, item.ErrEffectIndex)

	out, err := m.UseEffectAt(a, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "shocking grasp")
}

func TestUseEffectNamed(t *testing.T) {
	m := wandItem(t)
	a := wizard()
	_, err := m.Attune(a)
	require.NoError(t, err)

	out, err := m.UseEffectNamed(a, "zap")
	require.NoError(t, err, "effect names match case-insensitively")
	assert.Contains(t, out, "shocking grasp")

	out, err = m.UseEffectNamed(a, "fireball")
	require.NoError(t, err, "a typo'd name is an ordinary informational outcome")
	assert.Contains(t, out, "no effect named")
}

// TestChargeRoundTrip covers the reset contract: consuming to zero then
// applying the matching reset restores the maximum; the non-matching reset
// leaves the effect depleted.
func TestChargeRoundTrip(t *testing.T) {
	m := &item.MagicItem{
		Item: item.Item{ID: "horn", Name: "Horn"},
		Effects: []*item.Effect{
			{Name: "Blast", Kind: item.EffectSpell, Cadence: item.PerLongRest(2), Charges: 2, Spell: "thunderwave", SpellLevel: 1},
		},
	}
	c := fighter()

	for i := 0; i < 2; i++ {
		_, err := m.Use(c)
		require.NoError(t, err)
	}
	e := m.Effects[0]
	assert.True(t, e.Depleted())

	out, err := m.Use(c)
	require.NoError(t, err, "a depleted item reports nothing usable rather than failing")
	assert.Contains(t, out, "nothing usable")

	m.ResetDaily()
	assert.Equal(t, 0, e.Charges, "the non-matching reset must leave the effect at zero")

	m.ResetLongRest()
	assert.Equal(t, 2, e.Charges, "the matching reset restores the original maximum")
	assert.True(t, e.Usable())
}

// TestChargeInvariant_Property verifies charges never leave [0, max] under
// arbitrary interleavings of use and reset events.
func TestChargeInvariant_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxCharges := rapid.IntRange(1, 5).Draw(rt, "max")
		m := &item.MagicItem{
			Item: item.Item{ID: "relic", Name: "Relic"},
			Effects: []*item.Effect{
				{Name: "Pulse", Kind: item.EffectSpell, Cadence: item.PerDay(maxCharges), Charges: maxCharges, Spell: "pulse", SpellLevel: 1},
			},
		}
		c := fighter()
		e := m.Effects[0]

		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(rt, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				_, err := m.Use(c)
				require.NoError(rt, err)
			case 1:
				m.ResetDaily()
			case 2:
				m.ResetLongRest()
			}
			assert.GreaterOrEqual(rt, e.Charges, 0, "charges must never go negative")
			assert.LessOrEqual(rt, e.Charges, maxCharges, "charges must never exceed the cadence maximum")
		}
	})
}

// TestClone_ClearsAttunement covers the copy contract: all effects and flags
// duplicate, but the copy always starts unattuned.
func TestClone_ClearsAttunement(t *testing.T) {
	m := wandItem(t)
	a := wizard()
	_, err := m.Attune(a)
	require.NoError(t, err)
	_, err = m.Use(a)
	require.NoError(t, err)

	dup := m.Clone()
	_, attuned := dup.AttunedTo()
	assert.False(t, attuned, "attunement is per-instance and never copies")
	assert.True(t, dup.RequiresAttunement)
	require.Len(t, dup.Effects, 1)
	assert.Equal(t, 1, dup.Effects[0].Charges, "charge state copies as-is")

	// The copy's effects are independent of the source's.
	dup.Effects[0].Charges = 0
	assert.Equal(t, 1, m.Effects[0].Charges)
}
