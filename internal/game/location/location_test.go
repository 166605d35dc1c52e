package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tabletop/internal/document"
	"github.com/cory-johannsen/tabletop/internal/game/location"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range location.StandardDirections {
		opp := d.Opposite()
		require.NotEmpty(t, opp, "every standard direction has an opposite: %s", d)
		assert.Equal(t, d, opp.Opposite(), "opposite must be an involution: %s", d)
	}
	assert.Equal(t, location.Direction(""), location.Direction("portal").Opposite())
	assert.False(t, location.Direction("portal").IsStandard())
	assert.True(t, location.North.IsStandard())
}

func TestParseLocation_Valid(t *testing.T) {
	rec := document.Record{
		"id":         "town_square",
		"name":       "Town Square",
		"read_aloud": "Market stalls ring a mossy fountain.",
		"exits": map[string]interface{}{
			"north": "temple",
			"east":  "forest_path",
		},
		"npcs":  []interface{}{"innkeeper"},
		"items": []interface{}{"lost_coin"},
		"flags": []interface{}{"safe_zone"},
	}
	loc, warnings, err := location.ParseLocation(rec)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	target, ok := loc.Exit(location.North)
	require.True(t, ok)
	assert.Equal(t, "temple", target)
	_, ok = loc.Exit(location.South)
	assert.False(t, ok)

	assert.True(t, loc.HasFlag("safe_zone"))
	assert.False(t, loc.HasFlag("locked"))
	assert.False(t, loc.Locked)
	assert.Equal(t, []string{"innkeeper"}, loc.NPCs)
	assert.Equal(t, []string{"lost_coin"}, loc.Items)
}

func TestParseLocation_LockedFlag(t *testing.T) {
	rec := document.Record{
		"id":    "vault",
		"flags": []interface{}{"locked"},
	}
	loc, _, err := location.ParseLocation(rec)
	require.NoError(t, err)
	assert.True(t, loc.Locked, "the reserved locked flag also sets the bool")
	assert.True(t, loc.HasFlag(location.FlagLocked))
}

func TestParseLocation_CustomExitDirection(t *testing.T) {
	rec := document.Record{
		"id":    "cavern",
		"exits": map[string]interface{}{"behind the waterfall": "grotto"},
	}
	loc, _, err := location.ParseLocation(rec)
	require.NoError(t, err, "non-compass exit names are allowed")
	target, ok := loc.Exit(location.Direction("behind the waterfall"))
	require.True(t, ok)
	assert.Equal(t, "grotto", target)
}

func TestParseLocation_MissingID(t *testing.T) {
	_, _, err := location.ParseLocation(document.Record{"name": "Nowhere"})
	assert.Error(t, err)
}

func TestParseLocation_NameDefaultsToID(t *testing.T) {
	loc, _, err := location.ParseLocation(document.Record{"id": "crossroads"})
	require.NoError(t, err)
	assert.Equal(t, "crossroads", loc.Name)
}
