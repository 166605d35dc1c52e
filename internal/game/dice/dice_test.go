package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tabletop/internal/game/dice"
)

// TestRollResult_Total verifies the postcondition: Total() == sum(Dice) + Modifier.
func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	assert.Equal(t, 12, r.Total(), "Total() must equal sum(Dice)+Modifier")
}

// TestRollResult_Total_Property uses property-based testing to verify the
// postcondition Total() == sum(Dice) + Modifier for arbitrary inputs.
func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dice_ := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.Int().Draw(rt, "modifier")

		r := dice.RollResult{
			Expression: "Nd6+M",
			Dice:       dice_,
			Modifier:   modifier,
		}

		expected := modifier
		for _, d := range dice_ {
			expected += d
		}

		assert.Equal(rt, expected, r.Total(),
			"Total() postcondition: must equal sum(Dice)+Modifier")
	})
}

// TestRollResult_String verifies the audit string contains expression, dice, and total.
func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{
		Expression: "1d4+1",
		Dice:       []int{3},
		Modifier:   1,
	}
	s := r.String()
	require.Contains(t, s, "1d4+1", "String() must contain the expression")
	require.Contains(t, s, "[3]", "String() must contain the dice results")
	require.Contains(t, s, "4", "String() must contain the total")
	assert.Equal(t, "1d4+1 → [3] +1 = 4", s, "String() must match exact format")
}

// TestRollResult_String_PanicsOnEmptyExpression verifies that String() enforces
// its precondition and panics when Expression is empty.
func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr     string
		count    int
		sides    int
		modifier int
	}{
		{"d20", 1, 20, 0},
		{"1d4", 1, 4, 0},
		{"2d6+3", 2, 6, 3},
		{"4d8-2", 4, 8, -2},
		{"D12", 1, 12, 0},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			e, err := dice.Parse(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.modifier, e.Modifier)
			assert.Equal(t, tc.expr, e.Raw)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, expr := range []string{"", "20", "0d6", "1d1", "1dx", "xd6", "-1d6"} {
		t.Run(fmt.Sprintf("%q", expr), func(t *testing.T) {
			_, err := dice.Parse(expr)
			assert.Error(t, err)
		})
	}
}

// TestParse_Roundtrip_Property verifies Parse reconstructs arbitrary
// well-formed expressions.
func TestParse_Roundtrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 20).Draw(rt, "count")
		sides := rapid.IntRange(2, 100).Draw(rt, "sides")
		modifier := rapid.IntRange(-50, 50).Draw(rt, "modifier")

		expr := fmt.Sprintf("%dd%d", count, sides)
		if modifier != 0 {
			expr = fmt.Sprintf("%s%+d", expr, modifier)
		}

		e, err := dice.Parse(expr)
		require.NoError(rt, err)
		assert.Equal(rt, count, e.Count)
		assert.Equal(rt, sides, e.Sides)
		assert.Equal(rt, modifier, e.Modifier)
	})
}

func TestRoll_UsesSource(t *testing.T) {
	src := dice.NewFixedSource(3, 5) // die results 4 and 6
	r, err := dice.RollExpr("2d6+1", src)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, r.Dice)
	assert.Equal(t, 11, r.Total())
}

func TestD20(t *testing.T) {
	src := dice.NewFixedSource(11) // die result 12
	r := dice.D20(3, src)
	require.Len(t, r.Dice, 1)
	assert.Equal(t, 12, r.Dice[0])
	assert.Equal(t, 15, r.Total())
	assert.True(t, strings.HasPrefix(r.String(), "d20"))
}

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("bogus") })
	assert.NotPanics(t, func() { dice.MustParse("1d4") })
}
