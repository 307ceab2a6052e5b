package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeFor_Colors(t *testing.T) {
	assert.Equal(t, ColorGreen, OutcomeFor(0).Color)
	assert.Equal(t, ColorRed, OutcomeFor(32).Color)
	assert.Equal(t, ColorRed, OutcomeFor(1).Color)
	assert.Equal(t, ColorBlack, OutcomeFor(2).Color)
	assert.Equal(t, ColorBlack, OutcomeFor(35).Color)

	// Every non-zero pocket is exactly one of red or black
	reds, blacks := 0, 0
	for n := 1; n <= 36; n++ {
		switch OutcomeFor(n).Color {
		case ColorRed:
			reds++
		case ColorBlack:
			blacks++
		default:
			t.Fatalf("pocket %d has no color", n)
		}
	}
	assert.Equal(t, 18, reds)
	assert.Equal(t, 18, blacks)
}

func TestOutcome_Credit(t *testing.T) {
	t.Run("red on a red number pays even money", func(t *testing.T) {
		assert.Equal(t, int64(20), OutcomeFor(32).Credit(BetRed, 10))
	})

	t.Run("green on zero pays 35 to 1", func(t *testing.T) {
		assert.Equal(t, int64(360), OutcomeFor(0).Credit(BetGreen, 10))
	})

	t.Run("losing bets pay nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), OutcomeFor(32).Credit(BetBlack, 10))
		assert.Equal(t, int64(0), OutcomeFor(32).Credit(BetOdd, 10))
		assert.Equal(t, int64(0), OutcomeFor(5).Credit(BetGreen, 10))
	})

	t.Run("parity excludes zero", func(t *testing.T) {
		assert.Equal(t, int64(0), OutcomeFor(0).Credit(BetEven, 10))
		assert.Equal(t, int64(0), OutcomeFor(0).Credit(BetOdd, 10))
	})

	t.Run("parity pays even money", func(t *testing.T) {
		assert.Equal(t, int64(20), OutcomeFor(18).Credit(BetEven, 10))
		assert.Equal(t, int64(20), OutcomeFor(17).Credit(BetOdd, 10))
	})
}

func TestSpin_Distribution(t *testing.T) {
	const spins = 37000
	counts := make(map[int]int)
	for i := 0; i < spins; i++ {
		o := Spin()
		require.GreaterOrEqual(t, o.Number, 0)
		require.LessOrEqual(t, o.Number, 36)
		counts[o.Number]++
	}

	// Chi-square test against a uniform distribution over 37 pockets.
	// 36 degrees of freedom, critical value at p=0.001 is ~67.99.
	expected := float64(spins) / 37
	var chi2 float64
	for n := 0; n <= 36; n++ {
		diff := float64(counts[n]) - expected
		chi2 += diff * diff / expected
	}
	assert.Less(t, chi2, 67.99, "spin distribution is not uniform")
	assert.Len(t, counts, 37, "every pocket should be hit")
}

func TestParseBet(t *testing.T) {
	for _, b := range Bets {
		parsed, ok := ParseBet(string(b))
		assert.True(t, ok)
		assert.Equal(t, b, parsed)
	}

	_, ok := ParseBet("double-zero")
	assert.False(t, ok)
}
