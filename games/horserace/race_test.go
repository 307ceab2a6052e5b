package horserace

import (
	"math/rand"
	"strings"
	"testing"

	"voicebank/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRace_Terminates(t *testing.T) {
	race := newRaceWithRand(30, rand.New(rand.NewSource(1)))

	// Minimum step is 1, so 30 ticks always finish a 30-cell track
	ticks := 0
	for !race.Tick() {
		ticks++
		require.LessOrEqual(t, ticks, 30, "race did not terminate")
	}

	winner, done := race.Winner()
	assert.True(t, done)
	assert.Contains(t, models.HorseColors, winner)
}

func TestRace_WinnerCrossedTheLine(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		race := newRaceWithRand(30, rand.New(rand.NewSource(seed)))
		for !race.Tick() {
		}

		winner, _ := race.Winner()
		for _, h := range race.Horses {
			if h.Color == winner {
				assert.GreaterOrEqual(t, h.Position, race.TrackLength, "seed %d", seed)
			}
		}
	}
}

func TestRace_TieBreakFollowsColorOrder(t *testing.T) {
	race := newRaceWithRand(30, rand.New(rand.NewSource(1)))

	// Put yellow and purple a single cell from the line and everyone else
	// far behind. Both cross on the next tick; yellow runs earlier in the
	// fixed order, so yellow must win.
	for _, h := range race.Horses {
		switch h.Color {
		case models.HorseYellow, models.HorsePurple:
			h.Position = race.TrackLength - 1
		default:
			h.Position = -1000
		}
	}

	require.True(t, race.Tick())
	winner, done := race.Winner()
	assert.True(t, done)
	assert.Equal(t, models.HorseYellow, winner)
}

func TestRace_TickAfterFinishIsNoOp(t *testing.T) {
	race := newRaceWithRand(5, rand.New(rand.NewSource(1)))
	for !race.Tick() {
	}
	winner, _ := race.Winner()

	positions := make([]int, len(race.Horses))
	for i, h := range race.Horses {
		positions[i] = h.Position
	}

	assert.True(t, race.Tick())

	after, _ := race.Winner()
	assert.Equal(t, winner, after)
	for i, h := range race.Horses {
		assert.Equal(t, positions[i], h.Position)
	}
}

func TestRace_StepBounds(t *testing.T) {
	race := newRaceWithRand(30, rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		s := race.step()
		assert.GreaterOrEqual(t, s, 1)
		assert.LessOrEqual(t, s, 3)
	}
}

func TestRace_Track(t *testing.T) {
	race := newRaceWithRand(10, rand.New(rand.NewSource(1)))
	race.Horses[0].Position = 3

	track := race.Track()
	lines := strings.Split(track, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "===")
	assert.Contains(t, lines[0], "🏁")
	assert.Contains(t, lines[0], Emoji(models.HorseRed))

	// Positions past the line clamp to the track length
	race.Horses[1].Position = 99
	assert.NotPanics(t, func() { race.Track() })
}
