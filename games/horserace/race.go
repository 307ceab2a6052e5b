package horserace

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"voicebank/models"
)

var horseEmojis = map[models.HorseColor]string{
	models.HorseRed:    "🔴",
	models.HorseBlue:   "🔵",
	models.HorseGreen:  "🟢",
	models.HorseYellow: "🟡",
	models.HorsePurple: "🟣",
}

// Emoji returns the marker shown for a horse in race messages
func Emoji(color models.HorseColor) string {
	return horseEmojis[color]
}

// Horse is one runner on the track
type Horse struct {
	Color    models.HorseColor
	Position int
}

// Race simulates five horses advancing toward a finish line. Each tick every
// horse takes a weighted step of 1 to 3 cells; the race ends on the first
// tick where any horse reaches the track length. Horses run in the fixed
// color order, which also breaks ties when several cross together.
type Race struct {
	TrackLength int
	Horses      []*Horse

	rng    *rand.Rand
	winner models.HorseColor
	done   bool
}

// NewRace creates a race with all horses at the gate
func NewRace(trackLength int) *Race {
	return newRaceWithRand(trackLength, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newRaceWithRand(trackLength int, rng *rand.Rand) *Race {
	horses := make([]*Horse, 0, len(models.HorseColors))
	for _, color := range models.HorseColors {
		horses = append(horses, &Horse{Color: color})
	}
	return &Race{
		TrackLength: trackLength,
		Horses:      horses,
		rng:         rng,
	}
}

// Tick advances every horse one step and reports whether the race finished.
// After the finishing tick the winner is fixed and further ticks are no-ops.
func (r *Race) Tick() bool {
	if r.done {
		return true
	}

	for _, h := range r.Horses {
		h.Position += r.step()
	}

	for _, h := range r.Horses {
		if h.Position >= r.TrackLength {
			r.winner = h.Color
			r.done = true
			break
		}
	}
	return r.done
}

// Winner returns the winning horse once the race is over
func (r *Race) Winner() (models.HorseColor, bool) {
	return r.winner, r.done
}

// step draws the per-tick advancement, biased toward small moves so races
// stay close: 1 cell half the time, 2 cells 30%, 3 cells 20%.
func (r *Race) step() int {
	switch n := r.rng.Intn(10); {
	case n < 5:
		return 1
	case n < 8:
		return 2
	default:
		return 3
	}
}

// Track renders the current standings as one line per horse, finish line on
// the right
func (r *Race) Track() string {
	rows := make([]string, 0, len(r.Horses))
	for _, h := range r.Horses {
		pos := h.Position
		if pos > r.TrackLength {
			pos = r.TrackLength
		}
		if pos < 0 {
			pos = 0
		}
		progress := strings.Repeat("=", pos)
		remain := strings.Repeat("-", r.TrackLength-pos)
		rows = append(rows, fmt.Sprintf("%s `[%s>%s]` 🏁", Emoji(h.Color), progress, remain))
	}
	return strings.Join(rows, "\n")
}
