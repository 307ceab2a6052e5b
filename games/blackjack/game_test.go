package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(rank Rank) Card {
	return Card{Rank: rank, Suit: Spades}
}

// stackedDeck deals cards in the exact order given
func stackedDeck(ranks ...Rank) *Deck {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = card(r)
	}
	return &Deck{cards: cards}
}

func TestHandValue(t *testing.T) {
	cases := []struct {
		name  string
		hand  []Card
		value int
	}{
		{"two aces and a nine", []Card{card(Ace), card(Ace), card(Nine)}, 21},
		{"two kings", []Card{card(King), card(King)}, 20},
		{"both aces demoted", []Card{card(Ace), card(King), card(Ace)}, 12},
		{"natural", []Card{card(Ace), card(Queen)}, 21},
		{"single ace stays high", []Card{card(Ace), card(Five)}, 16},
		{"bust", []Card{card(King), card(Queen), card(Five)}, 25},
		{"ace saves a bust", []Card{card(Ace), card(Nine), card(Five)}, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.value, HandValue(tc.hand))
		})
	}
}

func TestNewGame_NaturalTwentyOne(t *testing.T) {
	// Cards deal alternately: player, dealer, player, dealer
	g, err := newGameFromDeck(10, stackedDeck(Ace, Five, King, Six))
	require.NoError(t, err)

	assert.Equal(t, StateSettled, g.State)
	assert.Equal(t, OutcomeWin, g.Outcome)
	assert.Equal(t, int64(20), g.Credit())

	// No further actions on a settled game
	assert.ErrorIs(t, g.Hit(), ErrGameOver)
	assert.ErrorIs(t, g.Stand(), ErrGameOver)
}

func TestGame_HitBust(t *testing.T) {
	g, err := newGameFromDeck(10, stackedDeck(King, Five, Queen, Six, Five))
	require.NoError(t, err)
	require.Equal(t, StatePlayerTurn, g.State)

	require.NoError(t, g.Hit())

	assert.Equal(t, StateSettled, g.State)
	assert.Equal(t, OutcomeLose, g.Outcome)
	assert.Equal(t, int64(0), g.Credit())
}

func TestGame_HitToTwentyOneAutoStands(t *testing.T) {
	// Player: 10+5, hit 6 -> 21. Dealer: 10+9 stands on 19, player wins.
	g, err := newGameFromDeck(10, stackedDeck(Ten, Ten, Five, Nine, Six))
	require.NoError(t, err)

	require.NoError(t, g.Hit())

	assert.Equal(t, StateSettled, g.State)
	assert.Equal(t, OutcomeWin, g.Outcome)
}

func TestGame_DealerDrawsToSeventeen(t *testing.T) {
	// Player stands on 20; dealer starts at 6+5=11, draws 3 then 9 to 23
	g, err := newGameFromDeck(10, stackedDeck(King, Six, Queen, Five, Three, Nine))
	require.NoError(t, err)

	require.NoError(t, g.Stand())

	assert.Equal(t, OutcomeWin, g.Outcome)
	assert.GreaterOrEqual(t, g.DealerValue(), 17)
}

func TestGame_OutcomeMatrix(t *testing.T) {
	cases := []struct {
		name    string
		deck    *Deck
		outcome Outcome
		credit  int64
	}{
		{
			// player 18 vs dealer 19
			"dealer higher", stackedDeck(King, King, Eight, Nine), OutcomeLose, 0,
		},
		{
			// player 20 vs dealer 19
			"player higher", stackedDeck(King, King, Queen, Nine), OutcomeWin, 20,
		},
		{
			// player 19 vs dealer 19
			"equal totals push", stackedDeck(King, King, Nine, Nine), OutcomePush, 10,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := newGameFromDeck(10, tc.deck)
			require.NoError(t, err)
			require.NoError(t, g.Stand())

			assert.Equal(t, tc.outcome, g.Outcome)
			assert.Equal(t, tc.credit, g.Credit())
		})
	}
}

func TestGame_Forfeit(t *testing.T) {
	g, err := newGameFromDeck(10, stackedDeck(King, Five, Nine, Six))
	require.NoError(t, err)

	g.Forfeit()

	assert.Equal(t, OutcomeLose, g.Outcome)
	assert.Equal(t, int64(0), g.Credit())

	// Forfeit after settlement keeps the original outcome
	won, err := newGameFromDeck(10, stackedDeck(Ace, Five, King, Six))
	require.NoError(t, err)
	won.Forfeit()
	assert.Equal(t, OutcomeWin, won.Outcome)
}

func TestDeck(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for d.Remaining() > 0 {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	_, err := d.Draw()
	assert.Error(t, err)
}
