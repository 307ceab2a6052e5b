package blackjack

import (
	"errors"
)

// State is the phase a game is in
type State string

const (
	StateDealing    State = "dealing"
	StatePlayerTurn State = "player_turn"
	StateDealerTurn State = "dealer_turn"
	StateSettled    State = "settled"
)

// Outcome is the settled result from the player's point of view
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomePush Outcome = "push"
)

var (
	ErrGameOver  = errors.New("game is already settled")
	ErrNotPlayer = errors.New("action is not available in this state")
)

// Game is a single-player blackjack round. The stake is debited before the
// game starts; Credit reports what flows back when it settles. Game is not
// safe for concurrent use, callers serialize access per game.
type Game struct {
	Bet        int64
	PlayerHand []Card
	DealerHand []Card
	State      State
	Outcome    Outcome

	deck *Deck
}

// NewGame shuffles a deck and deals the opening hands. A natural 21 settles
// immediately as a win without the dealer playing.
func NewGame(bet int64) (*Game, error) {
	deck := NewDeck()
	deck.Shuffle()
	return newGameFromDeck(bet, deck)
}

func newGameFromDeck(bet int64, deck *Deck) (*Game, error) {
	g := &Game{
		Bet:   bet,
		State: StateDealing,
		deck:  deck,
	}

	for i := 0; i < 2; i++ {
		if err := g.dealTo(&g.PlayerHand); err != nil {
			return nil, err
		}
		if err := g.dealTo(&g.DealerHand); err != nil {
			return nil, err
		}
	}

	if HandValue(g.PlayerHand) == 21 {
		g.settle(OutcomeWin)
	} else {
		g.State = StatePlayerTurn
	}

	return g, nil
}

// PlayerValue is the current value of the player's hand
func (g *Game) PlayerValue() int {
	return HandValue(g.PlayerHand)
}

// DealerValue is the current value of the dealer's hand
func (g *Game) DealerValue() int {
	return HandValue(g.DealerHand)
}

// Hit draws one card for the player. Busting settles the game as a loss;
// reaching exactly 21 stands automatically.
func (g *Game) Hit() error {
	if g.State == StateSettled {
		return ErrGameOver
	}
	if g.State != StatePlayerTurn {
		return ErrNotPlayer
	}

	if err := g.dealTo(&g.PlayerHand); err != nil {
		return err
	}

	switch value := HandValue(g.PlayerHand); {
	case value > 21:
		g.settle(OutcomeLose)
	case value == 21:
		return g.Stand()
	}
	return nil
}

// Stand ends the player's turn and plays out the dealer, who draws to 17
func (g *Game) Stand() error {
	if g.State == StateSettled {
		return ErrGameOver
	}
	if g.State != StatePlayerTurn {
		return ErrNotPlayer
	}

	g.State = StateDealerTurn
	for HandValue(g.DealerHand) < 17 {
		if err := g.dealTo(&g.DealerHand); err != nil {
			return err
		}
	}

	player := HandValue(g.PlayerHand)
	switch dealer := HandValue(g.DealerHand); {
	case dealer > 21:
		g.settle(OutcomeWin)
	case dealer > player:
		g.settle(OutcomeLose)
	case player > dealer:
		g.settle(OutcomeWin)
	default:
		g.settle(OutcomePush)
	}
	return nil
}

// Forfeit settles the game as a loss, used when the player times out
func (g *Game) Forfeit() {
	if g.State != StateSettled {
		g.settle(OutcomeLose)
	}
}

// Settled reports whether the game has ended
func (g *Game) Settled() bool {
	return g.State == StateSettled
}

// Credit is the amount to pay back to the player once settled: double the
// stake on a win, the stake itself on a push, nothing on a loss.
func (g *Game) Credit() int64 {
	switch g.Outcome {
	case OutcomeWin:
		return g.Bet * 2
	case OutcomePush:
		return g.Bet
	default:
		return 0
	}
}

func (g *Game) settle(outcome Outcome) {
	g.State = StateSettled
	g.Outcome = outcome
}

func (g *Game) dealTo(hand *[]Card) error {
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}
	*hand = append(*hand, card)
	return nil
}
