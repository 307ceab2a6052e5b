package roulette

import (
	"math/rand"
)

// European wheel color layout
var redNumbers = map[int]struct{}{1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {}, 19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {}}
var blackNumbers = map[int]struct{}{2: {}, 4: {}, 6: {}, 8: {}, 10: {}, 11: {}, 13: {}, 15: {}, 17: {}, 20: {}, 22: {}, 24: {}, 26: {}, 28: {}, 29: {}, 31: {}, 33: {}, 35: {}}

// Color of a pocket on the wheel
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorGreen Color = "green"
)

// Bet is one of the supported single-shot wagers
type Bet string

const (
	BetRed   Bet = "red"
	BetBlack Bet = "black"
	BetEven  Bet = "even"
	BetOdd   Bet = "odd"
	BetGreen Bet = "green"
)

// Bets lists the supported wagers for command registration
var Bets = []Bet{BetRed, BetBlack, BetEven, BetOdd, BetGreen}

// ParseBet validates a user-supplied bet string
func ParseBet(s string) (Bet, bool) {
	for _, b := range Bets {
		if string(b) == s {
			return b, true
		}
	}
	return "", false
}

// Outcome is one landed pocket
type Outcome struct {
	Number int
	Color  Color
}

// Spin draws a uniform pocket in [0,36]
func Spin() Outcome {
	return OutcomeFor(rand.Intn(37))
}

// OutcomeFor maps a pocket number to its colored outcome
func OutcomeFor(number int) Outcome {
	color := ColorGreen
	if _, ok := redNumbers[number]; ok {
		color = ColorRed
	} else if _, ok := blackNumbers[number]; ok {
		color = ColorBlack
	}
	return Outcome{Number: number, Color: color}
}

// Wins reports whether the bet matches the outcome. Zero is excluded from
// parity, so even/odd bets lose on green.
func (o Outcome) Wins(bet Bet) bool {
	switch bet {
	case BetRed:
		return o.Color == ColorRed
	case BetBlack:
		return o.Color == ColorBlack
	case BetEven:
		return o.Number != 0 && o.Number%2 == 0
	case BetOdd:
		return o.Number%2 == 1
	case BetGreen:
		return o.Number == 0
	}
	return false
}

// Credit is the amount paid back for a winning stake: even money for color
// and parity bets, 35:1 for green. Losing bets pay nothing, the stake was
// already debited.
func (o Outcome) Credit(bet Bet, stake int64) int64 {
	if !o.Wins(bet) {
		return 0
	}
	if bet == BetGreen {
		return stake * 36
	}
	return stake * 2
}
