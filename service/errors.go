package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned for zero or negative stakes
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrRacingDisabled is returned when a guild has no race channel configured
	ErrRacingDisabled = errors.New("racing is not enabled in this server")

	// ErrBettingClosed is returned while a race is about to start or running
	ErrBettingClosed = errors.New("betting is closed while a race is starting")
)

// InsufficientBalanceError carries the effective balance the user actually
// has so callers can show it
type InsufficientBalanceError struct {
	Balance int64
	Needed  int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Balance, e.Needed)
}
