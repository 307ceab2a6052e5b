package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"voicebank/events"
)

// CoinflipResult describes the outcome of a coinflip wager
type CoinflipResult struct {
	Heads  bool  // side the coin landed on
	Won    bool
	Payout int64 // amount credited back, 0 on a loss
}

type wagerService struct {
	statsRepo StatsRepository
	balances  BalanceService
	eventBus  EventPublisher
}

// NewWagerService creates a new wager service
func NewWagerService(statsRepo StatsRepository, balances BalanceService, eventBus EventPublisher) WagerService {
	return &wagerService{
		statsRepo: statsRepo,
		balances:  balances,
		eventBus:  eventBus,
	}
}

// Debit charges a stake before the game resolves. The stake is validated
// against the effective balance, including any open voice session, so users
// can wager currency they are still accruing.
func (s *wagerService) Debit(ctx context.Context, userID int64, amount int64, reason string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	balance := s.balances.EffectiveBalance(ctx, userID, time.Now())
	if balance < amount {
		return &InsufficientBalanceError{Balance: balance, Needed: amount}
	}

	if err := s.statsRepo.UpsertAddBalance(ctx, userID, -amount); err != nil {
		return fmt.Errorf("failed to debit %d from user %d: %w", amount, userID, err)
	}

	s.eventBus.Emit(ctx, events.BalanceChangeEvent{UserID: userID, Delta: -amount, Reason: reason})
	return nil
}

func (s *wagerService) Credit(ctx context.Context, userID int64, amount int64, reason string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if err := s.statsRepo.UpsertAddBalance(ctx, userID, amount); err != nil {
		return fmt.Errorf("failed to credit %d to user %d: %w", amount, userID, err)
	}

	s.eventBus.Emit(ctx, events.BalanceChangeEvent{UserID: userID, Delta: amount, Reason: reason})
	return nil
}

// Adjust moves a balance without validating against the effective balance.
// Admin commands use it, so it may drive a balance negative.
func (s *wagerService) Adjust(ctx context.Context, userID int64, delta int64, reason string) error {
	if delta == 0 {
		return nil
	}

	if err := s.statsRepo.UpsertAddBalance(ctx, userID, delta); err != nil {
		return fmt.Errorf("failed to adjust balance of user %d by %d: %w", userID, delta, err)
	}

	s.eventBus.Emit(ctx, events.BalanceChangeEvent{UserID: userID, Delta: delta, Reason: reason})
	return nil
}

func (s *wagerService) Coinflip(ctx context.Context, userID int64, amount int64, guessHeads bool) (*CoinflipResult, error) {
	if err := s.Debit(ctx, userID, amount, "coinflip"); err != nil {
		return nil, err
	}

	heads := rand.Intn(2) == 0
	result := &CoinflipResult{Heads: heads, Won: heads == guessHeads}

	if result.Won {
		result.Payout = amount * 2
		if err := s.Credit(ctx, userID, result.Payout, "coinflip win"); err != nil {
			return nil, err
		}
	}

	return result, nil
}
