package service

import (
	"context"
	"time"

	"voicebank/config"

	log "github.com/sirupsen/logrus"
)

type balanceService struct {
	statsRepo StatsRepository
	sessions  SessionService
}

// NewBalanceService creates a new balance service
func NewBalanceService(statsRepo StatsRepository, sessions SessionService) BalanceService {
	return &balanceService{
		statsRepo: statsRepo,
		sessions:  sessions,
	}
}

// EffectiveBalance is the committed balance plus whatever the user's open
// voice session has accrued so far. A failed read logs a warning and counts
// as zero so balance displays degrade instead of erroring.
func (s *balanceService) EffectiveBalance(ctx context.Context, userID int64, now time.Time) int64 {
	balance, err := s.statsRepo.GetBalance(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Failed to read balance, using 0")
		balance = 0
	}

	accrued := s.sessions.ActiveSessionSeconds(userID, now) / config.Get().SecondsPerCurrency
	return balance + accrued
}

func (s *balanceService) EffectiveSeconds(ctx context.Context, userID int64, now time.Time) int64 {
	seconds, err := s.statsRepo.GetTotalSeconds(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Failed to read voice time, using 0")
		seconds = 0
	}

	return seconds + s.sessions.ActiveSessionSeconds(userID, now)
}
