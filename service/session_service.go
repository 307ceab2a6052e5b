package service

import (
	"context"
	"fmt"
	"time"

	"voicebank/config"
	"voicebank/events"

	log "github.com/sirupsen/logrus"
)

type sessionService struct {
	tracker   *SessionTracker
	statsRepo StatsRepository
	eventBus  EventPublisher
}

// NewSessionService creates a new session service
func NewSessionService(tracker *SessionTracker, statsRepo StatsRepository, eventBus EventPublisher) SessionService {
	return &sessionService{
		tracker:   tracker,
		statsRepo: statsRepo,
		eventBus:  eventBus,
	}
}

func (s *sessionService) BeginSession(userID int64, at time.Time) {
	s.tracker.Begin(userID, at)
}

func (s *sessionService) EndSession(ctx context.Context, userID int64, at time.Time) error {
	start, ok := s.tracker.End(userID)
	if !ok {
		// Already settled, or the user was never seen joining
		return nil
	}

	elapsed := int64(at.Sub(start).Seconds())
	if elapsed <= 0 {
		return nil
	}

	award := elapsed / config.Get().SecondsPerCurrency

	if err := s.statsRepo.UpsertAddStats(ctx, userID, elapsed, award); err != nil {
		return fmt.Errorf("failed to settle session for user %d: %w", userID, err)
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"elapsed": elapsed,
		"award":   award,
	}).Info("Settled voice session")

	s.eventBus.Emit(ctx, events.SessionSettledEvent{
		UserID:         userID,
		ElapsedSeconds: elapsed,
		CurrencyAward:  award,
	})

	return nil
}

func (s *sessionService) ActiveSessionSeconds(userID int64, now time.Time) int64 {
	start, ok := s.tracker.Peek(userID)
	if !ok {
		return 0
	}

	elapsed := int64(now.Sub(start).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *sessionService) ActiveSessions() map[int64]time.Time {
	return s.tracker.Snapshot()
}
