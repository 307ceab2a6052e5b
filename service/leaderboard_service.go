package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"voicebank/config"
	"voicebank/models"
)

type leaderboardService struct {
	statsRepo StatsRepository
	sessions  SessionService
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(statsRepo StatsRepository, sessions SessionService) LeaderboardService {
	return &leaderboardService{
		statsRepo: statsRepo,
		sessions:  sessions,
	}
}

func (s *leaderboardService) TopBalances(ctx context.Context, now time.Time, limit int) ([]*models.LeaderboardEntry, error) {
	committed, err := s.statsRepo.GetAllBalanceData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance data: %w", err)
	}

	perCurrency := config.Get().SecondsPerCurrency
	merged := make(map[int64]int64, len(committed))
	for userID, balance := range committed {
		merged[userID] = balance
	}
	for userID, start := range s.sessions.ActiveSessions() {
		elapsed := int64(now.Sub(start).Seconds())
		if elapsed > 0 {
			merged[userID] += elapsed / perCurrency
		}
	}

	return rank(merged, limit), nil
}

func (s *leaderboardService) TopTimes(ctx context.Context, now time.Time, limit int) ([]*models.LeaderboardEntry, error) {
	committed, err := s.statsRepo.GetAllTimeData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voice time data: %w", err)
	}

	merged := make(map[int64]int64, len(committed))
	for userID, seconds := range committed {
		merged[userID] = seconds
	}
	for userID, start := range s.sessions.ActiveSessions() {
		elapsed := int64(now.Sub(start).Seconds())
		if elapsed > 0 {
			merged[userID] += elapsed
		}
	}

	return rank(merged, limit), nil
}

// rank sorts the merged values descending and keeps the top entries.
// Ties break on user ID so repeated calls rank identically.
func rank(values map[int64]int64, limit int) []*models.LeaderboardEntry {
	entries := make([]*models.LeaderboardEntry, 0, len(values))
	for userID, value := range values {
		entries = append(entries, &models.LeaderboardEntry{UserID: userID, Value: value})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	return entries
}
