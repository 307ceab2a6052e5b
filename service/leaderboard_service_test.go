package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_TopBalances(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("merges committed balances with open sessions", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewLeaderboardService(mockStats, sessions)

		mockStats.On("GetAllBalanceData", ctx).Return(map[int64]int64{
			1: 100,
			2: 500,
		}, nil)

		// User 1 has been in voice for 30 minutes on top of the committed 100
		sessions.BeginSession(1, now.Add(-30*time.Minute))
		// User 3 only exists as an open session
		sessions.BeginSession(3, now.Add(-10*time.Minute))

		entries, err := svc.TopBalances(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, int64(2), entries[0].UserID)
		assert.Equal(t, int64(500), entries[0].Value)
		assert.Equal(t, 1, entries[0].Rank)

		assert.Equal(t, int64(1), entries[1].UserID)
		assert.Equal(t, int64(130), entries[1].Value)
		assert.Equal(t, 2, entries[1].Rank)

		assert.Equal(t, int64(3), entries[2].UserID)
		assert.Equal(t, int64(10), entries[2].Value)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("limit keeps the top entries", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewLeaderboardService(mockStats, sessions)

		data := make(map[int64]int64)
		for i := int64(1); i <= 15; i++ {
			data[i] = i * 10
		}
		mockStats.On("GetAllBalanceData", ctx).Return(data, nil)

		entries, err := svc.TopBalances(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, entries, 10)
		assert.Equal(t, int64(150), entries[0].Value)
		assert.Equal(t, int64(60), entries[9].Value)
	})

	t.Run("ties rank deterministically by user id", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewLeaderboardService(mockStats, sessions)

		mockStats.On("GetAllBalanceData", ctx).Return(map[int64]int64{
			7: 100,
			3: 100,
			5: 100,
		}, nil)

		entries, err := svc.TopBalances(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, int64(3), entries[0].UserID)
		assert.Equal(t, int64(5), entries[1].UserID)
		assert.Equal(t, int64(7), entries[2].UserID)
	})

	t.Run("read failure surfaces", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewLeaderboardService(mockStats, sessions)

		mockStats.On("GetAllBalanceData", ctx).Return(nil, errors.New("connection refused"))

		_, err := svc.TopBalances(ctx, now, 10)
		assert.Error(t, err)
	})
}

func TestLeaderboardService_TopTimes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	mockStats := new(MockStatsRepository)
	sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
	svc := NewLeaderboardService(mockStats, sessions)

	mockStats.On("GetAllTimeData", ctx).Return(map[int64]int64{
		1: 7200,
		2: 60,
	}, nil)

	// Open sessions add raw seconds, not currency units
	sessions.BeginSession(2, now.Add(-2*time.Hour))

	entries, err := svc.TopTimes(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(2), entries[0].UserID)
	assert.Equal(t, int64(7260), entries[0].Value)
	assert.Equal(t, int64(1), entries[1].UserID)
	assert.Equal(t, int64(7200), entries[1].Value)
}
