package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBalanceService_EffectiveBalance(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("committed plus open session", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewBalanceService(mockStats, sessions)

		mockStats.On("GetBalance", ctx, int64(42)).Return(int64(100), nil)
		sessions.BeginSession(42, start)

		// 5 minutes in voice accrues 5 on top of the committed 100
		assert.Equal(t, int64(105), svc.EffectiveBalance(ctx, 42, start.Add(5*time.Minute)))
	})

	t.Run("partial minute does not count", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewBalanceService(mockStats, sessions)

		mockStats.On("GetBalance", ctx, int64(42)).Return(int64(100), nil)
		sessions.BeginSession(42, start)

		assert.Equal(t, int64(100), svc.EffectiveBalance(ctx, 42, start.Add(59*time.Second)))
	})

	t.Run("no open session", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewBalanceService(mockStats, sessions)

		mockStats.On("GetBalance", ctx, int64(42)).Return(int64(100), nil)

		assert.Equal(t, int64(100), svc.EffectiveBalance(ctx, 42, start))
	})

	t.Run("read failure degrades to session accrual only", func(t *testing.T) {
		mockStats := new(MockStatsRepository)
		sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
		svc := NewBalanceService(mockStats, sessions)

		mockStats.On("GetBalance", ctx, int64(42)).Return(int64(0), errors.New("connection refused"))
		sessions.BeginSession(42, start)

		assert.Equal(t, int64(3), svc.EffectiveBalance(ctx, 42, start.Add(3*time.Minute)))
	})
}

func TestBalanceService_EffectiveSeconds(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	mockStats := new(MockStatsRepository)
	sessions := NewSessionService(NewSessionTracker(), mockStats, new(MockEventPublisher))
	svc := NewBalanceService(mockStats, sessions)

	mockStats.On("GetTotalSeconds", ctx, int64(42)).Return(int64(3600), nil)
	sessions.BeginSession(42, start)

	assert.Equal(t, int64(3600+90), svc.EffectiveSeconds(ctx, 42, start.Add(90*time.Second)))
}
