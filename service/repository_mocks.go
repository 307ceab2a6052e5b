package service

import (
	"context"

	"voicebank/events"
	"voicebank/models"

	"github.com/stretchr/testify/mock"
)

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) UpsertAddStats(ctx context.Context, userID int64, deltaSeconds int64, deltaBalance int64) error {
	args := m.Called(ctx, userID, deltaSeconds, deltaBalance)
	return args.Error(0)
}

func (m *MockStatsRepository) UpsertAddBalance(ctx context.Context, userID int64, delta int64) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *MockStatsRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) GetTotalSeconds(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockStatsRepository) GetAllTimeData(ctx context.Context) (map[int64]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockStatsRepository) GetAllBalanceData(ctx context.Context) (map[int64]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

// MockRaceRepository is a mock implementation of RaceRepository
type MockRaceRepository struct {
	mock.Mock
}

func (m *MockRaceRepository) SetRaceChannel(ctx context.Context, guildID, channelID int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockRaceRepository) RemoveRaceChannel(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockRaceRepository) GetRaceConfig(ctx context.Context, guildID int64) (*models.RaceConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RaceConfig), args.Error(1)
}

func (m *MockRaceRepository) GetAllRaceConfigs(ctx context.Context) ([]*models.RaceConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RaceConfig), args.Error(1)
}

func (m *MockRaceRepository) PlaceBet(ctx context.Context, userID, guildID int64, amount int64, color models.HorseColor) error {
	args := m.Called(ctx, userID, guildID, amount, color)
	return args.Error(0)
}

func (m *MockRaceRepository) GetUserBet(ctx context.Context, userID, guildID int64) (*models.HorseBet, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HorseBet), args.Error(1)
}

func (m *MockRaceRepository) GetBetsForGuild(ctx context.Context, guildID int64) ([]*models.HorseBet, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.HorseBet), args.Error(1)
}

func (m *MockRaceRepository) ClearBetsForGuild(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockRaceRepository) SettleRace(ctx context.Context, guildID int64, payouts []*models.RacePayout) error {
	args := m.Called(ctx, guildID, payouts)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
