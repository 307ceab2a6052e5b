package repository

import (
	"context"

	"voicebank/models"
)

// Disabled repositories back the bot when no database is configured. Reads
// return zero-value defaults and writes succeed as no-ops, so the bot keeps
// responding to commands without persisting anything.

// DisabledStatsRepository is a no-op stats store
type DisabledStatsRepository struct{}

func NewDisabledStatsRepository() *DisabledStatsRepository {
	return &DisabledStatsRepository{}
}

func (r *DisabledStatsRepository) UpsertAddStats(ctx context.Context, userID int64, deltaSeconds int64, deltaBalance int64) error {
	return nil
}

func (r *DisabledStatsRepository) UpsertAddBalance(ctx context.Context, userID int64, delta int64) error {
	return nil
}

func (r *DisabledStatsRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	return 0, nil
}

func (r *DisabledStatsRepository) GetTotalSeconds(ctx context.Context, userID int64) (int64, error) {
	return 0, nil
}

func (r *DisabledStatsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	return nil, nil
}

func (r *DisabledStatsRepository) GetAllTimeData(ctx context.Context) (map[int64]int64, error) {
	return map[int64]int64{}, nil
}

func (r *DisabledStatsRepository) GetAllBalanceData(ctx context.Context) (map[int64]int64, error) {
	return map[int64]int64{}, nil
}

// DisabledRaceRepository is a no-op race store
type DisabledRaceRepository struct{}

func NewDisabledRaceRepository() *DisabledRaceRepository {
	return &DisabledRaceRepository{}
}

func (r *DisabledRaceRepository) SetRaceChannel(ctx context.Context, guildID, channelID int64) error {
	return nil
}

func (r *DisabledRaceRepository) RemoveRaceChannel(ctx context.Context, guildID int64) error {
	return nil
}

func (r *DisabledRaceRepository) GetRaceConfig(ctx context.Context, guildID int64) (*models.RaceConfig, error) {
	return nil, nil
}

func (r *DisabledRaceRepository) GetAllRaceConfigs(ctx context.Context) ([]*models.RaceConfig, error) {
	return nil, nil
}

func (r *DisabledRaceRepository) PlaceBet(ctx context.Context, userID, guildID int64, amount int64, color models.HorseColor) error {
	return nil
}

func (r *DisabledRaceRepository) GetUserBet(ctx context.Context, userID, guildID int64) (*models.HorseBet, error) {
	return nil, nil
}

func (r *DisabledRaceRepository) GetBetsForGuild(ctx context.Context, guildID int64) ([]*models.HorseBet, error) {
	return nil, nil
}

func (r *DisabledRaceRepository) ClearBetsForGuild(ctx context.Context, guildID int64) error {
	return nil
}

func (r *DisabledRaceRepository) SettleRace(ctx context.Context, guildID int64, payouts []*models.RacePayout) error {
	return nil
}
