package repository

import (
	"context"
	"testing"

	"voicebank/models"
	"voicebank/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaceRepository_RaceConfig(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRaceRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing config is nil", func(t *testing.T) {
		cfg, err := repo.GetRaceConfig(ctx, 100)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("set and get", func(t *testing.T) {
		err := repo.SetRaceChannel(ctx, 100, 555)
		require.NoError(t, err)

		cfg, err := repo.GetRaceConfig(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, int64(100), cfg.GuildID)
		assert.Equal(t, int64(555), cfg.ChannelID)
		assert.False(t, cfg.CreatedAt.IsZero())
	})

	t.Run("set again replaces channel", func(t *testing.T) {
		err := repo.SetRaceChannel(ctx, 100, 777)
		require.NoError(t, err)

		cfg, err := repo.GetRaceConfig(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, int64(777), cfg.ChannelID)
	})

	t.Run("get all returns every configured guild", func(t *testing.T) {
		err := repo.SetRaceChannel(ctx, 200, 888)
		require.NoError(t, err)

		configs, err := repo.GetAllRaceConfigs(ctx)
		require.NoError(t, err)
		assert.Len(t, configs, 2)
	})

	t.Run("remove disables the guild", func(t *testing.T) {
		err := repo.RemoveRaceChannel(ctx, 100)
		require.NoError(t, err)

		cfg, err := repo.GetRaceConfig(ctx, 100)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		err := repo.RemoveRaceChannel(ctx, 100)
		require.NoError(t, err)
	})
}

func TestRaceRepository_Bets(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRaceRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing bet is nil", func(t *testing.T) {
		bet, err := repo.GetUserBet(ctx, 1, 100)
		require.NoError(t, err)
		assert.Nil(t, bet)
	})

	t.Run("place and get", func(t *testing.T) {
		err := repo.PlaceBet(ctx, 1, 100, 50, models.HorseRed)
		require.NoError(t, err)

		bet, err := repo.GetUserBet(ctx, 1, 100)
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, int64(50), bet.Amount)
		assert.Equal(t, models.HorseRed, bet.HorseColor)
	})

	t.Run("place again replaces amount and horse", func(t *testing.T) {
		err := repo.PlaceBet(ctx, 1, 100, 80, models.HorseBlue)
		require.NoError(t, err)

		bet, err := repo.GetUserBet(ctx, 1, 100)
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, int64(80), bet.Amount)
		assert.Equal(t, models.HorseBlue, bet.HorseColor)
	})

	t.Run("bets are scoped per guild", func(t *testing.T) {
		err := repo.PlaceBet(ctx, 1, 200, 10, models.HorseGreen)
		require.NoError(t, err)

		bets, err := repo.GetBetsForGuild(ctx, 100)
		require.NoError(t, err)
		require.Len(t, bets, 1)
		assert.Equal(t, int64(80), bets[0].Amount)

		bet, err := repo.GetUserBet(ctx, 1, 200)
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, models.HorseGreen, bet.HorseColor)
	})

	t.Run("clear removes only the guild's bets", func(t *testing.T) {
		err := repo.ClearBetsForGuild(ctx, 100)
		require.NoError(t, err)

		bets, err := repo.GetBetsForGuild(ctx, 100)
		require.NoError(t, err)
		assert.Empty(t, bets)

		other, err := repo.GetBetsForGuild(ctx, 200)
		require.NoError(t, err)
		assert.Len(t, other, 1)
	})
}

func TestRaceRepository_SettleRace(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	raceRepo := NewRaceRepository(testDB.DB)
	statsRepo := NewStatsRepository(testDB.DB)
	ctx := context.Background()

	// Two bettors in the guild, one winner. Stakes were debited when the
	// bets were placed, so only the winner's credit moves a balance here.
	require.NoError(t, statsRepo.UpsertAddBalance(ctx, 10, 100))
	require.NoError(t, statsRepo.UpsertAddBalance(ctx, 11, 100))
	require.NoError(t, raceRepo.PlaceBet(ctx, 10, 300, 20, models.HorseRed))
	require.NoError(t, raceRepo.PlaceBet(ctx, 11, 300, 30, models.HorseBlue))

	winner, err := raceRepo.GetUserBet(ctx, 10, 300)
	require.NoError(t, err)
	loser, err := raceRepo.GetUserBet(ctx, 11, 300)
	require.NoError(t, err)

	payouts := []*models.RacePayout{
		{UserID: 10, Bet: winner, Won: true, Credit: 100},
		{UserID: 11, Bet: loser, Won: false, Credit: 0},
	}

	require.NoError(t, raceRepo.SettleRace(ctx, 300, payouts))

	t.Run("winner credited", func(t *testing.T) {
		balance, err := statsRepo.GetBalance(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(200), balance)
	})

	t.Run("loser untouched", func(t *testing.T) {
		balance, err := statsRepo.GetBalance(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("bets cleared", func(t *testing.T) {
		bets, err := raceRepo.GetBetsForGuild(ctx, 300)
		require.NoError(t, err)
		assert.Empty(t, bets)
	})
}
