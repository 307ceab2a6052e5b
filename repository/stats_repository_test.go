package repository

import (
	"context"
	"testing"

	"voicebank/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_UpsertAddStats(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStatsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("insert creates row with deltas", func(t *testing.T) {
		err := repo.UpsertAddStats(ctx, 1001, 120, 2)
		require.NoError(t, err)

		stats, err := repo.GetByUserID(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(120), stats.TotalSeconds)
		assert.Equal(t, int64(2), stats.Balance)
		assert.False(t, stats.CreatedAt.IsZero())
	})

	t.Run("update accumulates deltas", func(t *testing.T) {
		err := repo.UpsertAddStats(ctx, 1001, 60, 1)
		require.NoError(t, err)

		stats, err := repo.GetByUserID(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(180), stats.TotalSeconds)
		assert.Equal(t, int64(3), stats.Balance)
	})

	t.Run("negative delta can drive balance below zero", func(t *testing.T) {
		err := repo.UpsertAddStats(ctx, 1002, 0, -5)
		require.NoError(t, err)

		balance, err := repo.GetBalance(ctx, 1002)
		require.NoError(t, err)
		assert.Equal(t, int64(-5), balance)
	})
}

func TestStatsRepository_UpsertAddBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStatsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("credit then debit", func(t *testing.T) {
		require.NoError(t, repo.UpsertAddBalance(ctx, 2001, 100))
		require.NoError(t, repo.UpsertAddBalance(ctx, 2001, -40))

		balance, err := repo.GetBalance(ctx, 2001)
		require.NoError(t, err)
		assert.Equal(t, int64(60), balance)
	})

	t.Run("balance change leaves seconds untouched", func(t *testing.T) {
		require.NoError(t, repo.UpsertAddStats(ctx, 2002, 300, 5))
		require.NoError(t, repo.UpsertAddBalance(ctx, 2002, 10))

		seconds, err := repo.GetTotalSeconds(ctx, 2002)
		require.NoError(t, err)
		assert.Equal(t, int64(300), seconds)

		balance, err := repo.GetBalance(ctx, 2002)
		require.NoError(t, err)
		assert.Equal(t, int64(15), balance)
	})
}

func TestStatsRepository_Reads(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStatsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown user reads as zero", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, 9999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		seconds, err := repo.GetTotalSeconds(ctx, 9999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), seconds)

		stats, err := repo.GetByUserID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("all-data maps cover every user", func(t *testing.T) {
		require.NoError(t, repo.UpsertAddStats(ctx, 3001, 600, 10))
		require.NoError(t, repo.UpsertAddStats(ctx, 3002, 60, 1))
		require.NoError(t, repo.UpsertAddStats(ctx, 3003, 0, 50))

		timeData, err := repo.GetAllTimeData(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(600), timeData[3001])
		assert.Equal(t, int64(60), timeData[3002])
		assert.Equal(t, int64(0), timeData[3003])

		balanceData, err := repo.GetAllBalanceData(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(10), balanceData[3001])
		assert.Equal(t, int64(1), balanceData[3002])
		assert.Equal(t, int64(50), balanceData[3003])
	})
}
