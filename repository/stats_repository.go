package repository

import (
	"context"
	"fmt"

	"voicebank/database"
	"voicebank/models"

	"github.com/jackc/pgx/v5"
)

// StatsRepository persists per-user voice time and currency balances.
// Every mutation is an atomic upsert-add so concurrent writers never lose
// updates; absolute balances are never written from application code.
type StatsRepository struct {
	q queryable
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{q: db.Pool}
}

// newStatsRepositoryWithTx creates a stats repository bound to a transaction
func newStatsRepositoryWithTx(tx queryable) *StatsRepository {
	return &StatsRepository{q: tx}
}

// UpsertAddStats adds elapsed seconds and earned currency to a user's row,
// creating the row if it does not exist
func (r *StatsRepository) UpsertAddStats(ctx context.Context, userID int64, deltaSeconds int64, deltaBalance int64) error {
	query := `
		INSERT INTO user_stats (user_id, total_seconds, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			total_seconds = user_stats.total_seconds + $2,
			balance = user_stats.balance + $3,
			updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, userID, deltaSeconds, deltaBalance); err != nil {
		return fmt.Errorf("failed to upsert stats for user %d: %w", userID, err)
	}

	return nil
}

// UpsertAddBalance applies a signed balance delta to a user's row, creating
// the row if it does not exist
func (r *StatsRepository) UpsertAddBalance(ctx context.Context, userID int64, delta int64) error {
	query := `
		INSERT INTO user_stats (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = user_stats.balance + $2,
			updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("failed to upsert balance for user %d: %w", userID, err)
	}

	return nil
}

// GetBalance returns a user's persisted balance, defaulting to 0 for
// unknown users
func (r *StatsRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := r.q.QueryRow(ctx, `SELECT balance FROM user_stats WHERE user_id = $1`, userID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for user %d: %w", userID, err)
	}
	return balance, nil
}

// GetTotalSeconds returns a user's persisted voice time in seconds,
// defaulting to 0 for unknown users
func (r *StatsRepository) GetTotalSeconds(ctx context.Context, userID int64) (int64, error) {
	var seconds int64
	err := r.q.QueryRow(ctx, `SELECT total_seconds FROM user_stats WHERE user_id = $1`, userID).Scan(&seconds)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get total seconds for user %d: %w", userID, err)
	}
	return seconds, nil
}

// GetByUserID returns the full stats row for a user, or nil if absent
func (r *StatsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	query := `
		SELECT user_id, total_seconds, balance, created_at, updated_at
		FROM user_stats
		WHERE user_id = $1
	`

	var stats models.UserStats
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.TotalSeconds,
		&stats.Balance,
		&stats.CreatedAt,
		&stats.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return &stats, nil
}

// GetAllTimeData returns every user's persisted total seconds
func (r *StatsRepository) GetAllTimeData(ctx context.Context) (map[int64]int64, error) {
	return r.allOf(ctx, `SELECT user_id, total_seconds FROM user_stats`)
}

// GetAllBalanceData returns every user's persisted balance
func (r *StatsRepository) GetAllBalanceData(ctx context.Context) (map[int64]int64, error) {
	return r.allOf(ctx, `SELECT user_id, balance FROM user_stats`)
}

func (r *StatsRepository) allOf(ctx context.Context, query string) (map[int64]int64, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}
	defer rows.Close()

	data := make(map[int64]int64)
	for rows.Next() {
		var userID, value int64
		if err := rows.Scan(&userID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan user stats row: %w", err)
		}
		data[userID] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user stats: %w", err)
	}

	return data, nil
}
