package repository

import (
	"context"
	"fmt"

	"voicebank/database"
	"voicebank/models"

	"github.com/jackc/pgx/v5"
)

// RaceRepository persists per-guild race configuration and standing horse bets
type RaceRepository struct {
	db *database.DB
	q  queryable
}

// NewRaceRepository creates a new race repository
func NewRaceRepository(db *database.DB) *RaceRepository {
	return &RaceRepository{db: db, q: db.Pool}
}

// SetRaceChannel enables racing for a guild, recording the announcement channel
func (r *RaceRepository) SetRaceChannel(ctx context.Context, guildID, channelID int64) error {
	query := `
		INSERT INTO race_configs (guild_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET channel_id = $2
	`

	if _, err := r.q.Exec(ctx, query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to set race channel for guild %d: %w", guildID, err)
	}

	return nil
}

// RemoveRaceChannel disables racing for a guild
func (r *RaceRepository) RemoveRaceChannel(ctx context.Context, guildID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM race_configs WHERE guild_id = $1`, guildID); err != nil {
		return fmt.Errorf("failed to remove race channel for guild %d: %w", guildID, err)
	}
	return nil
}

// GetRaceConfig returns a guild's race configuration, or nil if racing is
// not enabled there
func (r *RaceRepository) GetRaceConfig(ctx context.Context, guildID int64) (*models.RaceConfig, error) {
	query := `SELECT guild_id, channel_id, created_at FROM race_configs WHERE guild_id = $1`

	var cfg models.RaceConfig
	err := r.q.QueryRow(ctx, query, guildID).Scan(&cfg.GuildID, &cfg.ChannelID, &cfg.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get race config for guild %d: %w", guildID, err)
	}

	return &cfg, nil
}

// GetAllRaceConfigs returns every guild with racing enabled
func (r *RaceRepository) GetAllRaceConfigs(ctx context.Context) ([]*models.RaceConfig, error) {
	rows, err := r.q.Query(ctx, `SELECT guild_id, channel_id, created_at FROM race_configs`)
	if err != nil {
		return nil, fmt.Errorf("failed to query race configs: %w", err)
	}
	defer rows.Close()

	var configs []*models.RaceConfig
	for rows.Next() {
		var cfg models.RaceConfig
		if err := rows.Scan(&cfg.GuildID, &cfg.ChannelID, &cfg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan race config: %w", err)
		}
		configs = append(configs, &cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate race configs: %w", err)
	}

	return configs, nil
}

// PlaceBet upserts a user's standing bet for the next race in a guild
func (r *RaceRepository) PlaceBet(ctx context.Context, userID, guildID int64, amount int64, color models.HorseColor) error {
	query := `
		INSERT INTO horse_bets (user_id, guild_id, amount, horse_color)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, guild_id) DO UPDATE SET
			amount = $3,
			horse_color = $4,
			updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, userID, guildID, amount, string(color)); err != nil {
		return fmt.Errorf("failed to place bet for user %d in guild %d: %w", userID, guildID, err)
	}

	return nil
}

// GetUserBet returns a user's standing bet in a guild, or nil if none
func (r *RaceRepository) GetUserBet(ctx context.Context, userID, guildID int64) (*models.HorseBet, error) {
	query := `
		SELECT user_id, guild_id, amount, horse_color, created_at, updated_at
		FROM horse_bets
		WHERE user_id = $1 AND guild_id = $2
	`

	var bet models.HorseBet
	err := r.q.QueryRow(ctx, query, userID, guildID).Scan(
		&bet.UserID, &bet.GuildID, &bet.Amount, &bet.HorseColor, &bet.CreatedAt, &bet.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet for user %d in guild %d: %w", userID, guildID, err)
	}

	return &bet, nil
}

// GetBetsForGuild returns all standing bets for a guild's next race
func (r *RaceRepository) GetBetsForGuild(ctx context.Context, guildID int64) ([]*models.HorseBet, error) {
	query := `
		SELECT user_id, guild_id, amount, horse_color, created_at, updated_at
		FROM horse_bets
		WHERE guild_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var bets []*models.HorseBet
	for rows.Next() {
		var bet models.HorseBet
		if err := rows.Scan(&bet.UserID, &bet.GuildID, &bet.Amount, &bet.HorseColor, &bet.CreatedAt, &bet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, &bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}

// ClearBetsForGuild removes all standing bets for a guild
func (r *RaceRepository) ClearBetsForGuild(ctx context.Context, guildID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM horse_bets WHERE guild_id = $1`, guildID); err != nil {
		return fmt.Errorf("failed to clear bets for guild %d: %w", guildID, err)
	}
	return nil
}

// SettleRace credits the winning bettors and clears the guild's bets in a
// single transaction. Stakes were already debited at bet placement, so losers
// need no balance change.
func (r *RaceRepository) SettleRace(ctx context.Context, guildID int64, payouts []*models.RacePayout) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		statsRepo := newStatsRepositoryWithTx(tx)

		for _, payout := range payouts {
			if payout.Credit <= 0 {
				continue
			}
			if err := statsRepo.UpsertAddBalance(ctx, payout.UserID, payout.Credit); err != nil {
				return fmt.Errorf("failed to credit race payout for user %d: %w", payout.UserID, err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM horse_bets WHERE guild_id = $1`, guildID); err != nil {
			return fmt.Errorf("failed to clear bets for guild %d: %w", guildID, err)
		}

		return nil
	})
}
