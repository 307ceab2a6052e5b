package service

import (
	"context"
	"time"

	"voicebank/events"
	"voicebank/models"
)

// StatsRepository defines the interface for the time-and-balance ledger
type StatsRepository interface {
	// UpsertAddStats atomically adds deltas to a user's tracked seconds and balance
	UpsertAddStats(ctx context.Context, userID int64, deltaSeconds int64, deltaBalance int64) error

	// UpsertAddBalance atomically adds a delta to a user's balance
	UpsertAddBalance(ctx context.Context, userID int64, delta int64) error

	// GetBalance returns a user's committed balance, 0 for unknown users
	GetBalance(ctx context.Context, userID int64) (int64, error)

	// GetTotalSeconds returns a user's committed voice time, 0 for unknown users
	GetTotalSeconds(ctx context.Context, userID int64) (int64, error)

	// GetByUserID returns a user's full ledger row, nil if absent
	GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error)

	// GetAllTimeData returns committed voice seconds for every known user
	GetAllTimeData(ctx context.Context) (map[int64]int64, error)

	// GetAllBalanceData returns committed balances for every known user
	GetAllBalanceData(ctx context.Context) (map[int64]int64, error)
}

// RaceRepository defines the interface for race configuration and bet storage
type RaceRepository interface {
	// SetRaceChannel enables racing for a guild in the given channel
	SetRaceChannel(ctx context.Context, guildID, channelID int64) error

	// RemoveRaceChannel disables racing for a guild
	RemoveRaceChannel(ctx context.Context, guildID int64) error

	// GetRaceConfig returns a guild's race config, nil if racing is disabled
	GetRaceConfig(ctx context.Context, guildID int64) (*models.RaceConfig, error)

	// GetAllRaceConfigs returns every guild with racing enabled
	GetAllRaceConfigs(ctx context.Context) ([]*models.RaceConfig, error)

	// PlaceBet upserts a user's standing bet for the next race
	PlaceBet(ctx context.Context, userID, guildID int64, amount int64, color models.HorseColor) error

	// GetUserBet returns a user's standing bet, nil if none
	GetUserBet(ctx context.Context, userID, guildID int64) (*models.HorseBet, error)

	// GetBetsForGuild returns all standing bets for a guild
	GetBetsForGuild(ctx context.Context, guildID int64) ([]*models.HorseBet, error)

	// ClearBetsForGuild removes all standing bets for a guild
	ClearBetsForGuild(ctx context.Context, guildID int64) error

	// SettleRace credits winners and clears the guild's bets atomically
	SettleRace(ctx context.Context, guildID int64, payouts []*models.RacePayout) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// SessionService tracks live voice sessions and settles them to the ledger
type SessionService interface {
	// BeginSession marks a user as present in voice from the given
	// instant, replacing any stale open session for that user
	BeginSession(userID int64, at time.Time)

	// EndSession closes a user's session and commits the elapsed time and
	// currency award. A user with no open session is a no-op.
	EndSession(ctx context.Context, userID int64, at time.Time) error

	// ActiveSessionSeconds returns the elapsed seconds of a user's open
	// session, 0 if none
	ActiveSessionSeconds(userID int64, now time.Time) int64

	// ActiveSessions returns a snapshot of all open sessions
	ActiveSessions() map[int64]time.Time
}

// BalanceService exposes effective balances that include open sessions
type BalanceService interface {
	// EffectiveBalance is the committed balance plus currency accrued in the
	// user's open voice session. Read failures fold to the committed part
	// they could recover, never to an error.
	EffectiveBalance(ctx context.Context, userID int64, now time.Time) int64

	// EffectiveSeconds is the committed voice time plus the open session
	EffectiveSeconds(ctx context.Context, userID int64, now time.Time) int64
}

// WagerService handles debits, credits and simple wagers against the ledger
type WagerService interface {
	// Debit charges a stake up front, validating against the effective balance
	Debit(ctx context.Context, userID int64, amount int64, reason string) error

	// Credit pays out winnings or refunds
	Credit(ctx context.Context, userID int64, amount int64, reason string) error

	// Coinflip wagers the amount on a coin toss, paying double on a win
	Coinflip(ctx context.Context, userID int64, amount int64, guessHeads bool) (*CoinflipResult, error)

	// Adjust applies an unvalidated admin balance change, positive or negative
	Adjust(ctx context.Context, userID int64, delta int64, reason string) error
}

// LeaderboardService ranks users by effective balance or voice time
type LeaderboardService interface {
	// TopBalances returns the top users by effective balance, highest first
	TopBalances(ctx context.Context, now time.Time, limit int) ([]*models.LeaderboardEntry, error)

	// TopTimes returns the top users by effective voice time, highest first
	TopTimes(ctx context.Context, now time.Time, limit int) ([]*models.LeaderboardEntry, error)
}

// GuildRaceRunner runs one guild's race end to end: announcement, animation
// and result message. It returns the winning horse, or an error when the
// race channel could not be reached.
type GuildRaceRunner interface {
	Run(ctx context.Context, cfg *models.RaceConfig, bets []*models.HorseBet) (models.HorseColor, error)
}

// RaceService manages horse race configuration, betting and scheduling
type RaceService interface {
	// EnableRacing configures a guild's race channel
	EnableRacing(ctx context.Context, guildID, channelID int64) error

	// DisableRacing removes a guild's race configuration
	DisableRacing(ctx context.Context, guildID int64) error

	// RacingChannel returns the configured channel, 0 if racing is disabled
	RacingChannel(ctx context.Context, guildID int64) (int64, error)

	// PlaceHorseBet places or replaces a user's bet for the next race,
	// charging only the difference against an existing bet
	PlaceHorseBet(ctx context.Context, userID, guildID int64, amount int64, color models.HorseColor, now time.Time) (*models.HorseBet, error)

	// GetUserBet returns a user's standing bet, nil if none
	GetUserBet(ctx context.Context, userID, guildID int64) (*models.HorseBet, error)

	// RunDueRaces runs a race in every configured guild if now falls on a
	// start minute. Races run concurrently and the call returns after all
	// guilds have settled.
	RunDueRaces(ctx context.Context, now time.Time, runner GuildRaceRunner)
}
