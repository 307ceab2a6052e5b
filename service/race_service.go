package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voicebank/config"
	"voicebank/events"
	"voicebank/models"

	log "github.com/sirupsen/logrus"
)

type raceService struct {
	raceRepo RaceRepository
	wagers   WagerService
	eventBus EventPublisher
}

// NewRaceService creates a new race service
func NewRaceService(raceRepo RaceRepository, wagers WagerService, eventBus EventPublisher) RaceService {
	return &raceService{
		raceRepo: raceRepo,
		wagers:   wagers,
		eventBus: eventBus,
	}
}

func (s *raceService) EnableRacing(ctx context.Context, guildID, channelID int64) error {
	return s.raceRepo.SetRaceChannel(ctx, guildID, channelID)
}

func (s *raceService) DisableRacing(ctx context.Context, guildID int64) error {
	return s.raceRepo.RemoveRaceChannel(ctx, guildID)
}

func (s *raceService) RacingChannel(ctx context.Context, guildID int64) (int64, error) {
	cfg, err := s.raceRepo.GetRaceConfig(ctx, guildID)
	if err != nil {
		return 0, err
	}
	if cfg == nil {
		return 0, nil
	}
	return cfg.ChannelID, nil
}

// PlaceHorseBet places or replaces a user's standing bet. Only the
// difference against an existing bet moves the balance, so raising a bet
// from 20 to 50 debits 30 and lowering it refunds the difference.
func (s *raceService) PlaceHorseBet(ctx context.Context, userID, guildID int64, amount int64, color models.HorseColor, now time.Time) (*models.HorseBet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	cfg, err := s.raceRepo.GetRaceConfig(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to check race config: %w", err)
	}
	if cfg == nil {
		return nil, ErrRacingDisabled
	}

	if inLockout(now, config.Get().RaceStartMinutes, config.Get().RaceLockoutMinutes) {
		return nil, ErrBettingClosed
	}

	existing, err := s.raceRepo.GetUserBet(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bet: %w", err)
	}

	var held int64
	if existing != nil {
		held = existing.Amount
	}

	switch diff := amount - held; {
	case diff > 0:
		if err := s.wagers.Debit(ctx, userID, diff, "horse race bet"); err != nil {
			return nil, err
		}
	case diff < 0:
		if err := s.wagers.Credit(ctx, userID, -diff, "horse race bet reduced"); err != nil {
			return nil, err
		}
	}

	if err := s.raceRepo.PlaceBet(ctx, userID, guildID, amount, color); err != nil {
		return nil, fmt.Errorf("failed to store bet: %w", err)
	}

	return s.raceRepo.GetUserBet(ctx, userID, guildID)
}

func (s *raceService) GetUserBet(ctx context.Context, userID, guildID int64) (*models.HorseBet, error) {
	return s.raceRepo.GetUserBet(ctx, userID, guildID)
}

// RunDueRaces races every configured guild when now falls on a start
// minute. Guilds race concurrently; the call blocks until the last one has
// settled so the scheduler never overlaps two rounds in the same guild.
func (s *raceService) RunDueRaces(ctx context.Context, now time.Time, runner GuildRaceRunner) {
	if !isStartMinute(now, config.Get().RaceStartMinutes) {
		return
	}

	configs, err := s.raceRepo.GetAllRaceConfigs(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load race configs, skipping round")
		return
	}

	var wg sync.WaitGroup
	for _, cfg := range configs {
		wg.Add(1)
		go func(cfg *models.RaceConfig) {
			defer wg.Done()
			s.runGuildRace(ctx, cfg, runner)
		}(cfg)
	}
	wg.Wait()

	log.WithField("guilds", len(configs)).Info("Race round complete")
}

func (s *raceService) runGuildRace(ctx context.Context, cfg *models.RaceConfig, runner GuildRaceRunner) {
	logger := log.WithField("guildID", cfg.GuildID)

	bets, err := s.raceRepo.GetBetsForGuild(ctx, cfg.GuildID)
	if err != nil {
		logger.WithError(err).Error("Failed to load bets, skipping race")
		return
	}

	winner, err := runner.Run(ctx, cfg, bets)
	if err != nil {
		// The channel is gone or unreachable. Revoke the config so the
		// scheduler stops trying every round.
		logger.WithError(err).Warn("Race announcement failed, disabling racing for guild")
		if err := s.raceRepo.RemoveRaceChannel(ctx, cfg.GuildID); err != nil {
			logger.WithError(err).Error("Failed to disable racing")
		}
		return
	}

	payouts := BuildPayouts(bets, winner, config.Get().RacePayoutMultiplier)
	if err := s.raceRepo.SettleRace(ctx, cfg.GuildID, payouts); err != nil {
		logger.WithError(err).Error("Failed to settle race")
		return
	}

	logger.WithFields(log.Fields{
		"winner": winner,
		"bets":   len(bets),
	}).Info("Race settled")

	s.eventBus.Emit(ctx, events.RaceResolvedEvent{
		GuildID: cfg.GuildID,
		Winner:  string(winner),
		Bets:    len(bets),
	})
}

// BuildPayouts computes each bettor's credit. Stakes were debited at bet
// time, so a winner's credit is stake plus stake times the multiplier and a
// loser's credit is zero.
func BuildPayouts(bets []*models.HorseBet, winner models.HorseColor, multiplier int64) []*models.RacePayout {
	payouts := make([]*models.RacePayout, 0, len(bets))
	for _, bet := range bets {
		payout := &models.RacePayout{UserID: bet.UserID, Bet: bet}
		if bet.HorseColor == winner {
			payout.Won = true
			payout.Credit = bet.Amount + bet.Amount*multiplier
		}
		payouts = append(payouts, payout)
	}
	return payouts
}

// isStartMinute reports whether now's wall-clock minute triggers a race
func isStartMinute(now time.Time, startMinutes []int) bool {
	for _, m := range startMinutes {
		if now.Minute() == m {
			return true
		}
	}
	return false
}

// inLockout reports whether betting is closed because now is within the
// lockout window around any start minute. The distance wraps around the
// hour so minute 59 is one minute from minute 0.
func inLockout(now time.Time, startMinutes []int, lockoutMinutes int) bool {
	for _, m := range startMinutes {
		d := now.Minute() - m
		if d < 0 {
			d = -d
		}
		if 60-d < d {
			d = 60 - d
		}
		if d <= lockoutMinutes {
			return true
		}
	}
	return false
}
