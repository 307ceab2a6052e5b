package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"voicebank/bot/features/admin"
	"voicebank/bot/features/balance"
	"voicebank/bot/features/blackjack"
	"voicebank/bot/features/coinflip"
	"voicebank/bot/features/horserace"
	"voicebank/bot/features/leaderboard"
	"voicebank/bot/features/roulette"
	"voicebank/bot/features/voicetime"
	"voicebank/events"
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token string
}

type Bot struct {
	config         Config
	session        *discordgo.Session
	sessionService service.SessionService
	eventBus       *events.Bus

	balanceFeature     *balance.Feature
	voicetimeFeature   *voicetime.Feature
	leaderboardFeature *leaderboard.Feature
	adminFeature       *admin.Feature
	coinflipFeature    *coinflip.Feature
	rouletteFeature    *roulette.Feature
	blackjackFeature   *blackjack.Feature
	horseraceFeature   *horserace.Feature

	raceScheduler *horserace.Scheduler
}

func New(config Config, sessionService service.SessionService, balanceService service.BalanceService, wagerService service.WagerService, leaderboardService service.LeaderboardService, raceService service.RaceService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates | discordgo.IntentsGuildMembers

	bot := &Bot{
		config:             config,
		session:            dg,
		sessionService:     sessionService,
		eventBus:           eventBus,
		balanceFeature:     balance.New(balanceService),
		voicetimeFeature:   voicetime.New(balanceService),
		leaderboardFeature: leaderboard.New(leaderboardService),
		adminFeature:       admin.New(wagerService),
		coinflipFeature:    coinflip.New(wagerService, balanceService),
		rouletteFeature:    roulette.New(wagerService, balanceService),
		blackjackFeature:   blackjack.New(wagerService, balanceService),
		horseraceFeature:   horserace.New(raceService, balanceService),
	}
	bot.raceScheduler = horserace.NewScheduler(raceService, horserace.NewRunner(dg))

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleComponentInteractions)

	// Voice presence tracking
	dg.AddHandler(bot.handleVoiceStateUpdate)
	dg.AddHandler(bot.handleGuildCreate)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	eventBus.Subscribe(events.EventTypeSessionSettled, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.SessionSettledEvent); ok {
			log.WithFields(log.Fields{
				"userID":  e.UserID,
				"seconds": e.ElapsedSeconds,
				"award":   e.CurrencyAward,
			}).Debug("Voice session settled")
		}
	})
	eventBus.Subscribe(events.EventTypeRaceResolved, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.RaceResolvedEvent); ok {
			log.WithFields(log.Fields{
				"guildID": e.GuildID,
				"winner":  e.Winner,
				"bets":    e.Bets,
			}).Info("Horse race resolved")
		}
	})

	return bot, nil
}

// StartRaceScheduler begins the periodic race loop; it stops when ctx is
// cancelled.
func (b *Bot) StartRaceScheduler(ctx context.Context) {
	b.raceScheduler.Start(ctx)
}

// Close settles all open voice sessions and shuts the gateway connection.
// Settling on shutdown keeps accrued time from being lost across restarts.
func (b *Bot) Close() error {
	b.settleOpenSessions(context.Background())
	return b.session.Close()
}
