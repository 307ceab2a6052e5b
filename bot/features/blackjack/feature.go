package blackjack

import (
	"strings"
	"sync"
	"time"

	"voicebank/games/blackjack"
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
)

// gameSession is one live blackjack game bound to its Discord message
type gameSession struct {
	mu       sync.Mutex
	game     *blackjack.Game
	userID   int64
	userName string
	timer    *time.Timer
	finished bool
}

// Feature runs interactive blackjack games. Sessions live in memory keyed
// by the originating interaction ID; an unfinished game forfeits on timeout.
type Feature struct {
	wagerService   service.WagerService
	balanceService service.BalanceService

	mu       sync.Mutex
	sessions map[string]*gameSession
}

func New(wagerService service.WagerService, balanceService service.BalanceService) *Feature {
	return &Feature{
		wagerService:   wagerService,
		balanceService: balanceService,
		sessions:       make(map[string]*gameSession),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStart(s, i)
}

// HandleComponent routes hit/stand button presses to their game
func (f *Feature) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "blackjack_hit_"):
		f.handleAction(s, i, strings.TrimPrefix(customID, "blackjack_hit_"), true)
	case strings.HasPrefix(customID, "blackjack_stand_"):
		f.handleAction(s, i, strings.TrimPrefix(customID, "blackjack_stand_"), false)
	}
}

func (f *Feature) getSession(gameID string) *gameSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[gameID]
}

func (f *Feature) putSession(gameID string, sess *gameSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[gameID] = sess
}

func (f *Feature) removeSession(gameID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, gameID)
}
