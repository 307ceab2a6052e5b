package blackjack

import (
	"context"
	"time"

	"voicebank/bot/common"
	"voicebank/config"
	"voicebank/games/blackjack"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var amount int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			amount = opt.IntValue()
		}
	}

	// Stake comes out before any card is dealt
	if err := f.wagerService.Debit(ctx, userID, amount, "blackjack"); err != nil {
		common.RespondWagerError(s, i, err)
		return
	}

	game, err := blackjack.NewGame(amount)
	if err != nil {
		log.Errorf("Error dealing blackjack game: %v", err)
		// Refund the stake, the game never started
		if creditErr := f.wagerService.Credit(ctx, userID, amount, "blackjack refund"); creditErr != nil {
			log.Errorf("Error refunding blackjack stake for user %d: %v", userID, creditErr)
		}
		common.RespondWithError(s, i, "Unable to start the game. Your bet was returned.")
		return
	}

	gameID := i.ID
	sess := &gameSession{
		game:     game,
		userID:   userID,
		userName: common.GetDisplayName(s, i.GuildID, i.Member.User.ID),
	}
	f.putSession(gameID, sess)

	if game.Settled() {
		// Natural 21 wins without the dealer playing
		f.settle(ctx, s, i, gameID, sess, "Blackjack! You win!")
		return
	}

	timeout := time.Duration(config.Get().BlackjackTimeoutSeconds) * time.Second
	sess.timer = time.AfterFunc(timeout, func() {
		f.handleTimeout(s, i, gameID)
	})

	embed := gameEmbed(sess, "Hit or Stand?", false, common.ColorNeutral)
	if err := common.RespondWithEmbed(s, i, embed, gameButtons(gameID, false), false); err != nil {
		log.Errorf("Error responding to blackjack command: %v", err)
	}
}

func (f *Feature) handleAction(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string, hit bool) {
	ctx := context.Background()

	sess := f.getSession(gameID)
	if sess == nil {
		common.RespondWithError(s, i, "This game is already over.")
		return
	}

	userID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil || userID != sess.userID {
		common.RespondWithError(s, i, "This is not your game!")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.finished {
		common.RespondWithError(s, i, "This game is already over.")
		return
	}

	if hit {
		err = sess.game.Hit()
	} else {
		err = sess.game.Stand()
	}
	if err != nil {
		log.Errorf("Error advancing blackjack game %s: %v", gameID, err)
		common.RespondWithError(s, i, "Unable to process that action. Please try again.")
		return
	}

	if !sess.game.Settled() {
		embed := gameEmbed(sess, "Hit or Stand?", false, common.ColorNeutral)
		if err := common.UpdateComponentMessage(s, i, embed, gameButtons(gameID, false)); err != nil {
			log.Errorf("Error updating blackjack game %s: %v", gameID, err)
		}
		return
	}

	f.finishLocked(ctx, s, i, gameID, sess, resultMessage(sess.game), true)
}

// handleTimeout forfeits a game the player walked away from
func (f *Feature) handleTimeout(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) {
	sess := f.getSession(gameID)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.finished {
		return
	}

	sess.game.Forfeit()
	f.finishLocked(context.Background(), s, i, gameID, sess, "Game timed out! You forfeit your bet.", false)
}

// settle ends a game that finished on the deal, before any buttons existed
func (f *Feature) settle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID string, sess *gameSession, message string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.finished = true
	f.removeSession(gameID)
	credit := f.payOut(ctx, sess)

	embed := resultEmbed(ctx, f, sess, message, credit)
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to settled blackjack game: %v", err)
	}
}

// finishLocked completes a settled game. Callers hold sess.mu; fromButton
// selects between editing via the component interaction and editing the
// original response.
func (f *Feature) finishLocked(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID string, sess *gameSession, message string, fromButton bool) {
	sess.finished = true
	if sess.timer != nil {
		sess.timer.Stop()
	}
	f.removeSession(gameID)
	credit := f.payOut(ctx, sess)

	embed := resultEmbed(ctx, f, sess, message, credit)
	var err error
	if fromButton {
		err = common.UpdateComponentMessage(s, i, embed, gameButtons(gameID, true))
	} else {
		err = common.UpdateMessage(s, i, embed, gameButtons(gameID, true))
	}
	if err != nil {
		log.Errorf("Error finishing blackjack game %s: %v", gameID, err)
	}
}

// payOut credits whatever the settled game owes and returns the amount
func (f *Feature) payOut(ctx context.Context, sess *gameSession) int64 {
	credit := sess.game.Credit()
	if credit > 0 {
		if err := f.wagerService.Credit(ctx, sess.userID, credit, "blackjack payout"); err != nil {
			log.Errorf("Error crediting blackjack payout for user %d: %v", sess.userID, err)
		}
	}
	return credit
}
