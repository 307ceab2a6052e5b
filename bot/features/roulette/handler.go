package roulette

import (
	"context"
	"fmt"
	"time"

	"voicebank/bot/common"
	"voicebank/config"
	"voicebank/games/roulette"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Cosmetic spin frames shown before the reveal
var spinFrames = []string{
	"🔴 ⚫ 🟢 The wheel is spinning...",
	"⚫ 🟢 🔴 The wheel is spinning..",
	"🟢 🔴 ⚫ The wheel is spinning.",
}

func (f *Feature) handleRoulette(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var amount int64
	var betStr string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "bet":
			betStr = opt.StringValue()
		}
	}

	bet, ok := roulette.ParseBet(betStr)
	if !ok {
		common.RespondWithError(s, i, "Pick red, black, even, odd or green.")
		return
	}

	// Stake is taken up front; a losing spin credits nothing back
	if err := f.wagerService.Debit(ctx, userID, amount, "roulette"); err != nil {
		common.RespondWagerError(s, i, err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎡 Roulette",
		Description: spinFrames[0],
		Color:       common.ColorNeutral,
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to roulette command: %v", err)
		return
	}

	go f.resolveSpin(ctx, s, i, userID, amount, bet)
}

func (f *Feature) resolveSpin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, amount int64, bet roulette.Bet) {
	// Animation carries no state, the outcome is drawn after it finishes
	for _, frame := range spinFrames[1:] {
		time.Sleep(time.Second)
		embed := &discordgo.MessageEmbed{
			Title:       "🎡 Roulette",
			Description: frame,
			Color:       common.ColorNeutral,
		}
		if err := common.UpdateMessage(s, i, embed, nil); err != nil {
			log.Errorf("Error updating roulette animation: %v", err)
		}
	}
	time.Sleep(time.Second)

	outcome := roulette.Spin()
	credit := outcome.Credit(bet, amount)
	if credit > 0 {
		if err := f.wagerService.Credit(ctx, userID, credit, "roulette win"); err != nil {
			log.Errorf("Error crediting roulette win for user %d: %v", userID, err)
		}
	}

	currency := config.Get().CurrencyName
	newBalance := f.balanceService.EffectiveBalance(ctx, userID, time.Now())

	pocket := fmt.Sprintf("**%d %s**", outcome.Number, colorEmoji(outcome.Color))
	embed := &discordgo.MessageEmbed{
		Title: "🎡 Roulette",
		Color: common.ColorLose,
	}
	if credit > 0 {
		embed.Color = common.ColorWin
		embed.Description = fmt.Sprintf("The ball landed on %s!\nYou won **%s %s**!\nNew Balance: **%s**",
			pocket, common.FormatBalance(credit-amount), currency, common.FormatBalance(newBalance))
	} else {
		embed.Description = fmt.Sprintf("The ball landed on %s.\nYou lost **%s %s**.\nNew Balance: **%s**",
			pocket, common.FormatBalance(amount), currency, common.FormatBalance(newBalance))
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%s's spin", common.GetDisplayName(s, i.GuildID, i.Member.User.ID)),
	}

	if err := common.UpdateMessage(s, i, embed, nil); err != nil {
		log.Errorf("Error revealing roulette outcome: %v", err)
	}
}

func colorEmoji(c roulette.Color) string {
	switch c {
	case roulette.ColorRed:
		return "🔴"
	case roulette.ColorBlack:
		return "⚫"
	default:
		return "🟢"
	}
}
