package coinflip

import (
	"context"
	"fmt"
	"time"

	"voicebank/bot/common"
	"voicebank/config"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var amount int64
	guess := "heads"
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "guess":
			guess = opt.StringValue()
		}
	}

	result, err := f.wagerService.Coinflip(ctx, userID, amount, guess == "heads")
	if err != nil {
		common.RespondWagerError(s, i, err)
		return
	}

	currency := config.Get().CurrencyName
	newBalance := f.balanceService.EffectiveBalance(ctx, userID, time.Now())

	side := "Tails"
	if result.Heads {
		side = "Heads"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🪙 Coin Flip",
		Color: common.ColorLose,
	}
	if result.Won {
		embed.Color = common.ColorWin
		embed.Description = fmt.Sprintf("The coin landed on **%s**!\nYou won **%s %s**!\nNew Balance: **%s**",
			side, common.FormatBalance(amount), currency, common.FormatBalance(newBalance))
	} else {
		embed.Description = fmt.Sprintf("The coin landed on **%s**.\nYou lost **%s %s**.\nNew Balance: **%s**",
			side, common.FormatBalance(amount), currency, common.FormatBalance(newBalance))
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%s's flip", common.GetDisplayName(s, i.GuildID, i.Member.User.ID)),
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to coinflip command: %v", err)
	}
}
