package admin

import (
	"context"
	"fmt"

	"voicebank/bot/common"
	"voicebank/config"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleAdjust(s *discordgo.Session, i *discordgo.InteractionCreate, take bool) {
	ctx := context.Background()

	if !common.IsAdmin(i) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command.")
		return
	}

	var amount int64
	var target *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}
	if target.Bot {
		common.RespondWithError(s, i, "Bots cannot hold currency.")
		return
	}
	if amount <= 0 {
		common.RespondWithError(s, i, "Amount must be positive.")
		return
	}

	userID, err := common.ParseUserID(target.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	delta := amount
	reason := "admin give"
	if take {
		delta = -amount
		reason = "admin take"
	}

	if err := f.wagerService.Adjust(ctx, userID, delta, reason); err != nil {
		log.Errorf("Error adjusting balance of user %d by %d: %v", userID, delta, err)
		common.RespondWithError(s, i, "Unable to adjust balance. Please try again.")
		return
	}

	currency := config.Get().CurrencyName
	displayName := common.GetDisplayName(s, i.GuildID, target.ID)
	var message string
	if take {
		message = fmt.Sprintf("💸 Took **%s %s** from **%s**.", common.FormatBalance(amount), currency, displayName)
	} else {
		message = fmt.Sprintf("💰 Gave **%s %s** to **%s**.", common.FormatBalance(amount), currency, displayName)
	}
	common.RespondWithMessage(s, i, message)
}
