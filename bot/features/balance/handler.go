package balance

import (
	"context"
	"fmt"
	"time"

	"voicebank/bot/common"
	"voicebank/config"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	// Optional user argument, defaults to the caller
	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	if target.Bot {
		common.RespondWithError(s, i, "Bots don't have currency!")
		return
	}

	userID, err := common.ParseUserID(target.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	balance := f.balanceService.EffectiveBalance(ctx, userID, time.Now())

	displayName := common.GetDisplayName(s, i.GuildID, target.ID)
	message := fmt.Sprintf("💰 **%s** has **%s %s**.",
		displayName, common.FormatBalance(balance), config.Get().CurrencyName)
	common.RespondWithMessage(s, i, message)
}
