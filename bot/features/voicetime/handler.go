package voicetime

import (
	"context"
	"fmt"
	"time"

	"voicebank/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleVoiceTime(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	// Optional user argument, defaults to the caller
	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	if target.Bot {
		common.RespondWithError(s, i, "Bots don't have voice time!")
		return
	}

	userID, err := common.ParseUserID(target.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	seconds := f.balanceService.EffectiveSeconds(ctx, userID, time.Now())

	displayName := common.GetDisplayName(s, i.GuildID, target.ID)
	message := fmt.Sprintf("🎙️ **%s** has spent **%s** in voice channels.",
		displayName, common.FormatDuration(seconds))
	common.RespondWithMessage(s, i, message)
}
