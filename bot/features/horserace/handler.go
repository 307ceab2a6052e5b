package horserace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voicebank/bot/common"
	"voicebank/config"
	"voicebank/games/horserace"
	"voicebank/models"
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleSetChannel(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	if !common.IsAdmin(i) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command.")
		return
	}

	var channel *discordgo.Channel
	for _, opt := range options {
		if opt.Name == "channel" {
			channel = opt.ChannelValue(s)
		}
	}
	if channel == nil {
		common.RespondWithError(s, i, "Invalid channel.")
		return
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		common.RespondWithError(s, i, "Races can only run in a text channel.")
		return
	}

	guildID, err := common.ParseUserID(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	channelID, err := common.ParseUserID(channel.ID)
	if err != nil {
		log.Errorf("Error parsing channel ID %s: %v", channel.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := f.raceService.EnableRacing(ctx, guildID, channelID); err != nil {
		log.Errorf("Error enabling racing for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Unable to enable racing. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf("🏇 Horse races will now run in <#%s> every half hour.", channel.ID))
}

func (f *Feature) handleDisable(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if !common.IsAdmin(i) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command.")
		return
	}

	guildID, err := common.ParseUserID(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := f.raceService.DisableRacing(ctx, guildID); err != nil {
		log.Errorf("Error disabling racing for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Unable to disable racing. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, "🏇 Horse racing disabled.")
}

func (f *Feature) handleBet(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	guildID, err := common.ParseUserID(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var amount int64
	var colorName string
	for _, opt := range options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "horse":
			colorName = opt.StringValue()
		}
	}

	color, ok := models.ParseHorseColor(colorName)
	if !ok {
		common.RespondWithError(s, i, "Unknown horse color.")
		return
	}

	bet, err := f.raceService.PlaceHorseBet(ctx, userID, guildID, amount, color, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRacingDisabled), errors.Is(err, service.ErrBettingClosed):
			common.RespondWithError(s, i, err.Error())
		default:
			common.RespondWagerError(s, i, err)
		}
		return
	}

	currency := config.Get().CurrencyName
	newBalance := f.balanceService.EffectiveBalance(ctx, userID, time.Now())
	embed := &discordgo.MessageEmbed{
		Title: "🏇 Bet Placed",
		Description: fmt.Sprintf("You bet **%s %s** on the %s **%s** horse.\nNew Balance: **%s**",
			common.FormatBalance(bet.Amount), currency, horserace.Emoji(bet.HorseColor), bet.HorseColor, common.FormatBalance(newBalance)),
		Color: common.ColorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s's bet", common.GetDisplayName(s, i.GuildID, i.Member.User.ID)),
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to race bet command: %v", err)
	}
}

func (f *Feature) handleMyBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	guildID, err := common.ParseUserID(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet, err := f.raceService.GetUserBet(ctx, userID, guildID)
	if err != nil {
		log.Errorf("Error fetching bet for user %d in guild %d: %v", userID, guildID, err)
		common.RespondWithError(s, i, "Unable to look up your bet. Please try again.")
		return
	}
	if bet == nil {
		common.RespondWithError(s, i, "You have no bet on the next race.")
		return
	}

	currency := config.Get().CurrencyName
	embed := &discordgo.MessageEmbed{
		Title: "🏇 Your Bet",
		Description: fmt.Sprintf("**%s %s** on the %s **%s** horse.\nPlaced %s.",
			common.FormatBalance(bet.Amount), currency, horserace.Emoji(bet.HorseColor), bet.HorseColor,
			common.FormatDiscordTimestamp(bet.UpdatedAt, "R")),
		Color: common.ColorNeutral,
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Error responding to race mybet command: %v", err)
	}
}
