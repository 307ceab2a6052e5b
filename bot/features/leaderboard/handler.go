package leaderboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voicebank/bot/common"
	"voicebank/config"
	"voicebank/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const topN = 10

var medals = []string{"🥇", "🥈", "🥉"}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	now := time.Now()

	// The display name lookups below can take a while on a full board,
	// so answer with a deferred response and edit it once built.
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring leaderboard response: %v", err)
		return
	}

	board := "currency"
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "board" {
			board = opt.StringValue()
		}
	}

	var entries []*models.LeaderboardEntry
	var err error
	var title string
	currency := config.Get().CurrencyName

	if board == "time" {
		title = "🎙️ Voice Time Leaderboard"
		entries, err = f.leaderboardService.TopTimes(ctx, now, topN)
	} else {
		title = fmt.Sprintf("💰 %s Leaderboard", currency)
		entries, err = f.leaderboardService.TopBalances(ctx, now, topN)
	}
	if err != nil {
		log.Errorf("Error building leaderboard: %v", err)
		if err := common.UpdateMessageContent(s, i, "Unable to load the leaderboard. Please try again."); err != nil {
			log.Errorf("Error editing leaderboard response: %v", err)
		}
		return
	}

	if len(entries) == 0 {
		if err := common.UpdateMessageContent(s, i, "Nobody is on the leaderboard yet."); err != nil {
			log.Errorf("Error editing leaderboard response: %v", err)
		}
		return
	}

	var lines []string
	for _, entry := range entries {
		marker := fmt.Sprintf("`%2d.`", entry.Rank)
		if entry.Rank <= len(medals) {
			marker = medals[entry.Rank-1]
		}

		value := fmt.Sprintf("**%s %s**", common.FormatBalance(entry.Value), currency)
		if board == "time" {
			value = fmt.Sprintf("**%s**", common.FormatDuration(entry.Value))
		}

		name := common.GetDisplayNameInt64(s, i.GuildID, entry.UserID)
		lines = append(lines, fmt.Sprintf("%s %s — %s", marker, name, value))
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       common.ColorNeutral,
	}
	if err := common.UpdateMessage(s, i, embed, nil); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
