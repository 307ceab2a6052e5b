package horserace

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"voicebank/bot/common"
	"voicebank/config"
	"voicebank/games/horserace"
	"voicebank/models"
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Runner plays out one guild's race in its configured channel: an opening
// message, a live-edited track animation, and a results message. A send
// failure on the opening message is reported back so the caller can revoke
// the stale channel config.
type Runner struct {
	session *discordgo.Session
}

func NewRunner(session *discordgo.Session) *Runner {
	return &Runner{session: session}
}

func (r *Runner) Run(ctx context.Context, cfg *models.RaceConfig, bets []*models.HorseBet) (models.HorseColor, error) {
	conf := config.Get()
	channelID := strconv.FormatInt(cfg.ChannelID, 10)
	race := horserace.NewRace(conf.RaceTrackLength)

	msg, err := r.session.ChannelMessageSendEmbed(channelID, raceEmbed("🏇 They're off!", race.Track()))
	if err != nil {
		return "", fmt.Errorf("failed to announce race in channel %s: %w", channelID, err)
	}

	tick := time.Duration(conf.RaceTickSeconds) * time.Second
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(tick):
		}

		finished := race.Tick()
		title := "🏇 They're off!"
		if finished {
			title = "🏁 Photo finish!"
		}
		if _, err := r.session.ChannelMessageEditEmbed(channelID, msg.ID, raceEmbed(title, race.Track())); err != nil {
			log.Warnf("Error updating race animation in channel %s: %v", channelID, err)
		}
		if finished {
			break
		}
	}

	winner, _ := race.Winner()
	if _, err := r.session.ChannelMessageSendEmbed(channelID, r.resultEmbed(winner, bets)); err != nil {
		log.Warnf("Error sending race results in channel %s: %v", channelID, err)
	}
	return winner, nil
}

func raceEmbed(title, track string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: track,
		Color:       common.ColorNeutral,
	}
}

func (r *Runner) resultEmbed(winner models.HorseColor, bets []*models.HorseBet) *discordgo.MessageEmbed {
	conf := config.Get()
	payouts := service.BuildPayouts(bets, winner, conf.RacePayoutMultiplier)

	var sb strings.Builder
	fmt.Fprintf(&sb, "The %s **%s** horse wins!\n", horserace.Emoji(winner), winner)

	var lines []string
	for _, p := range payouts {
		if p.Won {
			lines = append(lines, fmt.Sprintf("<@%d> won **%s %s**!", p.UserID, common.FormatBalance(p.Credit), conf.CurrencyName))
		} else {
			lines = append(lines, fmt.Sprintf("<@%d> lost **%s %s**.", p.UserID, common.FormatBalance(p.Bet.Amount), conf.CurrencyName))
		}
	}
	if len(lines) == 0 {
		sb.WriteString("\nNobody had a bet on this race.")
	} else {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(lines, "\n"))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Race Results",
		Description: sb.String(),
		Color:       common.ColorWin,
	}
}
