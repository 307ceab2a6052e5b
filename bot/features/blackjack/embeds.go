package blackjack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voicebank/bot/common"
	"voicebank/config"
	"voicebank/games/blackjack"

	"github.com/bwmarrin/discordgo"
)

func handString(hand []blackjack.Card) string {
	parts := make([]string, 0, len(hand))
	for _, c := range hand {
		parts = append(parts, fmt.Sprintf("`%s`", c))
	}
	return strings.Join(parts, " ")
}

// gameEmbed renders the table mid-game. The dealer's hole card stays hidden
// until reveal is set.
func gameEmbed(sess *gameSession, title string, reveal bool, color int) *discordgo.MessageEmbed {
	game := sess.game

	dealerHand := handString(game.DealerHand)
	dealerValue := fmt.Sprintf("%d", game.DealerValue())
	if !reveal && len(game.DealerHand) > 0 {
		dealerHand = fmt.Sprintf("`%s` `?`", game.DealerHand[0])
		dealerValue = fmt.Sprintf("%d + ?", game.DealerHand[0].Value())
	}

	return &discordgo.MessageEmbed{
		Title:       "🃏 Blackjack",
		Description: title,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Your Hand (%d)", game.PlayerValue()),
				Value:  handString(game.PlayerHand),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("Dealer Hand (%s)", dealerValue),
				Value:  dealerHand,
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s's game • Bet: %s %s", sess.userName, common.FormatBalance(game.Bet), config.Get().CurrencyName),
		},
	}
}

// resultEmbed renders the settled table with the payout and new balance
func resultEmbed(ctx context.Context, f *Feature, sess *gameSession, message string, credit int64) *discordgo.MessageEmbed {
	color := common.ColorLose
	switch sess.game.Outcome {
	case blackjack.OutcomeWin:
		color = common.ColorWin
	case blackjack.OutcomePush:
		color = common.ColorPush
	}

	embed := gameEmbed(sess, message, true, color)

	currency := config.Get().CurrencyName
	newBalance := f.balanceService.EffectiveBalance(ctx, sess.userID, time.Now())
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Result",
		Value: fmt.Sprintf("Payout: **%s %s**\nNew Balance: **%s**",
			common.FormatBalance(credit), currency, common.FormatBalance(newBalance)),
	})
	return embed
}

func resultMessage(game *blackjack.Game) string {
	switch game.Outcome {
	case blackjack.OutcomeWin:
		if game.DealerValue() > 21 {
			return "Dealer busts! You win!"
		}
		return "You win!"
	case blackjack.OutcomePush:
		return "Push! Your bet is returned."
	default:
		if game.PlayerValue() > 21 {
			return "Bust! You lose."
		}
		return "Dealer wins. You lose."
	}
}

func gameButtons(gameID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: "blackjack_hit_" + gameID,
					Disabled: disabled,
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: "blackjack_stand_" + gameID,
					Disabled: disabled,
				},
			},
		},
	}
}
