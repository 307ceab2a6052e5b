package common

import (
	"errors"
	"fmt"

	"voicebank/config"
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RespondWagerError maps wager validation errors to user-facing messages
func RespondWagerError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var insufficient *service.InsufficientBalanceError
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		RespondWithError(s, i, "Bet amount must be positive.")
	case errors.As(err, &insufficient):
		RespondWithError(s, i, fmt.Sprintf("You don't have enough %s. Your balance is **%s**.",
			config.Get().CurrencyName, FormatBalance(insufficient.Balance)))
	default:
		log.Errorf("Error processing wager: %v", err)
		RespondWithError(s, i, "Unable to process your bet. Please try again.")
	}
}
