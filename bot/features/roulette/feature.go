package roulette

import (
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	wagerService   service.WagerService
	balanceService service.BalanceService
}

func New(wagerService service.WagerService, balanceService service.BalanceService) *Feature {
	return &Feature{
		wagerService:   wagerService,
		balanceService: balanceService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleRoulette(s, i)
}
