package admin

import (
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
)

// Feature implements the admin-only /give and /take balance adjustments
type Feature struct {
	wagerService service.WagerService
}

func New(wagerService service.WagerService) *Feature {
	return &Feature{
		wagerService: wagerService,
	}
}

func (f *Feature) HandleGive(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleAdjust(s, i, false)
}

func (f *Feature) HandleTake(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleAdjust(s, i, true)
}
