package horserace

import (
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
)

// Feature implements the /race command group: channel configuration,
// betting and bet lookups. The races themselves run on a schedule, see
// Scheduler and Runner.
type Feature struct {
	raceService    service.RaceService
	balanceService service.BalanceService
}

func New(raceService service.RaceService, balanceService service.BalanceService) *Feature {
	return &Feature{
		raceService:    raceService,
		balanceService: balanceService,
	}
}

// HandleCommand dispatches /race subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "setchannel":
		f.handleSetChannel(s, i, options[0].Options)
	case "disable":
		f.handleDisable(s, i)
	case "bet":
		f.handleBet(s, i, options[0].Options)
	case "mybet":
		f.handleMyBet(s, i)
	}
}
