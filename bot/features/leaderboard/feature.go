package leaderboard

import (
	"voicebank/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	leaderboardService service.LeaderboardService
}

func New(leaderboardService service.LeaderboardService) *Feature {
	return &Feature{
		leaderboardService: leaderboardService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleLeaderboard(s, i)
}
