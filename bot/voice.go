package bot

import (
	"context"
	"time"

	"voicebank/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleVoiceStateUpdate tracks users entering and leaving voice channels.
// Moving between channels settles the finished segment and starts a fresh
// one, so every segment is committed with its real duration.
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, vsu *discordgo.VoiceStateUpdate) {
	if vsu.Member != nil && vsu.Member.User != nil && vsu.Member.User.Bot {
		return
	}

	userID, err := common.ParseUserID(vsu.UserID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", vsu.UserID, err)
		return
	}

	now := time.Now()
	previousChannel := ""
	if vsu.BeforeUpdate != nil {
		previousChannel = vsu.BeforeUpdate.ChannelID
	}

	switch {
	case vsu.ChannelID == "":
		if err := b.sessionService.EndSession(context.Background(), userID, now); err != nil {
			log.Errorf("Error settling voice session for user %d: %v", userID, err)
		}
	case vsu.ChannelID == previousChannel:
		// Mute, deafen and similar updates inside the same channel;
		// the running session continues untouched.
	case previousChannel != "":
		// Channel switch: commit the segment in the old channel, then
		// start counting in the new one.
		if err := b.sessionService.EndSession(context.Background(), userID, now); err != nil {
			log.Errorf("Error settling voice session for user %d: %v", userID, err)
		}
		b.sessionService.BeginSession(userID, now)
	default:
		b.sessionService.BeginSession(userID, now)
	}
}

// handleGuildCreate seeds sessions for users already in voice when the bot
// connects or joins a guild. They accrue from connection time, not their
// actual join time, which is unknown after a restart.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	now := time.Now()
	for _, vs := range g.VoiceStates {
		if vs.ChannelID == "" || vs.UserID == s.State.User.ID {
			continue
		}
		if vs.Member != nil && vs.Member.User != nil && vs.Member.User.Bot {
			continue
		}

		userID, err := common.ParseUserID(vs.UserID)
		if err != nil {
			log.Errorf("Error parsing Discord ID %s: %v", vs.UserID, err)
			continue
		}
		b.sessionService.BeginSession(userID, now)
	}
	log.WithFields(log.Fields{
		"guildID":     g.ID,
		"voiceStates": len(g.VoiceStates),
	}).Info("Seeded voice sessions for guild")
}

// settleOpenSessions commits every live session, used on shutdown
func (b *Bot) settleOpenSessions(ctx context.Context) {
	now := time.Now()
	for userID := range b.sessionService.ActiveSessions() {
		if err := b.sessionService.EndSession(ctx, userID, now); err != nil {
			log.Errorf("Error settling voice session for user %d on shutdown: %v", userID, err)
		}
	}
}
