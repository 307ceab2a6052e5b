package models

import (
	"time"
)

// HorseColor identifies one of the five horses in a race
type HorseColor string

const (
	HorseRed    HorseColor = "red"
	HorseBlue   HorseColor = "blue"
	HorseGreen  HorseColor = "green"
	HorseYellow HorseColor = "yellow"
	HorsePurple HorseColor = "purple"
)

// HorseColors lists the horses in their fixed running order. The order is
// load-bearing: when two horses cross the finish line in the same tick, the
// first one in this order wins.
var HorseColors = []HorseColor{HorseRed, HorseBlue, HorseGreen, HorseYellow, HorsePurple}

// ParseHorseColor validates a user-supplied color string
func ParseHorseColor(s string) (HorseColor, bool) {
	for _, c := range HorseColors {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// RaceConfig records the announcement channel for a guild with racing enabled
type RaceConfig struct {
	GuildID   int64     `db:"guild_id"`
	ChannelID int64     `db:"channel_id"`
	CreatedAt time.Time `db:"created_at"`
}

// HorseBet is a user's standing bet for the next race in a guild.
// Upserted while betting is open, cleared when the guild's race resolves.
type HorseBet struct {
	UserID     int64      `db:"user_id"`
	GuildID    int64      `db:"guild_id"`
	Amount     int64      `db:"amount"`
	HorseColor HorseColor `db:"horse_color"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// RacePayout describes one bettor's result after a race
type RacePayout struct {
	UserID int64
	Bet    *HorseBet
	Won    bool
	Credit int64 // stake plus winnings for winners, 0 for losers
}

// RaceResult summarizes a resolved race for announcement
type RaceResult struct {
	GuildID int64
	Winner  HorseColor
	Payouts []*RacePayout
}
