package models

// LeaderboardEntry is one ranked row of a leaderboard. Value is either
// effective seconds or effective balance depending on the board.
type LeaderboardEntry struct {
	Rank   int
	UserID int64
	Value  int64
}
