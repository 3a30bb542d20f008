package stats

import "time"

// ShareEvent records one outbound share of a post by a user. The leaderboard
// aggregates these per user.
type ShareEvent struct {
	ID      int64
	UserID  int64
	PostID  string
	Created time.Time
}

type LeaderboardEntry struct {
	UserID   int64
	Username string
	Shares   int64
}
