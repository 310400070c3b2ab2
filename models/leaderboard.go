package models

// LeaderboardEntry is one row of the competition (or single round) standings.
type LeaderboardEntry struct {
	TipperName string `json:"tipper_name" db:"tipper_name"`
	TipScore   int64  `json:"tip_score" db:"tip_score"`
	BonusScore int64  `json:"bonus_score" db:"bonus_score"`
	TotalScore int64  `json:"total_score" db:"total_score"`
}
