package models

// Round is a dated competition period. RoundNumber is unique across the whole
// competition; BonusPoints is awarded for a perfect round of tips.
type Round struct {
	ID          int  `json:"id" db:"id"`
	RoundNumber int  `json:"round_number" db:"round_number"`
	StartDate   Date `json:"start_date" db:"start_date"`
	EndDate     Date `json:"end_date" db:"end_date"`
	BonusPoints int  `json:"bonus_points" db:"bonus_points"`
}
