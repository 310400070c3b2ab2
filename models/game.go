package models

// Game is one scheduled match between two teams within a round. ID 0 means
// the game has not been persisted yet; RoundID 0 marks an unassigned template
// game. Scores stay nil until the game has been played.
type Game struct {
	ID         int  `json:"id,omitempty" db:"id"`
	RoundID    int  `json:"round_id,omitempty" db:"round_id"`
	HomeTeamID int  `json:"home_team_id" db:"home_team_id"`
	AwayTeamID int  `json:"away_team_id" db:"away_team_id"`
	GameDate   Date `json:"game_date" db:"game_date"`
	HomeScore  *int `json:"home_score,omitempty" db:"home_score"`
	AwayScore  *int `json:"away_score,omitempty" db:"away_score"`
}

// Played reports whether both final scores have been recorded.
func (g Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}
