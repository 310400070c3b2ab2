package models

// Tip is one tipper's pick for one game. TeamID nil means no pick yet.
// A tipper has at most one tip per game.
type Tip struct {
	TipperID int  `json:"tipper_id" db:"tipper_id"`
	GameID   int  `json:"game_id" db:"game_id"`
	TeamID   *int `json:"team_id" db:"team_id"`
}
