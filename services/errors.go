package services

import (
	"errors"
	"fmt"

	"github.com/footycomp/tipping-system/models"
)

// Validation and business-rule errors shared across services. Handlers map
// these to client-error statuses; anything unrecognised becomes a 500.
var (
	ErrRoundNumberInvalid = errors.New("round number must be greater than 0")
	ErrRoundNumberTaken   = errors.New("round number already exists")
	ErrRoundDateOrder     = errors.New("round start date must not be after end date")
	ErrRoundIDRequired    = errors.New("round id is required for update")

	ErrTeamNameRequired   = errors.New("team name is required")
	ErrTeamInUse          = errors.New("team appears in existing games and cannot be deleted")
	ErrTipperNameRequired = errors.New("tipper name is required")

	ErrTipTeamNotInGame = errors.New("tipped team does not play in the tipped game")

	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email is already taken")
	ErrPasswordTooShort       = errors.New("password is too short")
)

// TeamReusedError reports the first team that appears in more than one game
// of a submitted round. Name falls back to the team id when the team row
// could not be resolved.
type TeamReusedError struct {
	TeamID   int
	TeamName string
}

func (e *TeamReusedError) Error() string {
	name := e.TeamName
	if name == "" {
		name = fmt.Sprintf("%d", e.TeamID)
	}
	return fmt.Sprintf("team %s is used more than once in this round", name)
}

// GameDateOutOfRangeError reports a submitted game dated outside its round's
// window, echoing the offending boundary values.
type GameDateOutOfRangeError struct {
	GameDate  models.Date
	StartDate models.Date
	EndDate   models.Date
}

func (e *GameDateOutOfRangeError) Error() string {
	return fmt.Sprintf("game date %s is not between the round start date %s and end date %s",
		e.GameDate, e.StartDate, e.EndDate)
}
