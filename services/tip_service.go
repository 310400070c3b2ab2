package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
)

type TipService interface {
	// SaveTips upserts a batch of tips in one transaction: an existing
	// (tipper, game) row is updated, anything else inserted.
	SaveTips(ctx context.Context, roundID int, tips []models.Tip) error
	TipsForRound(ctx context.Context, tipperID, roundID int) ([]models.Tip, error)
	TipsExistForRound(ctx context.Context, roundID int) (bool, error)
}

type tipService struct {
	db       *sql.DB
	tipRepo  repositories.TipRepository
	gameRepo repositories.GameRepository
	notifier LiveNotifier
}

func NewTipService(db *sql.DB, tipRepo repositories.TipRepository, gameRepo repositories.GameRepository, notifier LiveNotifier) TipService {
	return &tipService{
		db:       db,
		tipRepo:  tipRepo,
		gameRepo: gameRepo,
		notifier: notifier,
	}
}

func (s *tipService) SaveTips(ctx context.Context, roundID int, tips []models.Tip) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, tip := range tips {
			if tip.TeamID != nil {
				if err := s.checkTeamPlaysGame(ctx, *tip.TeamID, tip.GameID); err != nil {
					return err
				}
			}
			rows, err := s.tipRepo.Update(ctx, tx, &tip)
			if err != nil {
				return err
			}
			if rows == 0 {
				if err := s.tipRepo.Insert(ctx, tx, &tip); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyTipsSaved(roundID)
	}
	return nil
}

func (s *tipService) TipsForRound(ctx context.Context, tipperID, roundID int) ([]models.Tip, error) {
	return s.tipRepo.ListByTipperAndRound(ctx, tipperID, roundID)
}

func (s *tipService) TipsExistForRound(ctx context.Context, roundID int) (bool, error) {
	return s.tipRepo.ExistForRound(ctx, roundID)
}

// checkTeamPlaysGame rejects a pick for a team that is not one of the game's
// two sides.
func (s *tipService) checkTeamPlaysGame(ctx context.Context, teamID, gameID int) error {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if teamID != game.HomeTeamID && teamID != game.AwayTeamID {
		return fmt.Errorf("%w: team %d, game %d", ErrTipTeamNotInGame, teamID, gameID)
	}
	return nil
}
