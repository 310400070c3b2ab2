package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/footycomp/tipping-system/fixtures"
	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
)

const templateShiftDays = 7

// RoundInput is a complete round definition as submitted by a client: the
// round's scalar fields plus its full game list. Games without an id are new;
// games with an id refer to persisted rows.
type RoundInput struct {
	Round models.Round  `json:"round"`
	Games []models.Game `json:"games"`
}

type RoundWithGames struct {
	Round models.Round  `json:"round"`
	Games []models.Game `json:"games"`
}

type RoundService interface {
	CreateRound(ctx context.Context, input RoundInput) (*models.Round, error)
	UpdateRound(ctx context.Context, input RoundInput) error
	DeleteRound(ctx context.Context, id int) error
	GetRound(ctx context.Context, id int) (*RoundWithGames, error)
	ListRounds(ctx context.Context) ([]models.Round, error)
	TemplateRound(ctx context.Context) (*RoundWithGames, error)
}

// roundService reconciles submitted round definitions against persisted
// state. Each mutation runs in one transaction; concurrent edits to the same
// round are serialized by the database, and a lost update between two clients
// editing simultaneously is an accepted gap (no optimistic version check).
type roundService struct {
	db        *sql.DB
	roundRepo repositories.RoundRepository
	gameRepo  repositories.GameRepository
	tipRepo   repositories.TipRepository
	teamRepo  repositories.TeamRepository
	allocator *fixtures.Allocator
	notifier  LiveNotifier
	logger    *slog.Logger
}

func NewRoundService(
	db *sql.DB,
	roundRepo repositories.RoundRepository,
	gameRepo repositories.GameRepository,
	tipRepo repositories.TipRepository,
	teamRepo repositories.TeamRepository,
	allocator *fixtures.Allocator,
	notifier LiveNotifier,
	logger *slog.Logger,
) RoundService {
	return &roundService{
		db:        db,
		roundRepo: roundRepo,
		gameRepo:  gameRepo,
		tipRepo:   tipRepo,
		teamRepo:  teamRepo,
		allocator: allocator,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *roundService) CreateRound(ctx context.Context, input RoundInput) (*models.Round, error) {
	round := input.Round
	round.ID = 0

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.validate(ctx, tx, &round, input.Games, 0); err != nil {
			return err
		}
		if err := s.roundRepo.Create(ctx, tx, &round); err != nil {
			// A concurrent create can win the number between the
			// NumberInUse check and the insert; the unique constraint
			// catches it.
			if errors.Is(err, repositories.ErrRoundNumberConflict) {
				return ErrRoundNumberTaken
			}
			return err
		}
		for _, game := range input.Games {
			game.ID = 0
			game.RoundID = round.ID
			// A freshly created round has no results yet, whatever the
			// client sent.
			game.HomeScore = nil
			game.AwayScore = nil
			if err := s.gameRepo.Create(ctx, tx, &game); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("round created",
		slog.Int("round_id", round.ID),
		slog.Int("round_number", round.RoundNumber),
		slog.Int("games", len(input.Games)))
	if s.notifier != nil {
		s.notifier.NotifyRoundUpdated(round.ID)
	}
	return &round, nil
}

func (s *roundService) UpdateRound(ctx context.Context, input RoundInput) error {
	round := input.Round
	if round.ID == 0 {
		return ErrRoundIDRequired
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.validate(ctx, tx, &round, input.Games, round.ID); err != nil {
			return err
		}
		if err := s.roundRepo.Update(ctx, tx, &round); err != nil {
			if errors.Is(err, repositories.ErrRoundNumberConflict) {
				return ErrRoundNumberTaken
			}
			return err
		}

		existing, err := s.gameRepo.ListByRound(ctx, tx, round.ID)
		if err != nil {
			return err
		}

		plan := reconcileByID(existing, input.Games, func(g models.Game) int { return g.ID })
		for _, game := range plan.Updates {
			game.RoundID = round.ID
			if err := s.gameRepo.Update(ctx, tx, &game); err != nil {
				return err
			}
		}
		for _, game := range plan.Inserts {
			game.RoundID = round.ID
			if err := s.gameRepo.Create(ctx, tx, &game); err != nil {
				return err
			}
		}
		for _, game := range plan.Deletes {
			if err := s.gameRepo.Delete(ctx, tx, game.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("round updated", slog.Int("round_id", round.ID))
	if s.notifier != nil {
		s.notifier.NotifyRoundUpdated(round.ID)
	}
	return nil
}

// DeleteRound removes a round with everything hanging off it. Tips go first,
// then games, then the round row; the order is forced by the foreign keys.
func (s *roundService) DeleteRound(ctx context.Context, id int) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.tipRepo.DeleteByRound(ctx, tx, id); err != nil {
			return err
		}
		if err := s.gameRepo.DeleteByRound(ctx, tx, id); err != nil {
			return err
		}
		return s.roundRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("round deleted", slog.Int("round_id", id))
	if s.notifier != nil {
		s.notifier.NotifyRoundUpdated(id)
	}
	return nil
}

func (s *roundService) GetRound(ctx context.Context, id int) (*RoundWithGames, error) {
	result := &RoundWithGames{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		round, err := s.roundRepo.GetByID(gCtx, id)
		if err != nil {
			return err
		}
		result.Round = *round
		return nil
	})
	g.Go(func() error {
		games, err := s.gameRepo.ListByRound(gCtx, nil, id)
		if err != nil {
			return err
		}
		result.Games = games
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *roundService) ListRounds(ctx context.Context) ([]models.Round, error) {
	return s.roundRepo.List(ctx)
}

// TemplateRound proposes the next round: the successor of the latest round by
// number, its window shifted one week, bonus points carried over, and a game
// list generated by the fixture allocator from the full roster. With no
// rounds defined yet it returns an empty definition for the client to fill
// in.
func (s *roundService) TemplateRound(ctx context.Context) (*RoundWithGames, error) {
	last, err := s.roundRepo.GetLast(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrRoundNotFound) {
			return &RoundWithGames{Games: []models.Game{}}, nil
		}
		return nil, err
	}

	round := models.Round{
		RoundNumber: last.RoundNumber + 1,
		StartDate:   last.StartDate.AddDays(templateShiftDays),
		EndDate:     last.EndDate.AddDays(templateShiftDays),
		BonusPoints: last.BonusPoints,
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for template round: %w", err)
	}

	return &RoundWithGames{
		Round: round,
		Games: s.allocator.Allocate(teams, round.StartDate, round.EndDate),
	}, nil
}

// validate enforces the competition invariants against a submitted round
// definition. The first failure is returned; nothing is collected.
// excludeRoundID exempts the round's own row from the number-uniqueness
// check on update.
func (s *roundService) validate(ctx context.Context, exec repositories.SQLExecutor, round *models.Round, games []models.Game, excludeRoundID int) error {
	if round.RoundNumber <= 0 {
		return ErrRoundNumberInvalid
	}

	inUse, err := s.roundRepo.NumberInUse(ctx, exec, round.RoundNumber, excludeRoundID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrRoundNumberTaken
	}

	if round.StartDate.After(round.EndDate.Time) {
		return ErrRoundDateOrder
	}

	seen := make(map[int]bool)
	for _, game := range games {
		for _, teamID := range []int{game.HomeTeamID, game.AwayTeamID} {
			if seen[teamID] {
				return &TeamReusedError{TeamID: teamID, TeamName: s.teamNickname(ctx, teamID)}
			}
			seen[teamID] = true
		}
		if game.GameDate.Before(round.StartDate.Time) || game.GameDate.After(round.EndDate.Time) {
			return &GameDateOutOfRangeError{
				GameDate:  game.GameDate,
				StartDate: round.StartDate,
				EndDate:   round.EndDate,
			}
		}
	}
	return nil
}

func (s *roundService) teamNickname(ctx context.Context, teamID int) string {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return ""
	}
	return team.Nickname
}
