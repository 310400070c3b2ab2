package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/footycomp/tipping-system/models"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameRoundRef = errors.New("game references an unknown round")
	ErrGameTeamRef  = errors.New("game references an unknown team")
	ErrGameHasTips  = errors.New("game still has tips referencing it")
)

type GameRepository interface {
	Create(ctx context.Context, exec SQLExecutor, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	ListByRound(ctx context.Context, exec SQLExecutor, roundID int) ([]models.Game, error)
	Update(ctx context.Context, exec SQLExecutor, game *models.Game) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	DeleteByRound(ctx context.Context, exec SQLExecutor, roundID int) error
	// TeamHasGames reports whether the team appears as home or away in any game.
	TeamHasGames(ctx context.Context, teamID int) (bool, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const gameColumns = "id, round_id, home_team_id, away_team_id, game_date, home_score, away_score"

func (r *postgresGameRepository) Create(ctx context.Context, exec SQLExecutor, game *models.Game) error {
	query := `
		INSERT INTO games (round_id, home_team_id, away_team_id, game_date, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		game.RoundID,
		game.HomeTeamID,
		game.AwayTeamID,
		game.GameDate,
		game.HomeScore,
		game.AwayScore,
	).Scan(&game.ID)
	if err != nil {
		return r.handleGameError(err)
	}
	return nil
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`

	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.RoundID,
		&game.HomeTeamID,
		&game.AwayTeamID,
		&game.GameDate,
		&game.HomeScore,
		&game.AwayScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to scan game by id %d: %w", id, err)
	}
	return game, nil
}

func (r *postgresGameRepository) ListByRound(ctx context.Context, exec SQLExecutor, roundID int) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE round_id = $1 ORDER BY game_date ASC, id ASC`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query games for round %d: %w", roundID, err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if scanErr := rows.Scan(
			&game.ID,
			&game.RoundID,
			&game.HomeTeamID,
			&game.AwayTeamID,
			&game.GameDate,
			&game.HomeScore,
			&game.AwayScore,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", scanErr)
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during game rows iteration: %w", err)
	}
	return games, nil
}

// Update changes a game's teams, date and scores. The round assignment and
// the game's identity are immutable once created.
func (r *postgresGameRepository) Update(ctx context.Context, exec SQLExecutor, game *models.Game) error {
	query := `
		UPDATE games
		SET home_team_id = $1, away_team_id = $2, game_date = $3, home_score = $4, away_score = $5
		WHERE id = $6`

	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		game.HomeTeamID,
		game.AwayTeamID,
		game.GameDate,
		game.HomeScore,
		game.AwayScore,
		game.ID,
	)
	if err != nil {
		return r.handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return r.handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) DeleteByRound(ctx context.Context, exec SQLExecutor, roundID int) error {
	_, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM games WHERE round_id = $1`, roundID)
	if err != nil {
		return r.handleGameError(err)
	}
	return nil
}

func (r *postgresGameRepository) TeamHasGames(ctx context.Context, teamID int) (bool, error) {
	query := `SELECT count(*) FROM games WHERE home_team_id = $1 OR away_team_id = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, teamID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count games for team %d: %w", teamID, err)
	}
	return count > 0, nil
}

func (r *postgresGameRepository) handleGameError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "games_round_id_fkey":
			return ErrGameRoundRef
		case "games_home_team_id_fkey", "games_away_team_id_fkey":
			return ErrGameTeamRef
		case "tips_game_id_fkey":
			return ErrGameHasTips
		}
	}
	return err
}
