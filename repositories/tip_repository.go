package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/footycomp/tipping-system/models"
)

type TipRepository interface {
	Insert(ctx context.Context, exec SQLExecutor, tip *models.Tip) error
	// Update changes an existing tip's pick and returns the number of rows it
	// touched; zero means no tip exists yet for that (tipper, game) pair.
	Update(ctx context.Context, exec SQLExecutor, tip *models.Tip) (int64, error)
	ListByTipperAndRound(ctx context.Context, tipperID, roundID int) ([]models.Tip, error)
	ExistForRound(ctx context.Context, roundID int) (bool, error)
	DeleteByRound(ctx context.Context, exec SQLExecutor, roundID int) error
}

type postgresTipRepository struct {
	db *sql.DB
}

func NewPostgresTipRepository(db *sql.DB) TipRepository {
	return &postgresTipRepository{db: db}
}

func (r *postgresTipRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTipRepository) Insert(ctx context.Context, exec SQLExecutor, tip *models.Tip) error {
	query := `INSERT INTO tips (tipper_id, game_id, team_id) VALUES ($1, $2, $3)`

	_, err := r.getExecutor(exec).ExecContext(ctx, query, tip.TipperID, tip.GameID, tip.TeamID)
	if err != nil {
		return fmt.Errorf("failed to insert tip for tipper %d game %d: %w", tip.TipperID, tip.GameID, err)
	}
	return nil
}

func (r *postgresTipRepository) Update(ctx context.Context, exec SQLExecutor, tip *models.Tip) (int64, error) {
	query := `UPDATE tips SET team_id = $1 WHERE tipper_id = $2 AND game_id = $3`

	result, err := r.getExecutor(exec).ExecContext(ctx, query, tip.TeamID, tip.TipperID, tip.GameID)
	if err != nil {
		return 0, fmt.Errorf("failed to update tip for tipper %d game %d: %w", tip.TipperID, tip.GameID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rows, nil
}

func (r *postgresTipRepository) ListByTipperAndRound(ctx context.Context, tipperID, roundID int) ([]models.Tip, error) {
	query := `
		SELECT tipper_id, game_id, team_id
		FROM tips
		WHERE tipper_id = $1
		  AND game_id IN (SELECT id FROM games WHERE round_id = $2)
		ORDER BY game_id ASC`

	rows, err := r.db.QueryContext(ctx, query, tipperID, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tips for tipper %d round %d: %w", tipperID, roundID, err)
	}
	defer rows.Close()

	tips := make([]models.Tip, 0)
	for rows.Next() {
		var tip models.Tip
		if scanErr := rows.Scan(&tip.TipperID, &tip.GameID, &tip.TeamID); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tip row: %w", scanErr)
		}
		tips = append(tips, tip)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tip rows iteration: %w", err)
	}
	return tips, nil
}

func (r *postgresTipRepository) ExistForRound(ctx context.Context, roundID int) (bool, error) {
	query := `SELECT count(*) FROM tips WHERE game_id IN (SELECT id FROM games WHERE round_id = $1)`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, roundID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count tips for round %d: %w", roundID, err)
	}
	return count > 0, nil
}

func (r *postgresTipRepository) DeleteByRound(ctx context.Context, exec SQLExecutor, roundID int) error {
	query := `DELETE FROM tips WHERE game_id IN (SELECT id FROM games WHERE round_id = $1)`

	_, err := r.getExecutor(exec).ExecContext(ctx, query, roundID)
	if err != nil {
		return fmt.Errorf("failed to delete tips for round %d: %w", roundID, err)
	}
	return nil
}
