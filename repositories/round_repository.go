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
	ErrRoundNotFound       = errors.New("round not found")
	ErrRoundNumberConflict = errors.New("round number already exists")
)

type RoundRepository interface {
	Create(ctx context.Context, exec SQLExecutor, round *models.Round) error
	GetByID(ctx context.Context, id int) (*models.Round, error)
	GetLast(ctx context.Context) (*models.Round, error)
	List(ctx context.Context) ([]models.Round, error)
	Update(ctx context.Context, exec SQLExecutor, round *models.Round) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	// NumberInUse reports whether another round already holds roundNumber.
	// excludeRoundID skips that round's own row (0 excludes nothing).
	NumberInUse(ctx context.Context, exec SQLExecutor, roundNumber int, excludeRoundID int) (bool, error)
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const roundColumns = "id, round_number, start_date, end_date, bonus_points"

func (r *postgresRoundRepository) Create(ctx context.Context, exec SQLExecutor, round *models.Round) error {
	query := `
		INSERT INTO rounds (round_number, start_date, end_date, bonus_points)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		round.RoundNumber,
		round.StartDate,
		round.EndDate,
		round.BonusPoints,
	).Scan(&round.ID)
	if err != nil {
		return r.handleRoundError(err)
	}
	return nil
}

func (r *postgresRoundRepository) GetByID(ctx context.Context, id int) (*models.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1`

	round := &models.Round{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&round.ID,
		&round.RoundNumber,
		&round.StartDate,
		&round.EndDate,
		&round.BonusPoints,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to scan round by id %d: %w", id, err)
	}
	return round, nil
}

// GetLast returns the round with the highest round number, or ErrRoundNotFound
// when no rounds exist yet.
func (r *postgresRoundRepository) GetLast(ctx context.Context) (*models.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds ORDER BY round_number DESC LIMIT 1`

	round := &models.Round{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&round.ID,
		&round.RoundNumber,
		&round.StartDate,
		&round.EndDate,
		&round.BonusPoints,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to scan last round: %w", err)
	}
	return round, nil
}

func (r *postgresRoundRepository) List(ctx context.Context) ([]models.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds ORDER BY round_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]models.Round, 0)
	for rows.Next() {
		var round models.Round
		if scanErr := rows.Scan(
			&round.ID,
			&round.RoundNumber,
			&round.StartDate,
			&round.EndDate,
			&round.BonusPoints,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan round row: %w", scanErr)
		}
		rounds = append(rounds, round)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during round rows iteration: %w", err)
	}
	return rounds, nil
}

func (r *postgresRoundRepository) Update(ctx context.Context, exec SQLExecutor, round *models.Round) error {
	query := `
		UPDATE rounds
		SET round_number = $1, start_date = $2, end_date = $3, bonus_points = $4
		WHERE id = $5`

	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		round.RoundNumber,
		round.StartDate,
		round.EndDate,
		round.BonusPoints,
		round.ID,
	)
	if err != nil {
		return r.handleRoundError(err)
	}
	return checkAffectedRows(result, ErrRoundNotFound)
}

func (r *postgresRoundRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM rounds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete round %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrRoundNotFound)
}

func (r *postgresRoundRepository) NumberInUse(ctx context.Context, exec SQLExecutor, roundNumber int, excludeRoundID int) (bool, error) {
	query := `SELECT count(*) FROM rounds WHERE round_number = $1 AND id != $2`

	var count int64
	err := r.getExecutor(exec).QueryRowContext(ctx, query, roundNumber, excludeRoundID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check round number %d: %w", roundNumber, err)
	}
	return count > 0, nil
}

func (r *postgresRoundRepository) handleRoundError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Constraint == "rounds_round_number_key" {
			return ErrRoundNumberConflict
		}
	}
	return err
}
