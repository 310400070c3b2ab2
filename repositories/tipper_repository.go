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
	ErrTipperNotFound      = errors.New("tipper not found")
	ErrTipperEmailConflict = errors.New("tipper email already exists")
)

type TipperRepository interface {
	Create(ctx context.Context, tipper *models.Tipper) error
	GetByID(ctx context.Context, id int) (*models.Tipper, error)
	List(ctx context.Context) ([]models.Tipper, error)
	Update(ctx context.Context, tipper *models.Tipper) error
	Delete(ctx context.Context, id int) error
}

type postgresTipperRepository struct {
	db *sql.DB
}

func NewPostgresTipperRepository(db *sql.DB) TipperRepository {
	return &postgresTipperRepository{db: db}
}

func (r *postgresTipperRepository) Create(ctx context.Context, tipper *models.Tipper) error {
	query := `INSERT INTO tippers (name, email) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, tipper.Name, tipper.Email).Scan(&tipper.ID)
	if err != nil {
		return r.handleTipperError(err)
	}
	return nil
}

func (r *postgresTipperRepository) GetByID(ctx context.Context, id int) (*models.Tipper, error) {
	query := `SELECT id, name, email FROM tippers WHERE id = $1`

	tipper := &models.Tipper{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&tipper.ID, &tipper.Name, &tipper.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTipperNotFound
		}
		return nil, fmt.Errorf("failed to scan tipper by id %d: %w", id, err)
	}
	return tipper, nil
}

func (r *postgresTipperRepository) List(ctx context.Context) ([]models.Tipper, error) {
	query := `SELECT id, name, email FROM tippers ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tippers: %w", err)
	}
	defer rows.Close()

	tippers := make([]models.Tipper, 0)
	for rows.Next() {
		var tipper models.Tipper
		if scanErr := rows.Scan(&tipper.ID, &tipper.Name, &tipper.Email); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tipper row: %w", scanErr)
		}
		tippers = append(tippers, tipper)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tipper rows iteration: %w", err)
	}
	return tippers, nil
}

func (r *postgresTipperRepository) Update(ctx context.Context, tipper *models.Tipper) error {
	query := `UPDATE tippers SET name = $1, email = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, tipper.Name, tipper.Email, tipper.ID)
	if err != nil {
		return r.handleTipperError(err)
	}
	return checkAffectedRows(result, ErrTipperNotFound)
}

func (r *postgresTipperRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tippers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTipperNotFound)
}

func (r *postgresTipperRepository) handleTipperError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Constraint == "tippers_email_key" {
			return ErrTipperEmailConflict
		}
	}
	return err
}
