package repository

import (
	"context"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// StateRepository reads the states table.
type StateRepository struct {
	db *DB
}

// NewStateRepository creates the repository.
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Current returns the most recent state interval.
// Returns pgx.ErrNoRows when no state was ever recorded.
func (r *StateRepository) Current(ctx context.Context, carID int64) (*models.StateInterval, error) {
	query := `
		SELECT state, start_date, end_date
		FROM states
		WHERE ($1 = 0 OR car_id = $1)
		ORDER BY start_date DESC LIMIT 1
	`
	s := &models.StateInterval{}
	err := r.db.Pool.QueryRow(ctx, query, carID).Scan(&s.State, &s.StartDate, &s.EndDate)
	if err != nil {
		return nil, err
	}
	return s, nil
}
