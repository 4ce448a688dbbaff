package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// ChargeRepository reads the charging_processes table.
type ChargeRepository struct {
	db *DB
}

// NewChargeRepository creates the repository.
func NewChargeRepository(db *DB) *ChargeRepository {
	return &ChargeRepository{db: db}
}

// Stats returns windowed charging aggregates since the given time.
func (r *ChargeRepository) Stats(ctx context.Context, carID int64, since time.Time) (models.ChargingTotals, error) {
	var totals models.ChargingTotals
	query := `
		SELECT COUNT(*),
			SUM(charge_energy_added),
			AVG(charge_energy_added),
			SUM(duration_min),
			SUM(cost)
		FROM charging_processes
		WHERE start_date >= $1 AND ($2 = 0 OR car_id = $2)
	`
	err := r.db.Pool.QueryRow(ctx, query, since, carID).Scan(
		&totals.Sessions,
		&totals.TotalKwh,
		&totals.AvgKwh,
		&totals.TotalMin,
		&totals.TotalCost,
	)
	if err != nil {
		return totals, fmt.Errorf("charging stats: %w", err)
	}
	return totals, nil
}
