package repository

import (
	"context"
	"fmt"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// CarRepository reads the cars table.
type CarRepository struct {
	db *DB
}

// NewCarRepository creates the repository.
func NewCarRepository(db *DB) *CarRepository {
	return &CarRepository{db: db}
}

// List returns all cars ordered by id.
func (r *CarRepository) List(ctx context.Context) ([]models.Car, error) {
	query := `
		SELECT id, vin, model, trim_badging, name, efficiency, inserted_at, updated_at
		FROM cars ORDER BY id
	`
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		var car models.Car
		err := rows.Scan(
			&car.ID,
			&car.VIN,
			&car.Model,
			&car.TrimBadging,
			&car.Name,
			&car.Efficiency,
			&car.InsertedAt,
			&car.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, rows.Err()
}
