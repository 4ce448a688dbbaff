package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// DriveRepository reads the drives table. Every query takes carID, where 0
// means all vehicles; the filter is always a bound parameter.
type DriveRepository struct {
	db *DB
}

// NewDriveRepository creates the repository.
func NewDriveRepository(db *DB) *DriveRepository {
	return &DriveRepository{db: db}
}

// driveColumns is the shared projection with address labels resolved.
const driveColumns = `
	SELECT d.start_date, d.end_date,
		COALESCE(d.distance, 0) AS distance_km,
		COALESCE(d.duration_min, 0) AS duration_min,
		COALESCE(a1.display_name, 'Unknown') AS start_location,
		COALESCE(a2.display_name, 'Unknown') AS end_location,
		d.start_ideal_range_km, d.end_ideal_range_km,
		(d.start_ideal_range_km - d.end_ideal_range_km) AS range_used_km
	FROM drives d
	LEFT JOIN addresses a1 ON d.start_address_id = a1.id
	LEFT JOIN addresses a2 ON d.end_address_id = a2.id
`

func scanDrives(rows pgx.Rows) ([]models.Drive, error) {
	var drives []models.Drive
	for rows.Next() {
		var d models.Drive
		err := rows.Scan(
			&d.StartDate,
			&d.EndDate,
			&d.DistanceKm,
			&d.DurationMin,
			&d.StartLocation,
			&d.EndLocation,
			&d.StartIdealRangeKm,
			&d.EndIdealRangeKm,
			&d.RangeUsedKm,
		)
		if err != nil {
			return nil, fmt.Errorf("scan drive: %w", err)
		}
		drives = append(drives, d)
	}
	return drives, rows.Err()
}

// Totals returns the all-time distance sum and trip count.
func (r *DriveRepository) Totals(ctx context.Context, carID int64) (models.DriveTotals, error) {
	var totals models.DriveTotals
	query := `
		SELECT SUM(distance), COUNT(*)
		FROM drives WHERE ($1 = 0 OR car_id = $1)
	`
	err := r.db.Pool.QueryRow(ctx, query, carID).Scan(&totals.TotalKm, &totals.TotalTrips)
	if err != nil {
		return totals, fmt.Errorf("drive totals: %w", err)
	}
	return totals, nil
}

// Recent returns the newest limit drives, newest first.
func (r *DriveRepository) Recent(ctx context.Context, carID int64, limit int) ([]models.Drive, error) {
	query := driveColumns + `
		WHERE ($1 = 0 OR d.car_id = $1)
		ORDER BY d.start_date DESC LIMIT $2
	`
	rows, err := r.db.Pool.Query(ctx, query, carID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent drives: %w", err)
	}
	defer rows.Close()

	return scanDrives(rows)
}

// ListByDateRange returns drives whose start falls in [start, end],
// end-inclusive to end of day, ascending by start time.
func (r *DriveRepository) ListByDateRange(ctx context.Context, carID int64, start, end string) ([]models.Drive, error) {
	query := driveColumns + `
		WHERE d.start_date >= $1::date
		AND d.start_date < ($2::date + interval '1 day')
		AND ($3 = 0 OR d.car_id = $3)
		ORDER BY d.start_date ASC
	`
	rows, err := r.db.Pool.Query(ctx, query, start, end, carID)
	if err != nil {
		return nil, fmt.Errorf("drives by date: %w", err)
	}
	defer rows.Close()

	return scanDrives(rows)
}

// Stats returns windowed drive aggregates since the given time.
func (r *DriveRepository) Stats(ctx context.Context, carID int64, since time.Time) (models.DriveStats, error) {
	var stats models.DriveStats
	query := `
		SELECT COUNT(*), SUM(distance), SUM(duration_min), MAX(speed_max)
		FROM drives
		WHERE start_date >= $1 AND ($2 = 0 OR car_id = $2)
	`
	err := r.db.Pool.QueryRow(ctx, query, since, carID).Scan(
		&stats.Count,
		&stats.TotalKm,
		&stats.TotalMin,
		&stats.MaxSpeedKmh,
	)
	if err != nil {
		return stats, fmt.Errorf("drive stats: %w", err)
	}
	return stats, nil
}

// EfficiencyTotals returns the sums the Wh/km derivation needs. Drives with
// zero distance are excluded, they carry no usable range delta.
func (r *DriveRepository) EfficiencyTotals(ctx context.Context, carID int64, since time.Time) (models.EfficiencyTotals, error) {
	var totals models.EfficiencyTotals
	query := `
		SELECT SUM(distance),
			SUM(start_ideal_range_km - end_ideal_range_km),
			COUNT(*)
		FROM drives
		WHERE start_date >= $1 AND ($2 = 0 OR car_id = $2) AND distance > 0
	`
	err := r.db.Pool.QueryRow(ctx, query, since, carID).Scan(
		&totals.TotalKm,
		&totals.TotalRangeUsed,
		&totals.TripCount,
	)
	if err != nil {
		return totals, fmt.Errorf("efficiency totals: %w", err)
	}
	return totals, nil
}
