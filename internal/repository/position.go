package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// PositionRepository reads the positions table.
type PositionRepository struct {
	db *DB
}

// NewPositionRepository creates the repository.
func NewPositionRepository(db *DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// LatestBattery returns the newest position joined to its car.
// Returns pgx.ErrNoRows when the store holds no positions.
func (r *PositionRepository) LatestBattery(ctx context.Context, carID int64) (*models.BatterySnapshot, error) {
	query := `
		SELECT p.battery_level, p.usable_battery_level,
			p.rated_battery_range_km, p.ideal_battery_range_km, p.est_battery_range_km,
			p.battery_heater, p.date,
			c.name AS car_name, c.model
		FROM positions p
		JOIN cars c ON c.id = p.car_id
		WHERE ($1 = 0 OR p.car_id = $1)
		ORDER BY p.date DESC LIMIT 1
	`
	snap := &models.BatterySnapshot{}
	err := r.db.Pool.QueryRow(ctx, query, carID).Scan(
		&snap.BatteryLevel,
		&snap.UsableBatteryLevel,
		&snap.RatedRangeKm,
		&snap.IdealRangeKm,
		&snap.EstRangeKm,
		&snap.BatteryHeater,
		&snap.Date,
		&snap.CarName,
		&snap.CarModel,
	)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// BatteryHealth projects the current full-charge rated range from the latest
// position and compares it against the best projection on record. Positions
// below 10% battery are excluded from the historical maximum.
func (r *PositionRepository) BatteryHealth(ctx context.Context, carID int64) (*models.BatteryHealth, error) {
	current := `
		SELECT battery_level, rated_battery_range_km, date,
			rated_battery_range_km / battery_level * 100.0
		FROM positions
		WHERE ($1 = 0 OR car_id = $1)
			AND battery_level > 0 AND rated_battery_range_km IS NOT NULL
		ORDER BY date DESC LIMIT 1
	`
	health := &models.BatteryHealth{}
	err := r.db.Pool.QueryRow(ctx, current, carID).Scan(
		&health.BatteryLevel,
		&health.RatedRangeKm,
		&health.Date,
		&health.CurrentProjectedRangeKm,
	)
	if err != nil {
		return nil, err
	}

	maxProjected := `
		SELECT MAX(rated_battery_range_km / battery_level * 100.0)
		FROM positions
		WHERE ($1 = 0 OR car_id = $1)
			AND battery_level >= 10 AND rated_battery_range_km IS NOT NULL
	`
	var maxRange *float64
	if err := r.db.Pool.QueryRow(ctx, maxProjected, carID).Scan(&maxRange); err != nil {
		return nil, fmt.Errorf("max projected range: %w", err)
	}
	if maxRange != nil {
		health.MaxProjectedRangeKm = *maxRange
	}

	return health, nil
}

// TemperatureStats aggregates inside/outside temperatures since the given time.
func (r *PositionRepository) TemperatureStats(ctx context.Context, carID int64, since time.Time) (models.TemperatureStats, error) {
	var stats models.TemperatureStats
	query := `
		SELECT AVG(inside_temp), MIN(inside_temp), MAX(inside_temp),
			AVG(outside_temp), MIN(outside_temp), MAX(outside_temp),
			COUNT(*)
		FROM positions
		WHERE date >= $1 AND ($2 = 0 OR car_id = $2)
	`
	err := r.db.Pool.QueryRow(ctx, query, since, carID).Scan(
		&stats.InsideAvg,
		&stats.InsideMin,
		&stats.InsideMax,
		&stats.OutsideAvg,
		&stats.OutsideMin,
		&stats.OutsideMax,
		&stats.Samples,
	)
	if err != nil {
		return stats, fmt.Errorf("temperature stats: %w", err)
	}
	return stats, nil
}

// LatestTirePressure returns the newest position carrying TPMS readings.
func (r *PositionRepository) LatestTirePressure(ctx context.Context, carID int64) (*models.TirePressure, error) {
	query := `
		SELECT tpms_pressure_fl, tpms_pressure_fr, tpms_pressure_rl, tpms_pressure_rr, date
		FROM positions
		WHERE ($1 = 0 OR car_id = $1) AND tpms_pressure_fl IS NOT NULL
		ORDER BY date DESC LIMIT 1
	`
	tp := &models.TirePressure{}
	err := r.db.Pool.QueryRow(ctx, query, carID).Scan(
		&tp.FrontLeft,
		&tp.FrontRight,
		&tp.RearLeft,
		&tp.RearRight,
		&tp.Date,
	)
	if err != nil {
		return nil, err
	}
	return tp, nil
}
