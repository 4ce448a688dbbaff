package models

import "time"

// Car is a row from the TeslaMate cars table.
type Car struct {
	ID          int64     `json:"id" db:"id"`
	VIN         string    `json:"vin" db:"vin"`
	Model       *string   `json:"model" db:"model"`
	TrimBadging *string   `json:"trim_badging" db:"trim_badging"`
	Name        *string   `json:"name" db:"name"`
	Efficiency  *float64  `json:"efficiency" db:"efficiency"`
	InsertedAt  time.Time `json:"inserted_at" db:"inserted_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Drive is a completed drive with address labels resolved via the
// addresses table ("Unknown" when unresolved).
type Drive struct {
	StartDate         time.Time  `json:"start_date" db:"start_date"`
	EndDate           *time.Time `json:"end_date" db:"end_date"`
	DistanceKm        float64    `json:"distance_km" db:"distance_km"`
	DurationMin       int        `json:"duration_min" db:"duration_min"`
	StartLocation     string     `json:"start_location" db:"start_location"`
	EndLocation       string     `json:"end_location" db:"end_location"`
	StartIdealRangeKm *float64   `json:"start_ideal_range_km" db:"start_ideal_range_km"`
	EndIdealRangeKm   *float64   `json:"end_ideal_range_km" db:"end_ideal_range_km"`
	RangeUsedKm       *float64   `json:"range_used_km" db:"range_used_km"`
}

// BatterySnapshot is the latest positions row joined to its car.
type BatterySnapshot struct {
	BatteryLevel       *int      `db:"battery_level"`
	UsableBatteryLevel *int      `db:"usable_battery_level"`
	RatedRangeKm       *float64  `db:"rated_battery_range_km"`
	IdealRangeKm       *float64  `db:"ideal_battery_range_km"`
	EstRangeKm         *float64  `db:"est_battery_range_km"`
	BatteryHeater      *bool     `db:"battery_heater"`
	Date               time.Time `db:"date"`
	CarName            *string   `db:"car_name"`
	CarModel           *string   `db:"model"`
}

// BatteryHealth compares the current full-charge range projection against
// the best projection ever recorded.
type BatteryHealth struct {
	CurrentProjectedRangeKm float64
	MaxProjectedRangeKm     float64
	BatteryLevel            int
	RatedRangeKm            float64
	Date                    time.Time
}

// TemperatureStats aggregates positions over a recent window.
type TemperatureStats struct {
	InsideAvg  *float64
	InsideMin  *float64
	InsideMax  *float64
	OutsideAvg *float64
	OutsideMin *float64
	OutsideMax *float64
	Samples    int64
}

// TirePressure is the latest TPMS reading, in bar.
type TirePressure struct {
	FrontLeft  *float64
	FrontRight *float64
	RearLeft   *float64
	RearRight  *float64
	Date       time.Time
}

// StateInterval is a row from the TeslaMate states table.
type StateInterval struct {
	State     string     `json:"state" db:"state"`
	StartDate time.Time  `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date" db:"end_date"`
}

// DriveTotals are the all-time sums over drives.
type DriveTotals struct {
	TotalKm    *float64
	TotalTrips int64
}

// DriveStats are windowed drive aggregates.
type DriveStats struct {
	Count       int64
	TotalKm     *float64
	TotalMin    *float64
	MaxSpeedKmh *int
}

// ChargingTotals are windowed charging aggregates.
type ChargingTotals struct {
	Sessions  int64
	TotalKwh  *float64
	AvgKwh    *float64
	TotalMin  *float64
	TotalCost *float64
}

// EfficiencyTotals feed the Wh/km derivation.
type EfficiencyTotals struct {
	TotalKm        *float64
	TotalRangeUsed *float64
	TripCount      int64
}

// JournalEntry is one day of the synthesized driving journal.
type JournalEntry struct {
	Date              string  `json:"date"`
	Weekday           string  `json:"weekday"`
	Start             string  `json:"start"`
	Destination       string  `json:"destination"`
	Purpose           string  `json:"purpose"`
	DistanceKmActual  float64 `json:"distance_km_actual"`
	DistanceKmJournal float64 `json:"distance_km_journal"`
	DistanceMil       float64 `json:"distance_mil"`
	ReimbursementSek  float64 `json:"reimbursement_sek"`
	NumTrips          int     `json:"num_trips"`
}

// JournalSummary aggregates the entries of a period.
type JournalSummary struct {
	TotalDays             int     `json:"total_days"`
	TotalMil              float64 `json:"total_mil"`
	TotalKm               float64 `json:"total_km"`
	TotalReimbursementSek float64 `json:"total_reimbursement_sek"`
	RatePerMil            float64 `json:"rate_per_mil"`
}

// JournalPeriod echoes the queried date range.
type JournalPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
