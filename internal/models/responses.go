package models

// Typed response bodies for every endpoint. Endpoints that can legitimately
// have nothing to report answer HTTP 200 with the Error field set; only
// transport and database failures map to non-2xx statuses.

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

type CarsResponse struct {
	Cars []Car `json:"cars"`
}

type TotalDistanceResponse struct {
	TotalDistance float64 `json:"total_distance"`
	Unit          string  `json:"unit"`
	TotalTrips    int64   `json:"total_trips"`
}

type BatteryStatusResponse struct {
	BatteryLevelPercent       *int     `json:"battery_level_percent,omitempty"`
	UsableBatteryLevelPercent *int     `json:"usable_battery_level_percent,omitempty"`
	RatedRangeKm              *float64 `json:"rated_range_km,omitempty"`
	IdealRangeKm              *float64 `json:"ideal_range_km,omitempty"`
	EstimatedRangeKm          *float64 `json:"estimated_range_km,omitempty"`
	BatteryHeaterOn           bool     `json:"battery_heater_on"`
	LastUpdated               string   `json:"last_updated,omitempty"`
	CarName                   string   `json:"car_name,omitempty"`
	CarModel                  string   `json:"car_model,omitempty"`
	Error                     string   `json:"error,omitempty"`
}

type BatteryHealthResponse struct {
	BatteryLevelPercent     int     `json:"battery_level_percent,omitempty"`
	CurrentRatedRangeKm     float64 `json:"current_rated_range_km,omitempty"`
	ProjectedFullRangeKm    float64 `json:"projected_full_range_km,omitempty"`
	MaxProjectedFullRangeKm float64 `json:"max_projected_full_range_km,omitempty"`
	RangeDegradationPercent float64 `json:"range_degradation_percent"`
	LastUpdated             string  `json:"last_updated,omitempty"`
	Error                   string  `json:"error,omitempty"`
}

type TemperatureResponse struct {
	PeriodHours      int      `json:"period_hours"`
	InsideAvgC       *float64 `json:"inside_avg_c,omitempty"`
	InsideMinC       *float64 `json:"inside_min_c,omitempty"`
	InsideMaxC       *float64 `json:"inside_max_c,omitempty"`
	OutsideAvgC      *float64 `json:"outside_avg_c,omitempty"`
	OutsideMinC      *float64 `json:"outside_min_c,omitempty"`
	OutsideMaxC      *float64 `json:"outside_max_c,omitempty"`
	SamplesAnalyzed  int64    `json:"samples_analyzed"`
	Error            string   `json:"error,omitempty"`
}

type TirePressureResponse struct {
	FrontLeftBar  *float64 `json:"front_left_bar,omitempty"`
	FrontRightBar *float64 `json:"front_right_bar,omitempty"`
	RearLeftBar   *float64 `json:"rear_left_bar,omitempty"`
	RearRightBar  *float64 `json:"rear_right_bar,omitempty"`
	LastUpdated   string   `json:"last_updated,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type CarStateResponse struct {
	State          string  `json:"state,omitempty"`
	Since          string  `json:"since,omitempty"`
	MinutesInState float64 `json:"minutes_in_state,omitempty"`
	Error          string  `json:"error,omitempty"`
}

type DriveStatsResponse struct {
	PeriodDays         int     `json:"period_days"`
	TotalDrives        int64   `json:"total_drives"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	AvgSpeedKmh        float64 `json:"avg_speed_kmh"`
	MaxSpeedKmh        int     `json:"max_speed_kmh"`
	Error              string  `json:"error,omitempty"`
}

type ChargingStatsResponse struct {
	PeriodDays             int     `json:"period_days"`
	TotalChargingSessions  int64   `json:"total_charging_sessions"`
	TotalEnergyKwh         float64 `json:"total_energy_kwh"`
	AverageKwhPerSession   float64 `json:"average_kwh_per_session"`
	TotalChargingTimeHours float64 `json:"total_charging_time_hours"`
	TotalCost              float64 `json:"total_cost"`
	Error                  string  `json:"error,omitempty"`
}

type EfficiencyResponse struct {
	PeriodDays         int     `json:"period_days"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	AverageWhPerKm     float64 `json:"average_wh_per_km"`
	AverageKwhPer100Km float64 `json:"average_kwh_per_100km"`
	TripCount          int64   `json:"trip_count"`
	Error              string  `json:"error,omitempty"`
}

type RecentDrivesResponse struct {
	RecentDrives []Drive `json:"recent_drives"`
	Count        int     `json:"count"`
}

type DrivesByDateResponse struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Drives           []Drive `json:"drives"`
	Count            int     `json:"count"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationMin int     `json:"total_duration_min"`
}

type DrivingJournalResponse struct {
	Period  JournalPeriod  `json:"period"`
	Entries []JournalEntry `json:"entries"`
	Summary JournalSummary `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
