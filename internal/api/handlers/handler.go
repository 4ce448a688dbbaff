package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teslamate-tools/teslachat/internal/journal"
	"github.com/teslamate-tools/teslachat/internal/models"
)

// Store interfaces over the repository layer. carID 0 means all vehicles.

type Pinger interface {
	Ping(ctx context.Context) error
}

type CarStore interface {
	List(ctx context.Context) ([]models.Car, error)
}

type DriveStore interface {
	Totals(ctx context.Context, carID int64) (models.DriveTotals, error)
	Recent(ctx context.Context, carID int64, limit int) ([]models.Drive, error)
	ListByDateRange(ctx context.Context, carID int64, start, end string) ([]models.Drive, error)
	Stats(ctx context.Context, carID int64, since time.Time) (models.DriveStats, error)
	EfficiencyTotals(ctx context.Context, carID int64, since time.Time) (models.EfficiencyTotals, error)
}

type ChargeStore interface {
	Stats(ctx context.Context, carID int64, since time.Time) (models.ChargingTotals, error)
}

type PositionStore interface {
	LatestBattery(ctx context.Context, carID int64) (*models.BatterySnapshot, error)
	BatteryHealth(ctx context.Context, carID int64) (*models.BatteryHealth, error)
	TemperatureStats(ctx context.Context, carID int64, since time.Time) (models.TemperatureStats, error)
	LatestTirePressure(ctx context.Context, carID int64) (*models.TirePressure, error)
}

type StateStore interface {
	Current(ctx context.Context, carID int64) (*models.StateInterval, error)
}

// Handler answers the query API.
type Handler struct {
	logger      *zap.Logger
	pinger      Pinger
	carStore    CarStore
	driveStore  DriveStore
	chargeStore ChargeStore
	posStore    PositionStore
	stateStore  StateStore
	synthesizer *journal.Synthesizer

	ratePerMil         float64
	batteryCapacityKwh float64
}

// NewHandler creates the handler.
func NewHandler(
	logger *zap.Logger,
	pinger Pinger,
	carStore CarStore,
	driveStore DriveStore,
	chargeStore ChargeStore,
	posStore PositionStore,
	stateStore StateStore,
	synthesizer *journal.Synthesizer,
	ratePerMil float64,
	batteryCapacityKwh float64,
) *Handler {
	return &Handler{
		logger:             logger,
		pinger:             pinger,
		carStore:           carStore,
		driveStore:         driveStore,
		chargeStore:        chargeStore,
		posStore:           posStore,
		stateStore:         stateStore,
		synthesizer:        synthesizer,
		ratePerMil:         ratePerMil,
		batteryCapacityKwh: batteryCapacityKwh,
	}
}

// RegisterRoutes wires the API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/cars", h.ListCars)

		// Distance and drives
		api.GET("/total-distance", h.TotalDistance)
		api.GET("/recent-drives", h.RecentDrives)
		api.GET("/drives-by-date", h.DrivesByDate)
		api.GET("/drive-stats", h.DriveStats)
		api.GET("/driving-journal", h.DrivingJournal)

		// Battery and climate snapshots
		api.GET("/battery-status", h.BatteryStatus)
		api.GET("/battery-health", h.BatteryHealth)
		api.GET("/temperature", h.Temperature)
		api.GET("/tire-pressure", h.TirePressure)
		api.GET("/car-state", h.CarState)

		// Charging and consumption
		api.GET("/charging-stats", h.ChargingStats)
		api.GET("/efficiency", h.Efficiency)
	}
}

// HealthCheck pings the database.
func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// fail logs the error and answers the uniform 500 envelope.
func (h *Handler) fail(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msg})
}

// carIDParam parses the optional car_id query param, 0 meaning all vehicles.
// Malformed or negative values are rejected with 400.
func carIDParam(c *gin.Context) (int64, bool) {
	raw := c.DefaultQuery("car_id", "0")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid car_id"})
		return 0, false
	}
	return id, true
}

// intParam parses an optional positive integer query param.
func intParam(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.DefaultQuery(name, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return v, true
}
