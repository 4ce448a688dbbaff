package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// BatteryStatus returns the latest battery snapshot.
func (h *Handler) BatteryStatus(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	snap, err := h.posStore.LatestBattery(c.Request.Context(), carID)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusOK, models.BatteryStatusResponse{Error: "No battery data found"})
		return
	}
	if err != nil {
		h.fail(c, "Failed to read battery status", err)
		return
	}

	resp := models.BatteryStatusResponse{
		BatteryLevelPercent:       snap.BatteryLevel,
		UsableBatteryLevelPercent: snap.UsableBatteryLevel,
		RatedRangeKm:              snap.RatedRangeKm,
		IdealRangeKm:              snap.IdealRangeKm,
		EstimatedRangeKm:          snap.EstRangeKm,
		LastUpdated:               snap.Date.Format(time.RFC3339),
	}
	if snap.BatteryHeater != nil {
		resp.BatteryHeaterOn = *snap.BatteryHeater
	}
	if snap.CarName != nil {
		resp.CarName = *snap.CarName
	}
	if snap.CarModel != nil {
		resp.CarModel = *snap.CarModel
	}

	c.JSON(http.StatusOK, resp)
}

// BatteryHealth estimates range degradation against the best full-charge
// projection on record.
func (h *Handler) BatteryHealth(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	health, err := h.posStore.BatteryHealth(c.Request.Context(), carID)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusOK, models.BatteryHealthResponse{Error: "No battery data found"})
		return
	}
	if err != nil {
		h.fail(c, "Failed to read battery health", err)
		return
	}

	var degradation float64
	if health.MaxProjectedRangeKm > 0 {
		degradation = (1 - health.CurrentProjectedRangeKm/health.MaxProjectedRangeKm) * 100
		if degradation < 0 {
			degradation = 0
		}
	}

	c.JSON(http.StatusOK, models.BatteryHealthResponse{
		BatteryLevelPercent:     health.BatteryLevel,
		CurrentRatedRangeKm:     round1(health.RatedRangeKm),
		ProjectedFullRangeKm:    round1(health.CurrentProjectedRangeKm),
		MaxProjectedFullRangeKm: round1(health.MaxProjectedRangeKm),
		RangeDegradationPercent: round1(degradation),
		LastUpdated:             health.Date.Format(time.RFC3339),
	})
}
