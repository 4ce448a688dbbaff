package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// ChargingStats returns windowed charging aggregates, default window 30 days.
func (h *Handler) ChargingStats(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	days, ok := intParam(c, "days", 30)
	if !ok {
		return
	}

	since := time.Now().AddDate(0, 0, -days)
	totals, err := h.chargeStore.Stats(c.Request.Context(), carID, since)
	if err != nil {
		h.fail(c, "Failed to read charging stats", err)
		return
	}

	if totals.Sessions == 0 {
		c.JSON(http.StatusOK, models.ChargingStatsResponse{
			PeriodDays: days,
			Error:      fmt.Sprintf("No charging data found for last %d days", days),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChargingStatsResponse{
		PeriodDays:             days,
		TotalChargingSessions:  totals.Sessions,
		TotalEnergyKwh:         round2(deref(totals.TotalKwh)),
		AverageKwhPerSession:   round2(deref(totals.AvgKwh)),
		TotalChargingTimeHours: round2(deref(totals.TotalMin) / 60),
		TotalCost:              round2(deref(totals.TotalCost)),
	})
}

// deref reads an optional float, nil as zero.
func deref(x *float64) float64 {
	if x == nil {
		return 0
	}
	return *x
}
