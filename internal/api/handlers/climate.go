package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// Temperature aggregates inside/outside temperatures, default window 24h.
func (h *Handler) Temperature(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	hours, ok := intParam(c, "hours", 24)
	if !ok {
		return
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	stats, err := h.posStore.TemperatureStats(c.Request.Context(), carID, since)
	if err != nil {
		h.fail(c, "Failed to read temperatures", err)
		return
	}

	if stats.Samples == 0 || (stats.InsideAvg == nil && stats.OutsideAvg == nil) {
		c.JSON(http.StatusOK, models.TemperatureResponse{
			PeriodHours: hours,
			Error:       fmt.Sprintf("No temperature data found for last %d hours", hours),
		})
		return
	}

	c.JSON(http.StatusOK, models.TemperatureResponse{
		PeriodHours:     hours,
		InsideAvgC:      round1p(stats.InsideAvg),
		InsideMinC:      round1p(stats.InsideMin),
		InsideMaxC:      round1p(stats.InsideMax),
		OutsideAvgC:     round1p(stats.OutsideAvg),
		OutsideMinC:     round1p(stats.OutsideMin),
		OutsideMaxC:     round1p(stats.OutsideMax),
		SamplesAnalyzed: stats.Samples,
	})
}

// TirePressure returns the latest TPMS reading.
func (h *Handler) TirePressure(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	tp, err := h.posStore.LatestTirePressure(c.Request.Context(), carID)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusOK, models.TirePressureResponse{Error: "No tire pressure data found"})
		return
	}
	if err != nil {
		h.fail(c, "Failed to read tire pressure", err)
		return
	}

	c.JSON(http.StatusOK, models.TirePressureResponse{
		FrontLeftBar:  tp.FrontLeft,
		FrontRightBar: tp.FrontRight,
		RearLeftBar:   tp.RearLeft,
		RearRightBar:  tp.RearRight,
		LastUpdated:   tp.Date.Format(time.RFC3339),
	})
}

// CarState returns the most recent state interval.
func (h *Handler) CarState(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	state, err := h.stateStore.Current(c.Request.Context(), carID)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusOK, models.CarStateResponse{Error: "No state data found"})
		return
	}
	if err != nil {
		h.fail(c, "Failed to read car state", err)
		return
	}

	until := time.Now()
	if state.EndDate != nil {
		until = *state.EndDate
	}

	c.JSON(http.StatusOK, models.CarStateResponse{
		State:          state.State,
		Since:          state.StartDate.Format(time.RFC3339),
		MinutesInState: round1(until.Sub(state.StartDate).Minutes()),
	})
}

// round1p rounds an optional value to one decimal, keeping nil.
func round1p(x *float64) *float64 {
	if x == nil {
		return nil
	}
	v := round1(*x)
	return &v
}
