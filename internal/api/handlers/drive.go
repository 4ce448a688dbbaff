package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// kmPerMile converts between the store's kilometers and statute miles.
const kmPerMile = 1.60934

// TotalDistance returns the all-time distance sum and trip count.
// unit=mi converts to miles, anything else stays kilometers.
func (h *Handler) TotalDistance(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	unit := c.DefaultQuery("unit", "km")

	totals, err := h.driveStore.Totals(c.Request.Context(), carID)
	if err != nil {
		h.fail(c, "Failed to read total distance", err)
		return
	}

	if totals.TotalKm == nil {
		c.JSON(http.StatusOK, models.TotalDistanceResponse{
			TotalDistance: 0,
			Unit:          unit,
			TotalTrips:    0,
		})
		return
	}

	total := *totals.TotalKm
	unitLabel := "kilometer"
	if unit == "mi" {
		total = total / kmPerMile
		unitLabel = "miles"
	}

	c.JSON(http.StatusOK, models.TotalDistanceResponse{
		TotalDistance: round2(total),
		Unit:          unitLabel,
		TotalTrips:    totals.TotalTrips,
	})
}

// RecentDrives returns the newest N drives, limit capped at 50.
func (h *Handler) RecentDrives(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	limit, ok := intParam(c, "limit", 10)
	if !ok {
		return
	}
	if limit > 50 {
		limit = 50
	}

	drives, err := h.driveStore.Recent(c.Request.Context(), carID, limit)
	if err != nil {
		h.fail(c, "Failed to list recent drives", err)
		return
	}
	if drives == nil {
		drives = []models.Drive{}
	}

	c.JSON(http.StatusOK, models.RecentDrivesResponse{
		RecentDrives: drives,
		Count:        len(drives),
	})
}

// DrivesByDate returns drives in an inclusive date range plus totals.
func (h *Handler) DrivesByDate(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	start := c.Query("start_date")
	if start == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "start_date is required"})
		return
	}
	end := c.Query("end_date")
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}

	drives, err := h.driveStore.ListByDateRange(c.Request.Context(), carID, start, end)
	if err != nil {
		h.fail(c, "Failed to list drives by date", err)
		return
	}
	if drives == nil {
		drives = []models.Drive{}
	}

	var totalKm float64
	var totalMin int
	for _, d := range drives {
		totalKm += d.DistanceKm
		totalMin += d.DurationMin
	}

	c.JSON(http.StatusOK, models.DrivesByDateResponse{
		StartDate:        start,
		EndDate:          end,
		Drives:           drives,
		Count:            len(drives),
		TotalDistanceKm:  round2(totalKm),
		TotalDurationMin: totalMin,
	})
}

// DriveStats returns windowed drive aggregates, default window 30 days.
func (h *Handler) DriveStats(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	days, ok := intParam(c, "days", 30)
	if !ok {
		return
	}

	since := time.Now().AddDate(0, 0, -days)
	stats, err := h.driveStore.Stats(c.Request.Context(), carID, since)
	if err != nil {
		h.fail(c, "Failed to read drive stats", err)
		return
	}

	if stats.Count == 0 || stats.TotalKm == nil {
		c.JSON(http.StatusOK, models.DriveStatsResponse{
			PeriodDays: days,
			Error:      fmt.Sprintf("No drive data found for last %d days", days),
		})
		return
	}

	totalKm := *stats.TotalKm
	var totalMin float64
	if stats.TotalMin != nil {
		totalMin = *stats.TotalMin
	}
	var avgSpeed float64
	if totalMin > 0 {
		avgSpeed = totalKm / (totalMin / 60)
	}
	var maxSpeed int
	if stats.MaxSpeedKmh != nil {
		maxSpeed = *stats.MaxSpeedKmh
	}

	c.JSON(http.StatusOK, models.DriveStatsResponse{
		PeriodDays:         days,
		TotalDrives:        stats.Count,
		TotalDistanceKm:    round2(totalKm),
		TotalDurationHours: round2(totalMin / 60),
		AvgSpeedKmh:        round1(avgSpeed),
		MaxSpeedKmh:        maxSpeed,
	})
}

// Efficiency derives Wh/km from distance and ideal range used.
func (h *Handler) Efficiency(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}
	days, ok := intParam(c, "days", 30)
	if !ok {
		return
	}

	since := time.Now().AddDate(0, 0, -days)
	totals, err := h.driveStore.EfficiencyTotals(c.Request.Context(), carID, since)
	if err != nil {
		h.fail(c, "Failed to read efficiency totals", err)
		return
	}

	if totals.TotalKm == nil || totals.TotalRangeUsed == nil || *totals.TotalKm <= 0 {
		c.JSON(http.StatusOK, models.EfficiencyResponse{
			PeriodDays: days,
			Error:      fmt.Sprintf("No drive data found for last %d days", days),
		})
		return
	}

	totalKm := *totals.TotalKm
	rangeUsed := *totals.TotalRangeUsed
	kwhPerKm := (rangeUsed / totalKm) * (h.batteryCapacityKwh / 400)

	c.JSON(http.StatusOK, models.EfficiencyResponse{
		PeriodDays:         days,
		TotalDistanceKm:    round2(totalKm),
		AverageWhPerKm:     round2(kwhPerKm * 1000),
		AverageKwhPer100Km: round2(kwhPerKm * 100),
		TripCount:          totals.TripCount,
	})
}

// round1 rounds half away from zero to one decimal.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 rounds half away from zero to two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
