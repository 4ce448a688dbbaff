package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teslamate-tools/teslachat/internal/journal"
	"github.com/teslamate-tools/teslachat/internal/models"
)

// DrivingJournal synthesizes the day-bucketed reimbursement ledger for a
// date range. rate_per_mil overrides the configured rate (default 25 SEK).
func (h *Handler) DrivingJournal(c *gin.Context) {
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

	rate := h.ratePerMil
	if rate <= 0 {
		rate = journal.DefaultRatePerMil
	}
	if raw := c.Query("rate_per_mil"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid rate_per_mil"})
			return
		}
		rate = parsed
	}

	drives, err := h.driveStore.ListByDateRange(c.Request.Context(), carID, start, end)
	if err != nil {
		h.fail(c, "Failed to list drives for journal", err)
		return
	}

	entries, summary := h.synthesizer.Build(drives, rate)
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	c.JSON(http.StatusOK, models.DrivingJournalResponse{
		Period:  models.JournalPeriod{Start: start, End: end},
		Entries: entries,
		Summary: summary,
	})
}
