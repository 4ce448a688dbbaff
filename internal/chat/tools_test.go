package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func toolsFor(handler http.HandlerFunc) (*Tools, *httptest.Server) {
	srv := httptest.NewServer(handler)
	tools := NewTools(NewClient(srv.URL, time.Second))
	tools.now = func() time.Time {
		return time.Date(2024, time.June, 15, 13, 30, 0, 0, time.UTC)
	}
	return tools, srv
}

func TestCurrentDate(t *testing.T) {
	tools := NewTools(NewClient("http://localhost:8000", time.Second))
	tools.now = func() time.Time {
		// 2024-06-15 is a Saturday in ISO week 24.
		return time.Date(2024, time.June, 15, 13, 30, 0, 0, time.UTC)
	}

	out := tools.CurrentDate()

	assert.Contains(t, out, "**Dagens datum:** 2024-06-15")
	assert.Contains(t, out, "**Tid:** 13:30")
	assert.Contains(t, out, "**Veckodag:** Lördag")
	assert.Contains(t, out, "**Vecka:** 24")
}

func TestBatteryStatusRendering(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"battery_level_percent": 72,
			"usable_battery_level_percent": 70,
			"rated_range_km": 380.5,
			"battery_heater_on": true,
			"car_name": "Bulldog",
			"car_model": "3",
			"last_updated": "2024-06-15T12:00:00Z"
		}`))
	})
	defer srv.Close()

	out := tools.BatteryStatus(context.Background())

	assert.Contains(t, out, "**Battery Status**")
	assert.Contains(t, out, "- Battery Level: 72%")
	assert.Contains(t, out, "- Rated Range: 380.5 km")
	assert.Contains(t, out, "- Battery Heater: On")
	assert.Contains(t, out, "- Car: Bulldog (3)")
}

func TestBatteryStatusNoData(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "No battery data found"}`))
	})
	defer srv.Close()

	out := tools.BatteryStatus(context.Background())

	assert.Equal(t, "Error: No battery data found", out)
}

func TestConnectionErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	tools := NewTools(NewClient(srv.URL, time.Second))

	out := tools.BatteryStatus(context.Background())

	assert.Equal(t, "Error: "+msgUnreachable, out)
}

func TestTimeoutMessage(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	defer srv.Close()
	tools.client.httpClient.Timeout = 50 * time.Millisecond

	out := tools.BatteryStatus(context.Background())

	assert.Equal(t, "Error: "+msgTimeout, out)
}

func TestTotalDistanceUnits(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_distance": 50000, "unit": "kilometer", "total_trips": 1234}`))
	})
	defer srv.Close()

	out := tools.TotalDistance(context.Background())

	assert.Contains(t, out, "50000.0 km")
	assert.Contains(t, out, "5000.0 Swedish mil")
	assert.Contains(t, out, "31068.7 miles")
	assert.Contains(t, out, "Total recorded trips: 1234")
}

func TestDrivingJournalTable(t *testing.T) {
	longDest := strings.Repeat("Storgatan ", 6) // 60 runes
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-06-08", r.URL.Query().Get("start_date")) // default 7 days back
		assert.Equal(t, "2024-06-15", r.URL.Query().Get("end_date"))
		w.Write([]byte(`{
			"period": {"start": "2024-06-08", "end": "2024-06-15"},
			"entries": [{
				"date": "2024-06-10",
				"weekday": "Mandag",
				"start": "Home",
				"destination": "` + longDest + `",
				"purpose": "Tjansteresa",
				"distance_km_actual": 90,
				"distance_km_journal": 95.8,
				"distance_mil": 9.6,
				"reimbursement_sek": 240,
				"num_trips": 2
			}],
			"summary": {
				"total_days": 1, "total_mil": 9.6, "total_km": 96,
				"total_reimbursement_sek": 240, "rate_per_mil": 25
			}
		}`))
	})
	defer srv.Close()

	out := tools.DrivingJournal(context.Background(), "", "")

	assert.Contains(t, out, "**Körjournal 2024-06-08 — 2024-06-15**")
	assert.Contains(t, out, "| Datum | Dag | Destination | Km | Mil | Ersättning |")
	assert.Contains(t, out, "| 2024-06-10 | Mandag |")
	// 60-rune destination truncated to 37 + ellipsis
	assert.Contains(t, out, string([]rune(longDest)[:37])+"...")
	assert.NotContains(t, out, longDest)
	assert.Contains(t, out, "- Antal dagar: 1")
	assert.Contains(t, out, "- Total sträcka: 9.6 mil (96 km)")
	assert.Contains(t, out, "- Milersättning: 25 kr/mil")
}

func TestDrivingJournalEmpty(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"period": {"start": "2024-06-01", "end": "2024-06-15"}, "entries": [], "summary": {}}`))
	})
	defer srv.Close()

	out := tools.DrivingJournal(context.Background(), "2024-06-01", "")

	assert.Equal(t, "No driving data found for 2024-06-01 to 2024-06-15.", out)
}

func TestDrivesByDateResolvesRelativeTerms(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-06-14", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-06-15", r.URL.Query().Get("end_date"))
		w.Write([]byte(`{"start_date": "2024-06-14", "end_date": "2024-06-15", "drives": [], "count": 0}`))
	})
	defer srv.Close()

	out := tools.DrivesByDate(context.Background(), "igår", "")

	assert.Equal(t, "No drives found between 2024-06-14 and 2024-06-15.", out)
}

func TestCarStateLocalized(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"state": "asleep", "since": "2024-06-15T10:00:00Z", "minutes_in_state": 210}`))
	})
	defer srv.Close()

	out := tools.CarState(context.Background())

	assert.Contains(t, out, "- State: Sover")
	assert.Contains(t, out, "- Minutes in state: 210")
}

func TestHealthStatus(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "healthy", "database": "connected"}`))
	})
	defer srv.Close()

	out := tools.HealthStatus(context.Background())

	assert.Contains(t, out, "- API: Running")
	assert.Contains(t, out, "- Database: connected")
}

func TestRecentDrivesRendering(t *testing.T) {
	tools, srv := toolsFor(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit")) // capped from 99
		w.Write([]byte(`{
			"recent_drives": [{
				"start_date": "2024-06-15T08:30:00Z",
				"distance_km": 12.3,
				"duration_min": 18,
				"start_location": "Home",
				"end_location": "Office"
			}],
			"count": 1
		}`))
	})
	defer srv.Close()

	out := tools.RecentDrives(context.Background(), 99)

	assert.Contains(t, out, "**Last 1 Drives**")
	assert.Contains(t, out, "1. **2024-06-15 08:30** — 12.3 km, 18 min")
	assert.Contains(t, out, "   Home → Office")
}
