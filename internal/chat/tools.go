package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teslamate-tools/teslachat/internal/dateparse"
)

// Fixed messages for the two transport failure shapes. Anything else is
// rendered with its own error text.
const (
	msgUnreachable = "Could not connect to TeslaMate API. Is the service running?"
	msgTimeout     = "TeslaMate API timed out"
)

// maxDestinationLen bounds destination labels in the journal table.
const maxDestinationLen = 40

// weekdaysSv indexes Swedish weekday names by time.Weekday.
var weekdaysSv = [7]string{"Söndag", "Måndag", "Tisdag", "Onsdag", "Torsdag", "Fredag", "Lördag"}

// statesSv localizes the TeslaMate state labels.
var statesSv = map[string]string{
	"driving":   "Kör",
	"charging":  "Laddar",
	"online":    "Online",
	"asleep":    "Sover",
	"suspended": "Vilande",
	"offline":   "Offline",
	"updating":  "Uppdaterar",
}

// Tools renders each API capability as markdown/plain text. Transport errors
// never propagate; they become one of the fixed messages.
type Tools struct {
	client *Client
	now    func() time.Time
}

// NewTools creates the tool set.
func NewTools(client *Client) *Tools {
	return &Tools{client: client, now: time.Now}
}

func errMessage(err error) string {
	switch {
	case errors.Is(err, ErrAPIUnreachable):
		return "Error: " + msgUnreachable
	case errors.Is(err, ErrAPITimeout):
		return "Error: " + msgTimeout
	default:
		return "Error: " + err.Error()
	}
}

// CurrentDate reports today's date, time, weekday and ISO week, the
// reference for every relative date expression.
func (t *Tools) CurrentDate() string {
	now := t.now()
	_, week := now.ISOWeek()
	return fmt.Sprintf(
		"**Dagens datum:** %s\n**Tid:** %s\n**Veckodag:** %s\n**Vecka:** %d\n\n"+
			"Use this date as reference for 'senaste veckan', 'denna månad', etc.",
		now.Format("2006-01-02"), now.Format("15:04"), weekdaysSv[now.Weekday()], week)
}

// CarInfo describes the logged vehicles.
func (t *Tools) CarInfo(ctx context.Context) string {
	data, err := t.client.Cars(ctx)
	if err != nil {
		return errMessage(err)
	}
	if len(data.Cars) == 0 {
		return "No cars found in TeslaMate."
	}

	var lines []string
	for _, car := range data.Cars {
		lines = append(lines, fmt.Sprintf("**%s**", strOr(car.Name, "Unknown")))
		lines = append(lines, fmt.Sprintf("- Model: Tesla %s", strOr(car.Model, "Unknown")))
		if car.TrimBadging != nil && *car.TrimBadging != "" {
			lines = append(lines, fmt.Sprintf("- Trim: %s", *car.TrimBadging))
		}
		lines = append(lines, fmt.Sprintf("- VIN: %s", car.VIN))
		if car.Efficiency != nil {
			lines = append(lines, fmt.Sprintf("- Efficiency: %v kWh/km", *car.Efficiency))
		}
		lines = append(lines, fmt.Sprintf("- Added: %s", car.InsertedAt.Format("2006-01-02")))
	}
	return strings.Join(lines, "\n")
}

// BatteryStatus renders the latest battery snapshot.
func (t *Tools) BatteryStatus(ctx context.Context) string {
	data, err := t.client.BatteryStatus(ctx)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	heater := "Off"
	if data.BatteryHeaterOn {
		heater = "On"
	}
	return strings.Join([]string{
		"**Battery Status**",
		fmt.Sprintf("- Battery Level: %s%%", intOr(data.BatteryLevelPercent)),
		fmt.Sprintf("- Usable Battery: %s%%", intOr(data.UsableBatteryLevelPercent)),
		fmt.Sprintf("- Rated Range: %s km", floatOr(data.RatedRangeKm)),
		fmt.Sprintf("- Ideal Range: %s km", floatOr(data.IdealRangeKm)),
		fmt.Sprintf("- Estimated Range: %s km", floatOr(data.EstimatedRangeKm)),
		fmt.Sprintf("- Battery Heater: %s", heater),
		fmt.Sprintf("- Car: %s (%s)", data.CarName, data.CarModel),
		fmt.Sprintf("- Last Updated: %s", data.LastUpdated),
	}, "\n")
}

// BatteryHealth renders the degradation estimate.
func (t *Tools) BatteryHealth(ctx context.Context) string {
	data, err := t.client.BatteryHealth(ctx)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	return strings.Join([]string{
		"**Battery Health**",
		fmt.Sprintf("- Current Charge: %d%%", data.BatteryLevelPercent),
		fmt.Sprintf("- Rated Range Now: %.1f km", data.CurrentRatedRangeKm),
		fmt.Sprintf("- Projected Full Range: %.1f km", data.ProjectedFullRangeKm),
		fmt.Sprintf("- Best Recorded Full Range: %.1f km", data.MaxProjectedFullRangeKm),
		fmt.Sprintf("- Range Degradation: %.1f%%", data.RangeDegradationPercent),
	}, "\n")
}

// TotalDistance renders the all-time distance in km, Swedish mil and miles.
func (t *Tools) TotalDistance(ctx context.Context) string {
	data, err := t.client.TotalDistance(ctx)
	if err != nil {
		return errMessage(err)
	}

	km := data.TotalDistance
	return fmt.Sprintf(
		"**Total Distance**\n- %.1f km (%.1f Swedish mil / %.1f miles)\n- Total recorded trips: %d",
		km, km/10, km/1.60934, data.TotalTrips)
}

// ChargingStats renders charging aggregates for the last days.
func (t *Tools) ChargingStats(ctx context.Context, days int) string {
	data, err := t.client.ChargingStats(ctx, days)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	return fmt.Sprintf(
		"**Charging Statistics (last %d days)**\n"+
			"- Sessions: %d\n"+
			"- Total Energy: %v kWh\n"+
			"- Avg per Session: %v kWh\n"+
			"- Total Charging Time: %v hours\n"+
			"- Total Cost: %v SEK",
		days, data.TotalChargingSessions, data.TotalEnergyKwh,
		data.AverageKwhPerSession, data.TotalChargingTimeHours, data.TotalCost)
}

// RecentDrives renders the newest drives, limit capped at 50.
func (t *Tools) RecentDrives(ctx context.Context, limit int) string {
	if limit > 50 {
		limit = 50
	}
	if limit < 1 {
		limit = 10
	}
	data, err := t.client.RecentDrives(ctx, limit)
	if err != nil {
		return errMessage(err)
	}
	if len(data.RecentDrives) == 0 {
		return "No recent drives found."
	}

	lines := []string{fmt.Sprintf("**Last %d Drives**\n", len(data.RecentDrives))}
	for i, d := range data.RecentDrives {
		lines = append(lines, fmt.Sprintf("%d. **%s** — %.1f km, %d min",
			i+1, d.StartDate.Format("2006-01-02 15:04"), d.DistanceKm, d.DurationMin))
		lines = append(lines, fmt.Sprintf("   %s → %s", d.StartLocation, d.EndLocation))
	}
	return strings.Join(lines, "\n")
}

// DrivesByDate renders each drive in a date range. Start and end accept
// relative terms; empty start means 7 days back, empty end means today.
func (t *Tools) DrivesByDate(ctx context.Context, start, end string) string {
	today := t.now()
	parsedStart := today.AddDate(0, 0, -7).Format("2006-01-02")
	if strings.TrimSpace(start) != "" {
		parsedStart = dateparse.Resolve(start, today)
	}
	parsedEnd := dateparse.Resolve(end, today)

	data, err := t.client.DrivesByDate(ctx, parsedStart, parsedEnd)
	if err != nil {
		return errMessage(err)
	}
	if len(data.Drives) == 0 {
		return fmt.Sprintf("No drives found between %s and %s.", parsedStart, parsedEnd)
	}

	lines := []string{
		fmt.Sprintf("**Drives %s to %s**", parsedStart, parsedEnd),
		fmt.Sprintf("Total: %d drives, %v km, %d min\n",
			data.Count, data.TotalDistanceKm, data.TotalDurationMin),
	}
	for i, d := range data.Drives {
		lines = append(lines, fmt.Sprintf("%d. **%s** — %.1f km, %d min: %s → %s",
			i+1, d.StartDate.Format("15:04"), d.DistanceKm, d.DurationMin,
			d.StartLocation, d.EndLocation))
	}
	return strings.Join(lines, "\n")
}

// DrivingJournal renders the körjournal as a markdown table.
func (t *Tools) DrivingJournal(ctx context.Context, start, end string) string {
	today := t.now()
	parsedStart := today.AddDate(0, 0, -7).Format("2006-01-02")
	if strings.TrimSpace(start) != "" {
		parsedStart = dateparse.Resolve(start, today)
	}
	parsedEnd := dateparse.Resolve(end, today)

	data, err := t.client.DrivingJournal(ctx, parsedStart, parsedEnd)
	if err != nil {
		return errMessage(err)
	}
	if len(data.Entries) == 0 {
		return fmt.Sprintf("No driving data found for %s to %s.", parsedStart, parsedEnd)
	}

	lines := []string{
		fmt.Sprintf("**Körjournal %s — %s**\n", data.Period.Start, data.Period.End),
		"| Datum | Dag | Destination | Km | Mil | Ersättning |",
		"|-------|-----|-------------|----:|-----:|-----------:|",
	}
	for _, e := range data.Entries {
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %v | %v | %v kr |",
			e.Date, e.Weekday, truncate(e.Destination, maxDestinationLen),
			e.DistanceKmJournal, e.DistanceMil, e.ReimbursementSek))
	}
	s := data.Summary
	lines = append(lines,
		"",
		"**Summering:**",
		fmt.Sprintf("- Antal dagar: %d", s.TotalDays),
		fmt.Sprintf("- Total sträcka: %v mil (%v km)", s.TotalMil, s.TotalKm),
		fmt.Sprintf("- Total ersättning: %v kr", s.TotalReimbursementSek),
		fmt.Sprintf("- Milersättning: %v kr/mil", s.RatePerMil),
	)
	return strings.Join(lines, "\n")
}

// Efficiency renders the consumption averages.
func (t *Tools) Efficiency(ctx context.Context, days int) string {
	data, err := t.client.Efficiency(ctx, days)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	return fmt.Sprintf(
		"**Efficiency (last %d days)**\n"+
			"- Average: %v Wh/km\n"+
			"- Average: %v kWh/100km\n"+
			"- Total Distance: %v km\n"+
			"- Trips Analyzed: %d",
		days, data.AverageWhPerKm, data.AverageKwhPer100Km,
		data.TotalDistanceKm, data.TripCount)
}

// Temperature renders cabin/outside temperature aggregates.
func (t *Tools) Temperature(ctx context.Context, hours int) string {
	data, err := t.client.Temperature(ctx, hours)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	return strings.Join([]string{
		fmt.Sprintf("**Temperature (last %d hours)**", hours),
		fmt.Sprintf("- Inside: avg %s°C (min %s, max %s)",
			floatOr(data.InsideAvgC), floatOr(data.InsideMinC), floatOr(data.InsideMaxC)),
		fmt.Sprintf("- Outside: avg %s°C (min %s, max %s)",
			floatOr(data.OutsideAvgC), floatOr(data.OutsideMinC), floatOr(data.OutsideMaxC)),
		fmt.Sprintf("- Samples: %d", data.SamplesAnalyzed),
	}, "\n")
}

// TirePressure renders the latest TPMS reading.
func (t *Tools) TirePressure(ctx context.Context) string {
	data, err := t.client.TirePressure(ctx)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	return strings.Join([]string{
		"**Tire Pressure (bar)**",
		fmt.Sprintf("- Front Left: %s", floatOr(data.FrontLeftBar)),
		fmt.Sprintf("- Front Right: %s", floatOr(data.FrontRightBar)),
		fmt.Sprintf("- Rear Left: %s", floatOr(data.RearLeftBar)),
		fmt.Sprintf("- Rear Right: %s", floatOr(data.RearRightBar)),
		fmt.Sprintf("- Last Updated: %s", data.LastUpdated),
	}, "\n")
}

// CarState renders the current state with a localized label.
func (t *Tools) CarState(ctx context.Context) string {
	data, err := t.client.CarState(ctx)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	label := data.State
	if sv, ok := statesSv[data.State]; ok {
		label = sv
	}
	return strings.Join([]string{
		"**Car State**",
		fmt.Sprintf("- State: %s", label),
		fmt.Sprintf("- Since: %s", data.Since),
		fmt.Sprintf("- Minutes in state: %v", data.MinutesInState),
	}, "\n")
}

// DriveStats renders windowed drive aggregates.
func (t *Tools) DriveStats(ctx context.Context, days int) string {
	data, err := t.client.DriveStats(ctx, days)
	if err != nil {
		return errMessage(err)
	}
	if data.Error != "" {
		return "Error: " + data.Error
	}

	return fmt.Sprintf(
		"**Drive Statistics (last %d days)**\n"+
			"- Drives: %d\n"+
			"- Total Distance: %v km\n"+
			"- Total Time: %v hours\n"+
			"- Avg Speed: %v km/h\n"+
			"- Max Speed: %d km/h",
		days, data.TotalDrives, data.TotalDistanceKm,
		data.TotalDurationHours, data.AvgSpeedKmh, data.MaxSpeedKmh)
}

// HealthStatus reports whether the API and database are up.
func (t *Tools) HealthStatus(ctx context.Context) string {
	data, err := t.client.Health(ctx)
	if err != nil {
		return "TeslaMate API Error: " + strings.TrimPrefix(errMessage(err), "Error: ")
	}
	return fmt.Sprintf("**TeslaMate System Status**\n- API: Running\n- Database: %s", data.Database)
}

// truncate shortens a label to n runes, ellipsis after n-3.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func intOr(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func floatOr(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", *v)
}
