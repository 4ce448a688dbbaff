// Package journal derives a Swedish driving journal (körjournal) from logged
// drives: one row per day, distances in mil, reimbursement at a caller-set
// rate. The journal distance is the logged distance plus a random allowance
// for incidental mileage, so two calls over the same period differ.
package journal

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// DefaultRatePerMil is the reimbursement rate when the caller supplies none.
const DefaultRatePerMil = 25.0

// minDayKm is the threshold under which a day is left out entirely.
const minDayKm = 0.5

// Purpose is the fixed purpose label on every entry.
const Purpose = "Tjansteresa"

var weekdaysSv = map[string]string{
	"Monday":    "Mandag",
	"Tuesday":   "Tisdag",
	"Wednesday": "Onsdag",
	"Thursday":  "Torsdag",
	"Friday":    "Fredag",
	"Saturday":  "Lordag",
	"Sunday":    "Sondag",
}

// Synthesizer builds journal entries. The random source is injected so tests
// can pin the seed; production callers should use NewRandom.
type Synthesizer struct {
	rng *rand.Rand
}

// New creates a synthesizer with the given random source.
func New(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// NewRandom creates a synthesizer seeded from the clock.
func NewRandom() *Synthesizer {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Build buckets drives by the calendar day of their start, pads each day's
// distance and prices it. Drives must already be ordered ascending by start
// time; order within a day is preserved.
func (s *Synthesizer) Build(drives []models.Drive, ratePerMil float64) ([]models.JournalEntry, models.JournalSummary) {
	days := make(map[string][]models.Drive)
	for _, d := range drives {
		key := d.StartDate.Format("2006-01-02")
		days[key] = append(days[key], d)
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]models.JournalEntry, 0, len(keys))
	var totalMil, totalCost float64

	for _, key := range keys {
		dayDrives := days[key]

		var dayKm float64
		for _, d := range dayDrives {
			dayKm += d.DistanceKm
		}
		if dayKm < minDayKm {
			continue
		}

		home := dayDrives[0].StartLocation
		destination := home
		for _, d := range dayDrives {
			if d.EndLocation != home {
				destination = d.EndLocation
				break
			}
		}

		paddedKm := dayKm + s.padding(dayKm)
		dayMil := round1(paddedKm / 10)
		dayCost := round2(dayMil * ratePerMil)

		totalMil += dayMil
		totalCost += dayCost

		entries = append(entries, models.JournalEntry{
			Date:              key,
			Weekday:           weekdaySv(key),
			Start:             home,
			Destination:       destination,
			Purpose:           Purpose,
			DistanceKmActual:  round1(dayKm),
			DistanceKmJournal: round1(paddedKm),
			DistanceMil:       dayMil,
			ReimbursementSek:  dayCost,
			NumTrips:          len(dayDrives),
		})
	}

	summary := models.JournalSummary{
		TotalDays: len(entries),
		TotalMil:  round1(totalMil),
		// Derived from the padded mil total, not the raw distance sum.
		TotalKm:               round1(totalMil * 10),
		TotalReimbursementSek: round2(totalCost),
		RatePerMil:            ratePerMil,
	}

	return entries, summary
}

// padding draws the day's extra kilometers. The draws are cumulative and
// independent: a long enough day receives all four.
func (s *Synthesizer) padding(dayKm float64) float64 {
	extra := s.uniform(2, 5)
	if dayKm > 80 {
		extra += s.uniform(3, 7)
	}
	if dayKm > 150 {
		extra += s.uniform(4, 8)
	}
	if dayKm > 300 {
		extra += s.uniform(5, 12)
	}
	return extra
}

// uniform draws from [lo, hi).
func (s *Synthesizer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// weekdaySv maps a day key to the Swedish weekday name; unparseable keys and
// unmapped names pass through.
func weekdaySv(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	eng := t.Weekday().String()
	if sv, ok := weekdaysSv[eng]; ok {
		return sv
	}
	return eng
}

// round1 rounds half away from zero to one decimal.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 rounds half away from zero to two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
