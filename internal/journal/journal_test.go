package journal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teslamate-tools/teslachat/internal/models"
)

func drive(start string, km float64, from, to string) models.Drive {
	t, err := time.Parse("2006-01-02 15:04", start)
	if err != nil {
		panic(err)
	}
	return models.Drive{
		StartDate:     t,
		DistanceKm:    km,
		StartLocation: from,
		EndLocation:   to,
	}
}

func seeded() *Synthesizer {
	return New(rand.New(rand.NewSource(42)))
}

func TestBuildSkipsDaysUnderHalfKm(t *testing.T) {
	entries, summary := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 0.4, "Home", "Mailbox"),
	}, DefaultRatePerMil)

	assert.Empty(t, entries)
	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.TotalMil)
}

func TestBuildIncludesDayAtExactlyHalfKm(t *testing.T) {
	entries, _ := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 0.5, "Home", "Mailbox"),
	}, DefaultRatePerMil)

	assert.Len(t, entries, 1)
}

func TestPaddingBoundsShortDay(t *testing.T) {
	// x <= 80 km: only the base draw from [2, 5) applies.
	for seed := int64(0); seed < 50; seed++ {
		s := New(rand.New(rand.NewSource(seed)))
		entries, _ := s.Build([]models.Drive{
			drive("2024-06-03 08:00", 40, "Home", "Office"),
		}, DefaultRatePerMil)

		assert.Len(t, entries, 1)
		padded := entries[0].DistanceKmJournal
		assert.GreaterOrEqual(t, padded, 42.0)
		assert.Less(t, padded, 45.0)
	}
}

func TestPaddingBoundsLongDay(t *testing.T) {
	// x > 300 km: all four draws apply, total padding in [14, 32).
	for seed := int64(0); seed < 50; seed++ {
		s := New(rand.New(rand.NewSource(seed)))
		entries, _ := s.Build([]models.Drive{
			drive("2024-06-03 08:00", 320, "Home", "Stockholm"),
		}, DefaultRatePerMil)

		assert.Len(t, entries, 1)
		padded := entries[0].DistanceKmJournal
		assert.GreaterOrEqual(t, padded, 334.0)
		assert.Less(t, padded, 352.0)
	}
}

func TestMilAndReimbursementRounding(t *testing.T) {
	// Half rounds away from zero: 14.95 km padded is 1.5 mil.
	assert.Equal(t, 1.5, round1(14.95/10))
	assert.Equal(t, 37.5, round2(1.5*25.0))
	assert.Equal(t, 1.3, round1(1.25))
	assert.Equal(t, 31.38, round2(31.377))
}

func TestOriginAndDestinationSelection(t *testing.T) {
	// Destination is the end of the first drive whose end differs from the
	// day's origin.
	entries, _ := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 45, "Home", "Home"),
		drive("2024-06-01 12:00", 45, "Home", "Gothenburg"),
	}, DefaultRatePerMil)

	assert.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Home", e.Start)
	assert.Equal(t, "Gothenburg", e.Destination)
	assert.Equal(t, 2, e.NumTrips)
}

func TestDestinationDefaultsToOrigin(t *testing.T) {
	entries, _ := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 12, "Home", "Home"),
	}, DefaultRatePerMil)

	assert.Len(t, entries, 1)
	assert.Equal(t, "Home", entries[0].Destination)
}

func TestEndToEndSaturdayScenario(t *testing.T) {
	// Two legs on 2024-06-01 (a Saturday) totaling 90 km. The >80 km tier
	// adds a second draw, so the padded distance is at least 90+2+3.
	entries, summary := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 40, "Home", "Uppsala"),
		drive("2024-06-01 17:00", 50, "Uppsala", "Home"),
	}, DefaultRatePerMil)

	assert.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "2024-06-01", e.Date)
	assert.Equal(t, "Lordag", e.Weekday)
	assert.Equal(t, "Home", e.Start)
	assert.Equal(t, "Uppsala", e.Destination)
	assert.Equal(t, "Tjansteresa", e.Purpose)
	assert.Equal(t, 90.0, e.DistanceKmActual)
	assert.GreaterOrEqual(t, e.DistanceKmJournal, 95.0)
	assert.Less(t, e.DistanceKmJournal, 102.0)
	assert.Equal(t, 1, summary.TotalDays)
}

func TestSummaryTotalKmDerivedFromMil(t *testing.T) {
	entries, summary := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 33, "Home", "Office"),
		drive("2024-06-02 09:00", 47, "Home", "Lake"),
	}, DefaultRatePerMil)

	assert.Len(t, entries, 2)
	var mil float64
	for _, e := range entries {
		mil += e.DistanceMil
	}
	assert.Equal(t, round1(mil), summary.TotalMil)
	// total_km restates the mil total, it is not the raw distance sum.
	assert.Equal(t, round1(summary.TotalMil*10), summary.TotalKm)
	assert.NotEqual(t, 80.0, summary.TotalKm)
}

func TestDaysOrderedAscending(t *testing.T) {
	entries, _ := seeded().Build([]models.Drive{
		drive("2024-06-02 09:00", 20, "Home", "Office"),
		drive("2024-06-01 08:00", 30, "Home", "Office"),
	}, DefaultRatePerMil)

	assert.Len(t, entries, 2)
	assert.Equal(t, "2024-06-01", entries[0].Date)
	assert.Equal(t, "2024-06-02", entries[1].Date)
}

func TestRateAppliedPerMil(t *testing.T) {
	entries, summary := seeded().Build([]models.Drive{
		drive("2024-06-01 08:00", 60, "Home", "Office"),
	}, 18.5)

	assert.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, round2(e.DistanceMil*18.5), e.ReimbursementSek)
	assert.Equal(t, 18.5, summary.RatePerMil)
}
