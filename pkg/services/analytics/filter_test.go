package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(continent, country string, date time.Time, confirmed int64) domain.Record {
	return domain.Record{
		Date:      date,
		Continent: continent,
		Country:   country,
		Confirmed: confirmed,
	}
}

func TestFilter(t *testing.T) {
	records := []domain.Record{
		record("América", "Chile", day(2020, 3, 1), 10),
		record("América", "Chile", day(2020, 3, 2), 20),
		record("América", "Chile", day(2020, 3, 3), 30),
		record("América", "Argentina", day(2020, 3, 1), 5),
		record("Europa", "España", day(2020, 3, 1), 100),
	}

	t.Run("selects continent and country", func(t *testing.T) {
		filtered := Filter(records, domain.FilterSpec{Continent: "América", Country: "Chile"})

		assert.Len(t, filtered, 3)
		for _, rec := range filtered {
			assert.Equal(t, "América", rec.Continent)
			assert.Equal(t, "Chile", rec.Country)
		}
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		filtered := Filter(records, domain.FilterSpec{
			Continent: "América",
			Country:   "Chile",
			Range:     &domain.DateRange{Start: day(2020, 3, 1), End: day(2020, 3, 2)},
		})

		assert.Len(t, filtered, 2)
		assert.Equal(t, day(2020, 3, 1), filtered[0].Date)
		assert.Equal(t, day(2020, 3, 2), filtered[1].Date)
	})

	t.Run("time-of-day never excludes boundary dates", func(t *testing.T) {
		late := []domain.Record{
			record("América", "Chile", time.Date(2020, 3, 2, 23, 30, 0, 0, time.UTC), 20),
		}
		filtered := Filter(late, domain.FilterSpec{
			Continent: "América",
			Country:   "Chile",
			Range: &domain.DateRange{
				Start: time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC),
				End:   time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
			},
		})

		assert.Len(t, filtered, 1)
	})

	t.Run("nil range passes everything through", func(t *testing.T) {
		filtered := Filter(records, domain.FilterSpec{Continent: "Europa", Country: "España"})
		assert.Len(t, filtered, 1)
	})

	t.Run("unknown selection yields empty, not nil panic", func(t *testing.T) {
		filtered := Filter(records, domain.FilterSpec{Continent: "Oceanía", Country: "Fiji"})
		assert.Empty(t, filtered)
	})
}
