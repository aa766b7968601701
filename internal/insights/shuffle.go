package insights

import (
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// ShuffleStat compares shuffle-mode plays to intentional plays within one
// calendar year.
type ShuffleStat struct {
	Year             int
	ShufflePlays     int
	IntentionalPlays int
	ShufflePercent   int
}

// ShuffleStats counts shuffle versus intentional plays per calendar year,
// ascending by year.
func ShuffleStats(events []history.Event, loc *time.Location) []ShuffleStat {
	type acc struct {
		shuffle     int
		intentional int
	}
	years := make(map[int]*acc)

	for _, ev := range events {
		year := ev.Time.In(loc).Year()
		a, ok := years[year]
		if !ok {
			a = &acc{}
			years[year] = a
		}
		if ev.Shuffle {
			a.shuffle++
		} else {
			a.intentional++
		}
	}

	stats := make([]ShuffleStat, 0, len(years))
	for year, a := range years {
		stats = append(stats, ShuffleStat{
			Year:             year,
			ShufflePlays:     a.shuffle,
			IntentionalPlays: a.intentional,
			ShufflePercent:   percent(float64(a.shuffle), float64(a.shuffle+a.intentional)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Year < stats[j].Year
	})
	return stats
}
