package insights

import (
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/tables"
)

// WeekdayAverage is the average minutes listened on one day of the week,
// across every such day present in the dataset.
type WeekdayAverage struct {
	Day     time.Weekday
	Minutes int
}

// WeeklyRhythm averages the daily listening totals by day of week. Seven
// entries are always returned, Sunday first; days with no data average to
// zero.
func WeeklyRhythm(daily []tables.DailySummary) []WeekdayAverage {
	sums := make([]int, 7)
	counts := make([]int, 7)
	for _, d := range daily {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		wd := int(date.Weekday())
		sums[wd] += d.MinutesListened
		counts[wd]++
	}

	rhythm := make([]WeekdayAverage, 7)
	for i := range rhythm {
		avg := 0
		if counts[i] > 0 {
			avg = round(float64(sums[i]) / float64(counts[i]))
		}
		rhythm[i] = WeekdayAverage{Day: time.Weekday(i), Minutes: avg}
	}
	return rhythm
}

// Era summarizes one calendar year of listening: the artists that defined
// it and the total volume.
type Era struct {
	Year       int
	TopArtists []ArtistMinutes
	TotalHours int
}

// Eras groups listening by calendar year and reports the top three artists
// and total hours for each, ascending by year.
func Eras(events []history.Event, loc *time.Location) []Era {
	years := make(map[int]map[string]float64)
	for _, ev := range events {
		year := ev.Time.In(loc).Year()
		if years[year] == nil {
			years[year] = make(map[string]float64)
		}
		years[year][ev.Artist] += minutes(ev)
	}

	eras := make([]Era, 0, len(years))
	for year, artists := range years {
		var top []ArtistMinutes
		total := 0.0
		for artist, m := range artists {
			top = append(top, ArtistMinutes{Artist: artist, Minutes: round(m)})
			total += m
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].Minutes != top[j].Minutes {
				return top[i].Minutes > top[j].Minutes
			}
			return top[i].Artist < top[j].Artist
		})
		if len(top) > 3 {
			top = top[:3]
		}
		eras = append(eras, Era{
			Year:       year,
			TopArtists: top,
			TotalHours: round(total / 60),
		})
	}
	sort.Slice(eras, func(i, j int) bool {
		return eras[i].Year < eras[j].Year
	})
	return eras
}
