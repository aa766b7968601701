package insights

import (
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// ForgottenFavorite is an artist with a substantial peak listening year
// whose last play predates the final 12 months of the dataset.
type ForgottenFavorite struct {
	Artist      string
	PeakYear    int
	PeakMinutes int
	LastPlayed  time.Time
	TotalPlays  int
}

// ForgottenFavorites surfaces up to ten artists the listener used to play
// heavily but has not touched in the last 12 months of data. The cutoff is
// relative to the latest event in the set, not the wall clock, so old
// exports analyze the same way forever. An artist whose last play falls
// exactly on the cutoff counts as forgotten; one second later does not.
func ForgottenFavorites(events []history.Event, loc *time.Location) []ForgottenFavorite {
	if len(events) == 0 {
		return nil
	}

	type artistData struct {
		yearMinutes map[int]float64
		lastPlayed  time.Time
		plays       int
	}
	artists := make(map[string]*artistData)

	for _, ev := range events {
		a, ok := artists[ev.Artist]
		if !ok {
			a = &artistData{yearMinutes: make(map[int]float64)}
			artists[ev.Artist] = a
		}
		a.yearMinutes[ev.Time.In(loc).Year()] += minutes(ev)
		a.lastPlayed = ev.Time
		a.plays++
	}

	cutoff := events[len(events)-1].Time.AddDate(0, -12, 0)

	var forgotten []ForgottenFavorite
	for name, a := range artists {
		if a.lastPlayed.After(cutoff) {
			continue
		}

		peakYear := 0
		peakMinutes := 0.0
		for year, m := range a.yearMinutes {
			if m > peakMinutes {
				peakYear = year
				peakMinutes = m
			}
		}
		if peakMinutes < PeakYearMinutes {
			continue
		}

		forgotten = append(forgotten, ForgottenFavorite{
			Artist:      name,
			PeakYear:    peakYear,
			PeakMinutes: round(peakMinutes),
			LastPlayed:  a.lastPlayed,
			TotalPlays:  a.plays,
		})
	}

	sort.Slice(forgotten, func(i, j int) bool {
		if forgotten[i].PeakMinutes != forgotten[j].PeakMinutes {
			return forgotten[i].PeakMinutes > forgotten[j].PeakMinutes
		}
		return forgotten[i].Artist < forgotten[j].Artist
	})
	if len(forgotten) > 10 {
		forgotten = forgotten[:10]
	}
	return forgotten
}
