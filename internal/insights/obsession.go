package insights

import (
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// ObsessionPhase is a week in which a single artist dominated the
// listener's plays.
type ObsessionPhase struct {
	WeekStart     string
	Artist        string
	Plays         int
	PercentOfWeek int
}

// weekStart returns the Sunday-start week date for an instant, as
// yyyy-mm-dd in the bucketing zone.
func weekStart(t time.Time, loc *time.Location) string {
	d := t.In(loc)
	return d.AddDate(0, 0, -int(d.Weekday())).Format("2006-01-02")
}

// ObsessionPhases finds (week, artist) pairs where one artist exceeded both
// 30% of that week's plays and 15 raw plays. Both thresholds are strict and
// the share is compared before rounding. Returns the top 20 by play count.
func ObsessionPhases(events []history.Event, loc *time.Location) []ObsessionPhase {
	weeks := make(map[string]map[string]int)
	for _, ev := range events {
		ws := weekStart(ev.Time, loc)
		if weeks[ws] == nil {
			weeks[ws] = make(map[string]int)
		}
		weeks[ws][ev.Artist]++
	}

	var phases []ObsessionPhase
	for ws, artists := range weeks {
		total := 0
		for _, plays := range artists {
			total += plays
		}
		for artist, plays := range artists {
			share := float64(plays) / float64(total) * 100
			if plays > ObsessionMinPlays && share > ObsessionMinShare {
				phases = append(phases, ObsessionPhase{
					WeekStart:     ws,
					Artist:        artist,
					Plays:         plays,
					PercentOfWeek: round(share),
				})
			}
		}
	}

	sort.Slice(phases, func(i, j int) bool {
		if phases[i].Plays != phases[j].Plays {
			return phases[i].Plays > phases[j].Plays
		}
		if phases[i].WeekStart != phases[j].WeekStart {
			return phases[i].WeekStart < phases[j].WeekStart
		}
		return phases[i].Artist < phases[j].Artist
	})
	if len(phases) > 20 {
		phases = phases[:20]
	}
	return phases
}
