package insights

import (
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// Period is one of the four fixed time-of-day buckets.
type Period string

const (
	LateNight Period = "lateNight"
	Morning   Period = "morning"
	Afternoon Period = "afternoon"
	Evening   Period = "evening"
)

var periodOrder = []Period{LateNight, Morning, Afternoon, Evening}

var periodLabels = map[Period]string{
	LateNight: "12am - 5am",
	Morning:   "5am - 12pm",
	Afternoon: "12pm - 6pm",
	Evening:   "6pm - 12am",
}

// ArtistMinutes pairs an artist with rounded minutes listened.
type ArtistMinutes struct {
	Artist  string
	Minutes int
}

// TimePeriodProfile holds the top artists and total listening volume for
// one time-of-day bucket.
type TimePeriodProfile struct {
	Period       Period
	Label        string
	TopArtists   []ArtistMinutes
	TotalMinutes int
}

func periodFor(hour int) Period {
	switch {
	case hour < 5:
		return LateNight
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// TimePeriodProfiles buckets every event by local hour of day and reports
// the top five artists and total minutes per bucket. All four buckets are
// returned in fixed order even when empty.
func TimePeriodProfiles(events []history.Event, loc *time.Location) []TimePeriodProfile {
	buckets := make(map[Period]map[string]float64, len(periodOrder))
	for _, p := range periodOrder {
		buckets[p] = make(map[string]float64)
	}

	for _, ev := range events {
		p := periodFor(ev.Time.In(loc).Hour())
		buckets[p][ev.Artist] += minutes(ev)
	}

	profiles := make([]TimePeriodProfile, 0, len(periodOrder))
	for _, p := range periodOrder {
		var top []ArtistMinutes
		total := 0.0
		for artist, m := range buckets[p] {
			top = append(top, ArtistMinutes{Artist: artist, Minutes: round(m)})
			total += m
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].Minutes != top[j].Minutes {
				return top[i].Minutes > top[j].Minutes
			}
			return top[i].Artist < top[j].Artist
		})
		if len(top) > 5 {
			top = top[:5]
		}
		profiles = append(profiles, TimePeriodProfile{
			Period:       p,
			Label:        periodLabels[p],
			TopArtists:   top,
			TotalMinutes: round(total),
		})
	}
	return profiles
}
