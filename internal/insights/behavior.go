package insights

import (
	"math"
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// ArtistBehavior describes how a listener treats one artist's tracks: how
// often plays are skipped and how much of a reference-length track is
// typically heard.
type ArtistBehavior struct {
	Artist         string
	SkipRate       int
	CompletionRate int
	TotalPlays     int
}

// OverallStats applies the same rate formulas across the entire dataset as
// if it were a single artist.
type OverallStats struct {
	ShufflePercent int
	SkipRate       int
	CompletionRate int
}

type behaviorAcc struct {
	skipped   int
	completed int
	totalMS   int64
	plays     int
}

// completionRate estimates how much of a ReferenceTrackMS-length track the
// average play covers, capped at 100.
func completionRate(totalMS int64, plays int) int {
	if plays == 0 {
		return 0
	}
	avg := float64(totalMS) / float64(plays)
	return round(math.Min(100, avg/ReferenceTrackMS*100))
}

// ArtistBehaviors reports skip and completion rates for every artist with
// at least MinBehaviorPlays plays, top 50 by play count.
func ArtistBehaviors(events []history.Event) []ArtistBehavior {
	artists := make(map[string]*behaviorAcc)
	for _, ev := range events {
		a, ok := artists[ev.Artist]
		if !ok {
			a = &behaviorAcc{}
			artists[ev.Artist] = a
		}
		a.plays++
		if ev.Skipped {
			a.skipped++
		}
		if ev.PlayedMS > CompletedPlayMS {
			a.completed++
		}
		a.totalMS += ev.PlayedMS
	}

	var behaviors []ArtistBehavior
	for name, a := range artists {
		if a.plays < MinBehaviorPlays {
			continue
		}
		behaviors = append(behaviors, ArtistBehavior{
			Artist:         name,
			SkipRate:       percent(float64(a.skipped), float64(a.plays)),
			CompletionRate: completionRate(a.totalMS, a.plays),
			TotalPlays:     a.plays,
		})
	}

	sort.Slice(behaviors, func(i, j int) bool {
		if behaviors[i].TotalPlays != behaviors[j].TotalPlays {
			return behaviors[i].TotalPlays > behaviors[j].TotalPlays
		}
		return behaviors[i].Artist < behaviors[j].Artist
	})
	if len(behaviors) > 50 {
		behaviors = behaviors[:50]
	}
	return behaviors
}

// Overall computes dataset-wide shuffle, skip, and completion rates.
func Overall(events []history.Event) OverallStats {
	if len(events) == 0 {
		return OverallStats{}
	}

	var shuffled, skipped int
	var totalMS int64
	for _, ev := range events {
		if ev.Shuffle {
			shuffled++
		}
		if ev.Skipped {
			skipped++
		}
		totalMS += ev.PlayedMS
	}

	total := float64(len(events))
	return OverallStats{
		ShufflePercent: percent(float64(shuffled), total),
		SkipRate:       percent(float64(skipped), total),
		CompletionRate: completionRate(totalMS, len(events)),
	}
}
