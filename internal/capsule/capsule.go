// Package capsule answers "what was I listening to on this day in past
// years" over the normalized event sequence.
package capsule

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// maxTracksPerYear caps how many plays are shown for each matching year.
const maxTracksPerYear = 5

// Play is a single remembered listen: what was playing and at what clock
// time.
type Play struct {
	Artist string
	Track  string
	Time   string
}

// Capsule holds one year's plays matching the queried calendar day.
type Capsule struct {
	Date   string
	Year   int
	Tracks []Play
}

// OnThisDay returns, for every year where at least one event shares the
// target's month and day, up to five plays from that day in event order.
// The target's year is ignored. Years are returned descending.
func OnThisDay(events []history.Event, target time.Time, loc *time.Location) []Capsule {
	month := target.In(loc).Month()
	day := target.In(loc).Day()

	byYear := make(map[int][]Play)
	for _, ev := range events {
		local := ev.Time.In(loc)
		if local.Month() != month || local.Day() != day {
			continue
		}
		year := local.Year()
		if len(byYear[year]) >= maxTracksPerYear {
			continue
		}
		byYear[year] = append(byYear[year], Play{
			Artist: ev.Artist,
			Track:  ev.Track,
			Time:   local.Format("3:04 PM"),
		})
	}

	label := fmt.Sprintf("%d/%d", month, day)
	capsules := make([]Capsule, 0, len(byYear))
	for year, tracks := range byYear {
		capsules = append(capsules, Capsule{Date: label, Year: year, Tracks: tracks})
	}
	sort.Slice(capsules, func(i, j int) bool {
		return capsules[i].Year > capsules[j].Year
	})
	return capsules
}

// RandomDay picks a date uniformly within the last ten years, for the
// "surprise me" flow.
func RandomDay(rng *rand.Rand, now time.Time) time.Time {
	start := now.AddDate(-10, 0, 0)
	span := now.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}
