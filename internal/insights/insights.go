// Package insights computes the higher-order analyses over the normalized
// event sequence: forgotten favorites, obsession phases, time-of-day
// profiles, per-artist behavior, and shuffle statistics. Functions are pure;
// calendar bucketing uses the caller's fixed zone so results are
// reproducible across machines.
package insights

import (
	"math"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// Thresholds shared by the analyses. These are fixed for output
// compatibility with the original summary format.
const (
	// ReferenceTrackMS is the assumed full length of a typical track,
	// used to estimate completion rates.
	ReferenceTrackMS = 210000

	// CompletedPlayMS is the minimum play time for a play to count as
	// completed rather than sampled.
	CompletedPlayMS = 30000

	// MinBehaviorPlays is the play count an artist needs before skip and
	// completion rates are considered meaningful.
	MinBehaviorPlays = 10

	// PeakYearMinutes is the listening volume an artist's best year must
	// reach to qualify as a forgotten favorite.
	PeakYearMinutes = 60

	// ObsessionMinPlays and ObsessionMinShare gate obsession phases: an
	// artist must exceed both within a single week.
	ObsessionMinPlays = 15
	ObsessionMinShare = 30.0
)

// round is the single rounding rule for every emitted percentage and
// minute total: half away from zero, applied only at emission.
func round(x float64) int {
	return int(math.Round(x))
}

func minutes(ev history.Event) float64 {
	return float64(ev.PlayedMS) / 60000
}

// percent computes a rounded rate, defined as 0 when the denominator is
// zero.
func percent(part, total float64) int {
	if total == 0 {
		return 0
	}
	return round(part / total * 100)
}
