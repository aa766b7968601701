// Package tables derives the flat tabular projections the presentation
// layer renders: the per-event log, daily summaries, artist totals, the
// hour-by-artist minute matrix, and session segmentation. Every function is
// a pure transformation of the normalized event sequence.
package tables

import (
	"math"
	"sort"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// SessionGap is the largest pause between consecutive plays that still
// belongs to the same listening session.
const SessionGap = 30 * time.Minute

type EventRow struct {
	Timestamp  string
	Artist     string
	Track      string
	Album      string
	DurationMS int64
}

type DailySummary struct {
	Date            string
	MinutesListened int
	TracksPlayed    int
	UniqueArtists   int
}

type ArtistTotal struct {
	Artist       string
	TotalMinutes int
	PlayCount    int
}

type HourlyCell struct {
	Hour    int
	Artist  string
	Minutes int
}

type Session struct {
	ID              int
	Start           time.Time
	End             time.Time
	DurationMinutes int
	TrackCount      int
}

// Summary is the dashboard header view derived from the other projections.
type Summary struct {
	TotalHours          int
	UniqueArtists       int
	TotalTracks         int
	LongestSessionMin   int
	AverageDailyMinutes int
}

func round(x float64) int {
	return int(math.Round(x))
}

// Events is the per-event passthrough projection.
func Events(events []history.Event) []EventRow {
	rows := make([]EventRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, EventRow{
			Timestamp:  ev.Time.Format(time.RFC3339),
			Artist:     ev.Artist,
			Track:      ev.Track,
			Album:      ev.Album,
			DurationMS: ev.PlayedMS,
		})
	}
	return rows
}

// Daily aggregates minutes listened and distinct track/artist counts per
// calendar day in the given zone. Output is sorted by date.
func Daily(events []history.Event, loc *time.Location) []DailySummary {
	type acc struct {
		minutes float64
		tracks  map[string]struct{}
		artists map[string]struct{}
	}
	days := make(map[string]*acc)

	for _, ev := range events {
		date := ev.Time.In(loc).Format("2006-01-02")
		a, ok := days[date]
		if !ok {
			a = &acc{tracks: make(map[string]struct{}), artists: make(map[string]struct{})}
			days[date] = a
		}
		a.minutes += float64(ev.PlayedMS) / 60000
		a.tracks[ev.Track] = struct{}{}
		a.artists[ev.Artist] = struct{}{}
	}

	summaries := make([]DailySummary, 0, len(days))
	for date, a := range days {
		summaries = append(summaries, DailySummary{
			Date:            date,
			MinutesListened: round(a.minutes),
			TracksPlayed:    len(a.tracks),
			UniqueArtists:   len(a.artists),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})
	return summaries
}

// TopArtists totals minutes and plays per artist across the whole sequence,
// descending by minutes.
func TopArtists(events []history.Event) []ArtistTotal {
	type acc struct {
		minutes float64
		plays   int
	}
	artists := make(map[string]*acc)

	for _, ev := range events {
		a, ok := artists[ev.Artist]
		if !ok {
			a = &acc{}
			artists[ev.Artist] = a
		}
		a.minutes += float64(ev.PlayedMS) / 60000
		a.plays++
	}

	totals := make([]ArtistTotal, 0, len(artists))
	for name, a := range artists {
		totals = append(totals, ArtistTotal{
			Artist:       name,
			TotalMinutes: round(a.minutes),
			PlayCount:    a.plays,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalMinutes != totals[j].TotalMinutes {
			return totals[i].TotalMinutes > totals[j].TotalMinutes
		}
		return totals[i].Artist < totals[j].Artist
	})
	return totals
}

// HourlyProfile builds the sparse (hour of day, artist) minute matrix,
// ascending by hour and descending by minutes within each hour.
func HourlyProfile(events []history.Event, loc *time.Location) []HourlyCell {
	type key struct {
		hour   int
		artist string
	}
	cells := make(map[key]float64)

	for _, ev := range events {
		k := key{hour: ev.Time.In(loc).Hour(), artist: ev.Artist}
		cells[k] += float64(ev.PlayedMS) / 60000
	}

	profile := make([]HourlyCell, 0, len(cells))
	for k, minutes := range cells {
		profile = append(profile, HourlyCell{Hour: k.hour, Artist: k.artist, Minutes: round(minutes)})
	}
	sort.Slice(profile, func(i, j int) bool {
		if profile[i].Hour != profile[j].Hour {
			return profile[i].Hour < profile[j].Hour
		}
		if profile[i].Minutes != profile[j].Minutes {
			return profile[i].Minutes > profile[j].Minutes
		}
		return profile[i].Artist < profile[j].Artist
	})
	return profile
}

// Sessions segments the event sequence into listening sessions. A gap of
// more than SessionGap between consecutive events closes the current
// session and opens the next one. Sessions partition the sequence exactly.
func Sessions(events []history.Event) []Session {
	if len(events) == 0 {
		return nil
	}

	var sessions []Session
	current := Session{
		ID:         1,
		Start:      events[0].Time,
		End:        events[0].Time,
		TrackCount: 1,
	}
	durationMS := events[0].PlayedMS

	for i := 1; i < len(events); i++ {
		gap := events[i].Time.Sub(events[i-1].Time)
		if gap > SessionGap {
			current.DurationMinutes = round(float64(durationMS) / 60000)
			sessions = append(sessions, current)

			current = Session{
				ID:         current.ID + 1,
				Start:      events[i].Time,
				End:        events[i].Time,
				TrackCount: 1,
			}
			durationMS = events[i].PlayedMS
		} else {
			current.End = events[i].Time
			durationMS += events[i].PlayedMS
			current.TrackCount++
		}
	}

	current.DurationMinutes = round(float64(durationMS) / 60000)
	return append(sessions, current)
}

// Summarize condenses the projections into the dashboard header numbers.
func Summarize(daily []DailySummary, artists []ArtistTotal, sessions []Session) Summary {
	var totalMinutes, totalTracks int
	for _, d := range daily {
		totalMinutes += d.MinutesListened
		totalTracks += d.TracksPlayed
	}

	longest := 0
	for _, s := range sessions {
		if s.DurationMinutes > longest {
			longest = s.DurationMinutes
		}
	}

	averageDaily := 0
	if len(daily) > 0 {
		averageDaily = round(float64(totalMinutes) / float64(len(daily)))
	}

	return Summary{
		TotalHours:          round(float64(totalMinutes) / 60),
		UniqueArtists:       len(artists),
		TotalTracks:         totalTracks,
		LongestSessionMin:   longest,
		AverageDailyMinutes: averageDaily,
	}
}
