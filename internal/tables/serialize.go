package tables

import (
	"strconv"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/tabular"
)

// Interchange conversions between the typed projections and tabular.Table.
// Header names match the CSV summary format, so an encoded projection can
// be re-ingested as an uploaded summary file.

func EventsTable(rows []EventRow) tabular.Table {
	t := tabular.Table{Header: []string{"timestamp", "artist", "track", "album", "duration_ms"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Timestamp, r.Artist, r.Track, r.Album, strconv.FormatInt(r.DurationMS, 10),
		})
	}
	return t
}

func DailyTable(daily []DailySummary) tabular.Table {
	t := tabular.Table{Header: []string{"date", "minutes_listened", "tracks_played", "unique_artists"}}
	for _, d := range daily {
		t.Rows = append(t.Rows, []string{
			d.Date, strconv.Itoa(d.MinutesListened), strconv.Itoa(d.TracksPlayed), strconv.Itoa(d.UniqueArtists),
		})
	}
	return t
}

func TopArtistsTable(artists []ArtistTotal) tabular.Table {
	t := tabular.Table{Header: []string{"artist", "total_minutes", "play_count"}}
	for _, a := range artists {
		t.Rows = append(t.Rows, []string{a.Artist, strconv.Itoa(a.TotalMinutes), strconv.Itoa(a.PlayCount)})
	}
	return t
}

func HourlyTable(profile []HourlyCell) tabular.Table {
	t := tabular.Table{Header: []string{"hour", "artist", "minutes"}}
	for _, c := range profile {
		t.Rows = append(t.Rows, []string{strconv.Itoa(c.Hour), c.Artist, strconv.Itoa(c.Minutes)})
	}
	return t
}

func SessionsTable(sessions []Session) tabular.Table {
	t := tabular.Table{Header: []string{"session_id", "start_time", "end_time", "duration_minutes", "tracks_count"}}
	for _, s := range sessions {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(s.ID),
			s.Start.Format(time.RFC3339),
			s.End.Format(time.RFC3339),
			strconv.Itoa(s.DurationMinutes),
			strconv.Itoa(s.TrackCount),
		})
	}
	return t
}

func cellInt(t tabular.Table, row []string, name string) int {
	col := t.Column(name)
	if col < 0 {
		return 0
	}
	v, ok := tabular.Number(row[col])
	if !ok {
		return 0
	}
	return int(v)
}

func cellString(t tabular.Table, row []string, name string) string {
	col := t.Column(name)
	if col < 0 {
		return ""
	}
	return row[col]
}

// EventsFromTable loads the per-event projection from an uploaded CSV.
func EventsFromTable(t tabular.Table) []EventRow {
	var rows []EventRow
	for _, row := range t.Rows {
		rows = append(rows, EventRow{
			Timestamp:  cellString(t, row, "timestamp"),
			Artist:     cellString(t, row, "artist"),
			Track:      cellString(t, row, "track"),
			Album:      cellString(t, row, "album"),
			DurationMS: int64(cellInt(t, row, "duration_ms")),
		})
	}
	return rows
}

// DailyFromTable loads a daily summary projection from an uploaded CSV.
// Missing optional columns default to zero.
func DailyFromTable(t tabular.Table) []DailySummary {
	var daily []DailySummary
	for _, row := range t.Rows {
		daily = append(daily, DailySummary{
			Date:            cellString(t, row, "date"),
			MinutesListened: cellInt(t, row, "minutes_listened"),
			TracksPlayed:    cellInt(t, row, "tracks_played"),
			UniqueArtists:   cellInt(t, row, "unique_artists"),
		})
	}
	return daily
}

func TopArtistsFromTable(t tabular.Table) []ArtistTotal {
	var artists []ArtistTotal
	for _, row := range t.Rows {
		artists = append(artists, ArtistTotal{
			Artist:       cellString(t, row, "artist"),
			TotalMinutes: cellInt(t, row, "total_minutes"),
			PlayCount:    cellInt(t, row, "play_count"),
		})
	}
	return artists
}

func HourlyFromTable(t tabular.Table) []HourlyCell {
	var profile []HourlyCell
	for _, row := range t.Rows {
		profile = append(profile, HourlyCell{
			Hour:    cellInt(t, row, "hour"),
			Artist:  cellString(t, row, "artist"),
			Minutes: cellInt(t, row, "minutes"),
		})
	}
	return profile
}

func SessionsFromTable(t tabular.Table) []Session {
	var sessions []Session
	for _, row := range t.Rows {
		s := Session{
			ID:              cellInt(t, row, "session_id"),
			DurationMinutes: cellInt(t, row, "duration_minutes"),
			TrackCount:      cellInt(t, row, "tracks_count"),
		}
		if ts, err := time.Parse(time.RFC3339, cellString(t, row, "start_time")); err == nil {
			s.Start = ts
		}
		if ts, err := time.Parse(time.RFC3339, cellString(t, row, "end_time")); err == nil {
			s.End = ts
		}
		sessions = append(sessions, s)
	}
	return sessions
}
