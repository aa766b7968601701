package tables

import (
	"strings"
	"testing"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/tabular"
)

func event(t *testing.T, ts, artist, track string, ms int64) history.Event {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", ts, err)
	}
	return history.Event{Time: parsed, Artist: artist, Track: track, PlayedMS: ms}
}

func TestSessionsTwoSessionsAcrossGap(t *testing.T) {
	// Two runs of plays separated by a 40-minute gap.
	events := []history.Event{
		event(t, "2023-01-01T10:00:00Z", "A", "t1", 180000),
		event(t, "2023-01-01T10:03:00Z", "A", "t2", 180000),
		event(t, "2023-01-01T10:06:00Z", "B", "t3", 240000),
		event(t, "2023-01-01T10:46:00Z", "B", "t4", 120000),
		event(t, "2023-01-01T10:50:00Z", "C", "t5", 120000),
	}

	sessions := Sessions(events)
	if len(sessions) != 2 {
		t.Fatalf("Sessions() returned %d sessions, want 2", len(sessions))
	}

	first := sessions[0]
	if first.ID != 1 || first.TrackCount != 3 {
		t.Errorf("first session = id %d, %d tracks, want id 1, 3 tracks", first.ID, first.TrackCount)
	}
	if !first.Start.Equal(events[0].Time) || !first.End.Equal(events[2].Time) {
		t.Errorf("first session span = %v..%v, want %v..%v", first.Start, first.End, events[0].Time, events[2].Time)
	}
	if first.DurationMinutes != 10 {
		t.Errorf("first session duration = %d minutes, want 10", first.DurationMinutes)
	}

	second := sessions[1]
	if second.ID != 2 || second.TrackCount != 2 {
		t.Errorf("second session = id %d, %d tracks, want id 2, 2 tracks", second.ID, second.TrackCount)
	}
	if second.DurationMinutes != 4 {
		t.Errorf("second session duration = %d minutes, want 4", second.DurationMinutes)
	}
}

func TestSessionsExactGapStaysOpen(t *testing.T) {
	// A gap of exactly 30 minutes does not split the session.
	events := []history.Event{
		event(t, "2023-01-01T10:00:00Z", "A", "t1", 60000),
		event(t, "2023-01-01T10:30:00Z", "A", "t2", 60000),
	}
	if got := len(Sessions(events)); got != 1 {
		t.Errorf("Sessions() with exact 30m gap = %d sessions, want 1", got)
	}
}

func TestSessionsSingleEvent(t *testing.T) {
	events := []history.Event{event(t, "2023-01-01T10:00:00Z", "A", "t1", 240000)}

	sessions := Sessions(events)
	if len(sessions) != 1 {
		t.Fatalf("Sessions() returned %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.ID != 1 || s.TrackCount != 1 || s.DurationMinutes != 4 {
		t.Errorf("session = %+v, want id 1, 1 track, 4 minutes", s)
	}
}

func TestSessionsEmpty(t *testing.T) {
	if sessions := Sessions(nil); sessions != nil {
		t.Errorf("Sessions(nil) = %v, want nil", sessions)
	}
}

func TestSessionsPartitionEvents(t *testing.T) {
	// Irregular gaps; track counts must sum to the event count.
	times := []string{
		"2023-01-01T08:00:00Z",
		"2023-01-01T08:10:00Z",
		"2023-01-01T09:00:00Z", // 50m gap: new session
		"2023-01-01T09:20:00Z",
		"2023-01-01T12:00:00Z", // gap: new session
		"2023-01-02T12:00:00Z", // gap: new session
	}
	var events []history.Event
	for _, ts := range times {
		events = append(events, event(t, ts, "A", "t", 60000))
	}

	sessions := Sessions(events)
	if len(sessions) != 4 {
		t.Fatalf("Sessions() returned %d sessions, want 4", len(sessions))
	}
	total := 0
	for i, s := range sessions {
		if s.ID != i+1 {
			t.Errorf("session %d has id %d, want sequential ids from 1", i, s.ID)
		}
		total += s.TrackCount
	}
	if total != len(events) {
		t.Errorf("sessions cover %d events, want %d", total, len(events))
	}
}

func TestDaily(t *testing.T) {
	events := []history.Event{
		event(t, "2023-01-01T10:00:00Z", "A", "t1", 120000),
		event(t, "2023-01-01T11:00:00Z", "A", "t1", 60000),
		event(t, "2023-01-01T12:00:00Z", "B", "t2", 90000),
		event(t, "2023-01-02T10:00:00Z", "A", "t3", 60000),
	}

	daily := Daily(events, time.UTC)
	if len(daily) != 2 {
		t.Fatalf("Daily() returned %d days, want 2", len(daily))
	}

	first := daily[0]
	if first.Date != "2023-01-01" {
		t.Errorf("first day = %q, want 2023-01-01", first.Date)
	}
	// 2 + 1 + 1.5 minutes rounds to 5 (4.5 half away from zero).
	if first.MinutesListened != 5 {
		t.Errorf("minutes = %d, want 5", first.MinutesListened)
	}
	if first.TracksPlayed != 2 {
		t.Errorf("distinct tracks = %d, want 2", first.TracksPlayed)
	}
	if first.UniqueArtists != 2 {
		t.Errorf("distinct artists = %d, want 2", first.UniqueArtists)
	}
}

func TestDailyUsesZone(t *testing.T) {
	// 23:30 UTC on Jan 1 is Jan 2 in a +1 zone.
	zone := time.FixedZone("plus1", 3600)
	events := []history.Event{event(t, "2023-01-01T23:30:00Z", "A", "t", 60000)}

	daily := Daily(events, zone)
	if daily[0].Date != "2023-01-02" {
		t.Errorf("date in +1 zone = %q, want 2023-01-02", daily[0].Date)
	}
}

func TestTopArtists(t *testing.T) {
	events := []history.Event{
		event(t, "2023-01-01T10:00:00Z", "Big", "t1", 600000),
		event(t, "2023-01-01T11:00:00Z", "Big", "t2", 600000),
		event(t, "2023-01-01T12:00:00Z", "Small", "t3", 60000),
	}

	artists := TopArtists(events)
	if len(artists) != 2 {
		t.Fatalf("TopArtists() returned %d artists, want 2", len(artists))
	}
	if artists[0].Artist != "Big" || artists[0].TotalMinutes != 20 || artists[0].PlayCount != 2 {
		t.Errorf("top artist = %+v, want Big with 20 minutes, 2 plays", artists[0])
	}
	if artists[1].Artist != "Small" || artists[1].TotalMinutes != 1 {
		t.Errorf("second artist = %+v, want Small with 1 minute", artists[1])
	}
}

func TestHourlyProfile(t *testing.T) {
	events := []history.Event{
		event(t, "2023-01-01T09:15:00Z", "A", "t", 120000),
		event(t, "2023-01-02T09:45:00Z", "A", "t", 120000),
		event(t, "2023-01-01T09:30:00Z", "B", "t", 600000),
		event(t, "2023-01-01T22:00:00Z", "A", "t", 60000),
	}

	profile := HourlyProfile(events, time.UTC)
	if len(profile) != 3 {
		t.Fatalf("HourlyProfile() returned %d cells, want 3", len(profile))
	}
	// Hour 9 first, descending minutes within the hour.
	if profile[0].Hour != 9 || profile[0].Artist != "B" || profile[0].Minutes != 10 {
		t.Errorf("first cell = %+v, want hour 9, B, 10 minutes", profile[0])
	}
	if profile[1].Hour != 9 || profile[1].Artist != "A" || profile[1].Minutes != 4 {
		t.Errorf("second cell = %+v, want hour 9, A, 4 minutes", profile[1])
	}
	if profile[2].Hour != 22 {
		t.Errorf("third cell hour = %d, want 22", profile[2].Hour)
	}
}

func TestEvents(t *testing.T) {
	in := []history.Event{event(t, "2023-01-01T10:00:00Z", "A", "t1", 60000)}
	rows := Events(in)
	if len(rows) != 1 {
		t.Fatalf("Events() returned %d rows, want 1", len(rows))
	}
	if rows[0].Timestamp != "2023-01-01T10:00:00Z" || rows[0].DurationMS != 60000 {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestSummarize(t *testing.T) {
	daily := []DailySummary{
		{Date: "2023-01-01", MinutesListened: 90, TracksPlayed: 10},
		{Date: "2023-01-02", MinutesListened: 30, TracksPlayed: 5},
	}
	artists := []ArtistTotal{{Artist: "A"}, {Artist: "B"}, {Artist: "C"}}
	sessions := []Session{{DurationMinutes: 45}, {DurationMinutes: 80}, {DurationMinutes: 12}}

	s := Summarize(daily, artists, sessions)
	if s.TotalHours != 2 {
		t.Errorf("TotalHours = %d, want 2", s.TotalHours)
	}
	if s.UniqueArtists != 3 {
		t.Errorf("UniqueArtists = %d, want 3", s.UniqueArtists)
	}
	if s.TotalTracks != 15 {
		t.Errorf("TotalTracks = %d, want 15", s.TotalTracks)
	}
	if s.LongestSessionMin != 80 {
		t.Errorf("LongestSessionMin = %d, want 80", s.LongestSessionMin)
	}
	if s.AverageDailyMinutes != 60 {
		t.Errorf("AverageDailyMinutes = %d, want 60", s.AverageDailyMinutes)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	if s != (Summary{}) {
		t.Errorf("Summarize(nil, nil, nil) = %+v, want zero value", s)
	}
}

func TestDailyTableRoundTrip(t *testing.T) {
	daily := []DailySummary{
		{Date: "2023-01-01", MinutesListened: 120, TracksPlayed: 14, UniqueArtists: 6},
		{Date: "2023-01-02", MinutesListened: 45, TracksPlayed: 7, UniqueArtists: 3},
	}

	var sb strings.Builder
	if err := tabular.Encode(&sb, DailyTable(daily)); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	parsed, err := tabular.Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	got := DailyFromTable(parsed)
	if len(got) != len(daily) {
		t.Fatalf("round trip returned %d rows, want %d", len(got), len(daily))
	}
	for i := range daily {
		if got[i] != daily[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], daily[i])
		}
	}
}

func TestSessionsTableRoundTrip(t *testing.T) {
	start := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	sessions := []Session{{ID: 1, Start: start, End: start.Add(20 * time.Minute), DurationMinutes: 18, TrackCount: 5}}

	var sb strings.Builder
	if err := tabular.Encode(&sb, SessionsTable(sessions)); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	parsed, err := tabular.Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	got := SessionsFromTable(parsed)
	if len(got) != 1 {
		t.Fatalf("round trip returned %d sessions, want 1", len(got))
	}
	if !got[0].Start.Equal(sessions[0].Start) || !got[0].End.Equal(sessions[0].End) {
		t.Errorf("timestamps = %v..%v, want %v..%v", got[0].Start, got[0].End, sessions[0].Start, sessions[0].End)
	}
	if got[0].DurationMinutes != 18 || got[0].TrackCount != 5 || got[0].ID != 1 {
		t.Errorf("session = %+v, want %+v", got[0], sessions[0])
	}
}

func TestFromTableMissingColumnsDefaultToZero(t *testing.T) {
	parsed := tabular.Table{
		Header: []string{"date"},
		Rows:   [][]string{{"2023-01-01"}},
	}
	got := DailyFromTable(parsed)
	if got[0].MinutesListened != 0 || got[0].TracksPlayed != 0 || got[0].UniqueArtists != 0 {
		t.Errorf("missing columns should default to zero: %+v", got[0])
	}
}
