package insights

import (
	"testing"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/tables"
)

func TestWeeklyRhythm(t *testing.T) {
	// 2023-01-01 and 2023-01-08 are Sundays; 2023-01-02 is a Monday.
	daily := []tables.DailySummary{
		{Date: "2023-01-01", MinutesListened: 60},
		{Date: "2023-01-08", MinutesListened: 120},
		{Date: "2023-01-02", MinutesListened: 30},
	}

	rhythm := WeeklyRhythm(daily)
	if len(rhythm) != 7 {
		t.Fatalf("WeeklyRhythm() returned %d days, want 7", len(rhythm))
	}

	if rhythm[0].Day != time.Sunday {
		t.Errorf("first day = %v, want Sunday", rhythm[0].Day)
	}
	if rhythm[0].Minutes != 90 {
		t.Errorf("Sunday average = %d, want 90", rhythm[0].Minutes)
	}
	if rhythm[1].Minutes != 30 {
		t.Errorf("Monday average = %d, want 30", rhythm[1].Minutes)
	}
	// Days with no data average to zero.
	if rhythm[3].Minutes != 0 {
		t.Errorf("Wednesday average = %d, want 0", rhythm[3].Minutes)
	}
}

func TestWeeklyRhythmSkipsBadDates(t *testing.T) {
	daily := []tables.DailySummary{{Date: "not-a-date", MinutesListened: 500}}
	for _, r := range WeeklyRhythm(daily) {
		if r.Minutes != 0 {
			t.Errorf("bad date contributed minutes: %+v", r)
		}
	}
}

func TestEras(t *testing.T) {
	var events []history.Event
	add := func(year int, artist string, minutes int) {
		events = append(events, history.Event{
			Time:     time.Date(year, 4, 1, 12, 0, 0, 0, time.UTC),
			Artist:   artist,
			Track:    "t",
			PlayedMS: int64(minutes) * 60000,
		})
	}
	add(2021, "A", 120)
	add(2021, "B", 90)
	add(2021, "C", 60)
	add(2021, "D", 30)
	add(2022, "E", 600)

	eras := Eras(events, time.UTC)
	if len(eras) != 2 {
		t.Fatalf("Eras() returned %d years, want 2", len(eras))
	}

	first := eras[0]
	if first.Year != 2021 {
		t.Errorf("first era year = %d, want 2021 (ascending)", first.Year)
	}
	if len(first.TopArtists) != 3 {
		t.Fatalf("2021 top artists = %d, want 3", len(first.TopArtists))
	}
	if first.TopArtists[0].Artist != "A" || first.TopArtists[2].Artist != "C" {
		t.Errorf("2021 top artists = %+v, want A, B, C", first.TopArtists)
	}
	// 120+90+60+30 = 300 minutes = 5 hours.
	if first.TotalHours != 5 {
		t.Errorf("2021 total hours = %d, want 5", first.TotalHours)
	}

	if eras[1].Year != 2022 || eras[1].TotalHours != 10 {
		t.Errorf("2022 era = %+v, want 10 hours", eras[1])
	}
}
