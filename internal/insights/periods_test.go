package insights

import (
	"testing"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

func playAt(hour int, artist string, ms int64) history.Event {
	return history.Event{
		Time:     time.Date(2023, 5, 10, hour, 0, 0, 0, time.UTC),
		Artist:   artist,
		Track:    "t",
		PlayedMS: ms,
	}
}

func TestTimePeriodProfilesAlwaysFourBuckets(t *testing.T) {
	profiles := TimePeriodProfiles(nil, time.UTC)
	if len(profiles) != 4 {
		t.Fatalf("TimePeriodProfiles() returned %d buckets, want 4", len(profiles))
	}

	wantOrder := []Period{LateNight, Morning, Afternoon, Evening}
	for i, p := range profiles {
		if p.Period != wantOrder[i] {
			t.Errorf("bucket %d = %q, want %q", i, p.Period, wantOrder[i])
		}
		if p.TotalMinutes != 0 || len(p.TopArtists) != 0 {
			t.Errorf("empty bucket %q has data: %+v", p.Period, p)
		}
	}
}

func TestTimePeriodProfilesBucketing(t *testing.T) {
	events := []history.Event{
		playAt(2, "NightOwl", 600000),
		playAt(3, "NightOwl", 600000),
		playAt(14, "Daytime", 300000),
	}

	profiles := TimePeriodProfiles(events, time.UTC)

	lateNight := profiles[0]
	if len(lateNight.TopArtists) != 1 || lateNight.TopArtists[0].Artist != "NightOwl" {
		t.Fatalf("lateNight artists = %+v, want only NightOwl", lateNight.TopArtists)
	}
	if lateNight.TopArtists[0].Minutes != 20 || lateNight.TotalMinutes != 20 {
		t.Errorf("lateNight minutes = %d/%d, want 20/20", lateNight.TopArtists[0].Minutes, lateNight.TotalMinutes)
	}
	if lateNight.Label != "12am - 5am" {
		t.Errorf("lateNight label = %q", lateNight.Label)
	}

	// NightOwl must not leak into any other bucket.
	for _, p := range profiles[1:] {
		for _, a := range p.TopArtists {
			if a.Artist == "NightOwl" {
				t.Errorf("NightOwl appears in bucket %q", p.Period)
			}
		}
	}

	afternoon := profiles[2]
	if len(afternoon.TopArtists) != 1 || afternoon.TopArtists[0].Artist != "Daytime" {
		t.Errorf("afternoon artists = %+v, want only Daytime", afternoon.TopArtists)
	}
}

func TestTimePeriodProfilesBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want Period
	}{
		{0, LateNight},
		{4, LateNight},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Evening},
		{23, Evening},
	}

	for _, c := range cases {
		if got := periodFor(c.hour); got != c.want {
			t.Errorf("periodFor(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestTimePeriodProfilesTopFive(t *testing.T) {
	var events []history.Event
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		events = append(events, playAt(20, name, int64((i+1)*60000)))
	}

	evening := TimePeriodProfiles(events, time.UTC)[3]
	if len(evening.TopArtists) != 5 {
		t.Fatalf("evening top artists = %d, want 5", len(evening.TopArtists))
	}
	if evening.TopArtists[0].Artist != "G" {
		t.Errorf("top evening artist = %q, want G", evening.TopArtists[0].Artist)
	}
	// 1+2+...+7 minutes in total.
	if evening.TotalMinutes != 28 {
		t.Errorf("evening total = %d, want 28", evening.TotalMinutes)
	}
}
