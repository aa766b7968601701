package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/tables"
	"github.com/ademuri/spotify-history-tools/internal/tabular"
)

// projections bundles the five derived tables, whichever way they were
// obtained.
type projections struct {
	events   []tables.EventRow
	daily    []tables.DailySummary
	artists  []tables.ArtistTotal
	hourly   []tables.HourlyCell
	sessions []tables.Session
}

// loadProjections builds the derived tables for the configured export
// directory. Raw JSON history takes precedence; when the directory only
// holds CSV summary files, those are loaded directly instead.
func loadProjections() (*projections, error) {
	dir := viper.GetString("data")
	if hasHistoryFiles(dir) {
		events, err := loadEvents()
		if err != nil {
			return nil, err
		}
		loc, err := bucketZone()
		if err != nil {
			return nil, err
		}
		return &projections{
			events:   tables.Events(events),
			daily:    tables.Daily(events, loc),
			artists:  tables.TopArtists(events),
			hourly:   tables.HourlyProfile(events, loc),
			sessions: tables.Sessions(events),
		}, nil
	}
	return loadProjectionsCSV(dir)
}

func hasHistoryFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && history.Classify(entry.Name()) == history.KindHistory {
			return true
		}
	}
	return false
}

func loadProjectionsCSV(dir string) (*projections, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading export directory: %w", err)
	}

	p := &projections{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind := history.Classify(entry.Name())
		if kind == history.KindUnknown || kind == history.KindHistory {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.WithFields(logrus.Fields{"file": entry.Name(), "error": err}).Warn("Skipping unreadable file")
			continue
		}
		t, err := tabular.Parse(f)
		f.Close()
		if err != nil {
			log.WithFields(logrus.Fields{"file": entry.Name(), "error": err}).Warn("Skipping malformed summary file")
			continue
		}

		switch kind {
		case history.KindEvents:
			p.events = tables.EventsFromTable(t)
		case history.KindDaily:
			p.daily = tables.DailyFromTable(t)
		case history.KindArtists:
			p.artists = tables.TopArtistsFromTable(t)
		case history.KindHourly:
			p.hourly = tables.HourlyFromTable(t)
		case history.KindSessions:
			p.sessions = tables.SessionsFromTable(t)
		}
	}
	return p, nil
}

// loadEventsRequired is for analyses that need the raw event sequence and
// cannot run from CSV summaries alone.
func loadEventsRequired() ([]history.Event, *time.Location, error) {
	dir := viper.GetString("data")
	if !hasHistoryFiles(dir) {
		return nil, nil, fmt.Errorf("no streaming history JSON files in %q - insights need the raw export", dir)
	}
	events, err := loadEvents()
	if err != nil {
		return nil, nil, err
	}
	loc, err := bucketZone()
	if err != nil {
		return nil, nil, err
	}
	return events, loc, nil
}
