// Package history ingests raw streaming-history exports and produces the
// normalized, time-ordered event sequence every analysis consumes.
package history

import (
	"encoding/json"
	"sort"
	"time"
)

// Record is a single entry in a raw streaming-history JSON export. Track,
// artist, and album are pointers because non-music content (podcasts, ads)
// ships with them set to null.
type Record struct {
	Timestamp string  `json:"ts"`
	MsPlayed  int64   `json:"ms_played"`
	Track     *string `json:"master_metadata_track_name"`
	Artist    *string `json:"master_metadata_album_artist_name"`
	Album     *string `json:"master_metadata_album_album_name"`
	Shuffle   bool    `json:"shuffle"`
	Skipped   bool    `json:"skipped"`
}

// Event is a validated music play: non-empty artist and track, timestamp
// parsed to an instant.
type Event struct {
	Time     time.Time
	Artist   string
	Track    string
	Album    string
	PlayedMS int64
	Shuffle  bool
	Skipped  bool
}

// Parse decodes one JSON blob as an array of raw records.
func Parse(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Normalize filters records down to valid music plays and sorts them
// ascending by timestamp. The sort is stable, so the relative order of
// equal timestamps follows the input and the result is deterministic.
// Records with a null track or artist, or an unparseable timestamp, are
// dropped.
func Normalize(records []Record) []Event {
	var events []Event
	for _, r := range records {
		if r.Track == nil || r.Artist == nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			continue
		}
		album := ""
		if r.Album != nil {
			album = *r.Album
		}
		events = append(events, Event{
			Time:     ts,
			Artist:   *r.Artist,
			Track:    *r.Track,
			Album:    album,
			PlayedMS: r.MsPlayed,
			Shuffle:  r.Shuffle,
			Skipped:  r.Skipped,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}
