package store

import (
	"database/sql"
	"fmt"

	"github.com/ademuri/spotify-history-tools/internal/tables"
)

// WriteEvents replaces the Event table with the per-event projection.
func (s *Store) WriteEvents(rows []tables.EventRow) error {
	return s.withTx("Event", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO Event (timestamp, artist, track, album, duration_ms) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing event insert: %w", err)
		}
		defer stmt.Close()
		for _, r := range rows {
			if _, err := stmt.Exec(r.Timestamp, r.Artist, r.Track, r.Album, r.DurationMS); err != nil {
				return fmt.Errorf("inserting event: %w", err)
			}
		}
		return nil
	})
}

// WriteDaily replaces the Daily table.
func (s *Store) WriteDaily(daily []tables.DailySummary) error {
	return s.withTx("Daily", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO Daily (date, minutes_listened, tracks_played, unique_artists) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing daily insert: %w", err)
		}
		defer stmt.Close()
		for _, d := range daily {
			if _, err := stmt.Exec(d.Date, d.MinutesListened, d.TracksPlayed, d.UniqueArtists); err != nil {
				return fmt.Errorf("inserting daily %q: %w", d.Date, err)
			}
		}
		return nil
	})
}

// WriteTopArtists replaces the ArtistTotal table.
func (s *Store) WriteTopArtists(artists []tables.ArtistTotal) error {
	return s.withTx("ArtistTotal", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO ArtistTotal (artist, total_minutes, play_count) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing artist insert: %w", err)
		}
		defer stmt.Close()
		for _, a := range artists {
			if _, err := stmt.Exec(a.Artist, a.TotalMinutes, a.PlayCount); err != nil {
				return fmt.Errorf("inserting artist %q: %w", a.Artist, err)
			}
		}
		return nil
	})
}

// WriteHourlyProfile replaces the HourlyProfile table.
func (s *Store) WriteHourlyProfile(profile []tables.HourlyCell) error {
	return s.withTx("HourlyProfile", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO HourlyProfile (hour, artist, minutes) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing hourly insert: %w", err)
		}
		defer stmt.Close()
		for _, c := range profile {
			if _, err := stmt.Exec(c.Hour, c.Artist, c.Minutes); err != nil {
				return fmt.Errorf("inserting hourly cell: %w", err)
			}
		}
		return nil
	})
}

// WriteSessions replaces the Session table.
func (s *Store) WriteSessions(sessions []tables.Session) error {
	return s.withTx("Session", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO Session (id, start_time, end_time, duration_minutes, tracks_count) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing session insert: %w", err)
		}
		defer stmt.Close()
		for _, sess := range sessions {
			if _, err := stmt.Exec(sess.ID, formatTime(sess.Start), formatTime(sess.End), sess.DurationMinutes, sess.TrackCount); err != nil {
				return fmt.Errorf("inserting session %d: %w", sess.ID, err)
			}
		}
		return nil
	})
}
