package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/store"
	"github.com/ademuri/spotify-history-tools/internal/tables"
	"github.com/ademuri/spotify-history-tools/internal/tabular"
)

var exportOut string
var exportDatabase string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the derived tables to CSV files",
	Long: `Writes each derived projection as a CSV file into the output directory,
and optionally into a SQLite snapshot with --database.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runExport(os.Stdout, exportOut, exportDatabase)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Directory to write CSV files into")
	exportCmd.Flags().StringVar(&exportDatabase, "database", "", "Also write a SQLite snapshot to this path")
}

func runExport(out io.Writer, outDir, dbPath string) error {
	p, err := loadProjections()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	files := []struct {
		name  string
		table tabular.Table
	}{
		{"listening_events.csv", tables.EventsTable(p.events)},
		{"daily_summary.csv", tables.DailyTable(p.daily)},
		{"top_artists.csv", tables.TopArtistsTable(p.artists)},
		{"hourly_profile.csv", tables.HourlyTable(p.hourly)},
		{"sessions.csv", tables.SessionsTable(p.sessions)},
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.name)
		if err := tabular.WriteFile(path, f.table); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		fmt.Fprintf(out, "Wrote %s (%d rows)\n", path, len(f.table.Rows))
	}

	if dbPath == "" {
		return nil
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening snapshot database: %w", err)
	}
	defer db.Close()

	if err := db.WriteEvents(p.events); err != nil {
		return err
	}
	if err := db.WriteDaily(p.daily); err != nil {
		return err
	}
	if err := db.WriteTopArtists(p.artists); err != nil {
		return err
	}
	if err := db.WriteHourlyProfile(p.hourly); err != nil {
		return err
	}
	if err := db.WriteSessions(p.sessions); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote snapshot database %s\n", dbPath)
	return nil
}
