/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/tables"
	"github.com/ademuri/spotify-history-tools/internal/tabular"
)

var tablesLimit int

var projectionNames = []string{"events", "daily", "artists", "hourly", "sessions"}

var tablesCmd = &cobra.Command{
	Use:   "tables [projection...]",
	Short: "Renders the derived listening tables",
	Long: `Renders one or more of the derived projections: events, daily, artists,
hourly, sessions. With no arguments, renders all of them.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTables(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().IntVarP(&tablesLimit, "limit", "n", 25, "Maximum rows to render per table (0 = all)")
}

func printTables(out io.Writer, args []string) error {
	names := args
	if len(names) == 0 {
		names = projectionNames
	}

	p, err := loadProjections()
	if err != nil {
		return err
	}

	for _, name := range names {
		t, err := projectionTable(p, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "## %s\n", name)
		renderTable(out, t, tablesLimit)
		fmt.Fprintln(out)
	}
	return nil
}

func projectionTable(p *projections, name string) (tabular.Table, error) {
	switch name {
	case "events":
		return tables.EventsTable(p.events), nil
	case "daily":
		return tables.DailyTable(p.daily), nil
	case "artists":
		return tables.TopArtistsTable(p.artists), nil
	case "hourly":
		return tables.HourlyTable(p.hourly), nil
	case "sessions":
		return tables.SessionsTable(p.sessions), nil
	}
	return tabular.Table{}, fmt.Errorf("unknown projection %q (want one of %v)", name, projectionNames)
}

func renderTable(out io.Writer, t tabular.Table, limit int) {
	table := tablewriter.NewWriter(out)
	table.Header(t.Header)

	rows := t.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	if limit > 0 && len(t.Rows) > limit {
		fmt.Fprintf(out, "(%d more rows)\n", len(t.Rows)-limit)
	}
}
