package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/tables"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Shows the headline listening statistics",
	Long:  `Total hours, unique artists, tracks played, longest session, and daily average.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printSummary(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(out io.Writer) error {
	p, err := loadProjections()
	if err != nil {
		return err
	}
	s := tables.Summarize(p.daily, p.artists, p.sessions)

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Stat", "Value"})
	table.Append([]string{"Hours listened", strconv.Itoa(s.TotalHours)})
	table.Append([]string{"Unique artists", strconv.Itoa(s.UniqueArtists)})
	table.Append([]string{"Tracks played", strconv.Itoa(s.TotalTracks)})
	table.Append([]string{"Longest session (min)", strconv.Itoa(s.LongestSessionMin)})
	table.Append([]string{"Daily average (min)", strconv.Itoa(s.AverageDailyMinutes)})
	table.Render()
	return nil
}
