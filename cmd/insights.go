package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/insights"
	"github.com/ademuri/spotify-history-tools/internal/tables"
)

var sectionNames = []string{"forgotten", "obsessions", "periods", "behavior", "shuffle", "rhythm", "eras"}

var insightsCmd = &cobra.Command{
	Use:   "insights [section...]",
	Short: "Analyzes listening behavior",
	Long: `Computes the behavioral analyses: forgotten favorites, obsession phases,
time-of-day profiles, skip/completion behavior, shuffle stats, weekly rhythm,
and yearly eras. With no arguments, shows every section. Sections with no
qualifying data are skipped.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printInsights(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func printInsights(out io.Writer, args []string) error {
	names := args
	if len(names) == 0 {
		names = sectionNames
	}
	for _, name := range names {
		found := false
		for _, known := range sectionNames {
			if name == known {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown section %q (want one of %v)", name, sectionNames)
		}
	}

	events, loc, err := loadEventsRequired()
	if err != nil {
		return err
	}

	overall := insights.Overall(events)
	fmt.Fprintf(out, "Plays: %d  Shuffle: %d%%  Skipped: %d%%  Completion: %d%%\n\n",
		len(events), overall.ShufflePercent, overall.SkipRate, overall.CompletionRate)

	for _, name := range names {
		printInsightSection(out, name, events, loc)
	}
	return nil
}

func printInsightSection(out io.Writer, name string, events []history.Event, loc *time.Location) {
	switch name {
	case "forgotten":
		printForgotten(out, insights.ForgottenFavorites(events, loc))
	case "obsessions":
		printObsessions(out, insights.ObsessionPhases(events, loc))
	case "periods":
		printPeriods(out, insights.TimePeriodProfiles(events, loc))
	case "behavior":
		printBehavior(out, insights.ArtistBehaviors(events))
	case "shuffle":
		printShuffle(out, insights.ShuffleStats(events, loc))
	case "rhythm":
		printRhythm(out, insights.WeeklyRhythm(tables.Daily(events, loc)))
	case "eras":
		printEras(out, insights.Eras(events, loc))
	}
}

func printForgotten(out io.Writer, forgotten []insights.ForgottenFavorite) {
	if len(forgotten) == 0 {
		return
	}
	fmt.Fprintln(out, "## Forgotten Favorites")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Artist", "Peak Year", "Peak Minutes", "Last Played", "Total Plays"})
	for _, f := range forgotten {
		table.Append([]string{
			f.Artist,
			strconv.Itoa(f.PeakYear),
			strconv.Itoa(f.PeakMinutes),
			f.LastPlayed.Format("2006-01-02"),
			strconv.Itoa(f.TotalPlays),
		})
	}
	table.Render()
	fmt.Fprintln(out)
}

func printObsessions(out io.Writer, phases []insights.ObsessionPhase) {
	if len(phases) == 0 {
		return
	}
	fmt.Fprintln(out, "## Obsession Phases")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Week", "Artist", "Plays", "% of Week"})
	for _, p := range phases {
		table.Append([]string{p.WeekStart, p.Artist, strconv.Itoa(p.Plays), strconv.Itoa(p.PercentOfWeek)})
	}
	table.Render()
	fmt.Fprintln(out)
}

func printPeriods(out io.Writer, profiles []insights.TimePeriodProfile) {
	fmt.Fprintln(out, "## Time of Day")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Period", "Total Minutes", "Top Artists"})
	for _, p := range profiles {
		var top []string
		for _, a := range p.TopArtists {
			top = append(top, fmt.Sprintf("%s (%dm)", a.Artist, a.Minutes))
		}
		table.Append([]string{p.Label, strconv.Itoa(p.TotalMinutes), strings.Join(top, ", ")})
	}
	table.Render()
	fmt.Fprintln(out)
}

func printBehavior(out io.Writer, behaviors []insights.ArtistBehavior) {
	if len(behaviors) == 0 {
		return
	}
	fmt.Fprintln(out, "## Artist Behavior")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Artist", "Plays", "Skip Rate", "Completion"})
	for _, b := range behaviors {
		table.Append([]string{
			b.Artist,
			strconv.Itoa(b.TotalPlays),
			fmt.Sprintf("%d%%", b.SkipRate),
			fmt.Sprintf("%d%%", b.CompletionRate),
		})
	}
	table.Render()
	fmt.Fprintln(out)
}

func printShuffle(out io.Writer, stats []insights.ShuffleStat) {
	if len(stats) == 0 {
		return
	}
	fmt.Fprintln(out, "## Shuffle vs Intentional")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Year", "Shuffle", "Intentional", "Shuffle %"})
	for _, s := range stats {
		table.Append([]string{
			strconv.Itoa(s.Year),
			strconv.Itoa(s.ShufflePlays),
			strconv.Itoa(s.IntentionalPlays),
			fmt.Sprintf("%d%%", s.ShufflePercent),
		})
	}
	table.Render()
	fmt.Fprintln(out)
}

func printRhythm(out io.Writer, rhythm []insights.WeekdayAverage) {
	fmt.Fprintln(out, "## Weekly Rhythm")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Day", "Avg Minutes"})
	for _, r := range rhythm {
		table.Append([]string{r.Day.String(), strconv.Itoa(r.Minutes)})
	}
	table.Render()
	fmt.Fprintln(out)
}

func printEras(out io.Writer, eras []insights.Era) {
	if len(eras) == 0 {
		return
	}
	fmt.Fprintln(out, "## Eras")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Year", "Hours", "Defining Artists"})
	for _, e := range eras {
		var top []string
		for _, a := range e.TopArtists {
			top = append(top, a.Artist)
		}
		table.Append([]string{strconv.Itoa(e.Year), strconv.Itoa(e.TotalHours), strings.Join(top, ", ")})
	}
	table.Render()
	fmt.Fprintln(out)
}
