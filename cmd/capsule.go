package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/capsule"
)

var capsuleRandom bool

var capsuleCmd = &cobra.Command{
	Use:   "capsule [yyyy-mm-dd]",
	Short: "Shows what you listened to on this day across years",
	Long: `Looks up plays matching the given calendar day (month and day; the year is
ignored) in every year of the dataset. With --random, picks a day from the
last ten years instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printCapsules(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(capsuleCmd)
	capsuleCmd.Flags().BoolVar(&capsuleRandom, "random", false, "Pick a random day from the last ten years")
}

func printCapsules(out io.Writer, args []string) error {
	events, loc, err := loadEventsRequired()
	if err != nil {
		return err
	}

	target, err := capsuleTarget(args, loc)
	if err != nil {
		return err
	}

	capsules := capsule.OnThisDay(events, target, loc)
	if len(capsules) == 0 {
		fmt.Fprintf(out, "No plays found on %d/%d in any year.\n", target.Month(), target.Day())
		return nil
	}

	for _, c := range capsules {
		fmt.Fprintf(out, "## %s/%d\n", c.Date, c.Year)
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Time", "Artist", "Track"})
		for _, p := range c.Tracks {
			table.Append([]string{p.Time, p.Artist, p.Track})
		}
		table.Render()
		fmt.Fprintln(out)
	}
	return nil
}

// capsuleTarget resolves the queried day as midnight in the bucketing zone,
// so the calendar day the user typed is the day that gets looked up.
func capsuleTarget(args []string, loc *time.Location) (time.Time, error) {
	switch {
	case capsuleRandom:
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return capsule.RandomDay(rng, time.Now()).In(loc), nil

	case len(args) == 1:
		parsed, err := parseSingleDatestring(args[0])
		if err != nil {
			return time.Time{}, err
		}
		if !parsed.Day {
			return time.Time{}, fmt.Errorf("capsule needs a full date (yyyy-mm-dd), got %q", args[0])
		}
		year, month, day := parsed.Date.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
	}

	return time.Now().In(loc), nil
}
