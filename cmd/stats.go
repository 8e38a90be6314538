package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		stats := svc.ledger.Stats()
		streak := svc.ledger.Streak()
		answered := svc.ledger.AnsweredCount(svc.collection)
		total := len(svc.catalog.ItemIDs(svc.collection))

		fmt.Printf("Collection          %s\n", svc.collection)
		fmt.Printf("Questions answered  %d\n", stats.TotalSolved)
		fmt.Printf("Correct             %d\n", stats.Correct)
		fmt.Printf("Incorrect           %d\n", stats.Incorrect)
		fmt.Printf("Accuracy            %.1f%%\n", stats.AccuracyRate)
		fmt.Printf("Tests taken         %d\n", stats.TestsTaken)
		fmt.Printf("Coverage            %d of %d\n", answered, total)
		fmt.Printf("Streak              %d days (best %d)\n", streak.Current, streak.Best)

		fmt.Println("\nLast 7 days:")
		for _, day := range svc.ledger.WeeklyTrend(time.Now()) {
			fmt.Printf("  %s  %2d/%-2d", day.Label, day.Correct, day.Total)
			if day.Total > 0 {
				fmt.Printf("  %d%%", day.Accuracy)
			}
			fmt.Println()
		}

		if earned := svc.ledger.Achievements(); len(earned) > 0 {
			fmt.Println("\nAchievements:")
			for _, a := range earned {
				fmt.Printf("  %s\n", a)
			}
		}
		return nil
	},
}
