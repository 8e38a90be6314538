package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's study plan and weak areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		now := time.Now()

		if weak := svc.analyzer.WeakAreas(svc.collection); len(weak) > 0 {
			fmt.Println("Weak areas:")
			for _, w := range weak {
				fmt.Printf("  [%s] %s: %d%% over %d answers, ~%d min\n",
					strings.ToUpper(string(w.Severity)), w.Topic, w.Accuracy, w.Total, w.StudyMinutes)
				fmt.Printf("         %s\n", w.Plan)
			}
			fmt.Println()
		}

		fmt.Println("Today's plan:")
		for i, task := range svc.analyzer.DailyPlan(svc.collection, now) {
			fmt.Printf("  %d. %s (%s, %d min)\n", i+1, task.Title, task.Priority, task.EstimatedMinutes)
			fmt.Printf("     %s\n", task.Description)
		}
		return nil
	},
}
