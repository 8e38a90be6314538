package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate exam readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		p := svc.analyzer.Predict(svc.collection, time.Now())

		fmt.Printf("Predicted success   %d%%\n", p.SuccessRate)
		fmt.Printf("Readiness           %s\n", p.Readiness)
		fmt.Printf("Confidence          %s\n", p.Confidence)
		if p.RecommendedHours > 0 {
			fmt.Printf("Recommended study   %d hours\n", p.RecommendedHours)
		}

		fmt.Println("\nBreakdown:")
		fmt.Printf("  Accuracy     %3d%%\n", p.Breakdown.Accuracy)
		fmt.Printf("  Coverage     %3d%%\n", p.Breakdown.Coverage)
		fmt.Printf("  Consistency  %3d%%\n", p.Breakdown.Consistency)
		fmt.Printf("  Streak       %3d%%\n", p.Breakdown.Streak)
		fmt.Printf("  Weak topics  %3d%%\n", p.Breakdown.WeakTopics)

		for _, line := range p.Insights {
			fmt.Println("\n" + line)
		}
		return nil
	},
}
