package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hyakukg/hyaku/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the 100kg roadmap, progress bar and pace curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		current := session.Profile.Current1RM
		printBoxedHeader("100KG ROADMAP")

		if current >= progress.TargetOneRM {
			green := color.New(color.FgGreen, color.Bold)
			green.Println("🏆 Welcome to the 100kg Club 🏆")
			if date, ok := progress.FirstDateReaching(session.TrainingLogs, progress.TargetOneRM); ok {
				printMetric("Achieved on", date.Format("2006-01-02"))
			}
			printMetric("Record", fmt.Sprintf("%.1f kg", current))
			fmt.Println()
		}

		ratio := progress.ProgressRatio(current, progress.TargetOneRM)
		printMetric("Current 1RM", fmt.Sprintf("%.1f kg / %.0f kg", current, progress.TargetOneRM))
		printMetric("Progress", progressBar(ratio))
		fmt.Println()

		for _, m := range progress.Milestones(current) {
			mark := "⬜"
			if m.Reached {
				mark = "✅"
			}
			fmt.Printf("  %s %.0fkg: %s\n", mark, m.Threshold, m.Label)
		}
		fmt.Println()

		ideal, actual := progress.RenderCurve(session.TrainingLogs, session.Profile)
		if len(actual) == 0 {
			fmt.Println("No log entries yet. Init or a max test will add them.")
			return nil
		}

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Measured 1RM (vs ideal pace):"))
		for _, p := range actual {
			pace := idealValueOn(ideal, p)
			fmt.Printf("  • %s: %.1f kg (pace %.1f kg)\n", p.Date.Format("2006-01-02"), p.Value, pace)
		}
		return nil
	},
}

// idealValueOn finds the ideal-pace value for an actual point's date, using
// the curve's nearest earlier sample.
func idealValueOn(ideal []progress.Point, actual progress.Point) float64 {
	if len(ideal) == 0 {
		return 0
	}
	value := ideal[0].Value
	for _, p := range ideal {
		if p.Date.After(actual.Date) {
			break
		}
		value = p.Value
	}
	return value
}

func progressBar(ratio float64) string {
	const width = 20
	filled := int(ratio * width)
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return fmt.Sprintf("%s %.0f%%", bar, ratio*100)
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
