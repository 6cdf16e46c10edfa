package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/spf13/cobra"
)

var showWeekCmd = &cobra.Command{
	Use:   "show-week",
	Short: "Show the current week's menu with record and review status",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		week := session.CurrentWeek
		plan := session.FindPlan(week)
		if plan == nil {
			if session.NextWeekConfigPending {
				return fmt.Errorf("No active week. Configure the next one with 'hyaku next-week'")
			}
			return fmt.Errorf("No plan found for week %d. Run 'hyaku init' to regenerate", week)
		}

		printBoxedHeader(fmt.Sprintf("WEEK %d MENU", week))
		printMetric("Reference max", fmt.Sprintf("%.1f kg", session.BenchmarkWeight))
		printMetric("Goal", fmt.Sprintf("%.1f kg", session.GoalWeight))
		fmt.Println()

		green := color.New(color.FgGreen, color.Bold)
		magenta := color.New(color.FgMagenta, color.Bold)
		for _, dayPlan := range plan.Days {
			reviewed := session.IsDayReviewed(week, dayPlan.Day)
			suffix := ""
			if reviewed {
				suffix = " (review done)"
			}
			fmt.Println(magenta.Sprintf("%s%s", dayPlan.Day, suffix))

			for _, item := range dayPlan.Menu {
				mark := "　"
				if session.RecordFor(week, dayPlan.Day, item.Name) != nil {
					mark = green.Sprint("✔")
				}
				line := fmt.Sprintf("  %s %s: %.1fkg x %d reps x %d sets", mark, item.Name, item.Weight, item.Reps, item.Sets)
				if item.IsMax {
					line += " 🚨 MAX TEST (1 rep x 1 set)"
				}
				fmt.Println(line)
			}

			if missing, ok := cycle.FirstMissingItem(session, week, dayPlan.Day); ok {
				fmt.Printf("  ⚠️  still missing: %s\n", missing)
			} else if reviewed {
				if r := session.ReviewFor(week, dayPlan.Day); r != nil {
					fmt.Printf("  🎉 coach: %s\n", r.Text)
				}
			} else {
				fmt.Println("  ✅ all recorded. Run 'hyaku finish-day' for the review")
			}
			fmt.Println()
		}

		if cycle.IsWeekComplete(session, week) {
			fmt.Println("✅ Week complete. Run 'hyaku finish-week'")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showWeekCmd)
}
