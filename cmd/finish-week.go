package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var finishWeekCmd = &cobra.Command{
	Use:   "finish-week",
	Short: "Finalize the current week and move the cycle forward",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		week := session.CurrentWeek
		if err := cycle.FinalizeWeek(session, week); err != nil {
			return fmt.Errorf("Failed to finalize week %d: %w", week, err)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Printf("✅ Week %d finalized\n", week)

		switch {
		case session.GoalAchievedPending:
			color.New(color.FgGreen, color.Bold).Printf("🎉 Goal achieved! Tested max %.1fkg vs goal %.1fkg\n", session.BenchmarkWeight, session.GoalWeight)
			fmt.Println("Set the next goal with 'hyaku restart-cycle --goal <kg>'")
		case session.GoalMissedPending:
			fmt.Printf("Goal not reached this cycle (%.1fkg vs goal %.1fkg). Next cycle gets it!\n", session.BenchmarkWeight, session.GoalWeight)
			fmt.Println("Restart with 'hyaku restart-cycle'")
		default:
			fmt.Println("Configure the next week with 'hyaku next-week'")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finishWeekCmd)
}
