package cmd

import (
	"fmt"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var restartGoal float64

var restartCycleCmd = &cobra.Command{
	Use:   "restart-cycle",
	Short: "Acknowledge the cycle result and queue a fresh 4-week cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		switch {
		case session.GoalAchievedPending:
			if restartGoal <= 0 {
				return fmt.Errorf("Goal achieved. Pass the next target with --goal (e.g. --goal %.0f)", session.BenchmarkWeight+5)
			}
			if err := cycle.AcknowledgeGoal(session, restartGoal); err != nil {
				return fmt.Errorf("Failed to restart cycle: %w", err)
			}
			fmt.Printf("🎉 New goal set: %.1fkg\n", session.GoalWeight)
		case session.GoalMissedPending:
			if err := cycle.AcknowledgeGoalMissed(session); err != nil {
				return fmt.Errorf("Failed to restart cycle: %w", err)
			}
			fmt.Printf("Goal stays at %.1fkg. Next cycle!\n", session.GoalWeight)
		default:
			return fmt.Errorf("No cycle result to acknowledge: %w", cycle.ErrNoGoalPending)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Println("✅ Configure the new cycle's week 1 with 'hyaku next-week'")
		return nil
	},
}

func init() {
	restartCycleCmd.Flags().Float64Var(&restartGoal, "goal", 0, "Next goal weight in kg (required after an achieved goal)")
	rootCmd.AddCommand(restartCycleCmd)
}
