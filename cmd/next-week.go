package cmd

import (
	"fmt"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var nextWeekDays string

var nextWeekCmd = &cobra.Command{
	Use:   "next-week",
	Short: "Configure the next week's days and generate its menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		if nextWeekDays == "" {
			nextWeekDays = joinDays(session.Weekdays)
		}
		weekdays, err := utils.ParseWeekdays(nextWeekDays)
		if err != nil {
			return fmt.Errorf("Invalid --days: %w", err)
		}

		svc, err := newPlannerService()
		if err != nil {
			return err
		}

		if err := cycle.RequestNextWeekConfig(session, len(weekdays), weekdays, svc); err != nil {
			return fmt.Errorf("Failed to set up the next week: %w", err)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Printf("✅ Week %d menu generated. Run 'hyaku start' to begin\n", session.CurrentWeek)
		return nil
	},
}

func joinDays(days []string) string {
	out := ""
	for i, d := range days {
		if i > 0 {
			out += ","
		}
		out += d
	}
	return out
}

func init() {
	nextWeekCmd.Flags().StringVar(&nextWeekDays, "days", "", "Training weekdays for the next week (defaults to the current ones)")
	rootCmd.AddCommand(nextWeekCmd)
}
