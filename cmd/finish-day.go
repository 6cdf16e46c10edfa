package cmd

import (
	"fmt"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var finishDayCmd = &cobra.Command{
	Use:   "finish-day [day]",
	Short: "Close a fully recorded day and get its coaching review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		day := args[0]
		week := session.CurrentWeek

		if session.IsDayReviewed(week, day) {
			return fmt.Errorf("Failed to finish day: %w", cycle.ErrAlreadyReviewed)
		}

		if !cycle.IsDayComplete(session, week, day) {
			missing, _ := cycle.FirstMissingItem(session, week, day)
			return fmt.Errorf("Day %s is not fully recorded yet (missing: %s): %w", day, missing, cycle.ErrDayNotComplete)
		}

		svc, err := newPlannerService()
		if err != nil {
			return err
		}

		// The review text is generated before the transition; a failed
		// generation already degraded to the canned fallback inside the
		// reviewer, so this only fails on a duplicate request.
		review, err := svc.DailyReview(session, week, day)
		if err != nil {
			return fmt.Errorf("Failed to generate review: %w", err)
		}

		if err := cycle.CompleteDayReview(session, week, day, review); err != nil {
			return fmt.Errorf("Failed to finish day: %w", err)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Printf("🎉 %s review complete:\n\n%s\n", day, review)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finishDayCmd)
}
