package cmd

import (
	"fmt"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the training cycle currently stands",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		printBoxedHeader("STATUS")
		printMetric("Current 1RM", fmt.Sprintf("%.1f kg", session.Profile.Current1RM))
		printMetric("Reference max", fmt.Sprintf("%.1f kg", session.BenchmarkWeight))
		printMetric("Goal", fmt.Sprintf("%.1f kg", session.GoalWeight))
		printMetric("Sessions per week", session.Profile.SessionsPerWeek)
		printMetric("Training log entries", len(session.TrainingLogs))
		fmt.Println()

		switch {
		case session.GoalAchievedPending:
			fmt.Println("State: 🎉 goal achieved, waiting for 'hyaku restart-cycle --goal'")
		case session.GoalMissedPending:
			fmt.Println("State: goal missed, waiting for 'hyaku restart-cycle'")
		case session.NextWeekConfigPending && session.CurrentWeek == models.CycleRestartWeek:
			fmt.Println("State: new cycle, waiting for 'hyaku next-week'")
		case session.NextWeekConfigPending:
			fmt.Printf("State: week %d done, waiting for 'hyaku next-week'\n", session.CurrentWeek)
		case !session.TrainingStarted:
			fmt.Printf("State: week %d ready, waiting for 'hyaku start'\n", session.CurrentWeek)
		case cycle.IsWeekComplete(session, session.CurrentWeek):
			fmt.Printf("State: week %d complete, waiting for 'hyaku finish-week'\n", session.CurrentWeek)
		default:
			fmt.Printf("State: week %d in progress\n", session.CurrentWeek)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
