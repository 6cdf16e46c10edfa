package cmd

import (
	"fmt"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the current week for result entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		if err := cycle.StartTraining(session); err != nil {
			return fmt.Errorf("Failed to start training: %w", err)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Printf("✅ Week %d started. Log results with 'hyaku save-record'\n", session.CurrentWeek)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
