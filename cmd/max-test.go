package cmd

import (
	"fmt"
	"time"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var (
	maxTestWeight float64
	maxTestReps   int
	maxTestDate   string
)

var maxTestCmd = &cobra.Command{
	Use:   "max-test",
	Short: "Register a standalone 1RM test result",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		date := time.Now().UTC()
		if maxTestDate != "" {
			date, err = time.Parse("2006-01-02", maxTestDate)
			if err != nil {
				return fmt.Errorf("Invalid --date (want YYYY-MM-DD): %w", err)
			}
		}

		if err := cycle.RegisterMaxTest(session, date, maxTestWeight, maxTestReps); err != nil {
			return fmt.Errorf("Failed to register max test: %w", err)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Printf("✅ Max test registered. Current bench press 1RM: %.1f kg\n", session.Profile.Current1RM)
		return nil
	},
}

func init() {
	maxTestCmd.Flags().Float64VarP(&maxTestWeight, "weight", "w", 0, "Heaviest weight lifted in kg")
	maxTestCmd.Flags().IntVarP(&maxTestReps, "reps", "r", 1, "Reps performed (Epley estimate applied when above 1)")
	maxTestCmd.Flags().StringVar(&maxTestDate, "date", "", "Test date as YYYY-MM-DD (defaults to today)")
	maxTestCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(maxTestCmd)
}
