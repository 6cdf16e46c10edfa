package cmd

import (
	"fmt"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var (
	recWeight float64
	recReps   int
	recSets   int
	recNote   string
)

var saveRecordCmd = &cobra.Command{
	Use:   "save-record [day] [exercise]",
	Short: "Save the actual result for one planned exercise of the current week",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		if !session.TrainingStarted {
			return fmt.Errorf("Training not started yet. Run 'hyaku start' first")
		}

		day, exercise := args[0], args[1]
		week := session.CurrentWeek

		if err := cycle.SaveRecord(session, week, day, exercise, recWeight, recReps, recSets, recNote); err != nil {
			return fmt.Errorf("Failed to save record: %w", err)
		}

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		rec := session.RecordFor(week, day, exercise)
		fmt.Printf("✅ Saved %s (%s): %.1fkg x %d reps x %d sets\n", exercise, day, rec.Weight, rec.Reps, rec.Sets)
		if rec.IsMax {
			fmt.Println("🚨 Max test: reps and sets were fixed at 1")
		}
		return nil
	},
}

func init() {
	saveRecordCmd.Flags().Float64VarP(&recWeight, "weight", "w", 0, "Weight lifted in kg")
	saveRecordCmd.Flags().IntVarP(&recReps, "reps", "r", 0, "Reps performed")
	saveRecordCmd.Flags().IntVarP(&recSets, "sets", "s", 0, "Sets performed")
	saveRecordCmd.Flags().StringVarP(&recNote, "note", "n", "", "Free-form note")
	saveRecordCmd.MarkFlagRequired("weight")
	saveRecordCmd.MarkFlagRequired("reps")
	saveRecordCmd.MarkFlagRequired("sets")
	rootCmd.AddCommand(saveRecordCmd)
}
