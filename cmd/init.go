package cmd

import (
	"fmt"
	"time"

	"github.com/hyakukg/hyaku/internal/cycle"
	"github.com/hyakukg/hyaku/internal/planner"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var (
	initHeight  float64
	initWeight  float64
	initOneRM   float64
	initDays    string
	initForce   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Register your profile and generate the week-1 menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() && !initForce {
			return fmt.Errorf("A profile already exists. Use --force to start over (this wipes all records)")
		}

		weekdays, err := utils.ParseWeekdays(initDays)
		if err != nil {
			return fmt.Errorf("Invalid --days: %w", err)
		}

		svc, err := newPlannerService()
		if err != nil {
			return err
		}

		session := cycle.NewSession(initHeight, initWeight, initOneRM, weekdays, time.Now().UTC())

		// Week 1 is generated before anything is persisted: a failed
		// generation leaves no half-initialized profile behind.
		plan, err := svc.GenerateWeek(planner.Request{
			Week:       1,
			Weekdays:   weekdays,
			Benchmark:  session.BenchmarkWeight,
			GoalWeight: session.GoalWeight,
		})
		if err != nil {
			return fmt.Errorf("Failed to generate the week-1 menu: %w", err)
		}
		session.Plans = append(session.Plans, plan)

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Println("✅ Profile registered and week-1 menu created")
		fmt.Printf("✅ Estimated weeks to 100kg: about %d weeks\n", session.Profile.TargetWeeks)
		fmt.Printf("✅ Estimated target date: around %s\n", session.Profile.TargetDate.Format("2006-01-02"))
		fmt.Println("Run 'hyaku start' when you are ready to train, then 'hyaku show-week' for the menu.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Float64Var(&initHeight, "height", 0, "Height in cm")
	initCmd.Flags().Float64Var(&initWeight, "weight", 0, "Body weight in kg")
	initCmd.Flags().Float64Var(&initOneRM, "one-rm", 0, "Current best bench press single in kg")
	initCmd.Flags().StringVar(&initDays, "days", "mon,wed,fri", "Training weekdays, comma separated (mon..sun)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing profile")
	initCmd.MarkFlagRequired("height")
	initCmd.MarkFlagRequired("weight")
	initCmd.MarkFlagRequired("one-rm")
}
