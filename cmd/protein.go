package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/hyakukg/hyaku/internal/config"
	"github.com/hyakukg/hyaku/internal/openai"
	"github.com/hyakukg/hyaku/internal/protein"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var (
	proteinGrams float64
	proteinImage string
)

var proteinAddCmd = &cobra.Command{
	Use:   "protein-add",
	Short: "Add protein grams to today's total, by hand or from a meal photo",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		protein.Rollover(session, time.Now())

		grams := proteinGrams
		if proteinImage != "" {
			img, err := os.ReadFile(proteinImage)
			if err != nil {
				return fmt.Errorf("Failed to read image: %w", err)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("Failed to load config: %w", err)
			}
			if cfg.OpenAI.APIKey == "" {
				fmt.Println("⚠️  No OpenAI API key configured, photo estimation unavailable. Use --grams instead")
				return nil
			}

			grams = protein.EstimateFromImage(openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model), img)
			if grams <= 0 {
				fmt.Println("⚠️  Could not estimate protein from the photo. Use --grams instead")
				return nil
			}
			fmt.Printf("Estimated %.1f g from the photo\n", grams)
		}

		if err := protein.Add(session, grams); err != nil {
			return fmt.Errorf("Failed to add protein: %w", err)
		}

		reached, firstTime := protein.GoalReached(session, time.Now())

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		fmt.Printf("✅ Added %.1f g. Today: %.1f g / %.1f g\n", grams, session.ProteinToday, session.ProteinGoal)
		if reached && firstTime {
			svc, err := newPlannerService()
			if err == nil {
				fmt.Println("🎉 Daily protein goal reached!")
				fmt.Println("Coach: " + svc.GoalComment(1.0, "today's protein intake"))
			}
		}
		return nil
	},
}

var proteinStatusCmd = &cobra.Command{
	Use:   "protein-status",
	Short: "Show today's protein intake against the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		protein.Rollover(session, time.Now())
		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		printBoxedHeader("PROTEIN")
		printMetric("Goal", fmt.Sprintf("%.0f g (body weight %.1fkg x 2g)", session.ProteinGoal, session.Profile.BodyWeight))
		printMetric("Today", fmt.Sprintf("%.1f g", session.ProteinToday))
		printMetric("Progress", progressBar(protein.Ratio(session)))
		return nil
	},
}

func init() {
	proteinAddCmd.Flags().Float64VarP(&proteinGrams, "grams", "g", 0, "Protein grams to add")
	proteinAddCmd.Flags().StringVar(&proteinImage, "image", "", "Meal photo to estimate from (JPEG)")
	rootCmd.AddCommand(proteinAddCmd)
	rootCmd.AddCommand(proteinStatusCmd)
}
