package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hyakukg/hyaku/internal/config"
	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/openai"
	"github.com/hyakukg/hyaku/internal/planner"
	"github.com/hyakukg/hyaku/internal/utils"
)

// loadSession loads the saved training-cycle state or fails with a hint.
func loadSession() (*models.Session, error) {
	if !utils.SessionExists() {
		return nil, fmt.Errorf("No profile yet. Run 'hyaku init' first")
	}

	session, err := utils.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("Failed to load state: %w", err)
	}
	return session, nil
}

// newPlannerService wires the configured generation strategy and the
// reviewer. With no API key the delegated strategy is unavailable and the
// reviewer degrades to canned feedback.
func newPlannerService() (*planner.Service, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}

	var client *openai.Client
	if cfg.OpenAI.APIKey != "" {
		client = openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	}

	var gen planner.Generator
	switch cfg.Planner.Strategy {
	case "ai":
		if client == nil {
			return nil, fmt.Errorf("Planner strategy is 'ai' but no OpenAI API key is configured")
		}
		gen = planner.NewDelegated(client)
	default:
		gen = planner.Deterministic{}
	}

	var reviewer *planner.Reviewer
	if client != nil {
		reviewer = planner.NewReviewer(client)
	} else {
		reviewer = planner.NewReviewer(nil)
	}

	return planner.NewService(gen, reviewer), nil
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}
