package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/openai"
)

const planSchema = `{
    "weekly_plan": [
        {
            "day": "training weekday (e.g. mon)",
            "menu": [
                {
                    "name": "exercise name (e.g. Bench Press)",
                    "sets": 3,
                    "reps": 5,
                    "weight": 80,
                    "is_max": false
                }
            ]
        }
    ]
}`

// Delegated asks a chat-completion model for the weekly plan and parses the
// structured reply.
type Delegated struct {
	client ChatCompleter
}

func NewDelegated(client ChatCompleter) *Delegated {
	return &Delegated{client: client}
}

func (d *Delegated) GenerateWeek(req Request) (models.WeeklyPlan, error) {
	if d.client == nil {
		return models.WeeklyPlan{}, fmt.Errorf("%w: no API client configured", ErrPlanGeneration)
	}

	messages := []openai.Message{
		{Role: "system", Content: "You are a coach that outputs training menus strictly as JSON."},
		{Role: "user", Content: buildPlanPrompt(req)},
	}

	reply, err := d.client.Chat(messages, true)
	if err != nil {
		return models.WeeklyPlan{}, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}

	plan, err := parsePlanReply(reply, req)
	if err != nil {
		return models.WeeklyPlan{}, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}

	return plan, nil
}

func buildPlanPrompt(req Request) string {
	var sb strings.Builder

	sb.WriteString("You are a bench press specialist coach. Based on the user's past performance, generate an optimized training menu for the coming week.\n\n")

	sb.WriteString("USER:\n")
	sb.WriteString(fmt.Sprintf("- Current reference max bench press: %.1fkg\n", req.Benchmark))
	sb.WriteString(fmt.Sprintf("- Goal bench press: %.1fkg\n", req.GoalWeight))
	sb.WriteString(fmt.Sprintf("- Training frequency: %d sessions/week\n", len(req.Weekdays)))
	sb.WriteString(fmt.Sprintf("- Training days: %s\n", strings.Join(req.Weekdays, ", ")))

	sb.WriteString("\nCYCLE:\n")
	sb.WriteString(fmt.Sprintf("- Week to generate: %d\n", req.Week))
	sb.WriteString("- 4-week cycle: week 1 volume / week 2 intensity / week 3 peak / week 4 max test\n")
	sb.WriteString("- On week 4 mark the max-test exercise with 'is_max': true and set reps=1, sets=1.\n")

	sb.WriteString("\nCONSTRAINTS:\n")
	sb.WriteString("- Round all weights to 2.5kg increments.\n")
	sb.WriteString("- Use externally loaded exercises (barbell, dumbbell, machine) only; no bodyweight movements.\n")

	sb.WriteString("\nPRIOR RESULTS:\n")
	if req.PriorRecords != "" {
		sb.WriteString(req.PriorRecords)
	} else {
		sb.WriteString("No prior week results.\n")
	}

	sb.WriteString(fmt.Sprintf("\nReply with the week %d menu conforming exactly to this JSON schema:\n%s\n", req.Week, planSchema))

	return sb.String()
}

type planJSON struct {
	WeeklyPlan []struct {
		Day  string `json:"day"`
		Menu []struct {
			Name   string  `json:"name"`
			Sets   int     `json:"sets"`
			Reps   int     `json:"reps"`
			Weight float64 `json:"weight"`
			IsMax  bool    `json:"is_max"`
		} `json:"menu"`
	} `json:"weekly_plan"`
}

func parsePlanReply(reply string, req Request) (models.WeeklyPlan, error) {
	reply = extractJSON(reply)

	var data planJSON
	if err := json.Unmarshal([]byte(reply), &data); err != nil {
		return models.WeeklyPlan{}, fmt.Errorf("invalid JSON reply: %w", err)
	}

	if len(data.WeeklyPlan) == 0 {
		return models.WeeklyPlan{}, fmt.Errorf("reply contains no training days")
	}

	requested := make(map[string]bool, len(req.Weekdays))
	for _, d := range req.Weekdays {
		requested[d] = true
	}

	plan := models.WeeklyPlan{Week: req.Week}
	maxItems := 0
	for _, dayData := range data.WeeklyPlan {
		day := strings.ToLower(strings.TrimSpace(dayData.Day))
		if !requested[day] {
			return models.WeeklyPlan{}, fmt.Errorf("reply contains unrequested day %q", dayData.Day)
		}
		if len(dayData.Menu) == 0 {
			return models.WeeklyPlan{}, fmt.Errorf("day %q has an empty menu", day)
		}

		dp := models.DayPlan{Day: day}
		for _, item := range dayData.Menu {
			if item.Name == "" || item.Sets <= 0 || item.Reps <= 0 {
				return models.WeeklyPlan{}, fmt.Errorf("day %q has a malformed item", day)
			}
			isMax := item.IsMax && req.Week == 4
			if isMax {
				maxItems++
			}
			dp.Menu = append(dp.Menu, models.ExerciseItem{
				Name:   item.Name,
				Weight: item.Weight,
				Reps:   item.Reps,
				Sets:   item.Sets,
				IsMax:  isMax,
			})
		}
		plan.Days = append(plan.Days, dp)
	}

	// Week 4 must carry exactly one max-test item.
	if req.Week == 4 && maxItems != 1 {
		return models.WeeklyPlan{}, fmt.Errorf("week 4 reply has %d max-test items, want exactly 1", maxItems)
	}

	return plan, nil
}

// extractJSON pulls the outermost JSON object out of a reply that may be
// wrapped in markdown fences or prose.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
