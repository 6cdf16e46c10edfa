package planner

import (
	"fmt"
	"strings"

	"github.com/hyakukg/hyaku/internal/models"
)

// FormatPriorWeekRecords summarizes the week before the given one for the
// generation prompt.
func FormatPriorWeekRecords(s *models.Session, week int) string {
	lastWeek := week - 1
	if lastWeek < 1 {
		return ""
	}

	var sb strings.Builder
	for _, day := range s.Weekdays {
		records := s.DayRecordsFor(lastWeek, day)
		if len(records) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("--- week %d, %s ---\n", lastWeek, day))
		for _, r := range records {
			sb.WriteString(fmt.Sprintf("- %s: %.1fkg x %d reps x %d sets. Note: %s\n",
				r.Exercise, r.Weight, r.Reps, r.Sets, r.Note))
		}
	}
	return sb.String()
}

// FormatDayRecords summarizes one finished day for the review prompt,
// including per-exercise total load.
func FormatDayRecords(s *models.Session, week int, day string) string {
	records := s.DayRecordsFor(week, day)
	if len(records) == 0 {
		return "No results recorded."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("--- week %d, %s results ---\n", week, day))
	for _, r := range records {
		totalLoad := r.Weight * float64(r.Reps) * float64(r.Sets)
		sb.WriteString(fmt.Sprintf("- %s: %.1fkg x %d reps x %d sets. Total load: %.0fkg\n",
			r.Exercise, r.Weight, r.Reps, r.Sets, totalLoad))
	}
	sb.WriteString("\nTraining for this day is complete.")
	return sb.String()
}
