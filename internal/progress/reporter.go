package progress

import (
	"sort"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
)

// Milestone is one intermediate goal of the 100kg roadmap.
type Milestone struct {
	Threshold float64
	Label     string
	Reached   bool
}

var milestoneDefs = []struct {
	threshold float64
	label     string
}{
	{60, "Out of beginner territory"},
	{70, "Form-building phase"},
	{80, "Gateway to intermediate"},
	{90, "90kg challenger"},
	{95, "Knocking on 100kg"},
	{100, "100kg club"},
}

// Milestones reports which roadmap thresholds the current 1RM has reached,
// in ascending order.
func Milestones(current1RM float64) []Milestone {
	ms := make([]Milestone, 0, len(milestoneDefs))
	for _, def := range milestoneDefs {
		ms = append(ms, Milestone{
			Threshold: def.threshold,
			Label:     def.label,
			Reached:   current1RM >= def.threshold,
		})
	}
	return ms
}

// ProgressRatio is how far along the current value is toward target, capped
// at 1. A non-positive target yields 0.
func ProgressRatio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	ratio := current / target
	if ratio > 1 {
		return 1
	}
	return ratio
}

// RenderCurve builds the ideal-pace line and the actual measurements for the
// progress chart. Actual points are deduplicated by date, keeping the
// maximum per day.
func RenderCurve(logs []models.TrainingLog, profile models.Profile) (ideal, actual []Point) {
	if len(logs) == 0 {
		return nil, nil
	}

	sorted := make([]models.TrainingLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	// A recorded start date stands on its own; only the missing end of the
	// range falls back to a derived value.
	startDate := profile.StartDate
	if startDate.IsZero() {
		startDate = sorted[0].Date
	}
	targetDate := profile.TargetDate
	if targetDate.IsZero() || !targetDate.After(startDate) {
		targetDate = startDate.AddDate(0, 0, 7*profile.TargetWeeks)
	}

	initial := sorted[0].Current1RM
	ideal = IdealPaceCurve(startDate, initial, targetDate, TargetOneRM)

	// Collapse same-day logs to their best value.
	best := make(map[time.Time]float64)
	for _, log := range sorted {
		day := truncateDay(log.Date)
		if v, ok := best[day]; !ok || log.Current1RM > v {
			best[day] = log.Current1RM
		}
	}
	for day, v := range best {
		actual = append(actual, Point{Date: day, Value: v})
	}
	sort.Slice(actual, func(i, j int) bool { return actual[i].Date.Before(actual[j].Date) })

	return ideal, actual
}
