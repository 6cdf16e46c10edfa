package planner

import (
	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/utils"
)

// weeklyProgression is the week-over-week load increase applied to the
// benchmark before deriving set weights.
const weeklyProgression = 0.02

// Deterministic generates a fixed bench-centric menu from the benchmark
// weight alone. It never fails.
type Deterministic struct{}

func (Deterministic) GenerateWeek(req Request) (models.WeeklyPlan, error) {
	base := req.Benchmark * (1 + weeklyProgression*float64(req.Week-1))
	cycleWeek := (req.Week-1)%4 + 1

	plan := models.WeeklyPlan{Week: req.Week}
	for i, day := range req.Weekdays {
		menu := []models.ExerciseItem{
			{Name: "Bench Press (main set)", Weight: utils.RoundToPlate(base * 0.8), Reps: 5, Sets: 3},
			{Name: "Bench Press (volume set)", Weight: utils.RoundToPlate(base * 0.7), Reps: 8, Sets: 3},
			{Name: "Bench Press (technique)", Weight: utils.RoundToPlate(base * 0.6), Reps: 10, Sets: 2},
			{Name: "Barbell Row", Weight: utils.RoundToPlate(base * 0.6), Reps: 8, Sets: 3},
			{Name: "Overhead Press", Weight: utils.RoundToPlate(base * 0.5), Reps: 6, Sets: 3},
		}

		// The cycle ends on a single max-effort attempt, replacing the
		// first day's main set.
		if cycleWeek == 4 && i == 0 {
			menu[0] = models.ExerciseItem{
				Name:   "Bench Press (max test)",
				Weight: utils.RoundToPlate(req.Benchmark * 1.025),
				Reps:   1,
				Sets:   1,
				IsMax:  true,
			}
		}

		plan.Days = append(plan.Days, models.DayPlan{Day: day, Menu: menu})
	}

	return plan, nil
}
