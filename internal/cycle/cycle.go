// Package cycle implements the weekly training-cycle workflow: recording
// set results, gating day reviews and week completion, and driving the
// 4-week max-test / goal-acknowledgment transitions. Every operation takes
// the session aggregate explicitly and either fully applies or leaves it
// untouched.
package cycle

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/planner"
	"github.com/hyakukg/hyaku/internal/progress"
	"github.com/hyakukg/hyaku/internal/utils"
)

// NewSession builds the initial session from the profile setup form. The
// caller still has to generate and attach the week-1 plan before saving.
func NewSession(height, bodyWeight, current1RM float64, weekdays []string, now time.Time) *models.Session {
	weeks := progress.EstimateWeeksToTarget(current1RM, len(weekdays))
	start := now
	target := start.AddDate(0, 0, 7*weeks)

	s := &models.Session{
		Profile: models.Profile{
			Height:          height,
			BodyWeight:      bodyWeight,
			Current1RM:      current1RM,
			SessionsPerWeek: len(weekdays),
			TargetWeeks:     weeks,
			StartDate:       start,
			TargetDate:      target,
		},
		GoalWeight:      progress.TargetOneRM,
		Weekdays:        weekdays,
		CurrentWeek:     1,
		BenchmarkWeight: current1RM,
		ProteinGoal:     bodyWeight * 2.0,
	}

	s.AppendLog(uuid.New().String(), now, current1RM, "Initial setup")
	return s
}

// SaveRecord upserts the actual result for one planned exercise. On a
// max-test item reps and sets are forced to 1 regardless of input. It does
// not advance the workflow.
func SaveRecord(s *models.Session, week int, day, exercise string, weight float64, reps, sets int, note string) error {
	plan := s.FindPlan(week)
	if plan == nil {
		return fmt.Errorf("week %d: %w", week, ErrNotInPlan)
	}
	dayPlan := plan.FindDay(day)
	if dayPlan == nil {
		return fmt.Errorf("%s: %w", day, ErrNotInPlan)
	}
	item := dayPlan.FindItem(exercise)
	if item == nil {
		return fmt.Errorf("%s: %w", exercise, ErrNotInPlan)
	}

	if s.IsDayReviewed(week, day) {
		return ErrDayReviewed
	}

	if item.IsMax {
		reps = 1
		sets = 1
	}

	s.SetRecord(week, day, models.Record{
		ID:       uuid.New().String(),
		Exercise: exercise,
		Weight:   weight,
		Reps:     reps,
		Sets:     sets,
		Note:     note,
		IsMax:    item.IsMax,
		SavedAt:  time.Now().UTC(),
	})
	return nil
}

// IsDayComplete reports whether every planned exercise of the day has a
// saved record.
func IsDayComplete(s *models.Session, week int, day string) bool {
	_, missing := FirstMissingItem(s, week, day)
	return !missing
}

// FirstMissingItem names the first planned exercise of the day without a
// record. missing is false when the day is fully recorded (or unplanned).
func FirstMissingItem(s *models.Session, week int, day string) (name string, missing bool) {
	plan := s.FindPlan(week)
	if plan == nil {
		return "", true
	}
	dayPlan := plan.FindDay(day)
	if dayPlan == nil {
		return "", true
	}

	for _, item := range dayPlan.Menu {
		if s.RecordFor(week, day, item.Name) == nil {
			return item.Name, true
		}
	}
	return "", false
}

// CompleteDayReview stores the generated review text and locks the day.
// The text for a day is only ever stored once.
func CompleteDayReview(s *models.Session, week int, day, text string) error {
	if s.IsDayReviewed(week, day) {
		return ErrAlreadyReviewed
	}
	if !IsDayComplete(s, week, day) {
		return ErrDayNotComplete
	}

	s.SetReview(week, models.DayReview{
		Day:       day,
		Text:      text,
		Done:      true,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// IsWeekComplete is a pure query: every planned day recorded and reviewed.
func IsWeekComplete(s *models.Session, week int) bool {
	plan := s.FindPlan(week)
	if plan == nil {
		return false
	}
	for _, dayPlan := range plan.Days {
		if !IsDayComplete(s, week, dayPlan.Day) || !s.IsDayReviewed(week, dayPlan.Day) {
			return false
		}
	}
	return true
}

// FinalizeWeek performs the one-time week transition. Weeks 1-3 open the
// next-week configuration; week 4 derives the benchmark from the max-test
// record and raises exactly one of the achieved/missed flags.
func FinalizeWeek(s *models.Session, week int) error {
	if s.IsWeekFinalized(week) {
		return ErrWeekFinalized
	}
	if !IsWeekComplete(s, week) {
		return ErrWeekNotComplete
	}

	if week == 4 {
		rec := maxTestRecord(s, week)
		if rec != nil {
			s.BenchmarkWeight = rec.Weight
			if rec.Weight >= s.GoalWeight {
				s.GoalAchievedPending = true
				s.GoalMissedPending = false
			} else {
				s.GoalAchievedPending = false
				s.GoalMissedPending = true
			}
		}
	} else {
		s.NextWeekConfigPending = true
	}

	s.MarkWeekFinalized(week)
	return nil
}

// maxTestRecord returns the record of the week's max-test item. Should the
// plan carry more than one (a generator contract violation that parsing
// normally rejects), the first in day order wins.
func maxTestRecord(s *models.Session, week int) *models.Record {
	plan := s.FindPlan(week)
	if plan == nil {
		return nil
	}
	for _, dayPlan := range plan.Days {
		for _, item := range dayPlan.Menu {
			if !item.IsMax {
				continue
			}
			if rec := s.RecordFor(week, dayPlan.Day, item.Name); rec != nil {
				return rec
			}
		}
	}
	return nil
}

// RequestNextWeekConfig validates the next week's frequency, generates its
// plan and advances the cycle. Generation failure leaves the session
// exactly as it was.
func RequestNextWeekConfig(s *models.Session, sessions int, weekdays []string, gen planner.Generator) error {
	if !s.NextWeekConfigPending {
		return ErrNoConfigPending
	}
	if len(weekdays) != sessions {
		return ErrFrequencyMismatch
	}

	restart := s.CurrentWeek == models.CycleRestartWeek
	nextWeek := s.CurrentWeek + 1
	if restart {
		nextWeek = 1
	}

	plan, err := gen.GenerateWeek(planner.Request{
		Week:         nextWeek,
		Weekdays:     weekdays,
		Benchmark:    s.BenchmarkWeight,
		GoalWeight:   s.GoalWeight,
		PriorRecords: planner.FormatPriorWeekRecords(s, nextWeek),
	})
	if err != nil {
		return err
	}

	if restart {
		s.ResetCycle()
	}
	s.CurrentWeek = nextWeek
	s.Plans = append(s.Plans, plan)
	s.Weekdays = weekdays
	s.Profile.SessionsPerWeek = sessions
	s.NextWeekConfigPending = false
	s.TrainingStarted = false
	s.GoalAchievedPending = false
	s.GoalMissedPending = false
	return nil
}

// AcknowledgeGoal accepts an achieved cycle goal, raises the target and
// queues the next cycle's configuration.
func AcknowledgeGoal(s *models.Session, newGoalWeight float64) error {
	if !s.GoalAchievedPending {
		return ErrNoGoalPending
	}
	if newGoalWeight < s.BenchmarkWeight {
		return fmt.Errorf("new goal %.1fkg is below the tested max %.1fkg", newGoalWeight, s.BenchmarkWeight)
	}

	s.GoalWeight = newGoalWeight
	s.GoalAchievedPending = false
	s.CurrentWeek = models.CycleRestartWeek
	s.NextWeekConfigPending = true
	return nil
}

// AcknowledgeGoalMissed keeps the goal and queues a fresh cycle.
func AcknowledgeGoalMissed(s *models.Session) error {
	if !s.GoalMissedPending {
		return ErrNoGoalPending
	}

	s.GoalMissedPending = false
	s.CurrentWeek = models.CycleRestartWeek
	s.NextWeekConfigPending = true
	return nil
}

// StartTraining opens the current week for result entry.
func StartTraining(s *models.Session) error {
	if s.NextWeekConfigPending {
		return ErrNoConfigPending
	}
	if s.FindPlan(s.CurrentWeek) == nil {
		return ErrNoPlan
	}
	s.TrainingStarted = true
	return nil
}

// RegisterMaxTest records a standalone 1RM test outside the weekly cycle:
// it updates the profile max and appends a training log entry. Multi-rep
// results are converted with the Epley estimate.
func RegisterMaxTest(s *models.Session, date time.Time, weight float64, reps int) error {
	if weight <= 0 {
		return fmt.Errorf("test weight must be positive")
	}
	if reps < 1 {
		reps = 1
	}

	est := weight
	if reps > 1 {
		est = utils.CalculateEpley1RM(weight, reps)
	}
	est = math.Round(est*10) / 10

	s.Profile.Current1RM = est
	s.AppendLog(uuid.New().String(), date, est, "Updated by max test")
	return nil
}
