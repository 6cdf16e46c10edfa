package cycle

import (
	"errors"
	"testing"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDays = []string{"mon", "wed", "fri"}

func newTestSession(t *testing.T, week int) *models.Session {
	t.Helper()

	s := NewSession(175, 70, 70, testDays, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s.CurrentWeek = week
	s.TrainingStarted = true

	plan, err := planner.Deterministic{}.GenerateWeek(planner.Request{
		Week:       week,
		Weekdays:   testDays,
		Benchmark:  s.BenchmarkWeight,
		GoalWeight: s.GoalWeight,
	})
	require.NoError(t, err)
	s.Plans = append(s.Plans, plan)
	return s
}

func recordWholeDay(t *testing.T, s *models.Session, week int, day string) {
	t.Helper()
	plan := s.FindPlan(week)
	require.NotNil(t, plan)
	dayPlan := plan.FindDay(day)
	require.NotNil(t, dayPlan)
	for _, item := range dayPlan.Menu {
		if s.RecordFor(week, day, item.Name) != nil {
			continue
		}
		require.NoError(t, SaveRecord(s, week, day, item.Name, item.Weight, item.Reps, item.Sets, ""))
	}
}

func completeWholeWeek(t *testing.T, s *models.Session, week int) {
	t.Helper()
	for _, day := range testDays {
		recordWholeDay(t, s, week, day)
		require.NoError(t, CompleteDayReview(s, week, day, "good session"))
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(175, 70, 70, testDays, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, s.CurrentWeek)
	assert.Equal(t, 50, s.Profile.TargetWeeks) // ceil((100-70)/0.6)
	assert.Equal(t, 70.0, s.BenchmarkWeight)
	assert.Equal(t, 100.0, s.GoalWeight)
	assert.Equal(t, 140.0, s.ProteinGoal) // body weight x 2g
	require.Len(t, s.TrainingLogs, 1)
	assert.Equal(t, 70.0, s.TrainingLogs[0].Current1RM)
}

func TestSaveRecord_RoundTrip(t *testing.T) {
	s := newTestSession(t, 1)

	err := SaveRecord(s, 1, "mon", "Bench Press (main set)", 62.5, 5, 3, "felt strong")
	require.NoError(t, err)

	rec := s.RecordFor(1, "mon", "Bench Press (main set)")
	require.NotNil(t, rec)
	assert.Equal(t, 62.5, rec.Weight)
	assert.Equal(t, 5, rec.Reps)
	assert.Equal(t, 3, rec.Sets)
	assert.Equal(t, "felt strong", rec.Note)
	assert.False(t, rec.IsMax)

	// Re-saving overwrites, it does not duplicate.
	require.NoError(t, SaveRecord(s, 1, "mon", "Bench Press (main set)", 65, 4, 3, "heavier"))
	assert.Len(t, s.DayRecordsFor(1, "mon"), 1)
	assert.Equal(t, 65.0, s.RecordFor(1, "mon", "Bench Press (main set)").Weight)
}

func TestSaveRecord_NotInPlan(t *testing.T) {
	s := newTestSession(t, 1)

	err := SaveRecord(s, 1, "mon", "Leg Press", 100, 10, 3, "")
	assert.ErrorIs(t, err, ErrNotInPlan)
	assert.Empty(t, s.DayRecordsFor(1, "mon"))

	// Unplanned day and unplanned week fail the same way.
	assert.ErrorIs(t, SaveRecord(s, 1, "sun", "Bench Press (main set)", 60, 5, 3, ""), ErrNotInPlan)
	assert.ErrorIs(t, SaveRecord(s, 9, "mon", "Bench Press (main set)", 60, 5, 3, ""), ErrNotInPlan)
}

func TestSaveRecord_LockedAfterReview(t *testing.T) {
	s := newTestSession(t, 1)
	recordWholeDay(t, s, 1, "mon")
	require.NoError(t, CompleteDayReview(s, 1, "mon", "done"))

	err := SaveRecord(s, 1, "mon", "Bench Press (main set)", 70, 5, 3, "")
	assert.ErrorIs(t, err, ErrDayReviewed)
}

func TestSaveRecord_MaxTestForcesSingle(t *testing.T) {
	s := newTestSession(t, 4)

	err := SaveRecord(s, 4, "mon", "Bench Press (max test)", 102, 5, 3, "new PR")
	require.NoError(t, err)

	rec := s.RecordFor(4, "mon", "Bench Press (max test)")
	require.NotNil(t, rec)
	assert.Equal(t, 102.0, rec.Weight)
	assert.Equal(t, 1, rec.Reps)
	assert.Equal(t, 1, rec.Sets)
	assert.True(t, rec.IsMax)
}

func TestCompleteDayReview_Gating(t *testing.T) {
	s := newTestSession(t, 1)

	// Not complete yet.
	err := CompleteDayReview(s, 1, "mon", "too early")
	assert.ErrorIs(t, err, ErrDayNotComplete)
	assert.False(t, s.IsDayReviewed(1, "mon"))

	recordWholeDay(t, s, 1, "mon")
	assert.True(t, IsDayComplete(s, 1, "mon"))
	require.NoError(t, CompleteDayReview(s, 1, "mon", "first text"))

	// Second review fails and the stored text stays.
	err = CompleteDayReview(s, 1, "mon", "second text")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Equal(t, "first text", s.ReviewFor(1, "mon").Text)
}

func TestFirstMissingItem(t *testing.T) {
	s := newTestSession(t, 1)

	// The first planned item is the main set.
	name, missing := FirstMissingItem(s, 1, "mon")
	assert.True(t, missing)
	assert.Equal(t, "Bench Press (main set)", name)

	recordWholeDay(t, s, 1, "mon")
	_, missing = FirstMissingItem(s, 1, "mon")
	assert.False(t, missing)
}

func TestFinalizeWeek_MidCycle(t *testing.T) {
	s := newTestSession(t, 1)

	assert.ErrorIs(t, FinalizeWeek(s, 1), ErrWeekNotComplete)

	completeWholeWeek(t, s, 1)
	assert.True(t, IsWeekComplete(s, 1))
	require.NoError(t, FinalizeWeek(s, 1))

	assert.True(t, s.NextWeekConfigPending)
	assert.False(t, s.GoalAchievedPending)
	assert.False(t, s.GoalMissedPending)

	// The transition fires exactly once.
	assert.ErrorIs(t, FinalizeWeek(s, 1), ErrWeekFinalized)
}

func TestFinalizeWeek_MaxTestAchieved(t *testing.T) {
	s := newTestSession(t, 4)

	require.NoError(t, SaveRecord(s, 4, "mon", "Bench Press (max test)", 102, 5, 3, ""))
	completeWholeWeek(t, s, 4)
	require.NoError(t, FinalizeWeek(s, 4))

	assert.Equal(t, 102.0, s.BenchmarkWeight)
	assert.True(t, s.GoalAchievedPending)
	assert.False(t, s.GoalMissedPending)
	assert.False(t, s.NextWeekConfigPending)
}

func TestFinalizeWeek_MaxTestMissed(t *testing.T) {
	s := newTestSession(t, 4)

	require.NoError(t, SaveRecord(s, 4, "mon", "Bench Press (max test)", 95, 1, 1, ""))
	completeWholeWeek(t, s, 4)
	require.NoError(t, FinalizeWeek(s, 4))

	assert.Equal(t, 95.0, s.BenchmarkWeight)
	assert.False(t, s.GoalAchievedPending)
	assert.True(t, s.GoalMissedPending)
}

type failingGen struct{}

func (failingGen) GenerateWeek(planner.Request) (models.WeeklyPlan, error) {
	return models.WeeklyPlan{}, planner.ErrPlanGeneration
}

func TestRequestNextWeekConfig(t *testing.T) {
	s := newTestSession(t, 1)
	completeWholeWeek(t, s, 1)
	require.NoError(t, FinalizeWeek(s, 1))

	// Frequency must match the weekday count.
	err := RequestNextWeekConfig(s, 3, []string{"mon", "wed"}, planner.Deterministic{})
	assert.ErrorIs(t, err, ErrFrequencyMismatch)
	assert.Equal(t, 1, s.CurrentWeek)

	// Generator failure changes nothing.
	err = RequestNextWeekConfig(s, 3, testDays, failingGen{})
	assert.ErrorIs(t, err, planner.ErrPlanGeneration)
	assert.Equal(t, 1, s.CurrentWeek)
	assert.True(t, s.NextWeekConfigPending)
	assert.Len(t, s.Plans, 1)

	// Success advances to week 2.
	require.NoError(t, RequestNextWeekConfig(s, 3, testDays, planner.Deterministic{}))
	assert.Equal(t, 2, s.CurrentWeek)
	assert.False(t, s.NextWeekConfigPending)
	assert.False(t, s.TrainingStarted)
	require.Len(t, s.Plans, 2)
	assert.Equal(t, 2, s.Plans[1].Week)

	// Not pending anymore.
	assert.ErrorIs(t, RequestNextWeekConfig(s, 3, testDays, planner.Deterministic{}), ErrNoConfigPending)
}

func TestGoalAcknowledgeAndRestart(t *testing.T) {
	s := newTestSession(t, 4)
	require.NoError(t, SaveRecord(s, 4, "mon", "Bench Press (max test)", 102, 1, 1, ""))
	completeWholeWeek(t, s, 4)
	require.NoError(t, FinalizeWeek(s, 4))
	require.True(t, s.GoalAchievedPending)

	logCountBefore := len(s.TrainingLogs)

	// Wrong acknowledgment for the state.
	assert.ErrorIs(t, AcknowledgeGoalMissed(s), ErrNoGoalPending)

	// New goal below the tested max is rejected.
	assert.Error(t, AcknowledgeGoal(s, 90))
	assert.True(t, s.GoalAchievedPending)

	require.NoError(t, AcknowledgeGoal(s, 107.5))
	assert.Equal(t, 107.5, s.GoalWeight)
	assert.Equal(t, models.CycleRestartWeek, s.CurrentWeek)
	assert.True(t, s.NextWeekConfigPending)

	// Configuring the restart begins a fresh cycle at week 1 with empty
	// per-cycle tracking but the cumulative log intact.
	require.NoError(t, RequestNextWeekConfig(s, 2, []string{"tue", "thu"}, planner.Deterministic{}))
	assert.Equal(t, 1, s.CurrentWeek)
	assert.Len(t, s.Plans, 1)
	assert.Empty(t, s.Records)
	assert.Empty(t, s.Reviews)
	assert.Len(t, s.TrainingLogs, logCountBefore)
	assert.Equal(t, []string{"tue", "thu"}, s.Weekdays)
	assert.Equal(t, 2, s.Profile.SessionsPerWeek)
}

func TestAcknowledgeGoalMissed(t *testing.T) {
	s := newTestSession(t, 4)
	require.NoError(t, SaveRecord(s, 4, "mon", "Bench Press (max test)", 95, 1, 1, ""))
	completeWholeWeek(t, s, 4)
	require.NoError(t, FinalizeWeek(s, 4))
	require.True(t, s.GoalMissedPending)

	assert.ErrorIs(t, AcknowledgeGoal(s, 105), ErrNoGoalPending)

	require.NoError(t, AcknowledgeGoalMissed(s))
	assert.Equal(t, 100.0, s.GoalWeight) // goal unchanged
	assert.Equal(t, models.CycleRestartWeek, s.CurrentWeek)
	assert.True(t, s.NextWeekConfigPending)
}

func TestStartTraining(t *testing.T) {
	s := newTestSession(t, 1)
	s.TrainingStarted = false

	require.NoError(t, StartTraining(s))
	assert.True(t, s.TrainingStarted)

	s.NextWeekConfigPending = true
	assert.ErrorIs(t, StartTraining(s), ErrNoConfigPending)
}

func TestRegisterMaxTest(t *testing.T) {
	s := newTestSession(t, 1)
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, RegisterMaxTest(s, date, 100, 5))
	// Epley: 100 * (1 + 5/30) = 116.7
	assert.Equal(t, 116.7, s.Profile.Current1RM)
	require.Len(t, s.TrainingLogs, 2)
	assert.Equal(t, 116.7, s.TrainingLogs[1].Current1RM)

	// A true single is taken as-is.
	require.NoError(t, RegisterMaxTest(s, date, 102.5, 1))
	assert.Equal(t, 102.5, s.Profile.Current1RM)

	assert.Error(t, RegisterMaxTest(s, date, 0, 1))
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrNotInPlan, ErrDayReviewed, ErrDayNotComplete, ErrAlreadyReviewed,
		ErrWeekNotComplete, ErrWeekFinalized, ErrFrequencyMismatch,
		ErrNoConfigPending, ErrNoGoalPending, ErrNoPlan,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("error %d and %d are not distinct", i, j)
			}
		}
	}
}
