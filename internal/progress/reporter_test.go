package progress

import (
	"testing"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
)

func TestMilestones(t *testing.T) {
	ms := Milestones(85)

	if len(ms) != 6 {
		t.Fatalf("got %d milestones, want 6", len(ms))
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].Threshold <= ms[i-1].Threshold {
			t.Errorf("milestones not ascending at index %d", i)
		}
	}

	wantReached := map[float64]bool{60: true, 70: true, 80: true, 90: false, 95: false, 100: false}
	for _, m := range ms {
		if m.Reached != wantReached[m.Threshold] {
			t.Errorf("milestone %v reached = %v, want %v", m.Threshold, m.Reached, wantReached[m.Threshold])
		}
	}
}

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"halfway", 50, 100, 0.5},
		{"capped at 1", 120, 100, 1},
		{"zero target", 50, 0, 0},
		{"negative target", 50, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressRatio(tt.current, tt.target); got != tt.want {
				t.Errorf("ProgressRatio(%v, %v) = %v, want %v", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestRenderCurve(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := models.Profile{
		StartDate:  start,
		TargetDate: start.AddDate(0, 0, 14),
	}
	logs := []models.TrainingLog{
		{Date: start, Current1RM: 70},
		{Date: start.AddDate(0, 0, 7), Current1RM: 71},
		// Two entries on the same day: the max wins.
		{Date: start.AddDate(0, 0, 7).Add(6 * time.Hour), Current1RM: 73},
		{Date: start.AddDate(0, 0, 7).Add(9 * time.Hour), Current1RM: 72},
	}

	ideal, actual := RenderCurve(logs, profile)

	if len(ideal) != 15 {
		t.Errorf("got %d ideal points, want 15", len(ideal))
	}
	if ideal[0].Value != 70 || ideal[len(ideal)-1].Value != TargetOneRM {
		t.Errorf("ideal endpoints = %v, %v", ideal[0].Value, ideal[len(ideal)-1].Value)
	}

	if len(actual) != 2 {
		t.Fatalf("got %d actual points, want 2 (deduplicated by day)", len(actual))
	}
	if actual[1].Value != 73 {
		t.Errorf("same-day points should keep the max, got %v", actual[1].Value)
	}
	if !actual[0].Date.Before(actual[1].Date) {
		t.Error("actual points not sorted ascending")
	}
}

func TestRenderCurve_FallbackDates(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := models.Profile{TargetWeeks: 2} // no explicit dates
	logs := []models.TrainingLog{{Date: start, Current1RM: 90}}

	ideal, actual := RenderCurve(logs, profile)

	if len(actual) != 1 {
		t.Fatalf("got %d actual points, want 1", len(actual))
	}
	if len(ideal) != 15 { // 2 weeks from the first log, inclusive
		t.Errorf("got %d ideal points, want 15", len(ideal))
	}
}

func TestRenderCurve_StartDateSurvivesTargetFallback(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := models.Profile{
		StartDate:   start,
		TargetWeeks: 2,
		// No target date recorded.
	}
	// First log is a week after the recorded start.
	logs := []models.TrainingLog{{Date: start.AddDate(0, 0, 7), Current1RM: 72}}

	ideal, _ := RenderCurve(logs, profile)

	if len(ideal) == 0 {
		t.Fatal("expected an ideal curve")
	}
	if !ideal[0].Date.Equal(start) {
		t.Errorf("ideal curve starts at %v, want the recorded start date %v", ideal[0].Date, start)
	}
	// Fallback target = start + 2 weeks, one point per day inclusive.
	if len(ideal) != 15 {
		t.Errorf("got %d ideal points, want 15", len(ideal))
	}
}

func TestRenderCurve_NoLogs(t *testing.T) {
	ideal, actual := RenderCurve(nil, models.Profile{})
	if ideal != nil || actual != nil {
		t.Error("expected nil curves for empty logs")
	}
}
