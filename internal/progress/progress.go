package progress

import (
	"math"
	"sort"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
)

// TargetOneRM is the bench press weight the whole challenge aims at.
const TargetOneRM = 100.0

const (
	baseWeeklyGain = 0.6  // kg/week at 3 sessions
	freqBonusStep  = 0.15 // extra kg/week per session above 3
	minWeeklyGain  = 0.3
)

// Point is one sample of a progress curve.
type Point struct {
	Date  time.Time
	Value float64
}

// EstimateWeeksToTarget roughly estimates how many weeks of training remain
// until the 100kg target, based on a frequency-adjusted weekly gain rate.
func EstimateWeeksToTarget(current1RM float64, sessionsPerWeek int) int {
	if current1RM >= TargetOneRM {
		return 0
	}

	weeklyGain := baseWeeklyGain + float64(sessionsPerWeek-3)*freqBonusStep
	weeklyGain = math.Max(minWeeklyGain, weeklyGain)

	weeks := int(math.Ceil((TargetOneRM - current1RM) / weeklyGain))
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// IdealPaceCurve interpolates linearly from the start value to the target
// value, one point per calendar day, both endpoints included.
func IdealPaceCurve(startDate time.Time, startValue float64, targetDate time.Time, targetValue float64) []Point {
	startDate = truncateDay(startDate)
	targetDate = truncateDay(targetDate)

	// Guard against a zero-length range.
	if !targetDate.After(startDate) {
		targetDate = startDate.AddDate(0, 0, 1)
	}

	numDays := int(targetDate.Sub(startDate).Hours() / 24)
	points := make([]Point, 0, numDays+1)
	for i := 0; i <= numDays; i++ {
		points = append(points, Point{
			Date:  startDate.AddDate(0, 0, i),
			Value: startValue + (targetValue-startValue)*float64(i)/float64(numDays),
		})
	}
	return points
}

// FirstDateReaching returns the date of the earliest log whose recorded 1RM
// is at or above target.
func FirstDateReaching(logs []models.TrainingLog, target float64) (time.Time, bool) {
	sorted := make([]models.TrainingLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	for _, log := range sorted {
		if log.Current1RM >= target {
			return log.Date, true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
