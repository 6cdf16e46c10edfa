// Package protein tracks the daily protein-intake goal derived from body
// weight. It shares the session aggregate with the training cycle but never
// participates in its transitions.
package protein

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
	"github.com/sirupsen/logrus"
)

// GramsPerKg is the daily goal multiplier: body weight x 2g.
const GramsPerKg = 2.0

// ImageEstimator is the optional image-understanding collaborator.
type ImageEstimator interface {
	DescribeImage(prompt string, jpeg []byte) (string, error)
}

const estimatePrompt = "Estimate roughly how many grams of protein the whole meal in this picture contains. Reply with digits only (e.g. \"25\"), no units, no explanation."

// Rollover resets the daily counter when the tracked date is not today.
func Rollover(s *models.Session, today time.Time) {
	day := today.Format("2006-01-02")
	if s.ProteinDate != day {
		s.ProteinDate = day
		s.ProteinToday = 0
	}
	if s.ProteinGoal <= 0 {
		s.ProteinGoal = s.Profile.BodyWeight * GramsPerKg
	}
}

// Add records grams of protein eaten today.
func Add(s *models.Session, grams float64) error {
	if grams < 0 {
		return fmt.Errorf("protein amount must not be negative")
	}
	s.ProteinToday += grams
	return nil
}

// Ratio is today's progress toward the goal, capped at 1.
func Ratio(s *models.Session) float64 {
	if s.ProteinGoal <= 0 {
		return 0
	}
	r := s.ProteinToday / s.ProteinGoal
	if r > 1 {
		return 1
	}
	return r
}

// GoalReached reports whether today's intake hit the goal, and whether this
// is the first time today it did (for a one-time celebration).
func GoalReached(s *models.Session, today time.Time) (reached, firstTime bool) {
	if s.ProteinGoal <= 0 || s.ProteinToday < s.ProteinGoal {
		return false, false
	}
	day := today.Format("2006-01-02")
	if s.ProteinCelebratedDate != day {
		s.ProteinCelebratedDate = day
		return true, true
	}
	return true, false
}

// EstimateFromImage asks the vision collaborator for a gram count. Errors
// and non-numeric replies degrade to 0 so the caller can fall back to
// manual entry.
func EstimateFromImage(est ImageEstimator, jpeg []byte) float64 {
	if est == nil {
		return 0
	}

	reply, err := est.DescribeImage(estimatePrompt, jpeg)
	if err != nil {
		logrus.WithError(err).Debug("protein image estimation failed")
		return 0
	}

	fields := strings.Fields(strings.TrimSpace(reply))
	if len(fields) == 0 {
		return 0
	}
	grams, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || grams < 0 {
		return 0
	}
	return grams
}
