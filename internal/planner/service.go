package planner

import (
	"github.com/hyakukg/hyaku/internal/models"
)

// Service fronts plan and review generation with the per-key in-flight
// guard. It is the only entry point the commands use.
type Service struct {
	gen      Generator
	reviewer *Reviewer
	guard    *Guard
}

func NewService(gen Generator, reviewer *Reviewer) *Service {
	return &Service{
		gen:      gen,
		reviewer: reviewer,
		guard:    NewGuard(),
	}
}

func (s *Service) GenerateWeek(req Request) (models.WeeklyPlan, error) {
	key := PlanKey(req.Week)
	if err := s.guard.Acquire(key); err != nil {
		return models.WeeklyPlan{}, err
	}
	defer s.guard.Release(key)

	return s.gen.GenerateWeek(req)
}

func (s *Service) DailyReview(sess *models.Session, week int, day string) (string, error) {
	// Stored review text is final; a reviewed day never reaches the
	// generating collaborator again.
	if r := sess.ReviewFor(week, day); r != nil && r.Done {
		return r.Text, nil
	}

	key := ReviewKey(week, day)
	if err := s.guard.Acquire(key); err != nil {
		return "", err
	}
	defer s.guard.Release(key)

	return s.reviewer.DailyReview(sess, week, day), nil
}

func (s *Service) GoalComment(successRate float64, context string) string {
	return s.reviewer.GoalComment(successRate, context)
}
