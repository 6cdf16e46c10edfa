package planner

import (
	"fmt"
	"strings"

	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/openai"
	"github.com/sirupsen/logrus"
)

// Reviewer generates short coaching text. With no client, or on any call
// failure, it degrades to a canned deterministic message.
type Reviewer struct {
	client ChatCompleter
}

func NewReviewer(client ChatCompleter) *Reviewer {
	return &Reviewer{client: client}
}

// DailyReview returns 2-3 sentences of feedback for one finished day.
// It never fails: collaborator errors fall back to the canned message.
func (r *Reviewer) DailyReview(s *models.Session, week int, day string) string {
	if r.client == nil {
		return FeedbackMessage(1.0)
	}

	var sb strings.Builder
	sb.WriteString("You are the user's personal motivation coach. Based on today's results, reply with a positive review in 2-3 sentences.\n\n")
	sb.WriteString(fmt.Sprintf("Current max bench press: %.1fkg\n", s.BenchmarkWeight))
	sb.WriteString(fmt.Sprintf("Goal bench press: %.1fkg\n\n", s.GoalWeight))
	sb.WriteString("Results under review:\n")
	sb.WriteString(FormatDayRecords(s, week, day))

	messages := []openai.Message{
		{Role: "system", Content: "You are a coach who replies with short encouraging comments based on training results."},
		{Role: "user", Content: sb.String()},
	}

	text, err := r.client.Chat(messages, false)
	if err != nil || strings.TrimSpace(text) == "" {
		logrus.WithError(err).Debug("daily review generation failed, using fallback")
		return FeedbackMessage(1.0)
	}
	return strings.TrimSpace(text)
}

// GoalComment returns encouragement for an arbitrary tracked goal (protein,
// weekly completion) given its success rate.
func (r *Reviewer) GoalComment(successRate float64, context string) string {
	if r.client == nil {
		return FeedbackMessage(successRate)
	}

	prompt := fmt.Sprintf(
		"You are a strength coach and mental trainer. The user is chasing a 100kg bench press.\nWrite 1-3 sentences of positive, kind encouragement about this result.\n\n- Subject: %s\n- Achievement rate: %.1f%%\n",
		context, successRate*100,
	)

	messages := []openai.Message{
		{Role: "system", Content: "You are a friendly strength coach."},
		{Role: "user", Content: prompt},
	}

	text, err := r.client.Chat(messages, false)
	if err != nil || strings.TrimSpace(text) == "" {
		return FeedbackMessage(successRate)
	}
	return strings.TrimSpace(text)
}

// FeedbackMessage is the deterministic fallback comment, bucketed by how
// much of the goal was hit.
func FeedbackMessage(successRate float64) string {
	switch {
	case successRate >= 1.0:
		return "Perfect work! Everything on the plan is done. Keep this pace going 💪"
	case successRate >= 0.7:
		return "Great pace! Be proud of what you got done and take one more step next time 🔥"
	default:
		return "Not everything went to plan this time, but logging it is already a big step. Keep showing up 😊"
	}
}
