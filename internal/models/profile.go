package models

import "time"

type Profile struct {
	Height          float64   `toml:"height" json:"height"`
	BodyWeight      float64   `toml:"body_weight" json:"body_weight"`
	Current1RM      float64   `toml:"current_1rm" json:"current_1rm"`
	SessionsPerWeek int       `toml:"sessions_per_week" json:"sessions_per_week"`
	TargetWeeks     int       `toml:"target_weeks" json:"target_weeks"`
	StartDate       time.Time `toml:"start_date" json:"start_date"`
	TargetDate      time.Time `toml:"target_date" json:"target_date"`
}

// TrainingLog is one append-only snapshot of the current 1RM. Logs are
// cumulative across cycles and are never rewritten.
type TrainingLog struct {
	ID         string    `toml:"id" json:"id"`
	Date       time.Time `toml:"date" json:"date"`
	Current1RM float64   `toml:"current_1rm" json:"current_1rm"`
	Note       string    `toml:"note" json:"note"`
}
