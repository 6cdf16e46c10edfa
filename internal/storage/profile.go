package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
)

// The CLI is single-user; the profile row always uses this id.
const profileID = "default"

func (s *Storage) SaveProfile(p models.Profile) error {
	_, err := s.DB.Exec(`
        INSERT OR REPLACE INTO profiles
            (id, height, body_weight, current_1rm, sessions_per_week, target_weeks, start_date, target_date)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		profileID,
		p.Height,
		p.BodyWeight,
		p.Current1RM,
		p.SessionsPerWeek,
		p.TargetWeeks,
		p.StartDate.UTC().Format(time.RFC3339),
		p.TargetDate.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (s *Storage) GetProfile() (*models.Profile, error) {
	var p models.Profile
	var startDate, targetDate string

	err := s.DB.QueryRow(`
        SELECT height, body_weight, current_1rm, sessions_per_week, target_weeks, start_date, target_date
        FROM profiles WHERE id = ?`, profileID,
	).Scan(&p.Height, &p.BodyWeight, &p.Current1RM, &p.SessionsPerWeek, &p.TargetWeeks, &startDate, &targetDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No profile stored yet.
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	p.StartDate, _ = time.Parse(time.RFC3339, startDate)
	p.TargetDate, _ = time.Parse(time.RFC3339, targetDate)
	return &p, nil
}
