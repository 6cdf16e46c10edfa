package storage

import (
	"fmt"
	"time"

	"github.com/hyakukg/hyaku/internal/models"
	"github.com/sirupsen/logrus"
)

// SyncTrainingLogs pushes log entries the database has not seen yet.
// The table is insert-only, matching the append-only log semantics.
func (s *Storage) SyncTrainingLogs(logs []models.TrainingLog) (int, error) {
	synced := 0
	for _, log := range logs {
		res, err := s.DB.Exec(`
            INSERT OR IGNORE INTO training_logs (id, date, current_1rm, note)
            VALUES (?, ?, ?, ?)`,
			log.ID,
			log.Date.UTC().Format(time.RFC3339),
			log.Current1RM,
			log.Note,
		)
		if err != nil {
			return synced, fmt.Errorf("failed to sync log %s: %w", log.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			synced++
		}
	}

	logrus.WithField("synced", synced).Debug("training logs synced")
	return synced, nil
}

func (s *Storage) GetTrainingLogs() ([]models.TrainingLog, error) {
	rows, err := s.DB.Query(`
        SELECT id, date, current_1rm, note
        FROM training_logs
        ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load training logs: %w", err)
	}
	defer rows.Close()

	var logs []models.TrainingLog
	for rows.Next() {
		var log models.TrainingLog
		var rawDate string
		if err := rows.Scan(&log.ID, &rawDate, &log.Current1RM, &log.Note); err != nil {
			continue
		}
		log.Date, _ = time.Parse(time.RFC3339, rawDate)
		logs = append(logs, log)
	}
	return logs, nil
}
