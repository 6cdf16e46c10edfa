package models

import (
	"sort"
	"time"
)

// CycleRestartWeek is the sentinel CurrentWeek value set after a 4-week
// cycle ends: the next configured week starts a fresh cycle at week 1.
const CycleRestartWeek = 0

// Record is the actual result the user entered for one (week, day, exercise)
// triple. Re-saving overwrites; records become immutable once the day has
// been reviewed.
type Record struct {
	ID       string    `toml:"id"`
	Exercise string    `toml:"exercise"`
	Weight   float64   `toml:"weight"`
	Reps     int       `toml:"reps"`
	Sets     int       `toml:"sets"`
	Note     string    `toml:"note"`
	IsMax    bool      `toml:"is_max"`
	SavedAt  time.Time `toml:"saved_at"`
}

type DayRecords struct {
	Day   string   `toml:"day"`
	Items []Record `toml:"record"`
}

type WeekRecords struct {
	Week int          `toml:"week"`
	Days []DayRecords `toml:"day"`
}

// DayReview holds the generated coaching text for a finished day. The text,
// once stored, is never regenerated.
type DayReview struct {
	Day       string    `toml:"day"`
	Text      string    `toml:"text"`
	Done      bool      `toml:"done"`
	CreatedAt time.Time `toml:"created_at"`
}

type WeekReviews struct {
	Week int         `toml:"week"`
	Days []DayReview `toml:"day"`
}

// Session is the whole training-cycle state of a single user, persisted as
// one TOML file between commands.
type Session struct {
	Profile    Profile  `toml:"profile"`
	GoalWeight float64  `toml:"goal_weight"`
	Weekdays   []string `toml:"weekdays"`

	CurrentWeek           int  `toml:"current_week"`
	TrainingStarted       bool `toml:"training_started"`
	NextWeekConfigPending bool `toml:"next_week_config_pending"`
	GoalAchievedPending   bool `toml:"goal_achieved_pending"`
	GoalMissedPending     bool `toml:"goal_missed_pending"`

	// BenchmarkWeight is the reference max used to scale generated plans,
	// re-derived from the week-4 max test.
	BenchmarkWeight float64 `toml:"benchmark_weight"`

	Plans          []WeeklyPlan  `toml:"plan"`
	Records        []WeekRecords `toml:"records"`
	Reviews        []WeekReviews `toml:"reviews"`
	FinalizedWeeks []int         `toml:"finalized_weeks"`

	TrainingLogs []TrainingLog `toml:"training_log"`

	ProteinGoal           float64 `toml:"protein_goal"`
	ProteinToday          float64 `toml:"protein_today"`
	ProteinDate           string  `toml:"protein_date"`
	ProteinCelebratedDate string  `toml:"protein_celebrated_date"`
}

func (s *Session) FindPlan(week int) *WeeklyPlan {
	for i := range s.Plans {
		if s.Plans[i].Week == week {
			return &s.Plans[i]
		}
	}
	return nil
}

func (s *Session) RecordFor(week int, day, exercise string) *Record {
	for i := range s.Records {
		if s.Records[i].Week != week {
			continue
		}
		for j := range s.Records[i].Days {
			if s.Records[i].Days[j].Day != day {
				continue
			}
			for k := range s.Records[i].Days[j].Items {
				if s.Records[i].Days[j].Items[k].Exercise == exercise {
					return &s.Records[i].Days[j].Items[k]
				}
			}
		}
	}
	return nil
}

// SetRecord upserts the record for (week, day, rec.Exercise).
func (s *Session) SetRecord(week int, day string, rec Record) {
	if existing := s.RecordFor(week, day, rec.Exercise); existing != nil {
		*existing = rec
		return
	}

	wr := s.weekRecords(week)
	for i := range wr.Days {
		if wr.Days[i].Day == day {
			wr.Days[i].Items = append(wr.Days[i].Items, rec)
			return
		}
	}
	wr.Days = append(wr.Days, DayRecords{Day: day, Items: []Record{rec}})
}

func (s *Session) weekRecords(week int) *WeekRecords {
	for i := range s.Records {
		if s.Records[i].Week == week {
			return &s.Records[i]
		}
	}
	s.Records = append(s.Records, WeekRecords{Week: week})
	return &s.Records[len(s.Records)-1]
}

// DayRecordsFor returns the records saved so far for one day of a week.
func (s *Session) DayRecordsFor(week int, day string) []Record {
	for i := range s.Records {
		if s.Records[i].Week != week {
			continue
		}
		for j := range s.Records[i].Days {
			if s.Records[i].Days[j].Day == day {
				return s.Records[i].Days[j].Items
			}
		}
	}
	return nil
}

func (s *Session) ReviewFor(week int, day string) *DayReview {
	for i := range s.Reviews {
		if s.Reviews[i].Week != week {
			continue
		}
		for j := range s.Reviews[i].Days {
			if s.Reviews[i].Days[j].Day == day {
				return &s.Reviews[i].Days[j]
			}
		}
	}
	return nil
}

func (s *Session) SetReview(week int, review DayReview) {
	for i := range s.Reviews {
		if s.Reviews[i].Week == week {
			s.Reviews[i].Days = append(s.Reviews[i].Days, review)
			return
		}
	}
	s.Reviews = append(s.Reviews, WeekReviews{Week: week, Days: []DayReview{review}})
}

func (s *Session) IsDayReviewed(week int, day string) bool {
	r := s.ReviewFor(week, day)
	return r != nil && r.Done
}

func (s *Session) IsWeekFinalized(week int) bool {
	for _, w := range s.FinalizedWeeks {
		if w == week {
			return true
		}
	}
	return false
}

func (s *Session) MarkWeekFinalized(week int) {
	if !s.IsWeekFinalized(week) {
		s.FinalizedWeeks = append(s.FinalizedWeeks, week)
	}
}

// AppendLog adds an append-only training log snapshot of the given 1RM.
func (s *Session) AppendLog(id string, date time.Time, current1RM float64, note string) {
	s.TrainingLogs = append(s.TrainingLogs, TrainingLog{
		ID:         id,
		Date:       date,
		Current1RM: current1RM,
		Note:       note,
	})
}

// MergeLogs folds remote log entries into the session, skipping IDs already
// present, and returns how many were new. The log stays in date order.
func (s *Session) MergeLogs(logs []TrainingLog) int {
	seen := make(map[string]bool, len(s.TrainingLogs))
	for _, l := range s.TrainingLogs {
		seen[l.ID] = true
	}

	added := 0
	for _, l := range logs {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		s.TrainingLogs = append(s.TrainingLogs, l)
		added++
	}

	if added > 0 {
		sort.Slice(s.TrainingLogs, func(i, j int) bool {
			return s.TrainingLogs[i].Date.Before(s.TrainingLogs[j].Date)
		})
	}
	return added
}

// ResetCycle clears per-cycle tracking for a fresh cycle. Training logs are
// cumulative and survive the reset.
func (s *Session) ResetCycle() {
	s.Plans = nil
	s.Records = nil
	s.Reviews = nil
	s.FinalizedWeeks = nil
	s.GoalAchievedPending = false
	s.GoalMissedPending = false
	s.TrainingStarted = false
}
