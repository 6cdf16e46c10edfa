package models

// ExerciseItem is a single planned entry of a training day. Items are
// immutable once a week has been generated.
type ExerciseItem struct {
	Name   string  `toml:"name" json:"name"`
	Weight float64 `toml:"weight" json:"weight"`
	Reps   int     `toml:"reps" json:"reps"`
	Sets   int     `toml:"sets" json:"sets"`
	IsMax  bool    `toml:"is_max" json:"is_max"`
}

type DayPlan struct {
	Day  string         `toml:"day" json:"day"`
	Menu []ExerciseItem `toml:"menu" json:"menu"`
}

type WeeklyPlan struct {
	Week int       `toml:"week" json:"week"`
	Days []DayPlan `toml:"day" json:"days"`
}

func (p *DayPlan) FindItem(name string) *ExerciseItem {
	for i := range p.Menu {
		if p.Menu[i].Name == name {
			return &p.Menu[i]
		}
	}
	return nil
}

func (w *WeeklyPlan) FindDay(day string) *DayPlan {
	for i := range w.Days {
		if w.Days[i].Day == day {
			return &w.Days[i]
		}
	}
	return nil
}

// MaxTestItems returns every item of the week flagged as a max-effort test.
func (w *WeeklyPlan) MaxTestItems() []ExerciseItem {
	var items []ExerciseItem
	for _, d := range w.Days {
		for _, it := range d.Menu {
			if it.IsMax {
				items = append(items, it)
			}
		}
	}
	return items
}
