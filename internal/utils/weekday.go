package utils

import (
	"fmt"
	"strings"
)

// Weekdays are the seven valid day tokens for plans, in week order.
var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// ParseWeekdays validates a comma-separated weekday list ("mon,wed,fri")
// and returns the normalized tokens in input order.
func ParseWeekdays(input string) ([]string, error) {
	parts := strings.Split(input, ",")
	var days []string
	seen := make(map[string]bool)

	for _, p := range parts {
		day := strings.ToLower(strings.TrimSpace(p))
		if day == "" {
			continue
		}
		if !isWeekday(day) {
			return nil, fmt.Errorf("invalid weekday %q (use mon..sun)", day)
		}
		if seen[day] {
			return nil, fmt.Errorf("weekday %q given twice", day)
		}
		seen[day] = true
		days = append(days, day)
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

func isWeekday(day string) bool {
	for _, w := range Weekdays {
		if w == day {
			return true
		}
	}
	return false
}
