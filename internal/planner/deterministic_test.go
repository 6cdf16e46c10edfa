package planner

import (
	"math"
	"testing"
)

func TestDeterministicWeekOne(t *testing.T) {
	plan, err := Deterministic{}.GenerateWeek(Request{
		Week:      1,
		Weekdays:  []string{"mon", "wed", "fri"},
		Benchmark: 80,
	})
	if err != nil {
		t.Fatalf("GenerateWeek: %v", err)
	}
	if plan.Week != 1 {
		t.Errorf("plan.Week = %d, want 1", plan.Week)
	}
	if len(plan.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(plan.Days))
	}

	want := []struct {
		name   string
		weight float64
		reps   int
		sets   int
	}{
		{"Bench Press (main set)", 65, 5, 3},
		{"Bench Press (volume set)", 55, 8, 3},
		{"Bench Press (technique)", 47.5, 10, 2},
		{"Barbell Row", 47.5, 8, 3},
		{"Overhead Press", 40, 6, 3},
	}

	for _, day := range plan.Days {
		if len(day.Menu) != len(want) {
			t.Fatalf("day %s: got %d items, want %d", day.Day, len(day.Menu), len(want))
		}
		for i, w := range want {
			item := day.Menu[i]
			if item.Name != w.name || item.Weight != w.weight || item.Reps != w.reps || item.Sets != w.sets {
				t.Errorf("day %s item %d = %+v, want %+v", day.Day, i, item, w)
			}
			if item.IsMax {
				t.Errorf("day %s item %q: IsMax set outside week 4", day.Day, item.Name)
			}
		}
	}
}

func TestDeterministicPlateRounding(t *testing.T) {
	for _, benchmark := range []float64{62.5, 70, 77.5, 83.3, 91} {
		plan, err := Deterministic{}.GenerateWeek(Request{
			Week:      2,
			Weekdays:  []string{"tue", "thu"},
			Benchmark: benchmark,
		})
		if err != nil {
			t.Fatalf("GenerateWeek(%v): %v", benchmark, err)
		}
		for _, day := range plan.Days {
			for _, item := range day.Menu {
				steps := item.Weight / 2.5
				if math.Abs(steps-math.Round(steps)) > 1e-9 {
					t.Errorf("benchmark %v, %q: weight %v is not a 2.5 kg multiple",
						benchmark, item.Name, item.Weight)
				}
			}
		}
	}
}

func TestDeterministicProgression(t *testing.T) {
	w1, _ := Deterministic{}.GenerateWeek(Request{Week: 1, Weekdays: []string{"mon"}, Benchmark: 80})
	w2, _ := Deterministic{}.GenerateWeek(Request{Week: 2, Weekdays: []string{"mon"}, Benchmark: 80})

	// Week 2 works off 80 * 1.02 = 81.6, so the main set moves 65 -> 65.
	// The volume set moves 55 -> 57.5 after rounding.
	main1 := w1.Days[0].Menu[0].Weight
	main2 := w2.Days[0].Menu[0].Weight
	if main2 < main1 {
		t.Errorf("main set regressed week over week: %v -> %v", main1, main2)
	}
	vol2 := w2.Days[0].Menu[1].Weight
	if vol2 != 57.5 {
		t.Errorf("week 2 volume set = %v, want 57.5", vol2)
	}
}

func TestDeterministicMaxTestWeek(t *testing.T) {
	plan, err := Deterministic{}.GenerateWeek(Request{
		Week:      4,
		Weekdays:  []string{"mon", "wed", "fri"},
		Benchmark: 97.5,
	})
	if err != nil {
		t.Fatalf("GenerateWeek: %v", err)
	}

	maxItems := plan.MaxTestItems()
	if len(maxItems) != 1 {
		t.Fatalf("got %d max test items, want 1", len(maxItems))
	}
	item := maxItems[0]
	if item.Name != "Bench Press (max test)" {
		t.Errorf("max item name = %q", item.Name)
	}
	if item.Reps != 1 || item.Sets != 1 {
		t.Errorf("max item reps/sets = %d/%d, want 1/1", item.Reps, item.Sets)
	}
	// 97.5 * 1.025 = 99.94, rounded to the nearest plate.
	if item.Weight != 100 {
		t.Errorf("max item weight = %v, want 100", item.Weight)
	}
	// It replaces the first day's main set.
	if plan.Days[0].Menu[0].Name != "Bench Press (max test)" {
		t.Errorf("max test is not the first item of day one: %q", plan.Days[0].Menu[0].Name)
	}
}

func TestDeterministicCycleWrap(t *testing.T) {
	// Week 8 sits at the same cycle position as week 4: another max test.
	plan, err := Deterministic{}.GenerateWeek(Request{
		Week:      8,
		Weekdays:  []string{"mon"},
		Benchmark: 80,
	})
	if err != nil {
		t.Fatalf("GenerateWeek: %v", err)
	}
	if len(plan.MaxTestItems()) != 1 {
		t.Errorf("week 8 should schedule a max test, got %d", len(plan.MaxTestItems()))
	}
}
