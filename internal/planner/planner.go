package planner

import (
	"errors"

	"github.com/hyakukg/hyaku/internal/models"
	"github.com/hyakukg/hyaku/internal/openai"
)

var (
	// ErrPlanGeneration covers every way a weekly plan can fail to be
	// produced: collaborator unavailable, call error, unparseable or
	// contract-violating reply. The prior plan is always left untouched.
	ErrPlanGeneration = errors.New("plan generation failed")

	// ErrGenerationInFlight rejects a duplicate generation request for a
	// plan/review key that already has one pending.
	ErrGenerationInFlight = errors.New("generation already in flight")
)

// Request carries everything a strategy needs to produce one week.
type Request struct {
	Week         int // 1-based week within the 4-week cycle
	Weekdays     []string
	Benchmark    float64 // current reference max, kg
	GoalWeight   float64
	PriorRecords string // preformatted prior-week results, may be empty
}

// Generator produces a weekly training plan. Implementations must be
// all-or-nothing: on error no plan is returned.
type Generator interface {
	GenerateWeek(req Request) (models.WeeklyPlan, error)
}

// ChatCompleter is the slice of the OpenAI client the delegated strategy
// and the reviewer need.
type ChatCompleter interface {
	Chat(messages []openai.Message, jsonMode bool) (string, error)
}
