package planner

import (
	"fmt"
	"sync"
)

// Guard enforces at most one in-flight generation per plan/review key.
// Callers acquire before issuing a request and release when it settles,
// whatever the outcome.
type Guard struct {
	mu      sync.Mutex
	pending map[string]bool
}

func NewGuard() *Guard {
	return &Guard{pending: make(map[string]bool)}
}

func (g *Guard) Acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending[key] {
		return fmt.Errorf("%w: %s", ErrGenerationInFlight, key)
	}
	g.pending[key] = true
	return nil
}

func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, key)
}

// PlanKey and ReviewKey name the generation slots the guard tracks.
func PlanKey(week int) string { return fmt.Sprintf("plan:w%d", week) }

func ReviewKey(week int, day string) string { return fmt.Sprintf("review:w%d:%s", week, day) }
