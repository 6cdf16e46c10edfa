package cycle

import "errors"

// Validation errors are caller-facing and recoverable: when one is returned
// the session state has not changed.
var (
	ErrNotInPlan         = errors.New("exercise is not part of that day's plan")
	ErrDayReviewed       = errors.New("day already reviewed, records are locked")
	ErrDayNotComplete    = errors.New("day still has unrecorded exercises")
	ErrAlreadyReviewed   = errors.New("day review already done")
	ErrWeekNotComplete   = errors.New("week still has unrecorded or unreviewed days")
	ErrWeekFinalized     = errors.New("week already finalized")
	ErrFrequencyMismatch = errors.New("weekday count does not match session count")
	ErrNoConfigPending   = errors.New("no next-week configuration is pending")
	ErrNoGoalPending     = errors.New("no goal result is pending acknowledgment")
	ErrNoPlan            = errors.New("no plan exists for that week")
)
