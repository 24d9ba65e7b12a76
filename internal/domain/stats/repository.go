package stats

import "context"

// Repository is the document-store contract for accuracy counters.
// RecordOutcome must use the store's atomic increment primitive so concurrent
// submissions from multiple tabs never lose updates.
type Repository interface {
	RecordOutcome(ctx context.Context, outcome Outcome) error
	// GetLevelStats returns the counters for one level, or (nil, nil) when
	// the learner has not submitted anything at that level yet.
	GetLevelStats(ctx context.Context, userID uint, level int) (*LevelStats, error)
	// GetAllStats returns counters for every level the learner has touched.
	GetAllStats(ctx context.Context, userID uint) ([]*LevelStats, error)
}
