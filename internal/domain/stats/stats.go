// Package stats models per-learner accuracy counters. Counters live in a
// document store keyed by (user, level) and are only ever incremented.
package stats

import (
	"time"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

// Count is one correct/total pair. Total never decreases and correct never
// exceeds total.
type Count struct {
	Correct int64 `json:"correct"`
	Total   int64 `json:"total"`
}

// Accuracy returns the percentage of correct answers, 0 when nothing has
// been answered yet.
func (c Count) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total) * 100
}

// LevelStats is the counter document for one (user, level) pair.
type LevelStats struct {
	Level       int                         `json:"level"`
	ByType      map[vo.ProblemType]Count    `json:"problem_type"`
	BySubType   map[vo.ProblemSubType]Count `json:"problem_sub_type"`
	LastUpdated *time.Time                  `json:"last_updated,omitempty"`
}

// Overall aggregates the per-type counters into a single accuracy figure.
func (s LevelStats) Overall() Count {
	var total Count
	for _, c := range s.ByType {
		total.Correct += c.Correct
		total.Total += c.Total
	}
	return total
}

// Outcome is one graded submission to be recorded.
type Outcome struct {
	UserID    uint
	Level     int
	Type      vo.ProblemType
	SubType   vo.ProblemSubType
	IsCorrect bool
}
