package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

func TestCount_Accuracy(t *testing.T) {
	assert.Equal(t, 0.0, Count{}.Accuracy(), "no submissions means 0, not NaN")
	assert.Equal(t, 50.0, Count{Correct: 1, Total: 2}.Accuracy())
	assert.Equal(t, 100.0, Count{Correct: 3, Total: 3}.Accuracy())
	assert.InDelta(t, 33.33, Count{Correct: 1, Total: 3}.Accuracy(), 0.01)
}

func TestLevelStats_Overall(t *testing.T) {
	s := LevelStats{
		Level: 1,
		ByType: map[vo.ProblemType]Count{
			vo.TypeVocab:   {Correct: 3, Total: 4},
			vo.TypeGrammar: {Correct: 1, Total: 6},
		},
	}

	overall := s.Overall()
	assert.Equal(t, int64(4), overall.Correct)
	assert.Equal(t, int64(10), overall.Total)
	assert.Equal(t, 40.0, overall.Accuracy())
}

func TestLevelStats_Overall_Empty(t *testing.T) {
	overall := LevelStats{Level: 2}.Overall()
	assert.Equal(t, int64(0), overall.Total)
	assert.Equal(t, 0.0, overall.Accuracy())
}
