package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "stats:42:3", statsKey(42, 3))
}

func TestParseLevelStats(t *testing.T) {
	fields := map[string]string{
		"type:VOCAB:total":          "10",
		"type:VOCAB:correct":        "7",
		"sub:KANJI_READING:total":   "6",
		"sub:KANJI_READING:correct": "4",
		"sub:CONTEXT_FILL:total":    "4",
		"sub:CONTEXT_FILL:correct":  "3",
		"last_updated":              "2026-08-30T09:00:00Z",
	}

	ls := parseLevelStats(3, fields)

	assert.Equal(t, 3, ls.Level)
	assert.Equal(t, int64(10), ls.ByType[vo.TypeVocab].Total)
	assert.Equal(t, int64(7), ls.ByType[vo.TypeVocab].Correct)
	assert.Equal(t, int64(6), ls.BySubType[vo.SubTypeKanjiReading].Total)
	assert.Equal(t, int64(4), ls.BySubType[vo.SubTypeKanjiReading].Correct)
	require.NotNil(t, ls.LastUpdated)
	assert.Equal(t, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), ls.LastUpdated.UTC())
}

func TestParseLevelStats_SkipsGarbageFields(t *testing.T) {
	fields := map[string]string{
		"type:VOCAB:total":   "5",
		"type:VOCAB:correct": "not-a-number",
		"unexpected":         "1",
		"last_updated":       "garbage",
	}

	ls := parseLevelStats(2, fields)

	assert.Equal(t, int64(5), ls.ByType[vo.TypeVocab].Total)
	assert.Equal(t, int64(0), ls.ByType[vo.TypeVocab].Correct)
	assert.Nil(t, ls.LastUpdated)
	assert.Len(t, ls.ByType, 1)
	assert.Empty(t, ls.BySubType)
}
