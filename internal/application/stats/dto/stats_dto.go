package dto

import (
	"time"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/stats"
)

// CountDTO is one correct/total pair with its derived accuracy.
type CountDTO struct {
	Correct  int64   `json:"correct"`
	Total    int64   `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// LevelStatsDTO is the per-level accuracy breakdown. Types and subtypes are
// emitted in canonical section order so clients render sections stably.
type LevelStatsDTO struct {
	Level       int                 `json:"level"`
	Overall     CountDTO            `json:"overall"`
	ByType      map[string]CountDTO `json:"by_type"`
	BySubType   map[string]CountDTO `json:"by_sub_type"`
	LastUpdated *time.Time          `json:"last_updated,omitempty"`
}

func toCountDTO(c stats.Count) CountDTO {
	return CountDTO{
		Correct:  c.Correct,
		Total:    c.Total,
		Accuracy: c.Accuracy(),
	}
}

// ToLevelStatsDTO converts one level's counters.
func ToLevelStatsDTO(ls *stats.LevelStats) *LevelStatsDTO {
	if ls == nil {
		return nil
	}

	dto := &LevelStatsDTO{
		Level:       ls.Level,
		Overall:     toCountDTO(ls.Overall()),
		ByType:      make(map[string]CountDTO, len(ls.ByType)),
		BySubType:   make(map[string]CountDTO, len(ls.BySubType)),
		LastUpdated: ls.LastUpdated,
	}

	for _, t := range vo.CanonicalTypeOrder {
		if c, ok := ls.ByType[t]; ok {
			dto.ByType[t.String()] = toCountDTO(c)
		}
		for _, st := range vo.CanonicalSubTypeOrder[t] {
			if c, ok := ls.BySubType[st]; ok {
				dto.BySubType[st.String()] = toCountDTO(c)
			}
		}
	}

	return dto
}

// ToLevelStatsDTOs converts all touched levels.
func ToLevelStatsDTOs(all []*stats.LevelStats) []*LevelStatsDTO {
	dtos := make([]*LevelStatsDTO, 0, len(all))
	for _, ls := range all {
		dtos = append(dtos, ToLevelStatsDTO(ls))
	}
	return dtos
}
