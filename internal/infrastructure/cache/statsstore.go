package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/stats"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

const (
	// Key format: stats:{userID}:{level}
	statsKeyPrefix = "stats:"

	statsFieldLastUpdated = "last_updated"

	minLevel = 1
	maxLevel = 5
)

// StatsStore keeps per-learner accuracy counters in Redis hashes. HINCRBY is
// atomic and treats missing fields as zero, so documents and counters come
// into existence lazily on the first graded submission.
type StatsStore struct {
	client *redis.Client
	logger logger.Interface
}

func NewStatsStore(client *redis.Client, logger logger.Interface) stats.Repository {
	return &StatsStore{
		client: client,
		logger: logger,
	}
}

func statsKey(userID uint, level int) string {
	return fmt.Sprintf("%s%d:%d", statsKeyPrefix, userID, level)
}

func typeField(t vo.ProblemType, counter string) string {
	return fmt.Sprintf("type:%s:%s", t.String(), counter)
}

func subTypeField(s vo.ProblemSubType, counter string) string {
	return fmt.Sprintf("sub:%s:%s", s.String(), counter)
}

func (s *StatsStore) RecordOutcome(ctx context.Context, outcome stats.Outcome) error {
	key := statsKey(outcome.UserID, outcome.Level)

	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, typeField(outcome.Type, "total"), 1)
	pipe.HIncrBy(ctx, key, subTypeField(outcome.SubType, "total"), 1)
	if outcome.IsCorrect {
		pipe.HIncrBy(ctx, key, typeField(outcome.Type, "correct"), 1)
		pipe.HIncrBy(ctx, key, subTypeField(outcome.SubType, "correct"), 1)
	}
	pipe.HSet(ctx, key, statsFieldLastUpdated, time.Now().UTC().Format(time.RFC3339))

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Errorw("failed to record outcome", "user_id", outcome.UserID, "level", outcome.Level, "error", err)
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (s *StatsStore) GetLevelStats(ctx context.Context, userID uint, level int) (*stats.LevelStats, error) {
	fields, err := s.client.HGetAll(ctx, statsKey(userID, level)).Result()
	if err != nil {
		s.logger.Errorw("failed to get level stats", "user_id", userID, "level", level, "error", err)
		return nil, fmt.Errorf("failed to get level stats: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return parseLevelStats(level, fields), nil
}

func (s *StatsStore) GetAllStats(ctx context.Context, userID uint) ([]*stats.LevelStats, error) {
	pipe := s.client.Pipeline()
	cmds := make(map[int]*redis.MapStringStringCmd, maxLevel)
	for level := minLevel; level <= maxLevel; level++ {
		cmds[level] = pipe.HGetAll(ctx, statsKey(userID, level))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Errorw("failed to get all stats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get all stats: %w", err)
	}

	var result []*stats.LevelStats
	for level := minLevel; level <= maxLevel; level++ {
		fields, err := cmds[level].Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for level %d: %w", level, err)
		}
		if len(fields) == 0 {
			continue
		}
		result = append(result, parseLevelStats(level, fields))
	}

	return result, nil
}

func parseLevelStats(level int, fields map[string]string) *stats.LevelStats {
	ls := &stats.LevelStats{
		Level:     level,
		ByType:    make(map[vo.ProblemType]stats.Count),
		BySubType: make(map[vo.ProblemSubType]stats.Count),
	}

	for field, raw := range fields {
		if field == statsFieldLastUpdated {
			if ts, err := time.Parse(time.RFC3339, raw); err == nil {
				ls.LastUpdated = &ts
			}
			continue
		}

		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}

		switch parts[0] {
		case "type":
			t := vo.ProblemType(parts[1])
			count := ls.ByType[t]
			applyCounter(&count, parts[2], value)
			ls.ByType[t] = count
		case "sub":
			st := vo.ProblemSubType(parts[1])
			count := ls.BySubType[st]
			applyCounter(&count, parts[2], value)
			ls.BySubType[st] = count
		}
	}

	return ls
}

func applyCounter(count *stats.Count, name string, value int64) {
	switch name {
	case "total":
		count.Total = value
	case "correct":
		count.Correct = value
	}
}
