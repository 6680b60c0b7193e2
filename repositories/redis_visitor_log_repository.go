package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blogem/visitlog/models"
)

const (
	redisSeqKey  = "visitlog:seq"
	redisLogsKey = "visitlog:logs"
)

func redisEntityKey(entityID int) string {
	return "visitlog:entity:" + strconv.Itoa(entityID) + ":views"
}

type redisVisitorLogRepository struct {
	rdb        redis.UniversalClient
	maxEntries int64
}

// NewRedisVisitorLogRepository creates a visitor log repository backed by Redis.
// Logs are kept in a list, newest first; maxEntries > 0 trims older entries.
// Per-entity view counters are kept separately and are never trimmed.
func NewRedisVisitorLogRepository(rdb redis.UniversalClient, maxEntries int64) VisitorLogRepository {
	return &redisVisitorLogRepository{rdb: rdb, maxEntries: maxEntries}
}

// Create appends log to the list and bumps the entity counter on success
func (r *redisVisitorLogRepository) Create(ctx context.Context, log *models.VisitorLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	id, err := r.rdb.Incr(ctx, redisSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate visitor log ID: %w", err)
	}
	log.ID = id

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to encode visitor log: %w", err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, redisLogsKey, data)
		if r.maxEntries > 0 {
			pipe.LTrim(ctx, redisLogsKey, 0, r.maxEntries-1)
		}
		if log.Succeeded && log.EntityID != nil {
			pipe.Incr(ctx, redisEntityKey(*log.EntityID))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store visitor log: %w", err)
	}

	return nil
}

// List returns visitor logs newest first
func (r *redisVisitorLogRepository) List(ctx context.Context, limit, offset int) ([]models.VisitorLog, error) {
	if limit <= 0 {
		return []models.VisitorLog{}, nil
	}

	raw, err := r.rdb.LRange(ctx, redisLogsKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read visitor logs: %w", err)
	}

	logs := make([]models.VisitorLog, 0, len(raw))
	for _, item := range raw {
		var log models.VisitorLog
		if err := json.Unmarshal([]byte(item), &log); err != nil {
			return nil, fmt.Errorf("failed to decode visitor log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}

// Count returns the number of retained visitor logs
func (r *redisVisitorLogRepository) Count(ctx context.Context) (int, error) {
	n, err := r.rdb.LLen(ctx, redisLogsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count visitor logs: %w", err)
	}
	return int(n), nil
}

// CountByEntity returns the number of successful visits for entityID
func (r *redisVisitorLogRepository) CountByEntity(ctx context.Context, entityID int) (int, error) {
	n, err := r.rdb.Get(ctx, redisEntityKey(entityID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count visits for entity %d: %w", entityID, err)
	}
	return n, nil
}

// Ping checks the redis connection
func (r *redisVisitorLogRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
