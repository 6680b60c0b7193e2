package repositories

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Visits VisitorLogRepository
}

// NewRepositories creates the SQLite-backed repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Visits: NewVisitorLogRepository(db),
	}
}

// NewRedisRepositories creates the Redis-backed repositories
func NewRedisRepositories(rdb redis.UniversalClient, maxEntries int64) *Repositories {
	return &Repositories{
		Visits: NewRedisVisitorLogRepository(rdb, maxEntries),
	}
}
