package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/visitlog/models"
)

// VisitorLogRepository persists and queries visitor logs
type VisitorLogRepository interface {
	Create(ctx context.Context, log *models.VisitorLog) error
	List(ctx context.Context, limit, offset int) ([]models.VisitorLog, error)
	Count(ctx context.Context) (int, error)
	// CountByEntity counts the successful visits recorded for an entity id
	CountByEntity(ctx context.Context, entityID int) (int, error)
	Ping(ctx context.Context) error
}

type sqliteVisitorLogRepository struct {
	db *sql.DB
}

// NewVisitorLogRepository creates a visitor log repository backed by SQLite
func NewVisitorLogRepository(db *sql.DB) VisitorLogRepository {
	return &sqliteVisitorLogRepository{db: db}
}

// Create inserts a new visitor log and sets its ID
func (r *sqliteVisitorLogRepository) Create(ctx context.Context, log *models.VisitorLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	query := `
		INSERT INTO visitor_log (timestamp, session_id, client_address, request_url, entity_id, title, succeeded)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var sessionID sql.NullString
	if log.SessionID != "" {
		sessionID = sql.NullString{String: log.SessionID, Valid: true}
	}

	var entityID sql.NullInt64
	if log.EntityID != nil {
		entityID = sql.NullInt64{Int64: int64(*log.EntityID), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		log.Timestamp.UTC(),
		sessionID,
		log.ClientAddress,
		log.RequestURL,
		entityID,
		log.Title,
		log.Succeeded,
	)
	if err != nil {
		return fmt.Errorf("failed to insert visitor log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get visitor log ID: %w", err)
	}
	log.ID = id

	return nil
}

// List returns visitor logs newest first
func (r *sqliteVisitorLogRepository) List(ctx context.Context, limit, offset int) ([]models.VisitorLog, error) {
	query := `
		SELECT id, timestamp, session_id, client_address, request_url, entity_id, title, succeeded
		FROM visitor_log
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitor logs: %w", err)
	}
	defer rows.Close()

	logs := []models.VisitorLog{}
	for rows.Next() {
		var log models.VisitorLog
		var sessionID sql.NullString
		var entityID sql.NullInt64

		err := rows.Scan(
			&log.ID,
			&log.Timestamp,
			&sessionID,
			&log.ClientAddress,
			&log.RequestURL,
			&entityID,
			&log.Title,
			&log.Succeeded,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visitor log: %w", err)
		}

		if sessionID.Valid {
			log.SessionID = sessionID.String
		}
		if entityID.Valid {
			id := int(entityID.Int64)
			log.EntityID = &id
		}

		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visitor logs: %w", err)
	}

	return logs, nil
}

// Count returns the total number of visitor logs
func (r *sqliteVisitorLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visitor_log").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visitor logs: %w", err)
	}
	return count, nil
}

// CountByEntity returns the number of successful visits for entityID
func (r *sqliteVisitorLogRepository) CountByEntity(ctx context.Context, entityID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM visitor_log WHERE entity_id = ? AND succeeded = 1",
		entityID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits for entity %d: %w", entityID, err)
	}
	return count, nil
}

// Ping checks the database connection
func (r *sqliteVisitorLogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
