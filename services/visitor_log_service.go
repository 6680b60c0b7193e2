package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/visitlog/models"
	"github.com/blogem/visitlog/repositories"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ErrInvalidEntityID is returned for entity ids that can never be recorded
var ErrInvalidEntityID = errors.New("entity id must be positive")

// VisitorLogService answers queries over recorded visits
type VisitorLogService interface {
	ListVisits(ctx context.Context, limit, offset int) (*models.VisitorLogPage, error)
	EntityViews(ctx context.Context, entityID int) (int, error)
	Healthy(ctx context.Context) error
}

type visitorLogService struct {
	repo repositories.VisitorLogRepository
}

// NewVisitorLogService creates a new visitor log service
func NewVisitorLogService(repo repositories.VisitorLogRepository) VisitorLogService {
	return &visitorLogService{repo: repo}
}

// ListVisits returns one page of visits, newest first. Out of range limits
// fall back to DefaultPageSize or are capped at MaxPageSize; a negative
// offset is treated as zero.
func (s *visitorLogService) ListVisits(ctx context.Context, limit, offset int) (*models.VisitorLogPage, error) {
	limit, offset = normalizePage(limit, offset)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	logs, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return &models.VisitorLogPage{
		Logs:   logs,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// EntityViews returns the number of successful visits for entityID
func (s *visitorLogService) EntityViews(ctx context.Context, entityID int) (int, error) {
	if entityID <= 0 {
		return 0, ErrInvalidEntityID
	}

	views, err := s.repo.CountByEntity(ctx, entityID)
	if err != nil {
		return 0, fmt.Errorf("failed to load views: %w", err)
	}
	return views, nil
}

// Healthy checks that the visitor log store is reachable
func (s *visitorLogService) Healthy(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
