package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blogem/visitlog/models"
	"github.com/blogem/visitlog/services"
	"github.com/blogem/visitlog/userctx"
)

// VisitsController exposes the recorded visitor logs to administrators
type VisitsController struct {
	services *services.Services
}

// NewVisitsController creates a new visits controller
func NewVisitsController(services *services.Services) *VisitsController {
	return &VisitsController{
		services: services,
	}
}

// List handles GET /admin/visits?limit=&offset=
func (c *VisitsController) List(w http.ResponseWriter, r *http.Request) error {
	limit := queryInt(r, "limit", services.DefaultPageSize)
	offset := queryInt(r, "offset", 0)

	page, err := c.services.Visits.ListVisits(r.Context(), limit, offset)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, struct {
		Viewer string `json:"viewer"`
		*models.VisitorLogPage
		HasMore bool `json:"has_more"`
	}{
		Viewer:         userctx.GetUserName(r.Context()),
		VisitorLogPage: page,
		HasMore:        page.HasMore(),
	})
	return nil
}

// EntityViews handles GET /admin/visits/entities/{id}
func (c *VisitsController) EntityViews(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	views, err := c.services.Visits.EntityViews(r.Context(), id)
	if errors.Is(err, services.ErrInvalidEntityID) {
		return NewHTTPError(http.StatusNotFound, "entity not found", err)
	}
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, map[string]int{"entity_id": id, "views": views})
	return nil
}

// queryInt parses a non-negative integer query parameter, falling back to def
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// HealthController reports service health
type HealthController struct {
	services *services.Services
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services) *HealthController {
	return &HealthController{
		services: services,
	}
}

// Check handles GET /health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := c.services.Visits.Healthy(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "visitor log store unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "visitlog"})
}

// Index handles GET /
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "visitlog",
		"visits":  "/admin/visits",
	})
}
