package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/visitlog/services"
)

// Handler names under which blog visits are registered
const (
	ArticleHandler  = "blog.article"
	ArchivesHandler = "blog.archives"
	StatsHandler    = "blog.stats"
)

// DefaultTitles are the visit titles registered for the blog handlers;
// configuration may override them.
var DefaultTitles = map[string]string{
	ArticleHandler:  "Read article",
	ArchivesHandler: "Browse archives",
}

// BlogController serves the audited blog pages
type BlogController struct {
	services *services.Services
}

// NewBlogController creates a new blog controller
func NewBlogController(services *services.Services) *BlogController {
	return &BlogController{
		services: services,
	}
}

// Article handles GET /blog/{id}
func (c *BlogController) Article(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	views, err := c.services.Visits.EntityViews(r.Context(), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, map[string]int{"id": id, "views": views})
	return nil
}

// Archives handles GET /archives
func (c *BlogController) Archives(w http.ResponseWriter, r *http.Request) error {
	page, err := c.services.Visits.ListVisits(r.Context(), services.DefaultPageSize, 0)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, page)
	return nil
}

// Stats returns the handler for GET /blog/{id}/stats
func (c *BlogController) Stats() *ArticleStats {
	return &ArticleStats{services: c.services}
}

// ArticleStats reports the view count of one article. It carries its own visit title.
type ArticleStats struct {
	services *services.Services
}

// VisitTitle is the title recorded for stats visits
func (h *ArticleStats) VisitTitle() string { return "View article statistics" }

// ServeVisit handles GET /blog/{id}/stats
func (h *ArticleStats) ServeVisit(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	views, err := h.services.Visits.EntityViews(r.Context(), id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":    id,
		"views": views,
	})
	return nil
}

// articleID parses the {id} route parameter. Entity ids are 32-bit.
func articleID(r *http.Request) (int, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid article ID", err)
	}
	id := int(n)
	if id <= 0 {
		return 0, NewHTTPError(http.StatusNotFound, "article not found", services.ErrInvalidEntityID)
	}
	return id, nil
}
