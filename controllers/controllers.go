package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blogem/visitlog/logger"
	"github.com/blogem/visitlog/services"
	"github.com/blogem/visitlog/visitor"
)

// HTTPError is a handler failure with the status to answer with
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// NewHTTPError creates an HTTPError wrapping err
func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Err: err}
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As
func (e *HTTPError) Unwrap() error { return e.Err }

// Handle adapts an error-returning handler to net/http. An *HTTPError is
// answered with its status and message, anything else with a 500.
func Handle(h visitor.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Status, map[string]string{"error": httpErr.Message})
		return
	}

	logger.Get().Errorw("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// writeJSON writes v as the JSON response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Errorw("failed to encode response", "error", err)
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth   *AuthController
	Blog   *BlogController
	Visits *VisitsController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Auth:   NewAuthController(),
		Blog:   NewBlogController(services),
		Visits: NewVisitsController(services),
		Health: NewHealthController(services),
	}
}
