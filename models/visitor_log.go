package models

import "time"

// VisitorLog represents one intercepted call to an audited blog handler
type VisitorLog struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	SessionID     string    `json:"session_id,omitempty"`
	ClientAddress string    `json:"client_address"`
	RequestURL    string    `json:"request_url"`
	EntityID      *int      `json:"entity_id,omitempty"`
	Title         string    `json:"title"`
	Succeeded     bool      `json:"succeeded"`
}

// VisitorLogPage is one page of visitor logs, newest first
type VisitorLogPage struct {
	Logs   []VisitorLog `json:"logs"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// HasMore reports whether another page follows this one
func (p VisitorLogPage) HasMore() bool {
	return p.Offset+len(p.Logs) < p.Total
}
