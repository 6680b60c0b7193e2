package visitor

import (
	"time"

	"github.com/blogem/visitlog/models"
)

// Meta is the audit metadata registered for a handler
type Meta struct {
	Title string `yaml:"title" json:"title"`
}

// now is swapped by tests
var now = time.Now

// Build assembles the visitor log for one completed call. err is the error
// the handler finished with, nil on success. Build does no I/O.
func Build(rc RequestContext, meta Meta, err error) models.VisitorLog {
	log := models.VisitorLog{
		Timestamp: now(),
		Title:     meta.Title,
		Succeeded: err == nil,
	}

	if rc != nil {
		log.SessionID = rc.SessionID()
		log.ClientAddress = rc.ClientAddress()
		log.RequestURL = rc.RequestPath()
	}

	if id, ok := ExtractID(log.RequestURL); ok {
		log.EntityID = &id
	}

	return log
}
