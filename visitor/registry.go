package visitor

import "sync"

// Registry maps handler names to the metadata recorded with their visits.
// It is filled at startup; a handler whose name is not registered is not audited.
type Registry struct {
	mu    sync.RWMutex
	metas map[string]Meta
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{metas: make(map[string]Meta)}
}

// Register records meta for the named handler, replacing any earlier entry
func (r *Registry) Register(name string, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metas[name] = meta
}

// RegisterTitles registers a title per handler name
func (r *Registry) RegisterTitles(titles map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, title := range titles {
		r.metas[name] = Meta{Title: title}
	}
}

// Lookup returns the metadata registered for name
func (r *Registry) Lookup(name string) (Meta, bool) {
	if r == nil {
		return Meta{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.metas[name]
	return meta, ok
}

// Len returns the number of registered handlers
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.metas)
}
