package visitor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/visitlog/logger"
	"github.com/blogem/visitlog/models"
)

// ErrHandlerPanicked is the outcome recorded when an intercepted handler panics
var ErrHandlerPanicked = errors.New("handler panicked")

// HandlerFunc is an HTTP handler that reports failure by returning an error
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler is the interface form of HandlerFunc
type Handler interface {
	ServeVisit(w http.ResponseWriter, r *http.Request) error
}

// Titled is implemented by handlers that carry their own visit title
type Titled interface {
	VisitTitle() string
}

// Sink accepts finished visitor logs. Dispatch must not block on storage.
type Sink interface {
	Dispatch(log models.VisitorLog)
}

// Interceptor wraps registered handlers so every call produces one visitor log
type Interceptor struct {
	registry *Registry
	sink     Sink
	reader   func(*http.Request) RequestContext
	log      *zap.SugaredLogger
}

// NewInterceptor creates an interceptor resolving titles from registry and
// handing records to sink. A nil log uses the global logger.
func NewInterceptor(registry *Registry, sink Sink, log *zap.SugaredLogger) *Interceptor {
	if log == nil {
		log = logger.Get()
	}
	return &Interceptor{
		registry: registry,
		sink:     sink,
		reader:   FromRequest,
		log:      log,
	}
}

// Wrap returns h decorated with visitor logging under the given handler name.
// The name is resolved once, here; if it is not registered h comes back as is.
func (i *Interceptor) Wrap(name string, h HandlerFunc) HandlerFunc {
	if i == nil || i.sink == nil {
		return h
	}

	meta, ok := i.registry.Lookup(name)
	if !ok {
		i.log.Warnw("handler not registered for visitor logging", "handler", name)
		return h
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		completed := false
		defer func() {
			if completed {
				return
			}
			p := recover()
			i.record(r, meta, ErrHandlerPanicked)
			if p != nil {
				panic(p)
			}
		}()

		err := h(w, r)
		completed = true
		i.record(r, meta, err)
		return err
	}
}

// WrapHandler is Wrap for the interface form. A Titled handler registers its
// own title under name unless the registry already has one.
func (i *Interceptor) WrapHandler(name string, h Handler) HandlerFunc {
	if i != nil && i.registry != nil {
		if t, ok := h.(Titled); ok {
			if _, exists := i.registry.Lookup(name); !exists {
				i.registry.Register(name, Meta{Title: t.VisitTitle()})
			}
		}
	}
	return i.Wrap(name, h.ServeVisit)
}

// record builds and dispatches one visitor log. Nothing raised here reaches
// the intercepted handler's caller.
func (i *Interceptor) record(r *http.Request, meta Meta, outcome error) {
	defer func() {
		if p := recover(); p != nil {
			i.log.Errorw("visitor log dispatch panicked", "title", meta.Title, "panic", p)
		}
	}()

	i.sink.Dispatch(Build(i.reader(r), meta, outcome))
}
