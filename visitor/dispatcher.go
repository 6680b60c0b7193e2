package visitor

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/visitlog/logger"
	"github.com/blogem/visitlog/models"
)

// Recorder persists visitor logs
type Recorder interface {
	Create(ctx context.Context, log *models.VisitorLog) error
}

// DispatcherConfig controls the worker pool behind a Dispatcher
type DispatcherConfig struct {
	Workers    int
	BufferSize int
	// DropIfFull drops records when the queue is full instead of blocking the caller.
	DropIfFull bool
	// Timeout bounds each Recorder call.
	Timeout time.Duration
}

// Dispatcher is the asynchronous Sink: records are queued and persisted
// by a pool of workers. Persistence failures are logged and dropped.
type Dispatcher struct {
	cfg  DispatcherConfig
	rec  Recorder
	log  *zap.SugaredLogger
	ch   chan models.VisitorLog
	done chan struct{}
	wg   sync.WaitGroup

	dropped   atomic.Uint64
	failed    atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewDispatcher starts cfg.Workers workers feeding rec. A nil log uses the
// global logger.
func NewDispatcher(cfg DispatcherConfig, rec Recorder, log *zap.SugaredLogger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if log == nil {
		log = logger.Get()
	}

	d := &Dispatcher{
		cfg:  cfg,
		rec:  rec,
		log:  log,
		ch:   make(chan models.VisitorLog, cfg.BufferSize),
		done: make(chan struct{}),
	}

	d.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go d.run()
	}

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case log := <-d.ch:
			d.persist(log)
		case <-d.done:
			for {
				select {
				case log := <-d.ch:
					d.persist(log)
				default:
					return
				}
			}
		}
	}
}

// persist stores one record; errors and panics stop here
func (d *Dispatcher) persist(log models.VisitorLog) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			d.failed.Add(1)
			d.log.Errorw("visitor log recorder panicked",
				"panic", p,
				"title", log.Title,
				"request_url", log.RequestURL,
			)
		}
	}()

	if d.rec == nil {
		return
	}

	if err := d.rec.Create(ctx, &log); err != nil {
		d.failed.Add(1)
		d.log.Errorw("failed to record visitor log",
			"error", err,
			"title", log.Title,
			"request_url", log.RequestURL,
			"entity_id", log.EntityID,
			"succeeded", log.Succeeded,
		)
		return
	}

	d.log.Debugw("visitor log recorded", "id", log.ID, "title", log.Title, "request_url", log.RequestURL)
}

// Dispatch queues log for persistence and returns without waiting for storage.
// After Close it does nothing.
func (d *Dispatcher) Dispatch(log models.VisitorLog) {
	if d == nil || d.closed.Load() {
		return
	}

	if d.cfg.DropIfFull {
		select {
		case d.ch <- log:
		case <-d.done:
		default:
			d.dropped.Add(1)
			d.log.Warnw("visitor log queue full, dropping record", "title", log.Title, "request_url", log.RequestURL)
		}
		return
	}

	select {
	case d.ch <- log:
	case <-d.done:
	}
}

// Close stops accepting records, persists what is queued and waits for the
// workers. Safe to call more than once.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}

// Dropped returns how many records were discarded because the queue was full
func (d *Dispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

// Failed returns how many records the recorder rejected
func (d *Dispatcher) Failed() uint64 {
	if d == nil {
		return 0
	}
	return d.failed.Load()
}
