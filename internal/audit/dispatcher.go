package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder is what use cases depend on to leave an audit trail.
type Recorder interface {
	Dispatch(ev Event)
}

// Writer persists a single event.
type Writer interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes events from a single background worker so the
// request path never waits on the audit table.
type Dispatcher struct {
	writer Writer
	logger *slog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(writer Writer, logger *slog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		writer: writer,
		logger: logger,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.writer.Log(context.Background(), ev); err != nil {
			d.logger.Error("audit write failed",
				"action", ev.Action,
				"entity", ev.Entity,
				"err", err,
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until the queue is drained or ctx ends.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}
