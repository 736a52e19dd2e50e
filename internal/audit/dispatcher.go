package audit

import (
	"log/slog"
	"sync"
)

type Event struct {
	Action    string
	Entity    string
	RequestID string
	Metadata  any
}

type Sink interface {
	Log(ev Event) error
}

// Dispatcher delivers events to a Sink on a background worker so auditing
// never slows down or fails a request.
type Dispatcher struct {
	sink  Sink
	log   *slog.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Error("audit error", "err", err, "action", ev.Action)
		}
	}
}

// Dispatch queues ev. When the queue is full, or the dispatcher is closed,
// the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until queued ones are written.
// It is safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
