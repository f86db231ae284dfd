package profile

import (
	"context"
	"sync"
)

// Dispatcher decides on which execution context a completion handler runs,
// for example a UI thread or an event loop owned by the host.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// Immediate runs handlers on the goroutine that finished the exchange.
var Immediate Dispatcher = DispatcherFunc(func(fn func()) { fn() }) //nolint: gochecknoglobals

// Loop is a serial dispatcher: handlers run one at a time, in dispatch order,
// on whichever goroutine calls Run. It never blocks Dispatch.
//
// Once the loop is closed, Dispatch runs fn inline on the caller so that no
// completion handler is ever dropped.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	// wake is signaled (non-blocking, buffered by one) whenever work is queued
	// or the loop is closed.
	wake chan struct{}
}

// NewLoop creates an open Loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Dispatch queues fn for Run.
func (l *Loop) Dispatch(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		fn()

		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	l.signal()
}

// Close stops accepting work. Run drains what is already queued and returns.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	l.signal()
}

// Run executes queued handlers until the loop is closed and drained, or ctx is
// done. On ctx cancellation the loop is closed and pending handlers still run
// before Run returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		closed := l.closed
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
		if len(batch) > 0 {
			continue
		}
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			l.Close()
			_ = l.Run(context.Background()) //nolint: contextcheck

			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
