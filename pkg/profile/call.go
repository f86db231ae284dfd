package profile

import (
	"context"
	"fmt"
	"summit/pkg/domain"
	"sync"
)

// Call is the handle of one in-flight fetch. It behaves as a cancellable
// future: the outcome can be observed through the completion handler, Done
// and Wait.
type Call struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	result domain.FetchResult
}

// Start runs exchange on a new goroutine and delivers its outcome exactly once
// to onComplete through dispatcher. A panic inside exchange becomes a network
// failure. If ctx is canceled before the exchange finishes, the exchange sees a
// canceled context and its failure is delivered as usual.
func Start(ctx context.Context,
	dispatcher Dispatcher,
	onComplete func(domain.FetchResult),
	exchange func(ctx context.Context) domain.FetchResult) *Call {
	if dispatcher == nil {
		dispatcher = Immediate
	}

	ctx, cancel := context.WithCancel(ctx)
	c := &Call{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer cancel()

		res := run(ctx, exchange)
		c.settle(res, dispatcher, onComplete)
	}()

	return c
}

func run(ctx context.Context, exchange func(ctx context.Context) domain.FetchResult) (res domain.FetchResult) {
	defer func() {
		if p := recover(); p != nil {
			res = domain.NetworkFailure(fmt.Errorf("exchange panicked: %v", p))
		}
	}()

	return exchange(ctx)
}

func (c *Call) settle(res domain.FetchResult, dispatcher Dispatcher, onComplete func(domain.FetchResult)) {
	c.once.Do(func() {
		c.result = res
		close(c.done)
		if onComplete != nil {
			dispatcher.Dispatch(func() { onComplete(res) })
		}
	})
}

// Cancel aborts the exchange if it is still running. The handler still fires
// once, with a network failure whose Canceled method reports true. Calling
// Cancel after completion has no effect.
func (c *Call) Cancel() { c.cancel() }

// Done is closed once the outcome is settled. The handler may not have run yet
// when Done closes if the dispatcher defers it.
func (c *Call) Done() <-chan struct{} { return c.done }

// Wait blocks until the outcome is settled or ctx is done. Only the wait is
// abandoned when ctx ends; use Cancel to abort the exchange itself.
func (c *Call) Wait(ctx context.Context) (domain.FetchResult, error) {
	select {
	case <-c.done:
		return c.result, nil
	case <-ctx.Done():
		return domain.FetchResult{}, fmt.Errorf("could not wait for profile: %w", ctx.Err())
	}
}
