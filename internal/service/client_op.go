package service

import (
	"context"
	"sync"
)

// Op is the handle of an intent. It resolves exactly once, when the intent's
// completion has been applied to the application model, or immediately when a
// precondition fails.
type Op struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newOp() *Op {
	return &Op{done: make(chan struct{})}
}

func resolvedOp(err error) *Op {
	op := newOp()
	op.resolve(err)
	return op
}

// NewResolvedOp returns an Op that has already resolved with err. It lets
// views and tests stand in for intents that never reach the loop.
func NewResolvedOp(err error) *Op {
	return resolvedOp(err)
}

func (o *Op) resolve(err error) {
	o.once.Do(func() {
		o.err = err
		close(o.done)
	})
}

// Done is closed when the operation resolves.
func (o *Op) Done() <-chan struct{} {
	return o.done
}

// Err returns the outcome, or nil while the operation is still pending.
func (o *Op) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

// Wait blocks until the operation resolves or ctx ends.
func (o *Op) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// tracker counts operations whose completion has not been applied yet.
type tracker struct {
	mu   sync.Mutex
	n    int
	idle chan struct{}
}

func (t *tracker) add() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.n == 0 {
		t.idle = make(chan struct{})
	}
	t.n++
}

func (t *tracker) done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n--
	if t.n == 0 {
		close(t.idle)
	}
}

func (t *tracker) wait(ctx context.Context) error {
	t.mu.Lock()
	if t.n == 0 {
		t.mu.Unlock()
		return nil
	}
	idle := t.idle
	t.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
