package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOp_ResolvesOnce(t *testing.T) {
	op := newOp()
	assert.NoError(t, op.Err())

	select {
	case <-op.Done():
		t.Fatal("op must be pending")
	default:
	}

	op.resolve(ErrNotAuthenticated)
	op.resolve(nil)

	<-op.Done()
	assert.ErrorIs(t, op.Err(), ErrNotAuthenticated)
	assert.ErrorIs(t, op.Wait(context.Background()), ErrNotAuthenticated)
}

func TestOp_WaitHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, newOp().Wait(ctx), context.DeadlineExceeded)
}

func TestResolvedOp(t *testing.T) {
	op := resolvedOp(nil)
	assert.NoError(t, op.Wait(context.Background()))
}

func TestTracker(t *testing.T) {
	var tr tracker
	assert.NoError(t, tr.wait(context.Background()))

	tr.add()
	tr.add()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, tr.wait(ctx), context.DeadlineExceeded)

	tr.done()
	tr.done()
	assert.NoError(t, tr.wait(context.Background()))

	// the tracker is reusable after going idle
	tr.add()
	go tr.done()
	assert.NoError(t, tr.wait(context.Background()))
}
