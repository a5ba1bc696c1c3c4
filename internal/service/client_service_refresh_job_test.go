// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyState считает вызовы Refresh; остальные методы не используются джобой.
type spyState struct {
	InventoryState
	authenticated atomic.Bool
	calls         atomic.Int64
}

func (s *spyState) IsAuthenticated() bool {
	return s.authenticated.Load()
}

func (s *spyState) Refresh() *Op {
	s.calls.Add(1)
	return resolvedOp(nil)
}

// ── NewClientRefreshJob ──────────────────────────────────────────────────────

func TestNewClientRefreshJob_DefaultInterval(t *testing.T) {
	job := NewClientRefreshJob(&spyState{}, 0, logger.Nop())
	require.NotNil(t, job)

	assert.Equal(t, DefaultRefreshInterval, job.(*clientRefreshJob).interval)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientRefreshJob_RefreshesWhileAuthenticated(t *testing.T) {
	spy := &spyState{}
	spy.authenticated.Store(true)
	job := NewClientRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestClientRefreshJob_SkipsWithoutSession(t *testing.T) {
	spy := &spyState{}
	job := NewClientRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestClientRefreshJob_StopStopsGoroutine(t *testing.T) {
	spy := &spyState{}
	spy.authenticated.Store(true)
	job := NewClientRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientRefreshJob_StopBeforeStart(t *testing.T) {
	job := NewClientRefreshJob(&spyState{}, time.Second, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyState{}
	spy.authenticated.Store(true)
	job := NewClientRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestClientRefreshJob_RestartReplacesRunningJob(t *testing.T) {
	spy := &spyState{}
	spy.authenticated.Store(true)
	job := NewClientRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}
