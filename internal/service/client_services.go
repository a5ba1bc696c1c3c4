package service

import (
	"time"

	"github.com/MKhiriev/go-skladischer/internal/adapter"
	"github.com/MKhiriev/go-skladischer/internal/logger"
)

// ClientServices wires the client-side services around one session store.
type ClientServices struct {
	AuthService ClientAuthService
	State       *AppState
	RefreshJob  ClientRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, session SessionStore, refreshInterval time.Duration, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, session, log)
	state := NewAppState(authSvc, serverAdapter, session, log)

	return &ClientServices{
		AuthService: authSvc,
		State:       state,
		RefreshJob:  NewClientRefreshJob(state, refreshInterval, log),
	}
}

// Close stops the refresh job and the state loop.
func (c *ClientServices) Close() {
	c.RefreshJob.Stop()
	c.State.Close()
}
