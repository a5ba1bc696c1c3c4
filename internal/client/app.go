package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-skladischer/internal/logger"
)

type App struct {
	ui      UI
	workers Background
	closer  func()
	logger  *logger.Logger
}

// NewApp creates the client runtime. closer releases the services once the
// UI has exited and may be nil.
func NewApp(ui UI, workers Background, closer func(), log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, fmt.Errorf("client app: nil UI")
	}
	if closer == nil {
		closer = func() {}
	}
	return &App{ui: ui, workers: workers, closer: closer, logger: log}, nil
}

// Run starts the background jobs, blocks in the UI and then shuts everything
// down. SIGTERM ends the UI; the terminal delivers ctrl+c as a key press.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.closer()

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client UI: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
