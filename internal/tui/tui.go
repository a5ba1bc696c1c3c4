// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/MKhiriev/go-skladischer/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	state     service.InventoryState
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(state service.InventoryState, buildInfo models.BuildInfo, log *logger.Logger) *TUI {
	return &TUI{state: state, buildInfo: buildInfo, logger: log}
}

// Run shows the menu and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	view := snapshotOf(t.state)
	pages := map[string]tea.Model{
		pageMenu:        NewMenuModel(ctx, t.state),
		pageLogin:       NewLoginModel(ctx, t.state),
		pageRegister:    NewRegisterModel(ctx, t.state),
		pageStorages:    NewStoragesModel(ctx, t.state, view),
		pageItems:       NewItemsModel(ctx, t.state, view),
		pageStorageForm: NewStorageFormModel(ctx, t.state),
		pageItemForm:    NewItemFormModel(ctx, t.state),
	}

	root := NewRootModel(pages, pageMenu, t.state, view, t.buildInfo)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	stop := forwardFacets(t.state, func(msg tea.Msg) { p.Send(msg) })
	defer stop()

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("TUI stopped by context")
			return nil
		}
		return fmt.Errorf("run TUI: %w", err)
	}

	if result, ok := final.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("TUI interrupted by user")
	}
	return nil
}

// forwardFacets sends a facetsMsg to send after any facet changes. Bursts of
// changes collapse into one message so the state loop never waits for the
// UI. The returned function unsubscribes and waits for the pump to exit.
func forwardFacets(state service.InventoryState, send func(tea.Msg)) (stop func()) {
	notify := make(chan struct{}, 1)
	signal := func() {
		select {
		case notify <- struct{}{}:
		default:
		}
	}

	cancels := []func(){
		state.Identity().Subscribe(func(*models.User) { signal() }),
		state.Err().Subscribe(func(error) { signal() }),
		state.Storages().Subscribe(func([]models.Storage) { signal() }),
		state.SelectedStorage().Subscribe(func(*models.Storage) { signal() }),
		state.Items().Subscribe(func([]models.Item) { signal() }),
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-notify:
				send(facetsMsg(*snapshotOf(state)))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, cancel := range cancels {
				cancel()
			}
			close(done)
			wg.Wait()
		})
	}
}

func snapshotOf(state service.InventoryState) *Snapshot {
	return &Snapshot{
		Identity: state.Identity().Get(),
		Err:      state.Err().Get(),
		Storages: state.Storages().Get(),
		Selected: state.SelectedStorage().Get(),
		Items:    state.Items().Get(),
	}
}
