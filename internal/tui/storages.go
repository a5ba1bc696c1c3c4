package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-skladischer/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionSelectStorage = "select storage"
	actionDeleteStorage = "delete storage"
	actionRefresh       = "refresh"
)

// StoragesModel lists the user's storages from the Storages facet.
type StoragesModel struct {
	ctx   context.Context
	state service.InventoryState
	view  *Snapshot

	idx    int
	status string
	now    func() time.Time
}

func NewStoragesModel(ctx context.Context, state service.InventoryState, view *Snapshot) *StoragesModel {
	return &StoragesModel{ctx: ctx, state: state, view: view, now: time.Now}
}

func (m *StoragesModel) Init() tea.Cmd {
	return nil
}

func (m *StoragesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case facetsMsg:
		m.idx = clampIndex(m.idx, len(m.view.Storages))
		return m, nil
	case opDoneMsg:
		switch {
		case msg.err != nil:
			m.status = ""
		case msg.action == actionDeleteStorage:
			m.status = "Склад удалён"
		case msg.action == actionRefresh:
			m.status = "Обновлено"
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *StoragesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	storages := m.view.Storages

	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(storages)-1 {
			m.idx++
		}
	case "enter":
		if len(storages) == 0 {
			return m, nil
		}
		name := storages[m.idx].Name
		m.status = ""
		return m, tea.Batch(
			waitOp(m.ctx, actionSelectStorage, m.state.SelectStorage(name)),
			navigate(pageItems),
		)
	case "n":
		return m, navigate(pageStorageForm)
	case "d":
		if len(storages) == 0 {
			return m, nil
		}
		name := storages[m.idx].Name
		return m, func() tea.Msg {
			return confirmRequest{subject: name, onYes: func() tea.Cmd {
				return waitOp(m.ctx, actionDeleteStorage, m.state.DeleteStorage(name))
			}}
		}
	case "r":
		m.status = "Обновление..."
		return m, waitOp(m.ctx, actionRefresh, m.state.Refresh())
	case "l":
		m.status = ""
		m.idx = 0
		m.state.Logout()
		return m, navigate(pageMenu)
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *StoragesModel) View() string {
	var b strings.Builder

	if user := m.view.Identity; user != nil {
		b.WriteString("Пользователь: ")
		b.WriteString(user.Name())
		b.WriteString("\n")
	}
	if session, ok := m.state.Session(); ok {
		if expiry := sessionExpiry(session, m.now()); expiry != "" {
			b.WriteString(expiry)
			b.WriteString("\n")
		}
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.view.Storages) == 0 {
		b.WriteString("Складов пока нет. Нажмите n, чтобы создать.")
	} else {
		b.WriteString(fmt.Sprintf("%-4s │ %-30s │ %s\n", "ID", "Склад", "Позиций"))
		b.WriteString("─────┼────────────────────────────────┼────────\n")
		for i, s := range m.view.Storages {
			line := fmt.Sprintf("%s %-2d │ %-30s │ %d", cursor(i == m.idx), i+1, fitText(s.Name, 30), len(s.Content))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage("СКЛАДЫ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новый │ d: удалить │ r: обновить │ l: выйти из аккаунта │ q: выход")
}
