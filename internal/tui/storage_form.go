package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const actionAddStorage = "add storage"

// StorageFormModel creates a storage.
type StorageFormModel struct {
	ctx   context.Context
	state service.InventoryState

	form
}

func NewStorageFormModel(ctx context.Context, state service.InventoryState) *StorageFormModel {
	return &StorageFormModel{
		ctx:   ctx,
		state: state,
		form:  newForm(newInput("storage name", 64, false)),
	}
}

func (m *StorageFormModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *StorageFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(opDoneMsg); ok && done.action == actionAddStorage {
		m.submitting = false
		if done.err != nil {
			return m, nil
		}
		return m, navigate(pageStorages)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(pageStorages)
		case "enter":
			if m.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.value(0))
			if name == "" {
				m.errMsg = "Название обязательно"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, waitOp(m.ctx, actionAddStorage, m.state.AddStorage(name))
		}
	}

	return m, m.update(msg)
}

func (m *StorageFormModel) View() string {
	var b strings.Builder
	b.WriteString("Название │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n\n")
	b.WriteString(m.submitLabel("Создать", "Создание..."))
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	return renderPage("НОВЫЙ СКЛАД", b.String(), "esc: назад │ enter: создать")
}
