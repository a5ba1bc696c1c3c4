package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/MKhiriev/go-skladischer/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const actionAddItem = "add item"

// ItemFormModel adds an item to the selected storage.
type ItemFormModel struct {
	ctx   context.Context
	state service.InventoryState

	form
}

func NewItemFormModel(ctx context.Context, state service.InventoryState) *ItemFormModel {
	return &ItemFormModel{
		ctx:   ctx,
		state: state,
		form: newForm(
			newInput("name", 128, false),
			newInput("amount", 9, false),
			newInput("description", 512, false),
		),
	}
}

func (m *ItemFormModel) Init() tea.Cmd {
	m.reset()
	m.inputs[1].SetValue("1")
	return textinput.Blink
}

// request validates the form. The description is optional.
func (m *ItemFormModel) request() (models.ItemRequest, string) {
	name := strings.TrimSpace(m.value(0))
	if name == "" {
		return models.ItemRequest{}, "Название обязательно"
	}

	amount, err := strconv.Atoi(strings.TrimSpace(m.value(1)))
	if err != nil || amount <= 0 {
		return models.ItemRequest{}, "Количество должно быть положительным числом"
	}

	req := models.ItemRequest{Name: name, Amount: amount}
	if description := strings.TrimSpace(m.value(2)); description != "" {
		req.Description = &description
	}

	return req, ""
}

func (m *ItemFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(opDoneMsg); ok && done.action == actionAddItem {
		m.submitting = false
		if done.err != nil {
			return m, nil
		}
		return m, navigate(pageItems)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(pageItems)
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			req, problem := m.request()
			if problem != "" {
				m.errMsg = problem
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, waitOp(m.ctx, actionAddItem, m.state.AddItem(req))
		}
	}

	return m, m.update(msg)
}

func (m *ItemFormModel) View() string {
	var b strings.Builder
	b.WriteString("Поле        │ Значение\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Название    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Количество  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Описание    │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n\n")
	b.WriteString(m.submitLabel("Добавить", "Добавление..."))
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	return renderPage("НОВАЯ ПОЗИЦИЯ", b.String(), "esc: назад │ tab: след. поле │ enter: добавить")
}
