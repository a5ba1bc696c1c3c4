package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const actionPing = "ping"

type MenuModel struct {
	ctx   context.Context
	state service.InventoryState

	items   []string
	idx     int
	status  string
	pinging bool
}

func NewMenuModel(ctx context.Context, state service.InventoryState) *MenuModel {
	return &MenuModel{
		ctx:   ctx,
		state: state,
		items: []string{"Войти", "Зарегистрироваться", "Проверить сервер"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		if msg.Username != "" {
			m.status = "Пользователь " + msg.Username + " успешно зарегистрирован"
		} else {
			m.status = "Регистрация прошла успешно"
		}
		return m, nil
	case opDoneMsg:
		if msg.action != actionPing {
			return m, nil
		}
		m.pinging = false
		if msg.err != nil {
			m.status = ""
			return m, nil
		}
		m.status = "Сервер доступен"
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case "q":
			return m, tea.Quit
		case "enter":
			switch m.idx {
			case 0:
				return m, navigate(pageLogin)
			case 1:
				return m, navigate(pageRegister)
			default:
				if m.pinging {
					return m, nil
				}
				m.pinging = true
				m.status = "Проверка..."
				return m, waitOp(m.ctx, actionPing, m.state.Ping())
			}
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // selection marker and a space

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s %d", cursor(i == m.idx), i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия │ q: выход")
}
