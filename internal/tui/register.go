package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const actionRegister = "register"

// RegisterModel is the Bubble Tea model for the registration screen: username,
// password and its confirmation. On success the form is reset and the menu
// is opened with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx   context.Context
	state service.InventoryState

	form
	username string
}

func NewRegisterModel(ctx context.Context, state service.InventoryState) *RegisterModel {
	return &RegisterModel{
		ctx:   ctx,
		state: state,
		form: newForm(
			newInput("username", 64, false),
			newInput("password", 256, true),
			newInput("repeat password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(opDoneMsg); ok && done.action == actionRegister {
		m.submitting = false
		if done.err != nil {
			return m, nil
		}
		username := m.username
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: username}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu)
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

			username := strings.TrimSpace(m.value(0))
			pass := m.value(1)
			switch {
			case username == "" || pass == "":
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			case pass != m.value(2):
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			m.username = username
			return m, waitOp(m.ctx, actionRegister, m.state.Register(username, pass))
		}
	}

	return m, m.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Повтор   │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n\n")
	b.WriteString(m.submitLabel("Зарегистрироваться", "Регистрация..."))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}
