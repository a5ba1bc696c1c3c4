// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const actionLogin = "login"

// LoginModel is the Bubble Tea model for the login screen. It renders two text
// inputs (username and password) and issues the Login intent on submission.
// On success it navigates to the storage list; failures are shown by the
// root error overlay.
type LoginModel struct {
	ctx   context.Context
	state service.InventoryState

	form
}

// NewLoginModel creates a [LoginModel]. The username field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, state service.InventoryState) *LoginModel {
	return &LoginModel{
		ctx:   ctx,
		state: state,
		form: newForm(
			newInput("username", 64, false),
			newInput("password", 256, true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - opDoneMsg for the login intent: navigates on success.
//   - esc:       cancels and navigates back to the menu.
//   - tab:       moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter:     validates inputs and issues the login intent.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(opDoneMsg); ok && done.action == actionLogin {
		m.submitting = false
		if done.err != nil {
			return m, nil
		}
		m.reset()
		return m, navigate(pageStorages)
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
			if username == "" || pass == "" {
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, waitOp(m.ctx, actionLogin, m.state.Login(username, pass))
		}
	}

	return m, m.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n\n")
	b.WriteString(m.submitLabel("Войти", "Войти..."))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}
