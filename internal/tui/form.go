package tui

import (
	"context"

	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a list of text inputs with one focused field.
type form struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

// reset clears every field and focuses the first one.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.submitting = false
	f.errMsg = ""
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) submitLabel(idle, busy string) string {
	if f.submitting {
		return "[" + busy + "]"
	}
	return "[" + idle + "]"
}

// waitOp resolves op off the UI goroutine and reports it as an opDoneMsg.
func waitOp(ctx context.Context, action string, op *service.Op) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{action: action, err: op.Wait(ctx)}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
