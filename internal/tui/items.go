package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/MKhiriev/go-skladischer/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionDeleteItem   = "delete item"
	actionUpdateItem   = "update item"
	actionFetchStorage = "fetch storage"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ItemsModel shows the items of the selected storage and the details of the
// highlighted one.
type ItemsModel struct {
	ctx   context.Context
	state service.InventoryState
	view  *Snapshot

	idx    int
	status string
}

func NewItemsModel(ctx context.Context, state service.InventoryState, view *Snapshot) *ItemsModel {
	return &ItemsModel{ctx: ctx, state: state, view: view}
}

func (m *ItemsModel) Init() tea.Cmd {
	m.idx = 0
	m.status = ""
	return nil
}

func (m *ItemsModel) current() (models.Item, bool) {
	if m.idx < 0 || m.idx >= len(m.view.Items) {
		return models.Item{}, false
	}
	return m.view.Items[m.idx], true
}

func (m *ItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case facetsMsg:
		m.idx = clampIndex(m.idx, len(m.view.Items))
		return m, nil
	case opDoneMsg:
		switch {
		case msg.err != nil:
			m.status = ""
		case msg.action == actionDeleteItem:
			m.status = "Позиция удалена"
		case msg.action == actionUpdateItem:
			m.status = "Количество изменено"
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Не удалось скопировать: " + msg.err.Error()
		} else {
			m.status = "Скопировано!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ItemsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case "down", "j":
		if m.idx < len(m.view.Items)-1 {
			m.idx++
		}
		return m, nil
	case "esc":
		return m, navigate(pageStorages)
	case "n":
		return m, navigate(pageItemForm)
	case "r":
		return m, waitOp(m.ctx, actionFetchStorage, m.state.FetchStorage())
	case "q":
		return m, tea.Quit
	}

	item, ok := m.current()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "c":
		return m, cmdCopyToClipboard(item.CodeID)
	case "+", "=":
		return m, m.setAmount(item, item.Amount+1)
	case "-":
		if item.Amount <= 1 {
			m.status = "Количество не может быть меньше 1, для удаления нажмите d"
			return m, nil
		}
		return m, m.setAmount(item, item.Amount-1)
	case "d":
		codeID, name := item.CodeID, item.Name
		return m, func() tea.Msg {
			return confirmRequest{subject: name, onYes: func() tea.Cmd {
				return waitOp(m.ctx, actionDeleteItem, m.state.DeleteItem(codeID))
			}}
		}
	}

	return m, nil
}

func (m *ItemsModel) setAmount(item models.Item, amount int) tea.Cmd {
	return waitOp(m.ctx, actionUpdateItem, m.state.UpdateItem(item.CodeID, models.ItemUpdateRequest{Amount: &amount}))
}

func (m *ItemsModel) View() string {
	var b strings.Builder

	title := "СКЛАД"
	if s := m.view.Selected; s != nil {
		title = "СКЛАД: " + s.Name
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.view.Items) == 0 {
		b.WriteString("Склад пуст. Нажмите n, чтобы добавить позицию.")
		return renderPage(title, b.String(), "n: добавить │ r: обновить │ esc: назад │ q: выход")
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-30s │ %s\n", "ID", "Название", "Кол-во"))
	b.WriteString("─────┼────────────────────────────────┼───────\n")
	for i, item := range m.view.Items {
		line := fmt.Sprintf("%s %-2d │ %-30s │ %d", cursor(i == m.idx), i+1, fitText(item.Name, 30), item.Amount)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if item, ok := m.current(); ok {
		b.WriteString("\n")
		b.WriteString(renderItemDetail(item))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"c: копировать код │ +/-: количество │ n: добавить │ d: удалить │ r: обновить │ esc: назад")
}

func renderItemDetail(item models.Item) string {
	var b strings.Builder
	b.WriteString("Код          │ " + item.CodeID + "\n")
	b.WriteString("Количество   │ " + fmt.Sprint(item.Amount) + "\n")
	b.WriteString("Описание     │ " + valueOrDash(item.Description) + "\n")
	b.WriteString("Добавлено    │ " + item.DateAdded + "\n")
	b.WriteString("Изображение  │ " + imageSize(item) + "\n")
	return b.String()
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
