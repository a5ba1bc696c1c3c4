package tui

import (
	"github.com/MKhiriev/go-skladischer/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names used with NavigateTo.
const (
	pageMenu        = "menu"
	pageLogin       = "login"
	pageRegister    = "register"
	pageStorages    = "storages"
	pageItems       = "items"
	pageStorageForm = "storage-form"
	pageItemForm    = "item-form"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// Snapshot is the latest value of every state facet.
type Snapshot struct {
	Identity *models.User
	Err      error
	Storages []models.Storage
	Selected *models.Storage
	Items    []models.Item
}

// facetsMsg carries a fresh Snapshot into the program after any facet changed.
type facetsMsg Snapshot

// opDoneMsg reports the resolution of an intent issued by a page.
type opDoneMsg struct {
	action string
	err    error
}

// RegisterSuccessNotice is shown on the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

// confirmRequest asks the root model to show the delete confirmation.
// onYes issues the intent when the user accepts.
type confirmRequest struct {
	subject string
	onYes   func() tea.Cmd
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
