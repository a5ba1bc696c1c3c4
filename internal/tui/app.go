package tui

import (
	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/MKhiriev/go-skladischer/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) owns the facet snapshot shared with the pages
// 3) shows the error, confirmation and build info overlays
// 4) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	state     service.InventoryState
	view      *Snapshot
	buildInfo models.BuildInfo

	errOverlay *errorOverlayModel
	shownErr   string
	confirm    *confirmRequest

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage. view must be the
// snapshot the pages were created with.
func NewRootModel(pages map[string]tea.Model, startPage string, state service.InventoryState, view *Snapshot, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		state:       state,
		view:        view,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if handled, cmd := r.updateOverlays(msg); handled {
			return r, cmd
		}
	case facetsMsg:
		return r.applyFacets(Snapshot(msg))
	case confirmRequest:
		r.confirm = &msg
		return r, nil
	case NavigateTo:
		return r.navigate(msg)
	}

	return r.delegate(msg)
}

// updateOverlays consumes keys while an overlay is open. The error overlay
// wins over the confirmation, which wins over build info.
func (r *RootModel) updateOverlays(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case r.errOverlay != nil:
		if key.Matches(msg, keys.dismiss) {
			r.errOverlay = nil
			r.state.ClearError()
		}
		return true, nil
	case r.confirm != nil:
		switch {
		case key.Matches(msg, keys.yes):
			onYes := r.confirm.onYes
			r.confirm = nil
			return true, onYes()
		case key.Matches(msg, keys.no):
			r.confirm = nil
		}
		return true, nil
	case r.showBuildInfo:
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.version) {
			r.showBuildInfo = false
		}
		return true, nil
	case r.currentName == pageMenu && key.Matches(msg, keys.version):
		r.showBuildInfo = true
		return true, nil
	}

	return false, nil
}

func (r RootModel) applyFacets(snap Snapshot) (tea.Model, tea.Cmd) {
	*r.view = snap

	switch {
	case snap.Err == nil:
		r.shownErr = ""
	case snap.Err.Error() != r.shownErr:
		// a dismissed error stays hidden until the facet is cleared
		r.shownErr = snap.Err.Error()
		r.errOverlay = &errorOverlayModel{message: humanizeError(snap.Err)}
	}

	if requiresAuth(r.currentName) && !r.state.IsAuthenticated() {
		r.confirm = nil
		return r.navigate(NavigateTo{Page: pageMenu})
	}

	return r.delegate(facetsMsg(snap))
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	cmd := r.current.Init()
	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(cmd, func() tea.Msg { return payload })
	}
	return r, cmd
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	return appStyle.Render(r.content())
}

func (r RootModel) content() string {
	switch {
	case r.errOverlay != nil:
		return r.errOverlay.View()
	case r.confirm != nil:
		return confirmModel{message: r.confirm.subject}.View()
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("SKLADISCHER", "", "")
	}
	return r.current.View()
}

func requiresAuth(page string) bool {
	switch page {
	case pageStorages, pageItems, pageStorageForm, pageItemForm:
		return true
	}
	return false
}
