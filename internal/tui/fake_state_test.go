package tui

import (
	"sync"

	"github.com/MKhiriev/go-skladischer/internal/observable"
	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/MKhiriev/go-skladischer/models"
)

// fakeState records intents and resolves them with opErr. Methods the tests
// never touch fall through to the nil embedded interface and panic.
type fakeState struct {
	service.InventoryState

	identity *observable.Cell[*models.User]
	err      *observable.Cell[error]
	storages *observable.Cell[[]models.Storage]
	selected *observable.Cell[*models.Storage]
	items    *observable.Cell[[]models.Item]

	mu            sync.Mutex
	authenticated bool
	session       models.Session
	calls         []string
	updates       []models.ItemUpdateRequest
	opErr         error
}

func newFakeState() *fakeState {
	return &fakeState{
		identity: observable.NewCell[*models.User](nil),
		err:      observable.NewCell[error](nil),
		storages: observable.NewCell[[]models.Storage](nil),
		selected: observable.NewCell[*models.Storage](nil),
		items:    observable.NewCell[[]models.Item](nil),
	}
}

func (f *fakeState) record(call string) *service.Op {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return service.NewResolvedOp(f.opErr)
}

func (f *fakeState) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeState) Identity() observable.Observable[*models.User]           { return f.identity }
func (f *fakeState) Err() observable.Observable[error]                       { return f.err }
func (f *fakeState) Storages() observable.Observable[[]models.Storage]       { return f.storages }
func (f *fakeState) SelectedStorage() observable.Observable[*models.Storage] { return f.selected }
func (f *fakeState) Items() observable.Observable[[]models.Item]             { return f.items }

func (f *fakeState) IsAuthenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authenticated
}

func (f *fakeState) Session() (models.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, f.authenticated
}

func (f *fakeState) Login(username, _ string) *service.Op { return f.record("login " + username) }
func (f *fakeState) Logout() *service.Op                  { return f.record("logout") }
func (f *fakeState) Ping() *service.Op                    { return f.record("ping") }
func (f *fakeState) ClearError() *service.Op              { return f.record("clear error") }
func (f *fakeState) Refresh() *service.Op                 { return f.record("refresh") }
func (f *fakeState) FetchStorage() *service.Op            { return f.record("fetch storage") }

func (f *fakeState) SelectStorage(name string) *service.Op { return f.record("select " + name) }
func (f *fakeState) AddStorage(name string) *service.Op    { return f.record("add storage " + name) }
func (f *fakeState) DeleteStorage(name string) *service.Op { return f.record("delete storage " + name) }
func (f *fakeState) AddItem(req models.ItemRequest) *service.Op {
	return f.record("add item " + req.Name)
}
func (f *fakeState) DeleteItem(codeID string) *service.Op { return f.record("delete item " + codeID) }

func (f *fakeState) UpdateItem(codeID string, req models.ItemUpdateRequest) *service.Op {
	f.mu.Lock()
	f.updates = append(f.updates, req)
	f.mu.Unlock()
	return f.record("update item " + codeID)
}
