package service

import (
	"context"

	"github.com/MKhiriev/go-skladischer/internal/observable"
	"github.com/MKhiriev/go-skladischer/models"
)

// InventoryState is what views and background jobs see of [AppState]:
// read-only facets plus intents that return immediately with an [Op].
type InventoryState interface {
	Identity() observable.Observable[*models.User]
	Err() observable.Observable[error]
	Storages() observable.Observable[[]models.Storage]
	SelectedStorage() observable.Observable[*models.Storage]
	Items() observable.Observable[[]models.Item]

	IsAuthenticated() bool
	// Session returns the held session, if any.
	Session() (models.Session, bool)

	Login(username, password string) *Op
	Register(username, password string) *Op
	Logout() *Op
	Ping() *Op

	FetchUser(username string) *Op
	SelectStorage(name string) *Op
	FetchStorage() *Op
	AddStorage(name string) *Op
	DeleteStorage(name string) *Op
	AddItem(req models.ItemRequest) *Op
	DeleteItem(codeID string) *Op
	UpdateItem(codeID string, req models.ItemUpdateRequest) *Op
	ClearError() *Op
	Refresh() *Op

	Wait(ctx context.Context) error
}

// ClientRefreshJob periodically re-fetches the current user and the selected
// storage while a session is held.
type ClientRefreshJob interface {
	// Start launches the job. A running job is stopped first.
	Start(ctx context.Context)

	// Stop cancels the job and blocks until it has exited.
	Stop()
}
