package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-skladischer/internal/adapter"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/observable"
	"github.com/MKhiriev/go-skladischer/models"
)

// AppState owns the application model and republishes it as five facets.
//
// All facet writes happen on a single loop goroutine. Intents never block:
// preconditions are checked on the caller's goroutine, remote calls run on
// their own goroutines, and completions are queued onto the loop where they
// are applied in arrival order. There is no request fencing, so for each
// facet the most recently completed response wins.
type AppState struct {
	auth    ClientAuthService
	adapter adapter.ServerAdapter
	session SessionStore
	logger  *logger.Logger

	identity *observable.Cell[*models.User]
	err      *observable.Cell[error]
	storages *observable.Cell[[]models.Storage]
	selected *observable.Cell[*models.Storage]
	items    *observable.Cell[[]models.Item]

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	queue  []task
	closed bool
	wake   chan struct{}
	quit   chan struct{}
	done   chan struct{}

	inflight tracker
}

// task runs on the loop. closed is true when the state was closed before the
// task could be applied.
type task func(closed bool)

var _ InventoryState = (*AppState)(nil)

// NewAppState creates the state and starts its loop. Close must be called to
// stop it.
func NewAppState(auth ClientAuthService, serverAdapter adapter.ServerAdapter, session SessionStore, log *logger.Logger) *AppState {
	ctx, cancel := context.WithCancel(context.Background())

	s := &AppState{
		auth:    auth,
		adapter: serverAdapter,
		session: session,
		logger:  log,

		identity: observable.NewCell[*models.User](nil),
		err:      observable.NewCell[error](nil),
		storages: observable.NewCell[[]models.Storage](nil),
		selected: observable.NewCell[*models.Storage](nil),
		items:    observable.NewCell[[]models.Item](nil),

		ctx:    ctx,
		cancel: cancel,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go s.loop()
	return s
}

func (s *AppState) Identity() observable.Observable[*models.User]           { return s.identity }
func (s *AppState) Err() observable.Observable[error]                       { return s.err }
func (s *AppState) Storages() observable.Observable[[]models.Storage]       { return s.storages }
func (s *AppState) SelectedStorage() observable.Observable[*models.Storage] { return s.selected }
func (s *AppState) Items() observable.Observable[[]models.Item]             { return s.items }

func (s *AppState) Session() (models.Session, bool) {
	return s.session.Current()
}

func (s *AppState) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

// ── intents ──────────────────────────────────────────────────────────────────

// FetchUser replaces Identity and Storages with the server's view of username.
// The session token is attached when one is held.
func (s *AppState) FetchUser(username string) *Op {
	username = strings.TrimSpace(username)
	if username == "" {
		return s.reject("fetch user", ErrNotAuthenticated)
	}

	token := s.session.Token()
	return dispatch(s, newOp(), "fetch user",
		func(ctx context.Context) (models.User, error) {
			return s.adapter.GetUser(ctx, token, username)
		},
		func(user models.User) {
			s.identity.Set(&user)
			s.storages.Set(user.Storages)
		},
	)
}

// SelectStorage shows the cached snapshot of name right away and then
// refreshes it. The returned Op tracks the refresh.
func (s *AppState) SelectStorage(name string) *Op {
	snapshot, ok := models.FindStorage(s.storages.Get(), name)
	if !ok {
		return s.reject("select storage", fmt.Errorf("%w: %q", ErrUnknownStorage, name))
	}

	op := newOp()
	s.inflight.add()
	s.post(func(closed bool) {
		defer s.inflight.done()
		if closed {
			op.resolve(ErrStateClosed)
			return
		}

		s.selected.Set(&snapshot)
		s.items.Set(snapshot.Content)
		s.fetchStorage(op, snapshot.Name)
	})

	return op
}

// FetchStorage refreshes the selected storage and its items.
func (s *AppState) FetchStorage() *Op {
	selected := s.selected.Get()
	if selected == nil {
		return s.reject("fetch storage", ErrNoStorageSelected)
	}

	return s.fetchStorage(newOp(), selected.Name)
}

func (s *AppState) fetchStorage(op *Op, name string) *Op {
	username := s.currentUsername()
	if username == "" {
		s.fail(op, "fetch storage", ErrNotAuthenticated)
		return op
	}

	token := s.session.Token()
	return dispatch(s, op, "fetch storage",
		func(ctx context.Context) (models.Storage, error) {
			return s.adapter.GetStorage(ctx, token, username, name)
		},
		func(storage models.Storage) {
			s.selected.Set(&storage)
			s.items.Set(storage.Content)
		},
	)
}

// AddStorage creates a storage and then re-fetches the user.
func (s *AppState) AddStorage(name string) *Op {
	username, token, err := s.credentials()
	if err != nil {
		return s.reject("add storage", err)
	}

	req := models.StorageRequest{Name: name}
	return dispatch(s, newOp(), "add storage",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.CreateStorage(ctx, token, username, req)
		},
		func(struct{}) { s.refetchUser() },
	)
}

// DeleteStorage removes a storage and then re-fetches the user. The selection
// is left as is even when it names the deleted storage.
func (s *AppState) DeleteStorage(name string) *Op {
	username, token, err := s.credentials()
	if err != nil {
		return s.reject("delete storage", err)
	}

	return dispatch(s, newOp(), "delete storage",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.DeleteStorage(ctx, token, username, name)
		},
		func(struct{}) { s.refetchUser() },
	)
}

// AddItem creates an item in the selected storage and then refreshes
// whichever storage is selected when the call completes.
func (s *AppState) AddItem(req models.ItemRequest) *Op {
	username, token, storage, err := s.storageCredentials()
	if err != nil {
		return s.reject("add item", err)
	}

	return dispatch(s, newOp(), "add item",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.CreateItem(ctx, token, username, storage, req)
		},
		func(struct{}) { s.FetchStorage() },
	)
}

// DeleteItem removes an item from the selected storage and then refreshes it.
func (s *AppState) DeleteItem(codeID string) *Op {
	username, token, storage, err := s.storageCredentials()
	if err != nil {
		return s.reject("delete item", err)
	}

	return dispatch(s, newOp(), "delete item",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.DeleteItem(ctx, token, username, storage, codeID)
		},
		func(struct{}) { s.FetchStorage() },
	)
}

// UpdateItem changes an item of the selected storage and then refreshes it.
func (s *AppState) UpdateItem(codeID string, req models.ItemUpdateRequest) *Op {
	username, token, storage, err := s.storageCredentials()
	if err != nil {
		return s.reject("update item", err)
	}

	return dispatch(s, newOp(), "update item",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.UpdateItem(ctx, token, username, storage, codeID, req)
		},
		func(struct{}) { s.FetchStorage() },
	)
}

// Login authenticates and then fetches the user. A failed login keeps the
// previous session.
func (s *AppState) Login(username, password string) *Op {
	return dispatch(s, newOp(), "login",
		func(ctx context.Context) (models.Session, error) {
			return s.auth.Login(ctx, username, password)
		},
		func(session models.Session) { s.FetchUser(session.Username) },
	)
}

// Register creates an account. The user still has to log in.
func (s *AppState) Register(username, password string) *Op {
	return dispatch(s, newOp(), "register",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.auth.Register(ctx, username, password)
		},
		func(struct{}) {},
	)
}

// Ping probes the service. A failure is published on the Err facet.
func (s *AppState) Ping() *Op {
	return dispatch(s, newOp(), "ping",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.auth.Ping(ctx)
		},
		func(struct{}) {},
	)
}

// Logout clears the session immediately and resets every facet. Responses of
// requests issued before the logout still land when they complete.
func (s *AppState) Logout() *Op {
	s.auth.Logout()

	return s.apply(func() {
		s.identity.Set(nil)
		s.storages.Set(nil)
		s.selected.Set(nil)
		s.items.Set(nil)
		s.err.Set(nil)
	})
}

// ClearError resets the Err facet.
func (s *AppState) ClearError() *Op {
	return s.apply(func() { s.err.Set(nil) })
}

// Refresh re-fetches the current user and, when one is selected, the
// selected storage. The returned Op tracks the user fetch.
func (s *AppState) Refresh() *Op {
	username := s.currentUsername()
	if !s.session.IsAuthenticated() || username == "" {
		return resolvedOp(ErrNotAuthenticated)
	}

	op := s.FetchUser(username)
	if s.selected.Get() != nil {
		s.FetchStorage()
	}
	return op
}

// Wait blocks until every issued operation, including follow-up fetches, has
// been applied.
func (s *AppState) Wait(ctx context.Context) error {
	return s.inflight.wait(ctx)
}

// Close stops the loop. Completions arriving later are dropped and their
// operations resolve with ErrStateClosed.
func (s *AppState) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	close(s.quit)
	<-s.done
}

// ── loop ─────────────────────────────────────────────────────────────────────

func (s *AppState) loop() {
	defer close(s.done)

	for {
		select {
		case <-s.wake:
			s.drain(false)
		case <-s.quit:
			s.drain(true)
			return
		}
	}
}

func (s *AppState) drain(closed bool) {
	for {
		s.mu.Lock()
		pending := s.queue
		s.queue = nil
		s.mu.Unlock()

		if len(pending) == 0 {
			return
		}
		for _, t := range pending {
			t(closed)
		}
	}
}

// post queues t for the loop without blocking. After Close t runs at once
// with closed set.
func (s *AppState) post(t task) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		t(true)
		return
	}
	s.queue = append(s.queue, t)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// apply runs fn on the loop and returns an Op resolved once it has run.
func (s *AppState) apply(fn func()) *Op {
	op := newOp()
	s.inflight.add()
	s.post(func(closed bool) {
		defer s.inflight.done()
		if closed {
			op.resolve(ErrStateClosed)
			return
		}
		fn()
		op.resolve(nil)
	})
	return op
}

// dispatch runs remote on its own goroutine and applies onSuccess on the loop.
// Follow-up intents issued from onSuccess are registered before this one is
// marked applied, so Wait covers them.
func dispatch[T any](s *AppState, op *Op, name string, remote func(ctx context.Context) (T, error), onSuccess func(T)) *Op {
	s.inflight.add()
	s.logger.Debug().Str("op", name).Msg("intent dispatched")

	go func() {
		res, err := remote(s.ctx)
		err = mapAdapterError(name, err)

		s.post(func(closed bool) {
			defer s.inflight.done()
			if closed {
				op.resolve(ErrStateClosed)
				return
			}
			if err != nil {
				s.logger.Warn().Err(err).Str("op", name).Msg("intent failed")
				s.err.Set(err)
				op.resolve(err)
				return
			}

			onSuccess(res)
			op.resolve(nil)
		})
	}()

	return op
}

// reject publishes a precondition failure and returns an already resolved Op.
func (s *AppState) reject(name string, err error) *Op {
	op := newOp()
	s.fail(op, name, err)
	return op
}

func (s *AppState) fail(op *Op, name string, err error) {
	s.logger.Debug().Err(err).Str("op", name).Msg("intent refused")
	op.resolve(err)

	s.inflight.add()
	s.post(func(closed bool) {
		defer s.inflight.done()
		if !closed {
			s.err.Set(err)
		}
	})
}

func (s *AppState) refetchUser() {
	s.FetchUser(s.currentUsername())
}

// currentUsername names the owner of remote paths. The session wins: after a
// re-login the identity of the previous user lingers until the chained fetch
// lands, and the token only grants the session user's paths.
func (s *AppState) currentUsername() string {
	if session, ok := s.session.Current(); ok && session.Username != "" {
		return session.Username
	}
	if user := s.identity.Get(); user != nil {
		return user.Username
	}
	return ""
}

func (s *AppState) credentials() (username, token string, err error) {
	if !s.session.IsAuthenticated() {
		return "", "", ErrNotAuthenticated
	}

	username = s.currentUsername()
	if username == "" {
		return "", "", ErrNotAuthenticated
	}

	return username, s.session.Token(), nil
}

func (s *AppState) storageCredentials() (username, token, storage string, err error) {
	username, token, err = s.credentials()
	if err != nil {
		return "", "", "", err
	}

	selected := s.selected.Get()
	if selected == nil {
		return "", "", "", ErrNoStorageSelected
	}

	return username, token, selected.Name, nil
}
