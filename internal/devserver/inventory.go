package devserver

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-skladischer/internal/app"
	"github.com/MKhiriev/go-skladischer/internal/utils"
	"github.com/MKhiriev/go-skladischer/models"
	"golang.org/x/crypto/bcrypt"
)

// DateAddedLayout is the layout of Item.DateAdded produced by the server.
const DateAddedLayout = "2006-01-02T15:04:05.000000"

type account struct {
	passwordHash []byte
	user         models.User
}

// Inventory is the in-memory store behind the development server. It owns
// every account, storage and item. All methods are safe for concurrent use
// and return copies, never references into the store.
type Inventory struct {
	mu       sync.RWMutex
	accounts map[string]*account

	ids      *utils.UUIDGenerator
	now      func() time.Time
	hashCost int
}

// InventoryOption customizes an [Inventory].
type InventoryOption func(*Inventory)

// WithHashCost sets the bcrypt cost used for passwords.
func WithHashCost(cost int) InventoryOption {
	return func(inv *Inventory) {
		inv.hashCost = cost
	}
}

// WithClock replaces the time source used for DateAdded.
func WithClock(now func() time.Time) InventoryOption {
	return func(inv *Inventory) {
		inv.now = now
	}
}

func NewInventory(opts ...InventoryOption) *Inventory {
	inv := &Inventory{
		accounts: make(map[string]*account),
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Register creates an account with an empty storage list. The display name
// defaults to the username.
func (inv *Inventory) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return newInventoryError(ErrInvalidCredentials, app.MsgMissingCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), inv.hashCost)
	if err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.accounts[username]; ok {
		return newInventoryError(ErrUserAlreadyExists, app.MsgUserAlreadyExists, username)
	}

	displayName := username
	inv.accounts[username] = &account{
		passwordHash: hash,
		user: models.User{
			Username:    username,
			DisplayName: &displayName,
			Storages:    []models.Storage{},
		},
	}

	return nil
}

// Authenticate checks the password of username. Unknown users and wrong
// passwords are reported the same way.
func (inv *Inventory) Authenticate(username, password string) error {
	inv.mu.RLock()
	acc, ok := inv.accounts[strings.TrimSpace(username)]
	inv.mu.RUnlock()

	if !ok {
		return newInventoryError(ErrInvalidCredentials, app.MsgInvalidLoginPassword)
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return newInventoryError(ErrInvalidCredentials, app.MsgInvalidLoginPassword)
	}

	return nil
}

func (inv *Inventory) User(username string) (models.User, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	acc, err := inv.account(username)
	if err != nil {
		return models.User{}, err
	}

	return copyUser(acc.user), nil
}

func (inv *Inventory) Storage(username, name string) (models.Storage, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	s, err := inv.storage(username, name)
	if err != nil {
		return models.Storage{}, err
	}

	return copyStorage(*s), nil
}

func (inv *Inventory) CreateStorage(username, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newInventoryError(ErrInvalidName, app.MsgEmptyName)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	acc, err := inv.account(username)
	if err != nil {
		return err
	}
	if _, ok := models.FindStorage(acc.user.Storages, name); ok {
		return newInventoryError(ErrStorageAlreadyExists, app.MsgStorageAlreadyExists, name)
	}

	acc.user.Storages = append(acc.user.Storages, models.Storage{Name: name, Content: []models.Item{}})
	return nil
}

func (inv *Inventory) DeleteStorage(username, name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	acc, err := inv.account(username)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(acc.user.Storages, func(s models.Storage) bool { return s.Name == name })
	if idx < 0 {
		return newInventoryError(ErrStorageNotFound, app.MsgStorageNotFound, name)
	}

	acc.user.Storages = slices.Delete(acc.user.Storages, idx, idx+1)
	return nil
}

// CreateItem adds an item with a fresh code id and its rendered code image.
func (inv *Inventory) CreateItem(username, storage string, req models.ItemRequest) (models.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Item{}, newInventoryError(ErrInvalidName, app.MsgEmptyName)
	}
	if err := validateAmount(req.Amount); err != nil {
		return models.Item{}, err
	}

	codeID := inv.ids.Generate()
	image, err := RenderCode(codeID)
	if err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		CodeID:      codeID,
		ImageBase64: image,
		Name:        name,
		Amount:      req.Amount,
		Description: copyString(req.Description),
		DateAdded:   inv.now().Format(DateAddedLayout),
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	s, err := inv.storage(username, storage)
	if err != nil {
		return models.Item{}, err
	}

	s.Content = append(s.Content, item)
	return item, nil
}

func (inv *Inventory) DeleteItem(username, storage, codeID string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	s, err := inv.storage(username, storage)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(s.Content, func(i models.Item) bool { return i.CodeID == codeID })
	if idx < 0 {
		return newInventoryError(ErrItemNotFound, app.MsgItemNotFound, codeID)
	}

	s.Content = slices.Delete(s.Content, idx, idx+1)
	return nil
}

// UpdateItem applies the non-nil fields of req to the item.
func (inv *Inventory) UpdateItem(username, storage, codeID string, req models.ItemUpdateRequest) error {
	if req.Name == nil && req.Amount == nil && req.Description == nil {
		return newInventoryError(ErrInvalidItem, app.MsgEmptyUpdate)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return newInventoryError(ErrInvalidName, app.MsgEmptyName)
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return err
		}
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	s, err := inv.storage(username, storage)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(s.Content, func(i models.Item) bool { return i.CodeID == codeID })
	if idx < 0 {
		return newInventoryError(ErrItemNotFound, app.MsgItemNotFound, codeID)
	}

	item := &s.Content[idx]
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.Description != nil {
		item.Description = copyString(req.Description)
	}

	return nil
}

// account and storage expect inv.mu to be held.
func (inv *Inventory) account(username string) (*account, error) {
	acc, ok := inv.accounts[username]
	if !ok {
		return nil, newInventoryError(ErrUserNotFound, app.MsgUserNotFound, username)
	}
	return acc, nil
}

func (inv *Inventory) storage(username, name string) (*models.Storage, error) {
	acc, err := inv.account(username)
	if err != nil {
		return nil, err
	}

	for i := range acc.user.Storages {
		if acc.user.Storages[i].Name == name {
			return &acc.user.Storages[i], nil
		}
	}

	return nil, newInventoryError(ErrStorageNotFound, app.MsgStorageNotFound, name)
}

func validateAmount(amount int) error {
	switch {
	case amount == 0:
		return newInventoryError(ErrInvalidItem, app.MsgZeroAmount)
	case amount < 0:
		return newInventoryError(ErrInvalidItem, app.MsgNegativeAmount)
	}
	return nil
}

func copyUser(u models.User) models.User {
	out := u
	out.DisplayName = copyString(u.DisplayName)
	out.Storages = make([]models.Storage, 0, len(u.Storages))
	for _, s := range u.Storages {
		out.Storages = append(out.Storages, copyStorage(s))
	}
	return out
}

func copyStorage(s models.Storage) models.Storage {
	out := models.Storage{Name: s.Name, Content: make([]models.Item, 0, len(s.Content))}
	for _, item := range s.Content {
		item.Description = copyString(item.Description)
		out.Content = append(out.Content, item)
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
