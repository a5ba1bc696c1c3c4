package models

// Storage is a named container of items. The name is the storage identifier
// within one user's storage set; there is no separate numeric id.
type Storage struct {
	Name    string `json:"name"`
	Content []Item `json:"content"`
}

// FindItem returns the item with the given code id.
func (s Storage) FindItem(codeID string) (Item, bool) {
	for _, item := range s.Content {
		if item.CodeID == codeID {
			return item, true
		}
	}
	return Item{}, false
}

// StorageRequest is the body of the create-storage call.
type StorageRequest struct {
	Name string `json:"name"`
}

// FindStorage looks a storage up by name.
func FindStorage(storages []Storage, name string) (Storage, bool) {
	for _, s := range storages {
		if s.Name == name {
			return s, true
		}
	}
	return Storage{}, false
}
