package devserver

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-skladischer/internal/app"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/utils"
	"github.com/MKhiriev/go-skladischer/models"
	"github.com/go-chi/chi/v5"
)

// pathParam returns the decoded route parameter. chi matches on RawPath when
// the request carries escaped separators, so those values are unescaped here.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

// owner returns the username the auth middleware authenticated.
func owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		writeError(w, r, app.MsgNotAuthenticated, http.StatusUnauthorized)
	}
	return username, ok
}

func decodeJSON(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

func writeBody(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	user, err := h.inventory.User(username)
	if err != nil {
		writeInventoryError(w, r, err)
		return
	}

	writeBody(w, r, user)
}

func (h *Handler) createStorage(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	var req models.StorageRequest
	if !decodeJSON(r, &req) {
		writeError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.inventory.CreateStorage(username, req.Name); err != nil {
		writeInventoryError(w, r, err)
		return
	}

	writeText(w, r, req.Name)
}

func (h *Handler) getStorage(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	storage, err := h.inventory.Storage(username, pathParam(r, "storage"))
	if err != nil {
		writeInventoryError(w, r, err)
		return
	}

	writeBody(w, r, storage)
}

func (h *Handler) deleteStorage(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	name := pathParam(r, "storage")
	if err := h.inventory.DeleteStorage(username, name); err != nil {
		writeInventoryError(w, r, err)
		return
	}

	writeText(w, r, name)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	var req models.ItemRequest
	if !decodeJSON(r, &req) {
		writeError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	item, err := h.inventory.CreateItem(username, pathParam(r, "storage"), req)
	if err != nil {
		writeInventoryError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("code_id", item.CodeID).Msg("item created")
	writeText(w, r, item.CodeID)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	code := pathParam(r, "code")
	if err := h.inventory.DeleteItem(username, pathParam(r, "storage"), code); err != nil {
		writeInventoryError(w, r, err)
		return
	}

	writeText(w, r, code)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	username, ok := owner(w, r)
	if !ok {
		return
	}

	var req models.ItemUpdateRequest
	if !decodeJSON(r, &req) {
		writeError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	code := pathParam(r, "code")
	if err := h.inventory.UpdateItem(username, pathParam(r, "storage"), code, req); err != nil {
		writeInventoryError(w, r, err)
		return
	}

	writeText(w, r, code)
}
