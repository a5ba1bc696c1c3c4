package devserver

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-skladischer/internal/app"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/utils"
)

// statusFor maps an inventory error to the response status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrStorageAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrStorageNotFound), errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidItem), errors.Is(err, ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeInventoryError logs err and writes it as a {"detail": ...} body.
// Errors that are not [InventoryError]s never leak their text.
func writeInventoryError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	detail := app.MsgInternalServerError
	var invErr *InventoryError
	if errors.As(err, &invErr) {
		detail = invErr.Detail
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected inventory error")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, detail, status)
}

func writeError(w http.ResponseWriter, r *http.Request, detail string, status int) {
	logger.FromRequest(r).Debug().Str("detail", detail).Int("status", status).Msg("request rejected")
	utils.WriteError(w, detail, status)
}

// writeText answers with a plain-text body, as the inventory service does
// for successful mutations.
func writeText(w http.ResponseWriter, r *http.Request, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
