package devserver

import (
	"net/http"

	"github.com/MKhiriev/go-skladischer/internal/app"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/utils"
	"github.com/MKhiriev/go-skladischer/models"
)

// readCredentials parses the form-encoded OAuth2 password grant.
func readCredentials(r *http.Request) (models.Credentials, bool) {
	if err := r.ParseForm(); err != nil {
		return models.Credentials{}, false
	}

	creds := models.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if creds.Username == "" || creds.Password == "" {
		return models.Credentials{}, false
	}

	return creds, true
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	creds, ok := readCredentials(r)
	if !ok {
		writeError(w, r, app.MsgMissingCredentials, http.StatusBadRequest)
		return
	}

	if err := h.inventory.Register(creds.Username, creds.Password); err != nil {
		writeInventoryError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", creds.Username).Msg("user registered")
	writeText(w, r, creds.Username)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, ok := readCredentials(r)
	if !ok {
		writeError(w, r, app.MsgMissingCredentials, http.StatusBadRequest)
		return
	}

	if err := h.inventory.Authenticate(creds.Username, creds.Password); err != nil {
		writeInventoryError(w, r, err)
		return
	}

	token, err := utils.GenerateJWTToken(h.tokens.TokenIssuer, creds.Username, h.tokens.TokenDuration, h.tokens.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("username", creds.Username).Msg("user successfully logged in")

	resp := models.LoginResponse{AccessToken: token.SignedString, TokenType: models.DefaultTokenType}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
