package devserver

import (
	"net/http"

	"github.com/MKhiriev/go-skladischer/internal/app"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT bearer authentication on the
// /users/{username} routes.
//
// Missing, malformed, expired or badly signed tokens are rejected with 401.
// A valid token whose subject differs from the {username} path segment is
// rejected with 403. On success the username is stored in the request
// context under [utils.UsernameCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		username, err := token.GetUsername()
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		if username != pathParam(r, "username") {
			log.Warn().Str("subject", username).Msg("token subject does not own the path")
			writeError(w, r, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", username)
		})

		ctx := utils.WithUsername(log.WithContext(r.Context()), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
