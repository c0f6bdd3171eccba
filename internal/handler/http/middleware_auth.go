package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces token-based authentication.
//
// It extracts the caller's credential — the "Authorization" header value
// ("Token <key>" or "Bearer <key>") or, failing that, the session cookie set
// at login — resolves it to a user via [service.AuthService.Authenticate],
// and on success stores the user's ID and username in the request context
// under [utils.UserIDCtxKey] and [utils.UsernameCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no
// credential is present or when the presented token is unknown or revoked.
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenKey, err := credentialFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, detailResponse{Detail: "Authentication credentials were not provided."}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenKey)
		if err != nil {
			log.Err(err).Msg("token did not resolve to a user")
			utils.WriteJSON(w, detailResponse{Detail: "Invalid token."}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's identity in the context so that
		// downstream handlers can retrieve it without another token lookup.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, user.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialFromRequest extracts the opaque token key presented by the
// caller. The "Authorization" header takes precedence; the session cookie is
// the fallback for browser clients.
//
// It returns the following sentinel errors:
//   - [ErrNoCredentials] — if neither carrier is present.
//   - [ErrEmptyToken] — if a carrier exists but holds an empty value.
func credentialFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenKey, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", ErrEmptyToken
		}
		return tokenKey, nil
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	}

	return "", ErrNoCredentials
}
