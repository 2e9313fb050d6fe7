// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, authorization, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated caller identity in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// Every rejection — absent header, malformed header, expired token, forged
// token — produces the same 401 `{"detail":"Invalid credentials"}` response.
// No distinction between the causes is exposed to the client; the precise
// cause is only logged via the context-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteDetail(w, detailInvalidCredentials, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteDetail(w, detailInvalidCredentials, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteDetail(w, detailInvalidCredentials, http.StatusUnauthorized)
			return
		}

		// Store the caller identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin is an HTTP middleware that restricts access to callers whose
// identity carries the admin role. It must run after [Handler.auth].
//
// Non-admin callers receive 401 `{"detail":"Unauthorized"}` — there is no
// separate 403 in this API.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin() {
			log.Error().
				Int64("user_id", identity.UserID).
				Str("role", identity.Role).
				Msg("admin endpoint rejected non-admin caller")
			utils.WriteDetail(w, detailUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
