package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	devSecretHeader = "x-dev-secret"
)

// RequireSession exige "Authorization: Bearer <jwt>" com uma sessão válida e guarda as claims no contexto
func RequireSession(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("auth: missing authorization header")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, authenticating.ErrUnauthorized.Error())
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				logger.Warn("auth: authorization header is not a bearer token")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, authenticating.ErrUnauthorized.Error())
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logger.WithError(err).Warn("auth: invalid session token")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, authenticating.ErrUnauthorized.Error())
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims gravadas por RequireSession
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// DevSecret restringe rotas operacionais ao cabeçalho x-dev-secret. Sem segredo configurado a rota fica fechada.
func DevSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(devSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("auth: dev secret rejected")
				apiErrors.WriteError(w, apiErrors.ErrForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
