package graph

import (
	"context"
	"net/http"
	"strings"

	"github.com/akarpov/gqltodo/internal/server/auth"
	"github.com/akarpov/gqltodo/internal/server/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

// ContextWithPrincipal stores an authenticated principal on the context.
func ContextWithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated principal, or nil when the
// request carried no valid token.
func PrincipalFromContext(ctx context.Context) *models.Principal {
	p, _ := ctx.Value(principalKey).(*models.Principal)
	return p
}

// PrincipalExtractor returns middleware that reads the Authorization header,
// strips an optional "Bearer " prefix, and runs the session codec. A request
// with no header, or with a token that fails verification, proceeds without
// a principal; rejecting it is the resolvers' decision, not the transport's.
func PrincipalExtractor(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get("Authorization"); raw != "" {
				token := strings.TrimPrefix(raw, "Bearer ")
				if p := auth.PrincipalFromToken(token, secretKey); p != nil {
					r = r.WithContext(ContextWithPrincipal(r.Context(), p))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
