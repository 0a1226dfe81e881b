// Package session authenticates requests and carries the caller's identity
// through the request context.
package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

// Caller is the authenticated principal behind a request.
type Caller struct {
	Signature ledger.UserSignature
	Role      auth.Role
}

type ctxKey struct{}

// Middleware verifies the bearer token and stores the caller in the context.
func Middleware(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respond.Error(w, fault.New(fault.CodePermissionDenied, "missing bearer token"))
				return
			}

			sig, role, err := tokens.Verify(token)
			if err != nil {
				respond.Error(w, fault.New(fault.CodePermissionDenied, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, Caller{Signature: sig, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// From returns the caller the middleware stored.
func From(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(ctxKey{}).(Caller)
	return c, ok
}

// Require rejects callers whose role is not in the allowed set.
func Require(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := From(r.Context())
			if !ok {
				respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
				return
			}

			for _, role := range roles {
				if c.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respond.Error(w, fault.New(fault.CodePermissionDenied, "role %s may not do this", c.Role))
		})
	}
}
