package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	api "readiness/internal/api"
)

// AdminAuth guards the operations that declare bearer security with an HS256
// token. Without a secret they are open only when AllowUnauthenticated is
// set, which cmd/server does for development.
type AdminAuth struct {
	Secret               []byte
	AllowUnauthenticated bool
}

// Strict is a strict-handler middleware. Operations without the bearer
// scheme pass straight through.
func (a AdminAuth) Strict(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		if _, secured := ctx.Value(api.BearerAuthScopes).([]string); secured {
			if err := a.authorize(r); err != nil {
				return nil, err
			}
		}
		return f(ctx, w, r, request)
	}
}

func (a AdminAuth) authorize(r *http.Request) error {
	if len(a.Secret) == 0 {
		if a.AllowUnauthenticated {
			return nil
		}
		return &runtimeError{code: http.StatusForbidden, msg: "admin endpoints are disabled"}
	}

	tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || tokenString == "" {
		return &runtimeError{code: http.StatusUnauthorized, msg: "unauthorized"}
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return &runtimeError{code: http.StatusUnauthorized, msg: "invalid token"}
	}
	return nil
}
