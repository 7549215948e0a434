package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/markwaveai/markwave-hr/internal/domain/auth"
	"github.com/markwaveai/markwave-hr/internal/handler/http/response"
)

// AuthRequired admits only verified access tokens. Refresh tokens live
// in the auth cookie flow and must not reach API handlers.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
