package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/markwaveai/markwave-hr/internal/domain/auth"
	"github.com/markwaveai/markwave-hr/internal/domain/user"
	"github.com/markwaveai/markwave-hr/internal/handler/http/response"
)

// AdminOnly gates the approver surface on the is_admin token claim.
// Runs after AuthRequired, so the token is already verified.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if admin, ok := claims["is_admin"].(bool); !ok || !admin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
