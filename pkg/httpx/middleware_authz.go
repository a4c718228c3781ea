package httpx

import "net/http"

// RequireRole gates a handler on the caller's role. It must run after
// AuthnMiddleware so the role is already resolved into the context.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have, ok := RoleFromCtx(r.Context())
			if !ok || have != role {
				WriteError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
