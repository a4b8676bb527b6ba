package middleware

import (
	"net/http"

	"hospital-appointment-api/pkg/jwt"
	"hospital-appointment-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// allowed roles. Role is read from context (set by AuthMiddleware).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAdmin)(next)
}

// RequireStaff allows administrative staff who manage the appointment book
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAdmin, jwt.RoleSecretary)(next)
}

// RequireClinical allows staff plus physicians acting on their own agenda
func RequireClinical(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAdmin, jwt.RoleSecretary, jwt.RolePhysician)(next)
}
