package middleware

import (
	"encoding/json"
	"net/http"

	"trendai/internal/domain"
)

// ForbiddenMessage is the fixed body returned for every role denial.
// Clients match on it; do not vary it per route.
const ForbiddenMessage = "You do not have permission to access this resource"

// Decision is the outcome of a role check.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Authorize evaluates a principal against an operation's role requirement.
// A nil or empty requirement admits any authenticated principal. The check
// is pure: same inputs, same decision, no side effects.
func Authorize(principal *domain.ContextPrincipal, requirement []domain.Role) Decision {
	if principal == nil || principal.SubjectID == "" {
		return DenyUnauthenticated
	}
	if len(requirement) == 0 {
		return Allow
	}
	for _, role := range requirement {
		if principal.Role == role {
			return Allow
		}
	}
	return DenyForbidden
}

// RequireRoles returns middleware enforcing the role requirement declared
// for the given operation. It assumes Authenticate already ran; a request
// with no principal in context is treated as unauthenticated.
func RequireRoles(operation string) func(http.Handler) http.Handler {
	requirement := domain.RequiredRoles(operation)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var principal *domain.ContextPrincipal
			if p, ok := domain.PrincipalFromContext(r.Context()); ok {
				principal = &p
			}

			switch Authorize(principal, requirement) {
			case Allow:
				next.ServeHTTP(w, r)
			case DenyUnauthenticated:
				writeUnauthorized(w, "authentication is required")
			case DenyForbidden:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"statusCode": http.StatusForbidden,
					"message":    ForbiddenMessage,
				})
			}
		})
	}
}
