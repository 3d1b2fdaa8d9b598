package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"trendai/internal/domain"
)

// Authenticate returns middleware that verifies the Authorization header
// and stores the resulting principal in the request context. A missing,
// malformed, invalid, or expired credential yields 401; downstream
// handlers never see an unauthenticated request.
func Authenticate(verifier TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeUnauthorized(w, "authorization header is required")
				return
			}
			tokenStr, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || tokenStr == "" {
				writeUnauthorized(w, "authorization header must be a Bearer token")
				return
			}

			claims, err := verifier.Verify(r.Context(), tokenStr)
			if err != nil {
				reason := "invalid"
				var authErr *domain.AuthenticationError
				if errors.As(err, &authErr) {
					reason = authErr.Reason
				}
				log.Debug("rejected credential", "reason", reason, "path", r.URL.Path)
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := domain.WithPrincipal(r.Context(), domain.ContextPrincipal{
				SubjectID: claims.Subject,
				Role:      claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": http.StatusUnauthorized,
		"message":    message,
	})
}
