package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendai/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authHandler(t *testing.T, secret string) (http.Handler, *domain.ContextPrincipal) {
	t.Helper()
	v, err := NewHS256Verifier(secret)
	require.NoError(t, err)

	captured := &domain.ContextPrincipal{}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := domain.PrincipalFromContext(r.Context())
		require.True(t, ok)
		*captured = p
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(v, discardLogger())(inner), captured
}

func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	const secret = "auth-test-secret"
	handler, captured := authHandler(t, secret)

	token := makeToken(secret, jwt.MapClaims{
		"sub":  "user-1",
		"role": "influencer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/campaigns", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", captured.SubjectID)
	assert.Equal(t, domain.RoleInfluencer, captured.Role)
}

func TestAuthenticate_Rejections(t *testing.T) {
	t.Parallel()

	const secret = "auth-test-secret"
	handler, _ := authHandler(t, secret)

	expired := makeToken(secret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + makeToken("other", jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/campaigns", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
