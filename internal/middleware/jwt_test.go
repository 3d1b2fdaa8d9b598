package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendai/internal/domain"
)

// makeToken creates a signed HS256 JWT from the given secret and claims.
func makeToken(secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

func TestNewHS256Verifier(t *testing.T) {
	t.Parallel()

	v, err := NewHS256Verifier("my-secret")
	require.NoError(t, err)
	require.NotNil(t, v)

	_, err = NewHS256Verifier("")
	assert.Error(t, err)
}

func TestHS256Verifier_Verify(t *testing.T) {
	t.Parallel()

	const secret = "test-secret-32-bytes-long-xxxxx"
	v, err := NewHS256Verifier(secret)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantReason string
		wantSub    string
		wantRole   domain.Role
	}{
		{
			name: "valid token",
			token: makeToken(secret, jwt.MapClaims{
				"sub":  "user-123",
				"role": "brand",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantSub:  "user-123",
			wantRole: domain.RoleBrand,
		},
		{
			name: "valid token without role claim",
			token: makeToken(secret, jwt.MapClaims{
				"sub": "user-456",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantSub:  "user-456",
			wantRole: "",
		},
		{
			name:       "malformed token",
			token:      "not.a.jwt",
			wantReason: "malformed",
		},
		{
			name: "expired token",
			token: makeToken(secret, jwt.MapClaims{
				"sub": "user-123",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantReason: "expired",
		},
		{
			name: "wrong secret",
			token: makeToken("other-secret", jwt.MapClaims{
				"sub": "user-123",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantReason: "invalid",
		},
		{
			name: "missing subject",
			token: makeToken(secret, jwt.MapClaims{
				"role": "brand",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantReason: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(context.Background(), tt.token)
			if tt.wantReason != "" {
				require.Error(t, err)
				var authErr *domain.AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantReason, authErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, claims.Subject)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}

func TestHS256Verifier_RejectsAlgNone(t *testing.T) {
	t.Parallel()

	v, err := NewHS256Verifier("secret")
	require.NoError(t, err)

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), signed)
	assert.Error(t, err)
}

func TestHS256Verifier_IssueRoundTrip(t *testing.T) {
	t.Parallel()

	v, err := NewHS256Verifier("round-trip-secret")
	require.NoError(t, err)

	signed, err := v.Issue("user-9", domain.RoleInfluencer, time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.Subject)
	assert.Equal(t, domain.RoleInfluencer, claims.Role)
}
