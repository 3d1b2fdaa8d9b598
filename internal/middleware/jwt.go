// Package middleware provides HTTP middleware for authentication,
// role-based access control, request IDs, and rate limiting.
package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"trendai/internal/domain"
)

// Claims holds the parsed claims from a verified token.
type Claims struct {
	Subject string
	Role    domain.Role
	Raw     jwt.MapClaims
}

// TokenVerifier verifies a bearer credential and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// HS256Verifier verifies tokens signed with a shared HS256 secret.
type HS256Verifier struct {
	secret []byte
}

// NewHS256Verifier creates a verifier for HS256 tokens.
func NewHS256Verifier(secret string) (*HS256Verifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	return &HS256Verifier{secret: []byte(secret)}, nil
}

// Verify checks the token's signature and expiry and extracts the subject
// and role claims. Failures come back as authentication errors whose
// reason distinguishes malformed, expired, and otherwise invalid tokens;
// callers map them all to the same 401 response.
func (v *HS256Verifier) Verify(_ context.Context, tokenString string) (*Claims, error) {
	tok, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrAuthentication("malformed", "token is malformed")
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrAuthentication("expired", "token has expired")
		default:
			return nil, domain.ErrAuthentication("invalid", "token verification failed")
		}
	}

	raw, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrAuthentication("invalid", "unsupported claim type %T", tok.Claims)
	}

	claims := &Claims{Raw: raw}
	if sub, ok := raw["sub"].(string); ok {
		claims.Subject = sub
	}
	if role, ok := raw["role"].(string); ok {
		claims.Role = domain.Role(role)
	}
	if claims.Subject == "" {
		return nil, domain.ErrAuthentication("invalid", "token has no subject")
	}
	return claims, nil
}

// Issue signs a token carrying the subject and role claims.
func (v *HS256Verifier) Issue(subjectID string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subjectID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return tok.SignedString(v.secret)
}
