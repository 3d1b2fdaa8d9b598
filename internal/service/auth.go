package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"trendai/internal/domain"
	"trendai/internal/middleware"
)

// AuthService handles registration and login.
type AuthService struct {
	users       domain.UserRepository
	brands      domain.BrandRepository
	influencers domain.InfluencerRepository
	audit       domain.AuditRepository
	signer      *middleware.HS256Verifier
	tokenTTL    time.Duration
	log         *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users domain.UserRepository,
	brands domain.BrandRepository,
	influencers domain.InfluencerRepository,
	audit domain.AuditRepository,
	signer *middleware.HS256Verifier,
	tokenTTL time.Duration,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		brands:      brands,
		influencers: influencers,
		audit:       audit,
		signer:      signer,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

// Register creates a user with a hashed password. The password hash never
// leaves the service layer.
func (s *AuthService) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "REGISTER", fmt.Sprintf("Registered user %q with role %q", user.Email, user.Role))
	return user, nil
}

// Login verifies credentials and issues an access token. The response
// embeds the brand or influencer profile linked to the account, or nil
// when none is linked yet. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.ErrAuthentication("invalid", "invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrAuthentication("invalid", "invalid credentials")
	}

	token, err := s.signer.Issue(user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	profile, err := s.lookupProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Message:     "Login successful",
		AccessToken: token,
		User: domain.LoginUser{
			ID:      user.ID,
			Email:   user.Email,
			Role:    user.Role,
			Profile: profile,
		},
	}, nil
}

// lookupProfile resolves the brand or influencer record linked to the
// user. A missing link is not an error.
func (s *AuthService) lookupProfile(ctx context.Context, user *domain.User) (interface{}, error) {
	var notFound *domain.NotFoundError
	switch user.Role {
	case domain.RoleBrand:
		brand, err := s.brands.GetByMemberUserID(ctx, user.ID)
		if errors.As(err, &notFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return brand, nil
	case domain.RoleInfluencer:
		inf, err := s.influencers.GetByOwnerUserID(ctx, user.ID)
		if errors.As(err, &notFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return inf, nil
	default:
		return nil, nil
	}
}
