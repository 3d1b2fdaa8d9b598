package service

import (
	"context"
	"fmt"
	"log/slog"

	"trendai/internal/domain"
)

// UserService links user accounts to brand and influencer profiles.
type UserService struct {
	users       domain.UserRepository
	brands      domain.BrandRepository
	influencers domain.InfluencerRepository
	audit       domain.AuditRepository
	log         *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	users domain.UserRepository,
	brands domain.BrandRepository,
	influencers domain.InfluencerRepository,
	audit domain.AuditRepository,
	log *slog.Logger,
) *UserService {
	return &UserService{
		users:       users,
		brands:      brands,
		influencers: influencers,
		audit:       audit,
		log:         log,
	}
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// LinkBrand adds the user to a brand's member list. Both sides must
// exist.
func (s *UserService) LinkBrand(ctx context.Context, userID, brandID string) (*domain.Brand, error) {
	if userID == "" || brandID == "" {
		return nil, domain.ErrValidation("userId and brandId are required")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.brands.GetByID(ctx, brandID); err != nil {
		return nil, err
	}

	if err := s.brands.AddMember(ctx, brandID, userID); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "LINK_BRAND", fmt.Sprintf("Linked user %q to brand %q", userID, brandID))
	return s.brands.GetByID(ctx, brandID)
}

// LinkInfluencer sets the user as the owner of an influencer profile.
// Both sides must exist.
func (s *UserService) LinkInfluencer(ctx context.Context, userID, influencerID string) (*domain.Influencer, error) {
	if userID == "" || influencerID == "" {
		return nil, domain.ErrValidation("userId and influencerId are required")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.influencers.GetByID(ctx, influencerID); err != nil {
		return nil, err
	}

	if err := s.influencers.SetOwner(ctx, influencerID, userID); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "LINK_INFLUENCER", fmt.Sprintf("Linked user %q to influencer %q", userID, influencerID))
	return s.influencers.GetByID(ctx, influencerID)
}
