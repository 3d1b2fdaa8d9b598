package service

import (
	"context"
	"fmt"
	"log/slog"

	"trendai/internal/domain"
)

// InfluencerService provides influencer profile operations.
type InfluencerService struct {
	repo  domain.InfluencerRepository
	audit domain.AuditRepository
	log   *slog.Logger
}

// NewInfluencerService creates a new InfluencerService.
func NewInfluencerService(repo domain.InfluencerRepository, audit domain.AuditRepository, log *slog.Logger) *InfluencerService {
	return &InfluencerService{repo: repo, audit: audit, log: log}
}

// Create creates an influencer profile.
func (s *InfluencerService) Create(ctx context.Context, req domain.CreateInfluencerRequest) (*domain.Influencer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inf, err := s.repo.Create(ctx, &domain.Influencer{
		Name:           req.Name,
		Handle:         req.Handle,
		Platform:       req.Platform,
		FollowersCount: req.FollowersCount,
		Avatar:         req.Avatar,
		OwnerUserID:    req.OwnerUserID,
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "CREATE_INFLUENCER", fmt.Sprintf("Created influencer %q", inf.Name))
	return inf, nil
}

// Get returns an influencer by id.
func (s *InfluencerService) Get(ctx context.Context, id string) (*domain.Influencer, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all influencers in creation order.
func (s *InfluencerService) List(ctx context.Context) ([]domain.Influencer, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to an influencer.
func (s *InfluencerService) Update(ctx context.Context, id string, req domain.UpdateInfluencerRequest) (*domain.Influencer, error) {
	inf, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(inf); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, inf)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "UPDATE_INFLUENCER", fmt.Sprintf("Updated influencer %q", id))
	return updated, nil
}

// Delete removes an influencer profile. Their submissions keep their
// influencer reference and become orphaned.
func (s *InfluencerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, s.log, "DELETE_INFLUENCER", fmt.Sprintf("Deleted influencer %q", id))
	return nil
}
