package service

import (
	"context"
	"fmt"
	"log/slog"

	"trendai/internal/domain"
)

// CampaignService provides campaign management operations.
type CampaignService struct {
	repo   domain.CampaignRepository
	brands domain.BrandRepository
	audit  domain.AuditRepository
	log    *slog.Logger
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(repo domain.CampaignRepository, brands domain.BrandRepository, audit domain.AuditRepository, log *slog.Logger) *CampaignService {
	return &CampaignService{repo: repo, brands: brands, audit: audit, log: log}
}

// Create creates a campaign under an existing brand.
func (s *CampaignService) Create(ctx context.Context, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.brands.GetByID(ctx, req.BrandID); err != nil {
		return nil, err
	}

	campaign, err := s.repo.Create(ctx, &domain.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		BrandID:     req.BrandID,
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "CREATE_CAMPAIGN", fmt.Sprintf("Created campaign %q for brand %q", campaign.Name, campaign.BrandID))
	return campaign, nil
}

// Get returns a campaign by id.
func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all campaigns in creation order.
func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to a campaign.
func (s *CampaignService) Update(ctx context.Context, id string, req domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(campaign); err != nil {
		return nil, err
	}
	if !campaign.EndDate.IsZero() && !campaign.StartDate.IsZero() && campaign.EndDate.Before(campaign.StartDate) {
		return nil, domain.ErrValidation("endDate must not be before startDate")
	}

	updated, err := s.repo.Update(ctx, campaign)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "UPDATE_CAMPAIGN", fmt.Sprintf("Updated campaign %q", id))
	return updated, nil
}

// Delete removes a campaign. Its submissions keep their campaign
// reference and become orphaned.
func (s *CampaignService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, s.log, "DELETE_CAMPAIGN", fmt.Sprintf("Deleted campaign %q", id))
	return nil
}

// CompleteExpired marks active campaigns whose end date has passed as
// completed. Returns the number of campaigns transitioned.
func (s *CampaignService) CompleteExpired(ctx context.Context) (int64, error) {
	return s.repo.CompletePastEndDate(ctx)
}
