package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"trendai/internal/domain"
	"trendai/internal/report"
)

// ReportService assembles the campaign performance reports. All fetching
// happens here, up front; the grouping in the report package is pure.
type ReportService struct {
	brands      domain.BrandRepository
	influencers domain.InfluencerRepository
	campaigns   domain.CampaignRepository
	submissions domain.SubmissionRepository
	log         *slog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(
	brands domain.BrandRepository,
	influencers domain.InfluencerRepository,
	campaigns domain.CampaignRepository,
	submissions domain.SubmissionRepository,
	log *slog.Logger,
) *ReportService {
	return &ReportService{
		brands:      brands,
		influencers: influencers,
		campaigns:   campaigns,
		submissions: submissions,
		log:         log,
	}
}

// BrandReport returns the campaign -> influencer -> submissions tree for
// a brand. The brand must exist; a brand with no campaigns gets an empty
// report, not an error.
func (s *ReportService) BrandReport(ctx context.Context, brandID string) ([]report.CampaignNode, error) {
	var campaigns []domain.Campaign

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.brands.GetByID(gctx, brandID)
		return err
	})
	g.Go(func() error {
		var err error
		campaigns, err = s.campaigns.ListByBrand(gctx, brandID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]string, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	rows, err := s.submissions.ListByCampaigns(ctx, ids)
	if err != nil {
		return nil, err
	}

	return report.BuildBrandReport(campaigns, rows, s.log), nil
}

// InfluencerReport returns an influencer's submissions grouped by brand,
// then campaign. The influencer must exist; one with no submissions gets
// an empty report, not an error.
func (s *ReportService) InfluencerReport(ctx context.Context, influencerID string) (*report.BrandGroups, error) {
	var rows []domain.InfluencerSubmissionRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.influencers.GetByID(gctx, influencerID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.submissions.ListByInfluencer(gctx, influencerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report.BuildInfluencerReport(rows, s.log), nil
}
