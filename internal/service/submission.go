package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trendai/internal/domain"
)

// SubmissionService provides submission management operations.
type SubmissionService struct {
	repo      domain.SubmissionRepository
	campaigns domain.CampaignRepository
	audit     domain.AuditRepository
	log       *slog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(repo domain.SubmissionRepository, campaigns domain.CampaignRepository, audit domain.AuditRepository, log *slog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, campaigns: campaigns, audit: audit, log: log}
}

// Create records a content submission against an existing campaign. New
// submissions start pending. Parent records may be deleted later; the
// submission then survives as an orphan and is skipped by reports.
func (s *SubmissionService) Create(ctx context.Context, req domain.CreateSubmissionRequest) (*domain.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.campaigns.GetByID(ctx, req.CampaignID); err != nil {
		return nil, err
	}

	submittedAt := req.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	sub, err := s.repo.Create(ctx, &domain.Submission{
		CampaignID:   req.CampaignID,
		InfluencerID: req.InfluencerID,
		BrandID:      req.BrandID,
		ContentLink:  req.ContentLink,
		Engagement:   req.Engagement,
		SubmittedAt:  submittedAt,
		Status:       domain.SubmissionPending,
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "CREATE_SUBMISSION", fmt.Sprintf("Created submission %q for campaign %q", sub.ID, sub.CampaignID))
	return sub, nil
}

// Get returns a submission by id.
func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all submissions in creation order.
func (s *SubmissionService) List(ctx context.Context) ([]domain.Submission, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to a submission. A status change to
// approved or rejected records the reviewing principal as approver when
// none is set explicitly.
func (s *SubmissionService) Update(ctx context.Context, id string, req domain.UpdateSubmissionRequest) (*domain.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != domain.SubmissionPending && req.ApproverID == nil {
		if p, ok := domain.PrincipalFromContext(ctx); ok {
			req.ApproverID = &p.SubjectID
		}
	}
	if err := req.Apply(sub); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, sub)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "UPDATE_SUBMISSION", fmt.Sprintf("Updated submission %q", id))
	return updated, nil
}

// Delete removes a submission.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, s.log, "DELETE_SUBMISSION", fmt.Sprintf("Deleted submission %q", id))
	return nil
}
