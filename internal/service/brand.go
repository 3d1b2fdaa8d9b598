package service

import (
	"context"
	"fmt"
	"log/slog"

	"trendai/internal/domain"
)

// BrandService provides brand management operations.
type BrandService struct {
	repo  domain.BrandRepository
	audit domain.AuditRepository
	log   *slog.Logger
}

// NewBrandService creates a new BrandService.
func NewBrandService(repo domain.BrandRepository, audit domain.AuditRepository, log *slog.Logger) *BrandService {
	return &BrandService{repo: repo, audit: audit, log: log}
}

// Create creates a brand.
func (s *BrandService) Create(ctx context.Context, req domain.CreateBrandRequest) (*domain.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	brand, err := s.repo.Create(ctx, &domain.Brand{
		Name:        req.Name,
		Industry:    req.Industry,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "CREATE_BRAND", fmt.Sprintf("Created brand %q", brand.Name))
	return brand, nil
}

// Get returns a brand by id.
func (s *BrandService) Get(ctx context.Context, id string) (*domain.Brand, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all brands in creation order.
func (s *BrandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to a brand.
func (s *BrandService) Update(ctx context.Context, id string, req domain.UpdateBrandRequest) (*domain.Brand, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(brand)

	updated, err := s.repo.Update(ctx, brand)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, "UPDATE_BRAND", fmt.Sprintf("Updated brand %q", id))
	return updated, nil
}

// Delete removes a brand. Its campaigns go with it; submissions keep
// their brand reference and become orphaned.
func (s *BrandService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, s.log, "DELETE_BRAND", fmt.Sprintf("Deleted brand %q", id))
	return nil
}
