// Package service implements the application's business operations over
// the repository interfaces. Services validate input, enforce invariants,
// and record mutations to the audit trail.
package service

import (
	"context"
	"log/slog"

	"trendai/internal/domain"
)

// AuditService exposes the audit trail.
type AuditService struct {
	repo domain.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo domain.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// List returns the most recent audit entries.
func (s *AuditService) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return s.repo.List(ctx, limit)
}

// recordAudit writes an audit entry for a mutating operation. Audit
// failures are logged, never surfaced; the mutation already happened.
func recordAudit(ctx context.Context, audit domain.AuditRepository, log *slog.Logger, action, detail string) {
	if audit == nil {
		return
	}
	principal := "anonymous"
	if p, ok := domain.PrincipalFromContext(ctx); ok {
		principal = p.SubjectID
	}
	err := audit.Insert(ctx, &domain.AuditEntry{
		Principal: principal,
		Action:    action,
		Detail:    detail,
	})
	if err != nil && log != nil {
		log.Warn("audit insert failed", "action", action, "error", err)
	}
}
