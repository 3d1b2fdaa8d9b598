package domain

import "context"

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// BrandRepository persists brands and brand memberships.
type BrandRepository interface {
	Create(ctx context.Context, b *Brand) (*Brand, error)
	GetByID(ctx context.Context, id string) (*Brand, error)
	GetByMemberUserID(ctx context.Context, userID string) (*Brand, error)
	List(ctx context.Context) ([]Brand, error)
	Update(ctx context.Context, b *Brand) (*Brand, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, brandID, userID string) error
}

// InfluencerRepository persists influencer profiles.
type InfluencerRepository interface {
	Create(ctx context.Context, inf *Influencer) (*Influencer, error)
	GetByID(ctx context.Context, id string) (*Influencer, error)
	GetByOwnerUserID(ctx context.Context, userID string) (*Influencer, error)
	List(ctx context.Context) ([]Influencer, error)
	Update(ctx context.Context, inf *Influencer) (*Influencer, error)
	Delete(ctx context.Context, id string) error
	SetOwner(ctx context.Context, influencerID, userID string) error
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *Campaign) (*Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	ListByBrand(ctx context.Context, brandID string) ([]Campaign, error)
	Update(ctx context.Context, c *Campaign) (*Campaign, error)
	Delete(ctx context.Context, id string) error
	CompletePastEndDate(ctx context.Context) (int64, error)
}

// SubmissionRepository persists submissions and serves the pre-joined
// rows the report aggregator consumes. The aggregator itself never
// fetches; these methods return fully resolved rows in deterministic
// order (creation order).
type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) (*Submission, error)
	GetByID(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
	Update(ctx context.Context, s *Submission) (*Submission, error)
	Delete(ctx context.Context, id string) error
	ListByCampaigns(ctx context.Context, campaignIDs []string) ([]BrandSubmissionRow, error)
	ListByInfluencer(ctx context.Context, influencerID string) ([]InfluencerSubmissionRow, error)
}

// AuditRepository persists the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, e *AuditEntry) error
	List(ctx context.Context, limit int) ([]AuditEntry, error)
}
