package domain

import "time"

// Submission status values.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Engagement holds opaque engagement numbers reported for a submission.
// They are inputs, never computed here.
type Engagement struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// Submission is a piece of campaign content submitted by an influencer.
type Submission struct {
	ID           string     `json:"id"`
	CampaignID   string     `json:"campaignId"`
	InfluencerID string     `json:"influencerId"`
	BrandID      string     `json:"brandId"`
	ContentLink  string     `json:"contentLink"`
	Engagement   Engagement `json:"engagement"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Status       string     `json:"status"`
	ApproverID   *string    `json:"approverId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ValidSubmissionStatus reports whether s is a known submission status.
func ValidSubmissionStatus(s string) bool {
	return s == SubmissionPending || s == SubmissionApproved || s == SubmissionRejected
}

// CreateSubmissionRequest holds parameters for creating a submission.
type CreateSubmissionRequest struct {
	CampaignID   string     `json:"campaignId"`
	InfluencerID string     `json:"influencerId"`
	BrandID      string     `json:"brandId"`
	ContentLink  string     `json:"contentLink"`
	Engagement   Engagement `json:"engagement"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}

// Validate checks that the request is well-formed.
func (r *CreateSubmissionRequest) Validate() error {
	if r.CampaignID == "" {
		return ErrValidation("campaignId is required")
	}
	if r.InfluencerID == "" {
		return ErrValidation("influencerId is required")
	}
	if r.BrandID == "" {
		return ErrValidation("brandId is required")
	}
	if r.ContentLink == "" {
		return ErrValidation("contentLink is required")
	}
	return nil
}

// UpdateSubmissionRequest holds optional fields for a partial update.
type UpdateSubmissionRequest struct {
	ContentLink *string     `json:"contentLink,omitempty"`
	Engagement  *Engagement `json:"engagement,omitempty"`
	Status      *string     `json:"status,omitempty"`
	ApproverID  *string     `json:"approverId,omitempty"`
}

// Apply copies the set fields onto s.
func (r *UpdateSubmissionRequest) Apply(s *Submission) error {
	if r.ContentLink != nil {
		s.ContentLink = *r.ContentLink
	}
	if r.Engagement != nil {
		s.Engagement = *r.Engagement
	}
	if r.Status != nil {
		if !ValidSubmissionStatus(*r.Status) {
			return ErrValidation("status must be 'pending', 'approved', or 'rejected'")
		}
		s.Status = *r.Status
	}
	if r.ApproverID != nil {
		s.ApproverID = r.ApproverID
	}
	return nil
}

// BrandSubmissionRow is a submission fetched for the brand report, with
// its influencer sub-record resolved.
type BrandSubmissionRow struct {
	Submission
	Influencer Influencer
}

// InfluencerSubmissionRow is a submission fetched for the influencer
// report, with brand, campaign, and approver sub-records resolved.
// Approver is nil when the submission has not been reviewed.
type InfluencerSubmissionRow struct {
	Submission
	Brand    Brand
	Campaign Campaign
	Approver *User
}
