package domain

import "time"

// Campaign status values.
const (
	CampaignActive    = "active"
	CampaignPaused    = "paused"
	CampaignCompleted = "completed"
)

// Campaign is a brand's marketing campaign.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	BrandID     string    `json:"brandId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidCampaignStatus reports whether s is a known campaign status.
func ValidCampaignStatus(s string) bool {
	return s == CampaignActive || s == CampaignPaused || s == CampaignCompleted
}

// CreateCampaignRequest holds parameters for creating a campaign.
type CreateCampaignRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	BrandID     string    `json:"brandId"`
}

// Validate checks that the request is well-formed. Status defaults to
// "active" when empty.
func (r *CreateCampaignRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("campaign name is required")
	}
	if r.BrandID == "" {
		return ErrValidation("brandId is required")
	}
	if r.Status == "" {
		r.Status = CampaignActive
	}
	if !ValidCampaignStatus(r.Status) {
		return ErrValidation("status must be 'active', 'paused', or 'completed'")
	}
	if !r.EndDate.IsZero() && !r.StartDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return ErrValidation("endDate must not be before startDate")
	}
	return nil
}

// UpdateCampaignRequest holds optional fields for a partial update.
type UpdateCampaignRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// Apply copies the set fields onto c.
func (r *UpdateCampaignRequest) Apply(c *Campaign) error {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.Budget != nil {
		c.Budget = *r.Budget
	}
	if r.StartDate != nil {
		c.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		c.EndDate = *r.EndDate
	}
	if r.Status != nil {
		if !ValidCampaignStatus(*r.Status) {
			return ErrValidation("status must be 'active', 'paused', or 'completed'")
		}
		c.Status = *r.Status
	}
	return nil
}
