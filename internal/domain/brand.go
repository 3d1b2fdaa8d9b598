package domain

import "time"

// Brand is a company running campaigns. MemberUserIDs lists the user
// accounts allowed to act for the brand.
type Brand struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry"`
	Website       string    `json:"website"`
	Description   *string   `json:"description,omitempty"`
	MemberUserIDs []string  `json:"users"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateBrandRequest holds parameters for creating a brand.
type CreateBrandRequest struct {
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that the request is well-formed.
func (r *CreateBrandRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("brand name is required")
	}
	if r.Industry == "" {
		return ErrValidation("industry is required")
	}
	if r.Website == "" {
		return ErrValidation("website is required")
	}
	return nil
}

// UpdateBrandRequest holds optional fields for a partial brand update.
type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply copies the set fields onto b.
func (r *UpdateBrandRequest) Apply(b *Brand) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Industry != nil {
		b.Industry = *r.Industry
	}
	if r.Website != nil {
		b.Website = *r.Website
	}
	if r.Description != nil {
		b.Description = r.Description
	}
}
