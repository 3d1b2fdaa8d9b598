package domain

import "time"

// DefaultAvatar is used in reports for influencers without an avatar.
const DefaultAvatar = "https://via.placeholder.com/50"

// Influencer is a content creator submitting to campaigns. OwnerUserID is
// the user account that owns this profile.
type Influencer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Handle         string    `json:"socialMediaHandle"`
	Platform       string    `json:"platform"`
	FollowersCount int64     `json:"followersCount"`
	Avatar         string    `json:"avatar,omitempty"`
	OwnerUserID    string    `json:"user"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateInfluencerRequest holds parameters for creating an influencer.
type CreateInfluencerRequest struct {
	Name           string `json:"name"`
	Handle         string `json:"socialMediaHandle"`
	Platform       string `json:"platform"`
	FollowersCount int64  `json:"followersCount"`
	Avatar         string `json:"avatar,omitempty"`
	OwnerUserID    string `json:"user"`
}

// Validate checks that the request is well-formed.
func (r *CreateInfluencerRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("influencer name is required")
	}
	if r.Handle == "" {
		return ErrValidation("socialMediaHandle is required")
	}
	if r.Platform == "" {
		return ErrValidation("platform is required")
	}
	if r.FollowersCount < 0 {
		return ErrValidation("followersCount must not be negative")
	}
	return nil
}

// UpdateInfluencerRequest holds optional fields for a partial update.
type UpdateInfluencerRequest struct {
	Name           *string `json:"name,omitempty"`
	Handle         *string `json:"socialMediaHandle,omitempty"`
	Platform       *string `json:"platform,omitempty"`
	FollowersCount *int64  `json:"followersCount,omitempty"`
	Avatar         *string `json:"avatar,omitempty"`
}

// Apply copies the set fields onto inf.
func (r *UpdateInfluencerRequest) Apply(inf *Influencer) error {
	if r.Name != nil {
		inf.Name = *r.Name
	}
	if r.Handle != nil {
		inf.Handle = *r.Handle
	}
	if r.Platform != nil {
		inf.Platform = *r.Platform
	}
	if r.FollowersCount != nil {
		if *r.FollowersCount < 0 {
			return ErrValidation("followersCount must not be negative")
		}
		inf.FollowersCount = *r.FollowersCount
	}
	if r.Avatar != nil {
		inf.Avatar = *r.Avatar
	}
	return nil
}
