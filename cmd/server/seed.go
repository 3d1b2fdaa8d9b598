package main

import (
	"time"

	"trendai/internal/domain"
)

// Demo fixtures for the seed command. Passwords are for local use only.

func domainCreateUser(email string, role domain.Role) domain.CreateUserRequest {
	return domain.CreateUserRequest{
		Email:    email,
		Password: "demo-password",
		Role:     role,
	}
}

func seedBrand() domain.CreateBrandRequest {
	description := "Demo fashion brand"
	return domain.CreateBrandRequest{
		Name:        "Acme Apparel",
		Industry:    "Fashion",
		Website:     "https://acme-apparel.test",
		Description: &description,
	}
}

func seedInfluencer() domain.CreateInfluencerRequest {
	return domain.CreateInfluencerRequest{
		Name:           "Ann Demo",
		Handle:         "@anndemo",
		Platform:       "instagram",
		FollowersCount: 12500,
	}
}

func seedCampaign(brandID string) domain.CreateCampaignRequest {
	now := time.Now().UTC()
	return domain.CreateCampaignRequest{
		Name:        "Summer Launch",
		Description: "Summer collection launch campaign",
		Budget:      25000,
		StartDate:   now.AddDate(0, 0, -7),
		EndDate:     now.AddDate(0, 1, 0),
		BrandID:     brandID,
	}
}

func seedSubmission(campaignID, influencerID, brandID string) domain.CreateSubmissionRequest {
	return domain.CreateSubmissionRequest{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		BrandID:      brandID,
		ContentLink:  "https://instagram.test/p/demo-post",
		Engagement:   domain.Engagement{Likes: 320, Comments: 41},
	}
}
