package report

import (
	"log/slog"
	"time"

	orderedmap "github.com/pb33f/ordered-map/v2"

	"trendai/internal/domain"
)

// SubmissionLeaf is the compact submission record attached to an
// influencer node in the brand report.
type SubmissionLeaf struct {
	ID         string            `json:"id"`
	Date       time.Time         `json:"date"`
	Status     string            `json:"status"`
	Engagement domain.Engagement `json:"engagement"`
}

// InfluencerNode groups one influencer's submissions within a campaign.
type InfluencerNode struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Avatar         string           `json:"avatar"`
	Handle         string           `json:"socialMediaHandle"`
	Platform       string           `json:"platform"`
	FollowersCount int64            `json:"followersCount"`
	Submissions    []SubmissionLeaf `json:"submissions"`
}

// CampaignNode is one campaign's subtree in the brand report.
type CampaignNode struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Budget      float64          `json:"budget"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	Status      string           `json:"status"`
	Influencers []InfluencerNode `json:"influencers"`
}

// BuildBrandReport groups a brand's submissions into a
// campaign -> influencer -> submissions tree.
//
// Campaigns appear in input order; within a campaign, influencers appear
// in order of their first submission; submissions stay in input order.
// A submission referencing a campaign outside the given set is an
// orphaned reference: it is skipped and logged, never fatal.
func BuildBrandReport(campaigns []domain.Campaign, subs []domain.BrandSubmissionRow, log *slog.Logger) []CampaignNode {
	if log == nil {
		log = slog.Default()
	}

	type campaignGroup struct {
		campaign    domain.Campaign
		influencers *orderedmap.OrderedMap[string, *InfluencerNode]
	}

	groups := orderedmap.New[string, *campaignGroup]()
	for _, c := range campaigns {
		groups.Set(c.ID, &campaignGroup{
			campaign:    c,
			influencers: orderedmap.New[string, *InfluencerNode](),
		})
	}

	for _, sub := range subs {
		group, ok := groups.Get(sub.CampaignID)
		if !ok {
			log.Warn("skipping orphaned submission",
				"submission", sub.ID, "campaign", sub.CampaignID)
			continue
		}

		node, ok := group.influencers.Get(sub.InfluencerID)
		if !ok {
			avatar := sub.Influencer.Avatar
			if avatar == "" {
				avatar = domain.DefaultAvatar
			}
			node = &InfluencerNode{
				ID:             sub.InfluencerID,
				Name:           sub.Influencer.Name,
				Avatar:         avatar,
				Handle:         sub.Influencer.Handle,
				Platform:       sub.Influencer.Platform,
				FollowersCount: sub.Influencer.FollowersCount,
				Submissions:    []SubmissionLeaf{},
			}
			group.influencers.Set(sub.InfluencerID, node)
		}

		node.Submissions = append(node.Submissions, SubmissionLeaf{
			ID:         sub.ID,
			Date:       sub.SubmittedAt,
			Status:     sub.Status,
			Engagement: sub.Engagement,
		})
	}

	out := make([]CampaignNode, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		group := pair.Value
		node := CampaignNode{
			ID:          group.campaign.ID,
			Name:        group.campaign.Name,
			Description: group.campaign.Description,
			Budget:      group.campaign.Budget,
			StartDate:   group.campaign.StartDate,
			EndDate:     group.campaign.EndDate,
			Status:      group.campaign.Status,
			Influencers: make([]InfluencerNode, 0, group.influencers.Len()),
		}
		for ip := group.influencers.Oldest(); ip != nil; ip = ip.Next() {
			node.Influencers = append(node.Influencers, *ip.Value)
		}
		out = append(out, node)
	}
	return out
}
