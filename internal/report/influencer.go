package report

import (
	"log/slog"
	"sort"

	orderedmap "github.com/pb33f/ordered-map/v2"

	"trendai/internal/domain"
)

// BrandGroups is the influencer report: a mapping keyed by brand id. It
// deliberately stays a mapping rather than an array (the brand report's
// shape); existing consumers iterate its entries. Insertion order is
// preserved through JSON serialization.
type BrandGroups = orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, interface{}]]

// BuildInfluencerReport groups an influencer's submissions by brand, then
// by campaign. Each brand node holds the brand's flattened fields plus a
// "campaigns" mapping; each campaign node holds the campaign's flattened
// fields plus a "submissions" list of flattened submission records.
//
// Rows whose brand or campaign could not be resolved are orphaned
// references: skipped and logged, never fatal.
func BuildInfluencerReport(rows []domain.InfluencerSubmissionRow, log *slog.Logger) *BrandGroups {
	if log == nil {
		log = slog.Default()
	}

	brands := orderedmap.New[string, *orderedmap.OrderedMap[string, interface{}]]()

	for _, row := range rows {
		if row.Brand.ID == "" || row.Campaign.ID == "" {
			log.Warn("skipping orphaned submission",
				"submission", row.ID, "brand", row.BrandID, "campaign", row.CampaignID)
			continue
		}

		brandNode, ok := brands.Get(row.Brand.ID)
		if !ok {
			brandNode = newGroupNode(brandRecord(row.Brand))
			brandNode.Set("campaigns", orderedmap.New[string, interface{}]())
			brands.Set(row.Brand.ID, brandNode)
		}

		campaignsAny, _ := brandNode.Get("campaigns")
		campaigns := campaignsAny.(*orderedmap.OrderedMap[string, interface{}])

		campaignAny, ok := campaigns.Get(row.Campaign.ID)
		if !ok {
			node := newGroupNode(campaignRecord(row.Campaign))
			node.Set("submissions", []interface{}{})
			campaigns.Set(row.Campaign.ID, node)
			campaignAny = node
		}
		campaignNode := campaignAny.(*orderedmap.OrderedMap[string, interface{}])

		subsAny, _ := campaignNode.Get("submissions")
		subs := subsAny.([]interface{})
		campaignNode.Set("submissions", append(subs, Flatten(submissionRecord(row), "")))
	}

	return brands
}

// newGroupNode seeds an ordered node with a record's flattened fields,
// inserted in sorted key order so repeated runs serialize identically.
func newGroupNode(record map[string]interface{}) *orderedmap.OrderedMap[string, interface{}] {
	flat := Flatten(record, "")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := orderedmap.New[string, interface{}]()
	for _, k := range keys {
		node.Set(k, flat[k])
	}
	return node
}

func brandRecord(b domain.Brand) map[string]interface{} {
	record := map[string]interface{}{
		"id":       b.ID,
		"name":     b.Name,
		"industry": b.Industry,
		"website":  b.Website,
	}
	if b.Description != nil {
		record["description"] = *b.Description
	}
	return record
}

func campaignRecord(c domain.Campaign) map[string]interface{} {
	return map[string]interface{}{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"budget":      c.Budget,
		"startDate":   c.StartDate,
		"endDate":     c.EndDate,
		"status":      c.Status,
		"brandId":     c.BrandID,
	}
}

func submissionRecord(row domain.InfluencerSubmissionRow) map[string]interface{} {
	record := map[string]interface{}{
		"id":          row.ID,
		"campaignId":  row.CampaignID,
		"brandId":     row.BrandID,
		"contentLink": row.ContentLink,
		"engagement": map[string]interface{}{
			"likes":    row.Engagement.Likes,
			"comments": row.Engagement.Comments,
		},
		"submittedAt": row.SubmittedAt,
		"status":      row.Status,
	}
	if row.Approver != nil {
		record["approver"] = map[string]interface{}{
			"id":    row.Approver.ID,
			"email": row.Approver.Email,
			"role":  string(row.Approver.Role),
		}
	}
	return record
}
