package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"trendai/internal/domain"
)

type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

const submissionCols = `id, campaign_id, influencer_id, brand_id, content_link,
	engagement_likes, engagement_comments, submitted_at, status, approver_id, created_at`

func (r *SubmissionRepo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	out := *s
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.Status == "" {
		out.Status = domain.SubmissionPending
	}
	if out.SubmittedAt.IsZero() {
		out.SubmittedAt = time.Now().UTC()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (`+submissionCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.ID, out.CampaignID, out.InfluencerID, out.BrandID, out.ContentLink,
		out.Engagement.Likes, out.Engagement.Comments, out.SubmittedAt, out.Status,
		nullStr(out.ApproverID), out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+submissionCols+` FROM submissions WHERE id = ?`, id)
	s, err := scanSubmission(row)
	if isNoRows(err) {
		return nil, domain.ErrNotFound("submission not found")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SubmissionRepo) List(ctx context.Context) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+submissionCols+` FROM submissions ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SubmissionRepo) Update(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE submissions SET content_link = ?, engagement_likes = ?, engagement_comments = ?, status = ?, approver_id = ? WHERE id = ?`,
		s.ContentLink, s.Engagement.Likes, s.Engagement.Comments, s.Status, nullStr(s.ApproverID), s.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("submission not found")
	}
	return r.GetByID(ctx, s.ID)
}

func (r *SubmissionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("submission not found")
	}
	return nil
}

// ListByCampaigns returns all submissions whose campaign is in the given
// set, each with its influencer resolved, in creation order. A submission
// whose influencer record is missing comes back with a zero-value
// influencer; the aggregator decides what to do with it.
func (r *SubmissionRepo) ListByCampaigns(ctx context.Context, campaignIDs []string) ([]domain.BrandSubmissionRow, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?, ", len(campaignIDs)-1) + "?"
	args := make([]interface{}, len(campaignIDs))
	for i, id := range campaignIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.campaign_id, s.influencer_id, s.brand_id, s.content_link,
		        s.engagement_likes, s.engagement_comments, s.submitted_at, s.status, s.approver_id, s.created_at,
		        i.id, i.name, i.handle, i.platform, i.followers_count, i.avatar
		 FROM submissions s
		 LEFT JOIN influencers i ON i.id = s.influencer_id
		 WHERE s.campaign_id IN (`+placeholders+`)
		 ORDER BY s.created_at, s.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BrandSubmissionRow
	for rows.Next() {
		var row domain.BrandSubmissionRow
		var approver sql.NullString
		var infID, infName, infHandle, infPlatform, infAvatar sql.NullString
		var infFollowers sql.NullInt64
		if err := rows.Scan(
			&row.ID, &row.CampaignID, &row.InfluencerID, &row.BrandID, &row.ContentLink,
			&row.Engagement.Likes, &row.Engagement.Comments, &row.SubmittedAt, &row.Status, &approver, &row.CreatedAt,
			&infID, &infName, &infHandle, &infPlatform, &infFollowers, &infAvatar,
		); err != nil {
			return nil, err
		}
		row.ApproverID = strPtr(approver)
		row.Influencer = domain.Influencer{
			ID:             infID.String,
			Name:           infName.String,
			Handle:         infHandle.String,
			Platform:       infPlatform.String,
			FollowersCount: infFollowers.Int64,
			Avatar:         infAvatar.String,
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListByInfluencer returns all of an influencer's submissions with brand,
// campaign, and approver resolved, in creation order. Unresolvable parents
// come back zero-valued so the aggregator can apply its orphan policy.
func (r *SubmissionRepo) ListByInfluencer(ctx context.Context, influencerID string) ([]domain.InfluencerSubmissionRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.campaign_id, s.influencer_id, s.brand_id, s.content_link,
		        s.engagement_likes, s.engagement_comments, s.submitted_at, s.status, s.approver_id, s.created_at,
		        b.id, b.name, b.industry, b.website, b.description,
		        c.id, c.name, c.description, c.budget, c.start_date, c.end_date, c.status,
		        u.id, u.email, u.role
		 FROM submissions s
		 LEFT JOIN brands b ON b.id = s.brand_id
		 LEFT JOIN campaigns c ON c.id = s.campaign_id
		 LEFT JOIN users u ON u.id = s.approver_id
		 WHERE s.influencer_id = ?
		 ORDER BY s.created_at, s.id`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InfluencerSubmissionRow
	for rows.Next() {
		var row domain.InfluencerSubmissionRow
		var approver sql.NullString
		var bID, bName, bIndustry, bWebsite, bDesc sql.NullString
		var cID, cName, cDesc, cStatus sql.NullString
		var cBudget sql.NullFloat64
		var cStart, cEnd sql.NullTime
		var uID, uEmail, uRole sql.NullString
		if err := rows.Scan(
			&row.ID, &row.CampaignID, &row.InfluencerID, &row.BrandID, &row.ContentLink,
			&row.Engagement.Likes, &row.Engagement.Comments, &row.SubmittedAt, &row.Status, &approver, &row.CreatedAt,
			&bID, &bName, &bIndustry, &bWebsite, &bDesc,
			&cID, &cName, &cDesc, &cBudget, &cStart, &cEnd, &cStatus,
			&uID, &uEmail, &uRole,
		); err != nil {
			return nil, err
		}
		row.ApproverID = strPtr(approver)
		row.Brand = domain.Brand{
			ID:          bID.String,
			Name:        bName.String,
			Industry:    bIndustry.String,
			Website:     bWebsite.String,
			Description: strPtr(bDesc),
		}
		row.Campaign = domain.Campaign{
			ID:          cID.String,
			Name:        cName.String,
			Description: cDesc.String,
			Budget:      cBudget.Float64,
			StartDate:   timeVal(cStart),
			EndDate:     timeVal(cEnd),
			Status:      cStatus.String,
			BrandID:     row.BrandID,
		}
		if uID.Valid {
			row.Approver = &domain.User{
				ID:    uID.String,
				Email: uEmail.String,
				Role:  domain.Role(uRole.String),
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var s domain.Submission
	var approver sql.NullString
	if err := row.Scan(&s.ID, &s.CampaignID, &s.InfluencerID, &s.BrandID, &s.ContentLink,
		&s.Engagement.Likes, &s.Engagement.Comments, &s.SubmittedAt, &s.Status, &approver, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.ApproverID = strPtr(approver)
	return &s, nil
}
