package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"trendai/internal/domain"
)

type CampaignRepo struct {
	db *sql.DB
}

func NewCampaignRepo(db *sql.DB) *CampaignRepo {
	return &CampaignRepo{db: db}
}

const campaignCols = `id, name, description, budget, start_date, end_date, status, brand_id, created_at`

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	out := *c
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO campaigns (`+campaignCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.ID, out.Name, out.Description, out.Budget,
		nullTime(out.StartDate), nullTime(out.EndDate), out.Status, out.BrandID, out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CampaignRepo) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+campaignCols+` FROM campaigns WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if isNoRows(err) {
		return nil, domain.ErrNotFound("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepo) List(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignCols+` FROM campaigns ORDER BY created_at, id`)
}

// ListByBrand returns a brand's campaigns in creation order. The report
// aggregator seeds its campaign map from this ordering.
func (r *CampaignRepo) ListByBrand(ctx context.Context, brandID string) ([]domain.Campaign, error) {
	return r.list(ctx,
		`SELECT `+campaignCols+` FROM campaigns WHERE brand_id = ? ORDER BY created_at, id`, brandID)
}

func (r *CampaignRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) Update(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET name = ?, description = ?, budget = ?, start_date = ?, end_date = ?, status = ? WHERE id = ?`,
		c.Name, c.Description, c.Budget, nullTime(c.StartDate), nullTime(c.EndDate), c.Status, c.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("campaign not found")
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("campaign not found")
	}
	return nil
}

// CompletePastEndDate marks active campaigns whose end date has passed as
// completed. Returns the number of campaigns transitioned.
func (r *CampaignRepo) CompletePastEndDate(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET status = 'completed' WHERE status = 'active' AND end_date IS NOT NULL AND end_date < ?`,
		time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var c domain.Campaign
	var start, end sql.NullTime
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Budget, &start, &end, &c.Status, &c.BrandID, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.StartDate = timeVal(start)
	c.EndDate = timeVal(end)
	return &c, nil
}
