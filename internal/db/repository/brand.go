package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"trendai/internal/domain"
)

type BrandRepo struct {
	db *sql.DB
}

func NewBrandRepo(db *sql.DB) *BrandRepo {
	return &BrandRepo{db: db}
}

func (r *BrandRepo) Create(ctx context.Context, b *domain.Brand) (*domain.Brand, error) {
	out := *b
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO brands (id, name, industry, website, description, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		out.ID, out.Name, out.Industry, out.Website, nullStr(out.Description), out.CreatedAt)
	if err != nil {
		return nil, mapConflict(err, "brand %q already exists", b.Name)
	}
	for _, userID := range out.MemberUserIDs {
		if err := r.AddMember(ctx, out.ID, userID); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	return r.get(ctx, `SELECT id, name, industry, website, description, created_at FROM brands WHERE id = ?`, id)
}

// GetByMemberUserID returns the brand a user account belongs to.
func (r *BrandRepo) GetByMemberUserID(ctx context.Context, userID string) (*domain.Brand, error) {
	return r.get(ctx,
		`SELECT b.id, b.name, b.industry, b.website, b.description, b.created_at
		 FROM brands b JOIN brand_members m ON m.brand_id = b.id
		 WHERE m.user_id = ?`, userID)
}

func (r *BrandRepo) get(ctx context.Context, query, arg string) (*domain.Brand, error) {
	var b domain.Brand
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&b.ID, &b.Name, &b.Industry, &b.Website, &desc, &b.CreatedAt)
	if isNoRows(err) {
		return nil, domain.ErrNotFound("brand not found")
	}
	if err != nil {
		return nil, err
	}
	b.Description = strPtr(desc)
	if err := r.loadMembers(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, industry, website, description, created_at FROM brands ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		var desc sql.NullString
		if err := rows.Scan(&b.ID, &b.Name, &b.Industry, &b.Website, &desc, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Description = strPtr(desc)
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range brands {
		if err := r.loadMembers(ctx, &brands[i]); err != nil {
			return nil, err
		}
	}
	return brands, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *domain.Brand) (*domain.Brand, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE brands SET name = ?, industry = ?, website = ?, description = ? WHERE id = ?`,
		b.Name, b.Industry, b.Website, nullStr(b.Description), b.ID)
	if err != nil {
		return nil, mapConflict(err, "brand %q already exists", b.Name)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("brand not found")
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("brand not found")
	}
	return nil
}

func (r *BrandRepo) AddMember(ctx context.Context, brandID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO brand_members (brand_id, user_id) VALUES (?, ?)`, brandID, userID)
	return err
}

func (r *BrandRepo) loadMembers(ctx context.Context, b *domain.Brand) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM brand_members WHERE brand_id = ? ORDER BY user_id`, b.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	b.MemberUserIDs = []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		b.MemberUserIDs = append(b.MemberUserIDs, id)
	}
	return rows.Err()
}
