package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"trendai/internal/domain"
)

type InfluencerRepo struct {
	db *sql.DB
}

func NewInfluencerRepo(db *sql.DB) *InfluencerRepo {
	return &InfluencerRepo{db: db}
}

func (r *InfluencerRepo) Create(ctx context.Context, inf *domain.Influencer) (*domain.Influencer, error) {
	out := *inf
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.CreatedAt = time.Now().UTC()

	var owner sql.NullString
	if out.OwnerUserID != "" {
		owner = sql.NullString{String: out.OwnerUserID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO influencers (id, name, handle, platform, followers_count, avatar, user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		out.ID, out.Name, out.Handle, out.Platform, out.FollowersCount, out.Avatar, owner, out.CreatedAt)
	if err != nil {
		return nil, mapConflict(err, "handle %q already taken", inf.Handle)
	}
	return &out, nil
}

func (r *InfluencerRepo) GetByID(ctx context.Context, id string) (*domain.Influencer, error) {
	return r.get(ctx, `SELECT id, name, handle, platform, followers_count, avatar, user_id, created_at
		FROM influencers WHERE id = ?`, id)
}

// GetByOwnerUserID returns the influencer profile owned by a user account.
func (r *InfluencerRepo) GetByOwnerUserID(ctx context.Context, userID string) (*domain.Influencer, error) {
	return r.get(ctx, `SELECT id, name, handle, platform, followers_count, avatar, user_id, created_at
		FROM influencers WHERE user_id = ?`, userID)
}

func (r *InfluencerRepo) get(ctx context.Context, query, arg string) (*domain.Influencer, error) {
	var inf domain.Influencer
	var owner sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&inf.ID, &inf.Name, &inf.Handle, &inf.Platform, &inf.FollowersCount, &inf.Avatar, &owner, &inf.CreatedAt)
	if isNoRows(err) {
		return nil, domain.ErrNotFound("influencer not found")
	}
	if err != nil {
		return nil, err
	}
	inf.OwnerUserID = owner.String
	return &inf, nil
}

func (r *InfluencerRepo) List(ctx context.Context) ([]domain.Influencer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, handle, platform, followers_count, avatar, user_id, created_at
		 FROM influencers ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Influencer
	for rows.Next() {
		var inf domain.Influencer
		var owner sql.NullString
		if err := rows.Scan(&inf.ID, &inf.Name, &inf.Handle, &inf.Platform, &inf.FollowersCount, &inf.Avatar, &owner, &inf.CreatedAt); err != nil {
			return nil, err
		}
		inf.OwnerUserID = owner.String
		out = append(out, inf)
	}
	return out, rows.Err()
}

func (r *InfluencerRepo) Update(ctx context.Context, inf *domain.Influencer) (*domain.Influencer, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE influencers SET name = ?, handle = ?, platform = ?, followers_count = ?, avatar = ? WHERE id = ?`,
		inf.Name, inf.Handle, inf.Platform, inf.FollowersCount, inf.Avatar, inf.ID)
	if err != nil {
		return nil, mapConflict(err, "handle %q already taken", inf.Handle)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("influencer not found")
	}
	return r.GetByID(ctx, inf.ID)
}

func (r *InfluencerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM influencers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("influencer not found")
	}
	return nil
}

func (r *InfluencerRepo) SetOwner(ctx context.Context, influencerID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE influencers SET user_id = ? WHERE id = ?`, userID, influencerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("influencer not found")
	}
	return nil
}
