package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"trendai/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	out := *u
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		out.ID, out.Email, out.PasswordHash, string(out.Role), out.CreatedAt)
	if err != nil {
		return nil, mapConflict(err, "email %q already exists", u.Email)
	}
	return &out, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, role, created_at FROM users WHERE id = ?`, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, role, created_at FROM users WHERE email = ?`, email)
}

func (r *UserRepo) get(ctx context.Context, query, arg string) (*domain.User, error) {
	var u domain.User
	var role string
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if isNoRows(err) {
		return nil, domain.ErrNotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
