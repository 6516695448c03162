package repositories

import (
	"context"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.AdminUser) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO admin_users(email, password_hash, name, role, status)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		u.Email, u.PasswordHash, u.Name, u.Role, u.Status,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.AdminUser, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, status, created_at, updated_at
         FROM admin_users WHERE id=$1`, id)

	var u models.AdminUser
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, status, created_at, updated_at
         FROM admin_users WHERE email=$1`, email)

	var u models.AdminUser
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt)
	return &u, err
}
