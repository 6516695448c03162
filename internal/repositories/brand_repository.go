package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepository struct {
	DB *pgxpool.Pool
}

func NewBrandRepository(db *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{DB: db}
}

func (r *BrandRepository) Create(ctx context.Context, b *models.Brand) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO brands(name, details, status)
         VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		b.Name, b.Details, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BrandRepository) Get(ctx context.Context, id int) (*models.Brand, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(details, '') as details, status, created_at, updated_at
         FROM brands WHERE id=$1`, id)

	var b models.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Details, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *BrandRepository) List(ctx context.Context, params models.ListParams) ([]*models.Brand, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argNum))
		args = append(args, params.Status)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM brands %s`, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(details, '') as details, status, created_at, updated_at
		FROM brands
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		var b models.Brand
		err := rows.Scan(&b.ID, &b.Name, &b.Details, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		brands = append(brands, &b)
	}
	return brands, total, nil
}

// ListActive returns all active brands for picker options.
func (r *BrandRepository) ListActive(ctx context.Context) ([]*models.Brand, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, COALESCE(details, '') as details, status, created_at, updated_at
         FROM brands WHERE status='active' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		var b models.Brand
		err := rows.Scan(&b.ID, &b.Name, &b.Details, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		brands = append(brands, &b)
	}
	return brands, nil
}

func (r *BrandRepository) Update(ctx context.Context, b *models.Brand) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE brands SET name=$1, details=$2, status=$3, updated_at=CURRENT_TIMESTAMP
         WHERE id=$4`,
		b.Name, b.Details, b.Status, b.ID)
	return err
}

func (r *BrandRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM brands WHERE id=$1`, id)
	return err
}
