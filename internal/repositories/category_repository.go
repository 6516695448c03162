package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO categories(name, details, status)
         VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		c.Name, c.Details, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepository) Get(ctx context.Context, id int) (*models.Category, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(details, '') as details, status, created_at, updated_at
         FROM categories WHERE id=$1`, id)

	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Details, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *CategoryRepository) List(ctx context.Context, params models.ListParams) ([]*models.Category, int, error) {
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
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM categories %s`, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(details, '') as details, status, created_at, updated_at
		FROM categories
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

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Details, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, &c)
	}
	return categories, total, nil
}

// ListActive returns all active categories for picker options.
func (r *CategoryRepository) ListActive(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, COALESCE(details, '') as details, status, created_at, updated_at
         FROM categories WHERE status='active' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Details, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE categories SET name=$1, details=$2, status=$3, updated_at=CURRENT_TIMESTAMP
         WHERE id=$4`,
		c.Name, c.Details, c.Status, c.ID)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}
