package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `p.id, p.name, p.brand_id, COALESCE(b.name, '') as brand_name,
	p.category_id, COALESCE(ct.name, '') as category_name,
	COALESCE(p.model, '') as model, COALESCE(p.details, '') as details,
	p.status, p.created_at, p.updated_at`

const productJoins = `FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN categories ct ON ct.id = p.category_id`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.BrandID, &p.BrandName,
		&p.CategoryID, &p.CategoryName, &p.Model, &p.Details,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO products(name, brand_id, category_id, model, details, status)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		p.Name, p.BrandID, p.CategoryID, p.Model, p.Details, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*models.Product, error) {
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s %s WHERE p.id=$1`, productColumns, productJoins), id)
	return scanProduct(row)
}

func (r *ProductRepository) List(ctx context.Context, params models.ListParams, brandID, categoryID int) ([]*models.Product, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if brandID > 0 {
		conditions = append(conditions, fmt.Sprintf("p.brand_id = $%d", argNum))
		args = append(args, brandID)
		argNum++
	}

	if categoryID > 0 {
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", argNum))
		args = append(args, categoryID)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.model ILIKE $%d OR b.name ILIKE $%d)", argNum, argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argNum))
		args = append(args, params.Status)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s %s`, productJoins, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		%s
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d
	`, productColumns, productJoins, whereClause, argNum, argNum+1)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

// ListActive returns all active products for picker options.
func (r *ProductRepository) ListActive(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx, fmt.Sprintf(
		`SELECT %s %s WHERE p.status='active' ORDER BY p.name`, productColumns, productJoins))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE products
         SET name=$1, brand_id=$2, category_id=$3, model=$4, details=$5, status=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		p.Name, p.BrandID, p.CategoryID, p.Model, p.Details, p.Status, p.ID)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}
