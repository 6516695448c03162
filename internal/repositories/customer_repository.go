package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO customer_masters(name, details, contact_person, email, address, status)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		c.Name, c.Details, c.ContactPerson, c.Email, c.Address, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(details, '') as details, COALESCE(contact_person, '') as contact_person,
                COALESCE(email, '') as email, COALESCE(address, '') as address, status, created_at, updated_at
         FROM customer_masters WHERE id=$1`, id)

	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Details, &c.ContactPerson, &c.Email, &c.Address,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *CustomerRepository) List(ctx context.Context, params models.ListParams) ([]*models.Customer, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR contact_person ILIKE $%d OR email ILIKE $%d)", argNum, argNum, argNum))
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
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM customer_masters %s`, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(details, '') as details, COALESCE(contact_person, '') as contact_person,
			COALESCE(email, '') as email, COALESCE(address, '') as address, status, created_at, updated_at
		FROM customer_masters
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

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Details, &c.ContactPerson, &c.Email, &c.Address,
			&c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, &c)
	}
	return customers, total, nil
}

// ListActive returns all active customers for picker options.
func (r *CustomerRepository) ListActive(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, COALESCE(details, '') as details, COALESCE(contact_person, '') as contact_person,
                COALESCE(email, '') as email, COALESCE(address, '') as address, status, created_at, updated_at
         FROM customer_masters WHERE status='active' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Details, &c.ContactPerson, &c.Email, &c.Address,
			&c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customer_masters
         SET name=$1, details=$2, contact_person=$3, email=$4, address=$5, status=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		c.Name, c.Details, c.ContactPerson, c.Email, c.Address, c.Status, c.ID)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customer_masters WHERE id=$1`, id)
	return err
}
