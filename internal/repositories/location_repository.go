package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository struct {
	DB *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{DB: db}
}

const locationColumns = `l.id, l.customer_id, c.name as customer_name, l.display_name,
	COALESCE(l.location, '') as location, COALESCE(l.contact_person, '') as contact_person,
	COALESCE(l.email, '') as email, COALESCE(l.phone1, '') as phone1, COALESCE(l.phone2, '') as phone2,
	COALESCE(l.address, '') as address, COALESCE(l.city, '') as city, COALESCE(l.state, '') as state,
	COALESCE(l.pin, '') as pin, COALESCE(l.gstin, '') as gstin, COALESCE(l.pan, '') as pan,
	l.status, l.created_at, l.updated_at`

func scanLocation(row interface{ Scan(...interface{}) error }) (*models.Location, error) {
	var l models.Location
	err := row.Scan(&l.ID, &l.CustomerID, &l.CustomerName, &l.DisplayName,
		&l.Location, &l.ContactPerson, &l.Email, &l.Phone1, &l.Phone2,
		&l.Address, &l.City, &l.State, &l.Pin, &l.Gstin, &l.Pan,
		&l.Status, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *LocationRepository) Create(ctx context.Context, l *models.Location) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO customer_locations(customer_id, display_name, location, contact_person, email,
             phone1, phone2, address, city, state, pin, gstin, pan, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
         RETURNING id, created_at, updated_at`,
		l.CustomerID, l.DisplayName, l.Location, l.ContactPerson, l.Email,
		l.Phone1, l.Phone2, l.Address, l.City, l.State, l.Pin, l.Gstin, l.Pan, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LocationRepository) Get(ctx context.Context, id int) (*models.Location, error) {
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM customer_locations l
         JOIN customer_masters c ON c.id = l.customer_id
         WHERE l.id=$1`, locationColumns), id)
	return scanLocation(row)
}

func (r *LocationRepository) List(ctx context.Context, params models.ListParams, customerID int) ([]*models.Location, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if customerID > 0 {
		conditions = append(conditions, fmt.Sprintf("l.customer_id = $%d", argNum))
		args = append(args, customerID)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(l.display_name ILIKE $%d OR l.location ILIKE $%d OR c.name ILIKE $%d)", argNum, argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argNum))
		args = append(args, params.Status)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM customer_locations l JOIN customer_masters c ON c.id = l.customer_id %s`, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM customer_locations l
		JOIN customer_masters c ON c.id = l.customer_id
		%s
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $%d OFFSET $%d
	`, locationColumns, whereClause, argNum, argNum+1)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, 0, err
		}
		locations = append(locations, l)
	}
	return locations, total, nil
}

// ListByCustomer returns the active locations of one customer for picker options.
func (r *LocationRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Location, error) {
	rows, err := r.DB.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM customer_locations l
         JOIN customer_masters c ON c.id = l.customer_id
         WHERE l.customer_id=$1 AND l.status='active'
         ORDER BY l.display_name`, locationColumns), customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, nil
}

func (r *LocationRepository) Update(ctx context.Context, l *models.Location) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customer_locations
         SET customer_id=$1, display_name=$2, location=$3, contact_person=$4, email=$5,
             phone1=$6, phone2=$7, address=$8, city=$9, state=$10, pin=$11, gstin=$12, pan=$13,
             status=$14, updated_at=CURRENT_TIMESTAMP
         WHERE id=$15`,
		l.CustomerID, l.DisplayName, l.Location, l.ContactPerson, l.Email,
		l.Phone1, l.Phone2, l.Address, l.City, l.State, l.Pin, l.Gstin, l.Pan,
		l.Status, l.ID)
	return err
}

func (r *LocationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customer_locations WHERE id=$1`, id)
	return err
}
