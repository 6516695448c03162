package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `i.id, i.customer_id, c.name as customer_name, i.location_id,
	COALESCE(l.display_name, '') as location_name, i.invoice_no, i.invoice_date,
	i.total, i.discount, i.subtotal, i.grand_total, i.status, i.created_at, i.updated_at`

const invoiceJoins = `FROM invoices i
	JOIN customer_masters c ON c.id = i.customer_id
	LEFT JOIN customer_locations l ON l.id = i.location_id`

func scanInvoice(row interface{ Scan(...interface{}) error }) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.LocationID,
		&inv.LocationName, &inv.InvoiceNo, &inv.InvoiceDate,
		&inv.Total, &inv.Discount, &inv.Subtotal, &inv.GrandTotal,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	return &inv, err
}

// Create inserts the invoice and its items in one transaction, then stores the
// recomputed totals. The caller supplies totals already derived from the items.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(customer_id, location_id, invoice_no, invoice_date,
             total, discount, subtotal, grand_total, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		inv.CustomerID, inv.LocationID, inv.InvoiceNo, inv.InvoiceDate,
		inv.Total, inv.Discount, inv.Subtotal, inv.GrandTotal, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return err
	}

	for idx := range inv.Items {
		item := &inv.Items[idx]
		item.InvoiceID = inv.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO invoice_items(invoice_id, product_id, serial_no, quantity, amount)
             VALUES($1, $2, $3, $4, $5)
             RETURNING id, created_at, updated_at`,
			item.InvoiceID, item.ProductID, item.SerialNo, item.Quantity, item.Amount,
		).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s %s WHERE i.id=$1`, invoiceColumns, invoiceJoins), id)
	return scanInvoice(row)
}

func (r *InvoiceRepository) List(ctx context.Context, params models.ListParams, customerID, locationID int) ([]*models.Invoice, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if customerID > 0 {
		conditions = append(conditions, fmt.Sprintf("i.customer_id = $%d", argNum))
		args = append(args, customerID)
		argNum++
	}

	if locationID > 0 {
		conditions = append(conditions, fmt.Sprintf("i.location_id = $%d", argNum))
		args = append(args, locationID)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(i.invoice_no ILIKE $%d OR c.name ILIKE $%d)", argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", argNum))
		args = append(args, params.Status)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s %s`, invoiceJoins, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		%s
		ORDER BY i.invoice_date DESC, i.id DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, invoiceJoins, whereClause, argNum, argNum+1)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, nil
}

// ListByCustomer returns a customer's invoices for picker options. When
// locationID is non-zero the list narrows to that location.
func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID, locationID int) ([]*models.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE i.customer_id=$1`, invoiceColumns, invoiceJoins)
	args := []interface{}{customerID}
	if locationID > 0 {
		query += " AND i.location_id=$2"
		args = append(args, locationID)
	}
	query += " ORDER BY i.invoice_date DESC, i.id DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices
         SET customer_id=$1, location_id=$2, invoice_no=$3, invoice_date=$4,
             total=$5, discount=$6, subtotal=$7, grand_total=$8, status=$9, updated_at=CURRENT_TIMESTAMP
         WHERE id=$10`,
		inv.CustomerID, inv.LocationID, inv.InvoiceNo, inv.InvoiceDate,
		inv.Total, inv.Discount, inv.Subtotal, inv.GrandTotal, inv.Status, inv.ID)
	return err
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	return err
}

const invoiceItemColumns = `it.id, it.invoice_id, it.product_id, COALESCE(p.name, '') as product_name,
	COALESCE(it.serial_no, '') as serial_no, it.quantity, it.amount, it.created_at, it.updated_at`

func scanInvoiceItem(row interface{ Scan(...interface{}) error }) (*models.InvoiceItem, error) {
	var it models.InvoiceItem
	err := row.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName,
		&it.SerialNo, &it.Quantity, &it.Amount, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *InvoiceRepository) GetItem(ctx context.Context, id int) (*models.InvoiceItem, error) {
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM invoice_items it
         LEFT JOIN products p ON p.id = it.product_id
         WHERE it.id=$1`, invoiceItemColumns), id)
	return scanInvoiceItem(row)
}

func (r *InvoiceRepository) ListItems(ctx context.Context, invoiceID int) ([]models.InvoiceItem, error) {
	rows, err := r.DB.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM invoice_items it
         LEFT JOIN products p ON p.id = it.product_id
         WHERE it.invoice_id=$1 ORDER BY it.id`, invoiceItemColumns), invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		it, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, nil
}

func (r *InvoiceRepository) CreateItem(ctx context.Context, item *models.InvoiceItem) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO invoice_items(invoice_id, product_id, serial_no, quantity, amount)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		item.InvoiceID, item.ProductID, item.SerialNo, item.Quantity, item.Amount,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InvoiceRepository) UpdateItem(ctx context.Context, item *models.InvoiceItem) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoice_items
         SET product_id=$1, serial_no=$2, quantity=$3, amount=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		item.ProductID, item.SerialNo, item.Quantity, item.Amount, item.ID)
	return err
}

func (r *InvoiceRepository) DeleteItem(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoice_items WHERE id=$1`, id)
	return err
}

// RecomputeTotals rolls item amounts up into the invoice header. Subtotal is
// the item sum, grand total is subtotal less discount.
func (r *InvoiceRepository) RecomputeTotals(ctx context.Context, invoiceID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET
             total = sums.item_total,
             subtotal = sums.item_total,
             grand_total = sums.item_total - discount,
             updated_at = CURRENT_TIMESTAMP
         FROM (SELECT COALESCE(SUM(amount), 0) as item_total
               FROM invoice_items WHERE invoice_id = $1) sums
         WHERE id = $1`, invoiceID)
	return err
}

// IsNotFound reports whether err means no row matched, however deeply the
// scan error has been wrapped on the way up.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
