package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProposalRepository struct {
	DB *pgxpool.Pool
}

func NewProposalRepository(db *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{DB: db}
}

const proposalColumns = `pr.id, pr.proposalno, pr.proposal_date, pr.amc_start_date, pr.amc_end_date,
	pr.customer_id, c.name as customer_name, COALESCE(pr.contractno, '') as contractno,
	COALESCE(pr.billing_address, '') as billing_address,
	pr.total, pr.additional_charge, pr.discount, pr.tax_rate, pr.tax_amount, pr.grand_total,
	pr.proposal_status, COALESCE(pr.doc_link, '') as doc_link, pr.created_at, pr.updated_at`

const proposalJoins = `FROM amc_proposals pr
	JOIN customer_masters c ON c.id = pr.customer_id`

func scanProposal(row interface{ Scan(...interface{}) error }) (*models.Proposal, error) {
	var p models.Proposal
	err := row.Scan(&p.ID, &p.ProposalNo, &p.ProposalDate, &p.AmcStartDate, &p.AmcEndDate,
		&p.CustomerID, &p.CustomerName, &p.ContractNo, &p.BillingAddress,
		&p.Total, &p.AdditionalCharge, &p.Discount, &p.TaxRate, &p.TaxAmount, &p.GrandTotal,
		&p.ProposalStatus, &p.DocLink, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

// NextProposalNo draws the next value from the proposal number sequence.
// Using a sequence keeps number assignment O(1) and race free.
func (r *ProposalRepository) NextProposalNo(ctx context.Context) (string, error) {
	var n int64
	err := r.DB.QueryRow(ctx, `SELECT nextval('proposal_number_sequence')`).Scan(&n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("AMC-%05d", n), nil
}

// Create inserts the proposal and its items in one transaction. The caller
// supplies totals already derived from the items.
func (r *ProposalRepository) Create(ctx context.Context, p *models.Proposal) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO amc_proposals(proposalno, proposal_date, amc_start_date, amc_end_date,
             customer_id, contractno, billing_address, total, additional_charge, discount,
             tax_rate, tax_amount, grand_total, proposal_status, doc_link)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
         RETURNING id, created_at, updated_at`,
		p.ProposalNo, p.ProposalDate, p.AmcStartDate, p.AmcEndDate,
		p.CustomerID, p.ContractNo, p.BillingAddress, p.Total, p.AdditionalCharge, p.Discount,
		p.TaxRate, p.TaxAmount, p.GrandTotal, p.ProposalStatus, p.DocLink,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	for idx := range p.Items {
		item := &p.Items[idx]
		item.ProposalID = p.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO proposal_items(proposal_id, location_id, invoice_id, product_id,
                 serialno, saccode, quantity, rate, amount)
             VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
             RETURNING id, created_at, updated_at`,
			item.ProposalID, item.LocationID, item.InvoiceID, item.ProductID,
			item.SerialNo, item.SacCode, item.Quantity, item.Rate, item.Amount,
		).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ProposalRepository) Get(ctx context.Context, id int) (*models.Proposal, error) {
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s %s WHERE pr.id=$1`, proposalColumns, proposalJoins), id)
	return scanProposal(row)
}

func (r *ProposalRepository) List(ctx context.Context, params models.ListParams, customerID int) ([]*models.Proposal, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if customerID > 0 {
		conditions = append(conditions, fmt.Sprintf("pr.customer_id = $%d", argNum))
		args = append(args, customerID)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(pr.proposalno ILIKE $%d OR pr.contractno ILIKE $%d OR c.name ILIKE $%d)", argNum, argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("pr.proposal_status = $%d", argNum))
		args = append(args, params.Status)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s %s`, proposalJoins, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		%s
		ORDER BY pr.proposal_date DESC, pr.id DESC
		LIMIT $%d OFFSET $%d
	`, proposalColumns, proposalJoins, whereClause, argNum, argNum+1)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var proposals []*models.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, 0, err
		}
		proposals = append(proposals, p)
	}
	return proposals, total, nil
}

func (r *ProposalRepository) Update(ctx context.Context, p *models.Proposal) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE amc_proposals
         SET proposalno=$1, proposal_date=$2, amc_start_date=$3, amc_end_date=$4,
             customer_id=$5, contractno=$6, billing_address=$7, total=$8, additional_charge=$9,
             discount=$10, tax_rate=$11, tax_amount=$12, grand_total=$13, proposal_status=$14,
             doc_link=$15, updated_at=CURRENT_TIMESTAMP
         WHERE id=$16`,
		p.ProposalNo, p.ProposalDate, p.AmcStartDate, p.AmcEndDate,
		p.CustomerID, p.ContractNo, p.BillingAddress, p.Total, p.AdditionalCharge,
		p.Discount, p.TaxRate, p.TaxAmount, p.GrandTotal, p.ProposalStatus,
		p.DocLink, p.ID)
	return err
}

func (r *ProposalRepository) UpdateDocLink(ctx context.Context, id int, docLink string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE amc_proposals SET doc_link=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		docLink, id)
	return err
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE amc_proposals SET proposal_status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		status, id)
	return err
}

func (r *ProposalRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM amc_proposals WHERE id=$1`, id)
	return err
}

const proposalItemColumns = `it.id, it.proposal_id, it.location_id, COALESCE(l.display_name, '') as location_name,
	it.invoice_id, COALESCE(inv.invoice_no, '') as invoice_no,
	it.product_id, COALESCE(p.name, '') as product_name,
	COALESCE(it.serialno, '') as serialno, COALESCE(it.saccode, '') as saccode,
	it.quantity, it.rate, it.amount, it.created_at, it.updated_at`

const proposalItemJoins = `FROM proposal_items it
	LEFT JOIN customer_locations l ON l.id = it.location_id
	LEFT JOIN invoices inv ON inv.id = it.invoice_id
	LEFT JOIN products p ON p.id = it.product_id`

func scanProposalItem(row interface{ Scan(...interface{}) error }) (*models.ProposalItem, error) {
	var it models.ProposalItem
	err := row.Scan(&it.ID, &it.ProposalID, &it.LocationID, &it.LocationName,
		&it.InvoiceID, &it.InvoiceNo, &it.ProductID, &it.ProductName,
		&it.SerialNo, &it.SacCode, &it.Quantity, &it.Rate, &it.Amount,
		&it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *ProposalRepository) GetItem(ctx context.Context, id int) (*models.ProposalItem, error) {
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s %s WHERE it.id=$1`, proposalItemColumns, proposalItemJoins), id)
	return scanProposalItem(row)
}

func (r *ProposalRepository) ListItems(ctx context.Context, proposalID int) ([]models.ProposalItem, error) {
	rows, err := r.DB.Query(ctx, fmt.Sprintf(
		`SELECT %s %s WHERE it.proposal_id=$1 ORDER BY it.id`, proposalItemColumns, proposalItemJoins), proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ProposalItem
	for rows.Next() {
		it, err := scanProposalItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, nil
}

func (r *ProposalRepository) CreateItem(ctx context.Context, item *models.ProposalItem) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO proposal_items(proposal_id, location_id, invoice_id, product_id,
             serialno, saccode, quantity, rate, amount)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		item.ProposalID, item.LocationID, item.InvoiceID, item.ProductID,
		item.SerialNo, item.SacCode, item.Quantity, item.Rate, item.Amount,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *ProposalRepository) UpdateItem(ctx context.Context, item *models.ProposalItem) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE proposal_items
         SET location_id=$1, invoice_id=$2, product_id=$3, serialno=$4, saccode=$5,
             quantity=$6, rate=$7, amount=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		item.LocationID, item.InvoiceID, item.ProductID, item.SerialNo, item.SacCode,
		item.Quantity, item.Rate, item.Amount, item.ID)
	return err
}

func (r *ProposalRepository) DeleteItem(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM proposal_items WHERE id=$1`, id)
	return err
}

// RecomputeTotals rolls item amounts up into the proposal header. Tax applies
// to the item total plus additional charge less discount.
func (r *ProposalRepository) RecomputeTotals(ctx context.Context, proposalID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE amc_proposals SET
             total = sums.item_total,
             tax_amount = ROUND((sums.item_total + additional_charge - discount) * tax_rate / 100, 2),
             grand_total = sums.item_total + additional_charge - discount
                 + ROUND((sums.item_total + additional_charge - discount) * tax_rate / 100, 2),
             updated_at = CURRENT_TIMESTAMP
         FROM (SELECT COALESCE(SUM(amount), 0) as item_total
               FROM proposal_items WHERE proposal_id = $1) sums
         WHERE id = $1`, proposalID)
	return err
}
