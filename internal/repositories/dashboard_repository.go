package repositories

import (
	"context"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepository struct {
	DB *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// Stats gathers the headline counters shown on the dashboard in one query.
func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var s models.DashboardStats
	err := r.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM customer_masters) as customers,
			(SELECT COUNT(*) FROM customer_locations) as locations,
			(SELECT COUNT(*) FROM products) as products,
			(SELECT COUNT(*) FROM invoices) as invoices,
			(SELECT COUNT(*) FROM amc_proposals) as proposals,
			(SELECT COUNT(*) FROM amc_proposals WHERE proposal_status = 'active') as active_proposals,
			(SELECT COUNT(*) FROM amc_proposals WHERE proposal_status = 'expired') as expired_proposals,
			(SELECT COALESCE(SUM(grand_total), 0) FROM amc_proposals WHERE proposal_status IN ('active', 'paid')) as contract_value
	`).Scan(&s.Customers, &s.Locations, &s.Products, &s.Invoices,
		&s.Proposals, &s.ActiveProposals, &s.ExpiredProposals, &s.ContractValue)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StatusBreakdown returns the proposal count per status for the dashboard chart.
func (r *DashboardRepository) StatusBreakdown(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT proposal_status, COUNT(*) FROM amc_proposals GROUP BY proposal_status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		breakdown[status] = count
	}
	return breakdown, nil
}
