package models

// DashboardStats holds the headline counters shown on the admin dashboard.
type DashboardStats struct {
	Customers        int     `json:"customers"`
	Locations        int     `json:"locations"`
	Products         int     `json:"products"`
	Invoices         int     `json:"invoices"`
	Proposals        int     `json:"proposals"`
	ActiveProposals  int     `json:"activeProposals"`
	ExpiredProposals int     `json:"expiredProposals"`
	ContractValue    float64 `json:"contractValue"`
}
