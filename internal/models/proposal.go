package models

import "time"

// ProposalStatuses lists every state a proposal can be in. Transitions are
// unconstrained so an admin can correct a mis-set status at any time.
var ProposalStatuses = []string{
	"new", "sent", "pending", "on process", "accepted",
	"paymentdue", "paid", "active", "expired", "on renew",
}

type Proposal struct {
	ID               int       `json:"id"`
	ProposalNo       string    `json:"proposalno"`
	ProposalDate     time.Time `json:"proposaldate"`
	AmcStartDate     time.Time `json:"amcstartdate"`
	AmcEndDate       time.Time `json:"amcenddate"`
	CustomerID       int       `json:"customerId"`
	CustomerName     string    `json:"customerName,omitempty"`
	ContractNo       string    `json:"contractno"`
	BillingAddress   string    `json:"billingaddress"`
	Total            float64   `json:"total"`
	AdditionalCharge float64   `json:"additionalcharge"`
	Discount         float64   `json:"discount"`
	TaxRate          float64   `json:"taxrate"`
	TaxAmount        float64   `json:"taxamount"`
	GrandTotal       float64   `json:"grandtotal"`
	ProposalStatus   string    `json:"proposalstatus"`
	DocLink          string    `json:"doclink"`
	CreatedAt        time.Time `json:"createdat"`
	UpdatedAt        time.Time `json:"updatedat"`

	Items []ProposalItem `json:"items,omitempty"`
}

type ProposalItem struct {
	ID           int       `json:"id"`
	ProposalID   int       `json:"proposalId"`
	LocationID   *int      `json:"locationId"`
	LocationName string    `json:"locationName,omitempty"`
	InvoiceID    *int      `json:"invoiceId"`
	InvoiceNo    string    `json:"invoiceNo,omitempty"`
	ProductID    *int      `json:"productId"`
	ProductName  string    `json:"productName,omitempty"`
	SerialNo     string    `json:"serialno"`
	SacCode      string    `json:"saccode"`
	Quantity     float64   `json:"quantity"`
	Rate         float64   `json:"rate"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"createdat"`
	UpdatedAt    time.Time `json:"updatedat"`
}

// CreateProposalRequest represents the request body for creating a proposal.
// A blank ProposalNo is assigned from the proposal number sequence.
type CreateProposalRequest struct {
	ProposalNo       string                      `json:"proposalno"`
	ProposalDate     string                      `json:"proposaldate"` // YYYY-MM-DD
	AmcStartDate     string                      `json:"amcstartdate"`
	AmcEndDate       string                      `json:"amcenddate"`
	CustomerID       int                         `json:"customerId"`
	ContractNo       string                      `json:"contractno"`
	BillingAddress   string                      `json:"billingaddress"`
	AdditionalCharge float64                     `json:"additionalcharge"`
	Discount         float64                     `json:"discount"`
	TaxRate          float64                     `json:"taxrate"`
	ProposalStatus   string                      `json:"proposalstatus"`
	Items            []CreateProposalItemRequest `json:"items"`
}

// UpdateProposalRequest represents the request body for updating a proposal.
// Nil fields are left unchanged. Totals are recomputed from items on every write.
type UpdateProposalRequest struct {
	ProposalNo       *string  `json:"proposalno"`
	ProposalDate     *string  `json:"proposaldate"`
	AmcStartDate     *string  `json:"amcstartdate"`
	AmcEndDate       *string  `json:"amcenddate"`
	CustomerID       *int     `json:"customerId"`
	ContractNo       *string  `json:"contractno"`
	BillingAddress   *string  `json:"billingaddress"`
	AdditionalCharge *float64 `json:"additionalcharge"`
	Discount         *float64 `json:"discount"`
	TaxRate          *float64 `json:"taxrate"`
	ProposalStatus   *string  `json:"proposalstatus"`
}

// CreateProposalItemRequest represents the request body for adding a proposal
// item. SerialNo distinguishes "not sent" (nil, autofilled from the invoice
// line) from an explicit value, including an explicitly blanked one.
type CreateProposalItemRequest struct {
	ProposalID int     `json:"proposalId"`
	LocationID *int    `json:"locationId"`
	InvoiceID  *int    `json:"invoiceId"`
	ProductID  *int    `json:"productId"`
	SerialNo   *string `json:"serialno"`
	SacCode    string  `json:"saccode"`
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
}

// UpdateProposalItemRequest represents the request body for updating a proposal item
type UpdateProposalItemRequest struct {
	LocationID *int     `json:"locationId"`
	InvoiceID  *int     `json:"invoiceId"`
	ProductID  *int     `json:"productId"`
	SerialNo   *string  `json:"serialno"`
	SacCode    *string  `json:"saccode"`
	Quantity   *float64 `json:"quantity"`
	Rate       *float64 `json:"rate"`
}
