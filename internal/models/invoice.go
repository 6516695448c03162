package models

import "time"

type Invoice struct {
	ID           int       `json:"id"`
	CustomerID   int       `json:"customerId"`
	CustomerName string    `json:"customerName,omitempty"`
	LocationID   *int      `json:"locationId"`
	LocationName string    `json:"locationName,omitempty"`
	InvoiceNo    string    `json:"invoiceNo"`
	InvoiceDate  time.Time `json:"invoiceDate"`
	Total        float64   `json:"total"`
	Discount     float64   `json:"discount"`
	Subtotal     float64   `json:"subtotal"`
	GrandTotal   float64   `json:"grandTotal"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdat"`
	UpdatedAt    time.Time `json:"updatedat"`

	Items []InvoiceItem `json:"items,omitempty"`
}

type InvoiceItem struct {
	ID          int       `json:"id"`
	InvoiceID   int       `json:"invoiceId"`
	ProductID   *int      `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	SerialNo    string    `json:"serialNo"`
	Quantity    float64   `json:"quantity"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdat"`
	UpdatedAt   time.Time `json:"updatedat"`
}

// CreateInvoiceRequest represents the request body for creating an invoice
type CreateInvoiceRequest struct {
	CustomerID  int                        `json:"customerId"`
	LocationID  *int                       `json:"locationId"`
	InvoiceNo   string                     `json:"invoiceNo"`
	InvoiceDate string                     `json:"invoiceDate"` // YYYY-MM-DD
	Discount    float64                    `json:"discount"`
	Status      string                     `json:"status"`
	Items       []CreateInvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest represents the request body for updating an invoice.
// Nil fields are left unchanged. Totals are recomputed from items on every write.
type UpdateInvoiceRequest struct {
	CustomerID  *int     `json:"customerId"`
	LocationID  *int     `json:"locationId"`
	InvoiceNo   *string  `json:"invoiceNo"`
	InvoiceDate *string  `json:"invoiceDate"`
	Discount    *float64 `json:"discount"`
	Status      *string  `json:"status"`
}

// CreateInvoiceItemRequest represents the request body for adding an invoice item
type CreateInvoiceItemRequest struct {
	InvoiceID int     `json:"invoiceId"`
	ProductID *int    `json:"productId"`
	SerialNo  string  `json:"serialNo"`
	Quantity  float64 `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// UpdateInvoiceItemRequest represents the request body for updating an invoice item
type UpdateInvoiceItemRequest struct {
	ProductID *int     `json:"productId"`
	SerialNo  *string  `json:"serialNo"`
	Quantity  *float64 `json:"quantity"`
	Amount    *float64 `json:"amount"`
}
