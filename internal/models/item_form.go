package models

import "amc-backend/internal/cascade"

// ItemFormOptions carries the dependent picker lists for the proposal item
// form. Each list is scoped by the selections above it: invoices by the
// chosen location, products by the chosen invoice. An unset upstream selector
// leaves the downstream list empty.
type ItemFormOptions struct {
	Locations []cascade.Option    `json:"locations"`
	Invoices  []cascade.Option    `json:"invoices"`
	Products  []ProductFormOption `json:"products"`
}

// ProductFormOption is a product entry on the item form. SerialNo and SacCode
// seed the one-shot autofill, Rate pre-fills the rate input.
type ProductFormOption struct {
	ID       int     `json:"id"`
	Label    string  `json:"label"`
	SerialNo string  `json:"serialNo"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
}
