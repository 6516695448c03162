package models

import "time"

// Location is a customer site covered by a maintenance contract.
type Location struct {
	ID            int       `json:"id"`
	CustomerID    int       `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"` // joined for list views
	DisplayName   string    `json:"displayName"`
	Location      string    `json:"location"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone1        string    `json:"phone1"`
	Phone2        string    `json:"phone2"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pin           string    `json:"pin"`
	Gstin         string    `json:"gstin"`
	Pan           string    `json:"pan"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdat"`
	UpdatedAt     time.Time `json:"updatedat"`
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	CustomerID    int    `json:"customerId"`
	DisplayName   string `json:"displayName"`
	Location      string `json:"location"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone1        string `json:"phone1"`
	Phone2        string `json:"phone2"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pin           string `json:"pin"`
	Gstin         string `json:"gstin"`
	Pan           string `json:"pan"`
	Status        string `json:"status"`
}

// UpdateLocationRequest represents the request body for updating a location.
// Nil fields are left unchanged.
type UpdateLocationRequest struct {
	CustomerID    *int    `json:"customerId"`
	DisplayName   *string `json:"displayName"`
	Location      *string `json:"location"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	Phone1        *string `json:"phone1"`
	Phone2        *string `json:"phone2"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Pin           *string `json:"pin"`
	Gstin         *string `json:"gstin"`
	Pan           *string `json:"pan"`
	Status        *string `json:"status"`
}
