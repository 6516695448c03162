package models

import "time"

type Customer struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Details       string    `json:"details"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Status        string    `json:"status"` // active or inactive
	CreatedAt     time.Time `json:"createdat"`
	UpdatedAt     time.Time `json:"updatedat"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name          string `json:"name"`
	Details       string `json:"details"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Status        string `json:"status"`
}

// UpdateCustomerRequest represents the request body for updating a customer.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	Details       *string `json:"details"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
}
