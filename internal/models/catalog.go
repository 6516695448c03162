package models

import "time"

type Brand struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdat"`
	UpdatedAt time.Time `json:"updatedat"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdat"`
	UpdatedAt time.Time `json:"updatedat"`
}

type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	BrandID      *int      `json:"brandId"`
	BrandName    string    `json:"brandName,omitempty"`
	CategoryID   *int      `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	Model        string    `json:"model"`
	Details      string    `json:"details"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdat"`
	UpdatedAt    time.Time `json:"updatedat"`
}

// CreateBrandRequest represents the request body for creating a brand
type CreateBrandRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Status  string `json:"status"`
}

// UpdateBrandRequest represents the request body for updating a brand
type UpdateBrandRequest struct {
	Name    *string `json:"name"`
	Details *string `json:"details"`
	Status  *string `json:"status"`
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Status  string `json:"status"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Name    *string `json:"name"`
	Details *string `json:"details"`
	Status  *string `json:"status"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name       string `json:"name"`
	BrandID    *int   `json:"brandId"`
	CategoryID *int   `json:"categoryId"`
	Model      string `json:"model"`
	Details    string `json:"details"`
	Status     string `json:"status"`
}

// UpdateProductRequest represents the request body for updating a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name       *string `json:"name"`
	BrandID    *int    `json:"brandId"`
	CategoryID *int    `json:"categoryId"`
	Model      *string `json:"model"`
	Details    *string `json:"details"`
	Status     *string `json:"status"`
}
