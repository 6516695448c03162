package services

import (
	"context"
	"errors"

	"amc-backend/internal/cache"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	c := &models.Customer{
		Name:          req.Name,
		Details:       req.Details,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Address:       req.Address,
		Status:        defaultStatus(req.Status),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	cache.InvalidateCustomerCaches(ctx)
	return c, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context, params models.ListParams) ([]*models.Customer, models.PaginationInfo, error) {
	customers, total, err := s.Repo.List(ctx, params)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return customers, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&c.Name, req.Name)
	applyString(&c.Details, req.Details)
	applyString(&c.ContactPerson, req.ContactPerson)
	applyString(&c.Email, req.Email)
	applyString(&c.Address, req.Address)
	applyString(&c.Status, req.Status)

	if c.Name == "" {
		return nil, errors.New("name is required")
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	cache.InvalidateCustomerCaches(ctx)
	return c, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCustomerCaches(ctx)
	return nil
}

// defaultStatus fills the status a new record gets when the form sends none.
func defaultStatus(status string) string {
	if status == "" {
		return "active"
	}
	return status
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
