package services

import (
	"context"
	"errors"

	"amc-backend/internal/cache"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

type LocationService struct {
	Repo         *repositories.LocationRepository
	CustomerRepo *repositories.CustomerRepository
}

func NewLocationService(repo *repositories.LocationRepository, customerRepo *repositories.CustomerRepository) *LocationService {
	return &LocationService{Repo: repo, CustomerRepo: customerRepo}
}

func (s *LocationService) CreateLocation(ctx context.Context, req *models.CreateLocationRequest) (*models.Location, error) {
	if req.DisplayName == "" {
		return nil, errors.New("displayName is required")
	}
	if req.CustomerID <= 0 {
		return nil, errors.New("customerId is required")
	}
	// The customer must exist before a site can hang off it
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, errors.New("customer not found")
	}

	l := &models.Location{
		CustomerID:    req.CustomerID,
		DisplayName:   req.DisplayName,
		Location:      req.Location,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone1:        req.Phone1,
		Phone2:        req.Phone2,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pin:           req.Pin,
		Gstin:         req.Gstin,
		Pan:           req.Pan,
		Status:        defaultStatus(req.Status),
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, err
	}
	cache.InvalidateCustomerCaches(ctx)
	return s.Repo.Get(ctx, l.ID)
}

func (s *LocationService) GetLocation(ctx context.Context, id int) (*models.Location, error) {
	return s.Repo.Get(ctx, id)
}

func (s *LocationService) ListLocations(ctx context.Context, params models.ListParams, customerID int) ([]*models.Location, models.PaginationInfo, error) {
	locations, total, err := s.Repo.List(ctx, params, customerID)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return locations, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, id int, req *models.UpdateLocationRequest) (*models.Location, error) {
	l, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInt(&l.CustomerID, req.CustomerID)
	applyString(&l.DisplayName, req.DisplayName)
	applyString(&l.Location, req.Location)
	applyString(&l.ContactPerson, req.ContactPerson)
	applyString(&l.Email, req.Email)
	applyString(&l.Phone1, req.Phone1)
	applyString(&l.Phone2, req.Phone2)
	applyString(&l.Address, req.Address)
	applyString(&l.City, req.City)
	applyString(&l.State, req.State)
	applyString(&l.Pin, req.Pin)
	applyString(&l.Gstin, req.Gstin)
	applyString(&l.Pan, req.Pan)
	applyString(&l.Status, req.Status)

	if l.DisplayName == "" {
		return nil, errors.New("displayName is required")
	}
	if req.CustomerID != nil {
		if _, err := s.CustomerRepo.Get(ctx, l.CustomerID); err != nil {
			return nil, errors.New("customer not found")
		}
	}

	if err := s.Repo.Update(ctx, l); err != nil {
		return nil, err
	}
	cache.InvalidateCustomerCaches(ctx)
	return s.Repo.Get(ctx, id)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCustomerCaches(ctx)
	return nil
}
