package services

import (
	"context"
	"errors"

	"amc-backend/internal/cache"
	"amc-backend/internal/cascade"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
	"amc-backend/internal/timeutil"
)

type InvoiceService struct {
	Repo         *repositories.InvoiceRepository
	CustomerRepo *repositories.CustomerRepository
	LocationRepo *repositories.LocationRepository
}

func NewInvoiceService(repo *repositories.InvoiceRepository, customerRepo *repositories.CustomerRepository, locationRepo *repositories.LocationRepository) *InvoiceService {
	return &InvoiceService{Repo: repo, CustomerRepo: customerRepo, LocationRepo: locationRepo}
}

// validateLocationScope checks that a chosen location belongs to the invoice's
// customer. Selections made against a different customer are rejected even
// when the location ID itself exists.
func (s *InvoiceService) validateLocationScope(ctx context.Context, customerID int, locationID *int) error {
	if locationID == nil || *locationID <= 0 {
		return nil
	}
	loc, err := s.LocationRepo.Get(ctx, *locationID)
	if err != nil {
		return errors.New("location not found")
	}
	if loc.CustomerID != customerID {
		return errors.New("location does not belong to the selected customer")
	}
	return nil
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if req.CustomerID <= 0 {
		return nil, errors.New("customerId is required")
	}
	if req.InvoiceNo == "" {
		return nil, errors.New("invoiceNo is required")
	}
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, errors.New("customer not found")
	}
	if err := s.validateLocationScope(ctx, req.CustomerID, req.LocationID); err != nil {
		return nil, err
	}

	invoiceDate := timeutil.Today()
	if req.InvoiceDate != "" {
		parsed, err := timeutil.ParseDate(req.InvoiceDate)
		if err != nil {
			return nil, errors.New("invoiceDate must be YYYY-MM-DD")
		}
		invoiceDate = parsed
	}

	inv := &models.Invoice{
		CustomerID:  req.CustomerID,
		LocationID:  req.LocationID,
		InvoiceNo:   req.InvoiceNo,
		InvoiceDate: invoiceDate,
		Discount:    req.Discount,
		Status:      defaultStatus(req.Status),
	}

	// Item amounts are server derived from quantity and rate inputs; the
	// invoice form sends amount directly, so it is rounded and summed here.
	var subtotal float64
	for _, itemReq := range req.Items {
		quantity := itemReq.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		amount := cascade.Round2(itemReq.Amount)
		subtotal += amount
		inv.Items = append(inv.Items, models.InvoiceItem{
			ProductID: itemReq.ProductID,
			SerialNo:  itemReq.SerialNo,
			Quantity:  quantity,
			Amount:    amount,
		})
	}
	inv.Total = cascade.Round2(subtotal)
	inv.Subtotal = inv.Total
	inv.GrandTotal = cascade.Round2(inv.Subtotal - inv.Discount)

	if err := s.Repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return s.GetInvoice(ctx, inv.ID)
}

// GetInvoice returns the invoice with its items attached.
func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	inv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, params models.ListParams, customerID, locationID int) ([]*models.Invoice, models.PaginationInfo, error) {
	invoices, total, err := s.Repo.List(ctx, params, customerID, locationID)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return invoices, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
	inv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInt(&inv.CustomerID, req.CustomerID)
	if req.LocationID != nil {
		inv.LocationID = req.LocationID
	}
	applyString(&inv.InvoiceNo, req.InvoiceNo)
	applyFloat(&inv.Discount, req.Discount)
	applyString(&inv.Status, req.Status)

	if req.InvoiceDate != nil && *req.InvoiceDate != "" {
		parsed, err := timeutil.ParseDate(*req.InvoiceDate)
		if err != nil {
			return nil, errors.New("invoiceDate must be YYYY-MM-DD")
		}
		inv.InvoiceDate = parsed
	}

	if inv.InvoiceNo == "" {
		return nil, errors.New("invoiceNo is required")
	}
	if req.CustomerID != nil {
		if _, err := s.CustomerRepo.Get(ctx, inv.CustomerID); err != nil {
			return nil, errors.New("customer not found")
		}
	}
	if err := s.validateLocationScope(ctx, inv.CustomerID, inv.LocationID); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	if err := s.Repo.RecomputeTotals(ctx, id); err != nil {
		return nil, err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return s.GetInvoice(ctx, id)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return nil
}

func (s *InvoiceService) AddItem(ctx context.Context, req *models.CreateInvoiceItemRequest) (*models.InvoiceItem, error) {
	if req.InvoiceID <= 0 {
		return nil, errors.New("invoiceId is required")
	}
	if _, err := s.Repo.Get(ctx, req.InvoiceID); err != nil {
		return nil, errors.New("invoice not found")
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := &models.InvoiceItem{
		InvoiceID: req.InvoiceID,
		ProductID: req.ProductID,
		SerialNo:  req.SerialNo,
		Quantity:  quantity,
		Amount:    cascade.Round2(req.Amount),
	}
	if err := s.Repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	if err := s.Repo.RecomputeTotals(ctx, req.InvoiceID); err != nil {
		return nil, err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return s.Repo.GetItem(ctx, item.ID)
}

func (s *InvoiceService) UpdateItem(ctx context.Context, id int, req *models.UpdateInvoiceItemRequest) (*models.InvoiceItem, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProductID != nil {
		item.ProductID = req.ProductID
	}
	applyString(&item.SerialNo, req.SerialNo)
	applyFloat(&item.Quantity, req.Quantity)
	applyFloat(&item.Amount, req.Amount)

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	item.Amount = cascade.Round2(item.Amount)

	if err := s.Repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	if err := s.Repo.RecomputeTotals(ctx, item.InvoiceID); err != nil {
		return nil, err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return s.Repo.GetItem(ctx, id)
}

func (s *InvoiceService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.RecomputeTotals(ctx, item.InvoiceID); err != nil {
		return err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return nil
}
