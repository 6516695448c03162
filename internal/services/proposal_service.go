package services

import (
	"context"
	"errors"
	"fmt"

	"amc-backend/internal/cascade"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
	"amc-backend/internal/timeutil"
)

type ProposalService struct {
	Repo         *repositories.ProposalRepository
	CustomerRepo *repositories.CustomerRepository
	LocationRepo *repositories.LocationRepository
	InvoiceRepo  *repositories.InvoiceRepository
}

func NewProposalService(repo *repositories.ProposalRepository, customerRepo *repositories.CustomerRepository,
	locationRepo *repositories.LocationRepository, invoiceRepo *repositories.InvoiceRepository) *ProposalService {
	return &ProposalService{
		Repo:         repo,
		CustomerRepo: customerRepo,
		LocationRepo: locationRepo,
		InvoiceRepo:  invoiceRepo,
	}
}

func validProposalStatus(status string) bool {
	for _, s := range models.ProposalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s *ProposalService) CreateProposal(ctx context.Context, req *models.CreateProposalRequest) (*models.Proposal, error) {
	if req.CustomerID <= 0 {
		return nil, errors.New("customerId is required")
	}
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, errors.New("customer not found")
	}

	status := req.ProposalStatus
	if status == "" {
		status = "new"
	}
	if !validProposalStatus(status) {
		return nil, errors.New("invalid proposal status")
	}

	proposalNo := req.ProposalNo
	if proposalNo == "" {
		proposalNo, err = s.Repo.NextProposalNo(ctx)
		if err != nil {
			return nil, err
		}
	}

	billingAddress := req.BillingAddress
	if billingAddress == "" {
		billingAddress = customer.Address
	}

	p := &models.Proposal{
		ProposalNo:       proposalNo,
		ProposalDate:     timeutil.Today(),
		AmcStartDate:     timeutil.Today(),
		AmcEndDate:       timeutil.Today().AddDate(1, 0, 0),
		CustomerID:       req.CustomerID,
		ContractNo:       req.ContractNo,
		BillingAddress:   billingAddress,
		AdditionalCharge: req.AdditionalCharge,
		Discount:         req.Discount,
		TaxRate:          req.TaxRate,
		ProposalStatus:   status,
	}

	if req.ProposalDate != "" {
		if p.ProposalDate, err = timeutil.ParseDate(req.ProposalDate); err != nil {
			return nil, errors.New("proposaldate must be YYYY-MM-DD")
		}
	}
	if req.AmcStartDate != "" {
		if p.AmcStartDate, err = timeutil.ParseDate(req.AmcStartDate); err != nil {
			return nil, errors.New("amcstartdate must be YYYY-MM-DD")
		}
	}
	if req.AmcEndDate != "" {
		if p.AmcEndDate, err = timeutil.ParseDate(req.AmcEndDate); err != nil {
			return nil, errors.New("amcenddate must be YYYY-MM-DD")
		}
	}
	if p.AmcEndDate.Before(p.AmcStartDate) {
		return nil, errors.New("amcenddate must not precede amcstartdate")
	}

	for _, itemReq := range req.Items {
		item, err := s.buildItem(ctx, req.CustomerID, &itemReq)
		if err != nil {
			return nil, err
		}
		p.Items = append(p.Items, *item)
	}
	applyProposalTotals(p)

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.GetProposal(ctx, p.ID)
}

// buildItem validates one item request against the proposal's customer scope
// and derives the line amount. The location must belong to the customer, the
// invoice to the customer and location, and the product must appear on the
// chosen invoice. An absent serial number is autofilled from the matching
// invoice item; a serial the user sent is kept as sent, even when blank.
func (s *ProposalService) buildItem(ctx context.Context, customerID int, req *models.CreateProposalItemRequest) (*models.ProposalItem, error) {
	if req.LocationID != nil && *req.LocationID > 0 {
		loc, err := s.LocationRepo.Get(ctx, *req.LocationID)
		if err != nil {
			return nil, errors.New("location not found")
		}
		if loc.CustomerID != customerID {
			return nil, errors.New("location does not belong to the proposal customer")
		}
	}

	var sourceItems []models.InvoiceItem
	if req.InvoiceID != nil && *req.InvoiceID > 0 {
		inv, err := s.InvoiceRepo.Get(ctx, *req.InvoiceID)
		if err != nil {
			return nil, errors.New("invoice not found")
		}
		if inv.CustomerID != customerID {
			return nil, errors.New("invoice does not belong to the proposal customer")
		}
		if req.LocationID != nil && *req.LocationID > 0 &&
			(inv.LocationID == nil || *inv.LocationID != *req.LocationID) {
			return nil, errors.New("invoice does not belong to the selected location")
		}
		if sourceItems, err = s.InvoiceRepo.ListItems(ctx, *req.InvoiceID); err != nil {
			return nil, err
		}
	}

	item := &models.ProposalItem{
		ProposalID: req.ProposalID,
		LocationID: req.LocationID,
		InvoiceID:  req.InvoiceID,
		ProductID:  req.ProductID,
		SacCode:    req.SacCode,
		Quantity:   req.Quantity,
		Rate:       req.Rate,
	}
	if req.SerialNo != nil {
		item.SerialNo = *req.SerialNo
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if req.ProductID != nil && *req.ProductID > 0 && req.InvoiceID != nil && *req.InvoiceID > 0 {
		var source *models.InvoiceItem
		for idx := range sourceItems {
			if sourceItems[idx].ProductID != nil && *sourceItems[idx].ProductID == *req.ProductID {
				source = &sourceItems[idx]
				break
			}
		}
		if source == nil {
			return nil, errors.New("product does not appear on the selected invoice")
		}

		item.SerialNo = resolveSerial(req.SerialNo, source.SerialNo)
	}

	item.Amount = cascade.Amount(item.Quantity, item.Rate)
	return item, nil
}

// resolveSerial applies the one-shot autofill rule. A nil request serial was
// never touched and takes the invoice line's suggestion; a non-nil one was
// set by the user and is pinned as sent, an empty string included.
func resolveSerial(requested *string, suggested string) string {
	var serial cascade.Autofill
	if requested != nil {
		serial.Set(*requested)
	}
	serial.Suggest(suggested)
	return serial.Value()
}

// applyProposalTotals rolls item amounts up into the proposal header.
func applyProposalTotals(p *models.Proposal) {
	var total float64
	for _, item := range p.Items {
		total += item.Amount
	}
	p.Total = cascade.Round2(total)
	taxable := p.Total + p.AdditionalCharge - p.Discount
	p.TaxAmount = cascade.Round2(taxable * p.TaxRate / 100)
	p.GrandTotal = cascade.Round2(taxable + p.TaxAmount)
}

// GetProposal returns the proposal with its items attached.
func (s *ProposalService) GetProposal(ctx context.Context, id int) (*models.Proposal, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return p, nil
}

func (s *ProposalService) ListProposals(ctx context.Context, params models.ListParams, customerID int) ([]*models.Proposal, models.PaginationInfo, error) {
	proposals, total, err := s.Repo.List(ctx, params, customerID)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return proposals, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *ProposalService) UpdateProposal(ctx context.Context, id int, req *models.UpdateProposalRequest) (*models.Proposal, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&p.ProposalNo, req.ProposalNo)
	applyInt(&p.CustomerID, req.CustomerID)
	applyString(&p.ContractNo, req.ContractNo)
	applyString(&p.BillingAddress, req.BillingAddress)
	applyFloat(&p.AdditionalCharge, req.AdditionalCharge)
	applyFloat(&p.Discount, req.Discount)
	applyFloat(&p.TaxRate, req.TaxRate)
	applyString(&p.ProposalStatus, req.ProposalStatus)

	if req.ProposalDate != nil && *req.ProposalDate != "" {
		if p.ProposalDate, err = timeutil.ParseDate(*req.ProposalDate); err != nil {
			return nil, errors.New("proposaldate must be YYYY-MM-DD")
		}
	}
	if req.AmcStartDate != nil && *req.AmcStartDate != "" {
		if p.AmcStartDate, err = timeutil.ParseDate(*req.AmcStartDate); err != nil {
			return nil, errors.New("amcstartdate must be YYYY-MM-DD")
		}
	}
	if req.AmcEndDate != nil && *req.AmcEndDate != "" {
		if p.AmcEndDate, err = timeutil.ParseDate(*req.AmcEndDate); err != nil {
			return nil, errors.New("amcenddate must be YYYY-MM-DD")
		}
	}

	if p.ProposalNo == "" {
		return nil, errors.New("proposalno is required")
	}
	if !validProposalStatus(p.ProposalStatus) {
		return nil, errors.New("invalid proposal status")
	}
	if p.AmcEndDate.Before(p.AmcStartDate) {
		return nil, errors.New("amcenddate must not precede amcstartdate")
	}
	if req.CustomerID != nil {
		if _, err := s.CustomerRepo.Get(ctx, p.CustomerID); err != nil {
			return nil, errors.New("customer not found")
		}
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Repo.RecomputeTotals(ctx, id); err != nil {
		return nil, err
	}
	return s.GetProposal(ctx, id)
}

func (s *ProposalService) DeleteProposal(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

func (s *ProposalService) AddItem(ctx context.Context, req *models.CreateProposalItemRequest) (*models.ProposalItem, error) {
	if req.ProposalID <= 0 {
		return nil, errors.New("proposalId is required")
	}
	p, err := s.Repo.Get(ctx, req.ProposalID)
	if err != nil {
		return nil, errors.New("proposal not found")
	}

	item, err := s.buildItem(ctx, p.CustomerID, req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	if err := s.Repo.RecomputeTotals(ctx, req.ProposalID); err != nil {
		return nil, err
	}
	return s.Repo.GetItem(ctx, item.ID)
}

func (s *ProposalService) UpdateItem(ctx context.Context, id int, req *models.UpdateProposalItemRequest) (*models.ProposalItem, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.Get(ctx, item.ProposalID)
	if err != nil {
		return nil, err
	}

	// Re-run the full scope validation with the merged fields. An update that
	// moves the item to another invoice has to revalidate the product too.
	// A non-blank stored serial counts as user-set so the rebuild keeps it
	// instead of autofilling over it; a blank one stays open to autofill.
	var existingSerial *string
	if item.SerialNo != "" {
		existingSerial = &item.SerialNo
	}
	merged := &models.CreateProposalItemRequest{
		ProposalID: item.ProposalID,
		LocationID: item.LocationID,
		InvoiceID:  item.InvoiceID,
		ProductID:  item.ProductID,
		SerialNo:   existingSerial,
		SacCode:    item.SacCode,
		Quantity:   item.Quantity,
		Rate:       item.Rate,
	}
	if req.LocationID != nil {
		merged.LocationID = req.LocationID
	}
	if req.InvoiceID != nil {
		merged.InvoiceID = req.InvoiceID
	}
	if req.ProductID != nil {
		merged.ProductID = req.ProductID
	}
	if req.SerialNo != nil {
		merged.SerialNo = req.SerialNo
	}
	applyString(&merged.SacCode, req.SacCode)
	applyFloat(&merged.Quantity, req.Quantity)
	applyFloat(&merged.Rate, req.Rate)

	rebuilt, err := s.buildItem(ctx, p.CustomerID, merged)
	if err != nil {
		return nil, err
	}
	rebuilt.ID = id
	rebuilt.ProposalID = item.ProposalID

	if err := s.Repo.UpdateItem(ctx, rebuilt); err != nil {
		return nil, err
	}
	if err := s.Repo.RecomputeTotals(ctx, item.ProposalID); err != nil {
		return nil, err
	}
	return s.Repo.GetItem(ctx, id)
}

func (s *ProposalService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	return s.Repo.RecomputeTotals(ctx, item.ProposalID)
}

// itemFormResolve wires the item dialog's dependent fields into a form and
// replays the current selections through it. The location acts as a narrowing
// filter: the invoice list loads for the customer as soon as the form opens
// and is re-fetched narrowed when a location is chosen. The invoice is the
// required selector, so only an invoice taken from its current option list
// unlocks the product rows.
func itemFormResolve(ctx context.Context, customerID, locationID, invoiceID int,
	locations, invoices, products cascade.FetchFunc) (*cascade.Form, error) {
	form := cascade.NewForm()
	form.AddSelector("customer", nil)
	form.AddDependent("location", []string{"customer"}, locations)
	form.AddDependent("invoice", []string{"customer"}, invoices)
	form.FilterBy("invoice", "location")
	form.AddDependent("product", []string{"invoice"}, products)

	form.Select(ctx, "customer", customerID)
	if locationID > 0 {
		form.Select(ctx, "location", locationID)
	}
	form.Wait()

	if invoiceID > 0 {
		for _, opt := range form.Options("invoice") {
			if opt.ID == invoiceID {
				form.Select(ctx, "invoice", invoiceID)
				break
			}
		}
	}
	form.Wait()

	for _, name := range []string{"location", "invoice", "product"} {
		if err := form.Err(name); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// ItemFormOptions returns the dependent picker lists for the proposal item
// form. Locations and invoices both load for the proposal's customer; a
// chosen location narrows the invoice list, and a chosen invoice fills the
// product rows with the serial, quantity and rate billed on it.
func (s *ProposalService) ItemFormOptions(ctx context.Context, proposalID, locationID, invoiceID int) (*models.ItemFormOptions, error) {
	p, err := s.Repo.Get(ctx, proposalID)
	if err != nil {
		return nil, errors.New("proposal not found")
	}

	var seeds []models.ProductFormOption

	form, err := itemFormResolve(ctx, p.CustomerID, locationID, invoiceID,
		func(ctx context.Context, scope cascade.Scope) ([]cascade.Option, error) {
			return s.locationOptions(ctx, scope["customer"])
		},
		func(ctx context.Context, scope cascade.Scope) ([]cascade.Option, error) {
			return s.invoiceOptions(ctx, scope["customer"], scope["location"])
		},
		func(ctx context.Context, scope cascade.Scope) ([]cascade.Option, error) {
			opts, rows, err := s.productRows(ctx, scope["invoice"])
			if err != nil {
				return nil, err
			}
			seeds = rows
			return opts, nil
		})
	if err != nil {
		return nil, err
	}

	options := &models.ItemFormOptions{
		Locations: form.Options("location"),
		Invoices:  form.Options("invoice"),
		Products:  []models.ProductFormOption{},
	}
	if seeds != nil {
		options.Products = seeds
	}
	return options, nil
}

func (s *ProposalService) locationOptions(ctx context.Context, customerID int) ([]cascade.Option, error) {
	return cachedOptions(ctx, fmt.Sprintf("options:locations:%d", customerID),
		func(ctx context.Context) ([]cascade.Option, error) {
			locations, err := s.LocationRepo.ListByCustomer(ctx, customerID)
			if err != nil {
				return nil, err
			}
			opts := make([]cascade.Option, 0, len(locations))
			for _, loc := range locations {
				opts = append(opts, cascade.Option{ID: loc.ID, Label: loc.DisplayName})
			}
			return opts, nil
		})
}

// invoiceOptions lists a customer's invoices, narrowed to one location when
// locationID is non-zero. The zero-location key caches the unfiltered list.
func (s *ProposalService) invoiceOptions(ctx context.Context, customerID, locationID int) ([]cascade.Option, error) {
	return cachedOptions(ctx, fmt.Sprintf("options:invoices:%d:%d", customerID, locationID),
		func(ctx context.Context) ([]cascade.Option, error) {
			invoices, err := s.InvoiceRepo.ListByCustomer(ctx, customerID, locationID)
			if err != nil {
				return nil, err
			}
			opts := make([]cascade.Option, 0, len(invoices))
			for _, inv := range invoices {
				opts = append(opts, cascade.Option{ID: inv.ID, Label: inv.InvoiceNo})
			}
			return opts, nil
		})
}

// productRows turns an invoice's line items into product picker rows carrying
// the serial, quantity and per-unit rate to seed the item dialog with.
func (s *ProposalService) productRows(ctx context.Context, invoiceID int) ([]cascade.Option, []models.ProductFormOption, error) {
	items, err := s.InvoiceRepo.ListItems(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	opts := make([]cascade.Option, 0, len(items))
	rows := make([]models.ProductFormOption, 0, len(items))
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		rate := float64(0)
		if item.Quantity > 0 {
			rate = cascade.Round2(item.Amount / item.Quantity)
		}
		opts = append(opts, cascade.Option{ID: *item.ProductID, Label: item.ProductName})
		rows = append(rows, models.ProductFormOption{
			ID:       *item.ProductID,
			Label:    item.ProductName,
			SerialNo: item.SerialNo,
			Quantity: item.Quantity,
			Rate:     rate,
		})
	}
	return opts, rows, nil
}
