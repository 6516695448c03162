package services

import (
	"bytes"
	"context"
	"fmt"

	"amc-backend/internal/metrics"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
	"amc-backend/internal/storage"
	"amc-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// DocumentService renders proposal PDFs, stores them and keeps the generation
// history. Every generation appends a proposal_documents row and moves the
// proposal's doclink to the fresh copy.
type DocumentService struct {
	Proposals *ProposalService
	DocRepo   *repositories.DocumentRepository
	Store     storage.Store
}

func NewDocumentService(proposals *ProposalService, docRepo *repositories.DocumentRepository, store storage.Store) *DocumentService {
	return &DocumentService{Proposals: proposals, DocRepo: docRepo, Store: store}
}

// Generate renders the proposal PDF, uploads it and records the document.
// createdBy is the email of the admin who triggered the generation.
func (s *DocumentService) Generate(ctx context.Context, proposalID int, createdBy string) (*models.ProposalDocument, error) {
	p, err := s.Proposals.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderPDF(p)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("proposals/%s/%s.pdf", p.ProposalNo, timeutil.Now().Format("20060102-150405"))
	link, err := s.Store.Put(ctx, key, data, "application/pdf")
	if err != nil {
		return nil, err
	}

	doc := &models.ProposalDocument{
		ProposalNo: p.ProposalNo,
		DocLink:    link,
		CreatedBy:  createdBy,
	}
	if err := s.DocRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.Proposals.Repo.UpdateDocLink(ctx, proposalID, link); err != nil {
		return nil, err
	}

	metrics.ProposalDocumentsGenerated.Inc()
	return doc, nil
}

// ListDocuments returns the generation history, optionally scoped to one
// proposal number.
func (s *DocumentService) ListDocuments(ctx context.Context, params models.ListParams, proposalNo string) ([]*models.ProposalDocument, models.PaginationInfo, error) {
	docs, total, err := s.DocRepo.List(ctx, params, proposalNo)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return docs, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *DocumentService) renderPDF(p *models.Proposal) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Annual Maintenance Contract Proposal", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Proposal Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Proposal Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Proposal No: %s", p.ProposalNo), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", p.ProposalDate.Format("02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", p.CustomerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Contract No: %s", p.ContractNo), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("AMC Period: %s to %s",
		p.AmcStartDate.Format("02-Jan-2006"), p.AmcEndDate.Format("02-Jan-2006")), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", p.ProposalStatus), "RB", 1, "L", false, 0, "")

	billing := p.BillingAddress
	if len(billing) > 90 {
		billing = billing[:87] + "..."
	}
	pdf.CellFormat(190, 7, fmt.Sprintf("Billing Address: %s", billing), "LRB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Covered Equipment
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Covered Equipment", "1", 1, "L", true, 0, "")

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(50, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Serial No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "SAC Code", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 10)
	for _, item := range p.Items {
		name := item.ProductName
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		pdf.CellFormat(50, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, item.SerialNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, item.SacCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.0f", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Totals
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Contract Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Item Total: Rs. %.2f", p.Total), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Additional Charge: Rs. %.2f", p.AdditionalCharge), "1", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Discount: Rs. %.2f", p.Discount), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Tax (%.2f%%): Rs. %.2f", p.TaxRate, p.TaxAmount), "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(190, 10, fmt.Sprintf("Grand Total: Rs. %.2f", p.GrandTotal), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
