package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"amc-backend/internal/mailer"
	"amc-backend/internal/metrics"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

// ErrNoDocument is returned when a proposal has no generated document yet.
// The document must exist before it can be mailed out.
var ErrNoDocument = errors.New("proposal has no generated document")

// EmailService dispatches proposal documents and keeps the send history.
// Failed attempts are logged with status "failed" so the record shows every
// try, not just the successes.
type EmailService struct {
	Proposals *ProposalService
	Records   *repositories.EmailRecordRepository
	Mailer    *mailer.Mailer
}

func NewEmailService(proposals *ProposalService, records *repositories.EmailRecordRepository, m *mailer.Mailer) *EmailService {
	return &EmailService{Proposals: proposals, Records: records, Mailer: m}
}

// SendProposal mails the proposal's current document link to the given
// address. sentBy is the email of the admin who triggered the dispatch.
func (s *EmailService) SendProposal(ctx context.Context, proposalID int, req *models.SendProposalEmailRequest, sentBy string) (*models.EmailRecord, error) {
	if req.Email == "" {
		return nil, errors.New("email is required")
	}

	p, err := s.Proposals.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.DocLink == "" {
		return nil, ErrNoDocument
	}

	subject := fmt.Sprintf("AMC Proposal %s", p.ProposalNo)
	body := buildProposalEmailBody(p, req.Message)

	record := &models.EmailRecord{
		ProposalNo: p.ProposalNo,
		Email:      req.Email,
		Status:     "sent",
		Message:    req.Message,
		SentBy:     sentBy,
	}

	sendErr := s.Mailer.Send(ctx, req.Email, subject, body)
	if sendErr != nil {
		log.Printf("[Email] Dispatch of %s to %s failed: %v", p.ProposalNo, req.Email, sendErr)
		record.Status = "failed"
	}
	metrics.ProposalEmailsSent.WithLabelValues(record.Status).Inc()

	if err := s.Records.Create(ctx, record); err != nil {
		return nil, err
	}
	// The proposal moves to "sent" only on a successful dispatch
	if sendErr == nil && p.ProposalStatus == "new" {
		if err := s.Proposals.Repo.UpdateStatus(ctx, proposalID, "sent"); err != nil {
			return nil, err
		}
	}
	if sendErr != nil {
		return record, sendErr
	}
	return record, nil
}

// ListRecords returns the dispatch history, optionally scoped to one proposal
// number.
func (s *EmailService) ListRecords(ctx context.Context, params models.ListParams, proposalNo string) ([]*models.EmailRecord, models.PaginationInfo, error) {
	records, total, err := s.Records.List(ctx, params, proposalNo)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return records, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func buildProposalEmailBody(p *models.Proposal, message string) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; padding: 20px;">`)
	b.WriteString(fmt.Sprintf(`<h2>AMC Proposal %s</h2>`, html.EscapeString(p.ProposalNo)))
	b.WriteString(fmt.Sprintf(`<p>Dear %s,</p>`, html.EscapeString(p.CustomerName)))
	if message != "" {
		b.WriteString(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(message)))
	}
	b.WriteString(fmt.Sprintf(
		`<p>Please find your annual maintenance contract proposal here: <a href="%s">%s</a></p>`,
		html.EscapeString(p.DocLink), html.EscapeString(p.DocLink)))
	b.WriteString(fmt.Sprintf(`<p>Contract period: %s to %s<br>Grand total: Rs. %.2f</p>`,
		p.AmcStartDate.Format("02-Jan-2006"), p.AmcEndDate.Format("02-Jan-2006"), p.GrandTotal))
	b.WriteString(`<p>Regards,<br>AMC Team</p></body></html>`)
	return b.String()
}
