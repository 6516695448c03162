package models

import "time"

// ProposalDocument records one generated copy of a proposal PDF.
// Documents are correlated to a proposal by its proposal number string.
type ProposalDocument struct {
	ID         int       `json:"id"`
	ProposalNo string    `json:"proposalno"`
	DocLink    string    `json:"doclink"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdat"`
	UpdatedAt  time.Time `json:"updatedat"`
}

// EmailRecord logs one dispatch attempt of a proposal document.
type EmailRecord struct {
	ID         int       `json:"id"`
	ProposalNo string    `json:"proposalno"`
	Email      string    `json:"email"`
	Status     string    `json:"status"` // sent or failed
	Message    string    `json:"message"`
	SentBy     string    `json:"sentby"`
	CreatedAt  time.Time `json:"createdat"`
	UpdatedAt  time.Time `json:"updatedat"`
}

// SendProposalEmailRequest represents the request body for dispatching a proposal
type SendProposalEmailRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
