package handlers

import (
	"net/http"

	"amc-backend/internal/services"
	"amc-backend/pkg/utils"
)

// DocumentHandler serves the read-only document and email dispatch history.
type DocumentHandler struct {
	Documents *services.DocumentService
	Emails    *services.EmailService
}

func NewDocumentHandler(documents *services.DocumentService, emails *services.EmailService) *DocumentHandler {
	return &DocumentHandler{Documents: documents, Emails: emails}
}

func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	params := utils.ParseListParams(r)
	proposalNo := r.URL.Query().Get("proposalno")

	docs, pagination, err := h.Documents.ListDocuments(r.Context(), params, proposalNo)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.List(w, docs, pagination)
}

func (h *DocumentHandler) ListEmailRecords(w http.ResponseWriter, r *http.Request) {
	params := utils.ParseListParams(r)
	proposalNo := r.URL.Query().Get("proposalno")

	records, pagination, err := h.Emails.ListRecords(r.Context(), params, proposalNo)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.List(w, records, pagination)
}
