package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"amc-backend/internal/middleware"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
	"amc-backend/internal/services"
	"amc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ProposalHandler struct {
	Service   *services.ProposalService
	Documents *services.DocumentService
	Emails    *services.EmailService
}

func NewProposalHandler(s *services.ProposalService, documents *services.DocumentService, emails *services.EmailService) *ProposalHandler {
	return &ProposalHandler{Service: s, Documents: documents, Emails: emails}
}

func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	proposal, err := h.Service.CreateProposal(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, proposal)
}

func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	proposal, err := h.Service.GetProposal(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Proposal not found")
		return
	}

	utils.JSON(w, http.StatusOK, proposal)
}

func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	params := utils.ParseListParams(r)
	customerID, _ := strconv.Atoi(r.URL.Query().Get("customer_id"))

	proposals, pagination, err := h.Service.ListProposals(r.Context(), params, customerID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.List(w, proposals, pagination)
}

func (h *ProposalHandler) UpdateProposal(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	proposal, err := h.Service.UpdateProposal(r.Context(), id, &req)
	if err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Proposal not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, proposal)
}

func (h *ProposalHandler) DeleteProposal(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteProposal(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Proposal deleted"})
}

func (h *ProposalHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProposalItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.AddItem(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, item)
}

func (h *ProposalHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	proposalID, _ := strconv.Atoi(r.URL.Query().Get("proposal_id"))
	if proposalID <= 0 {
		utils.Error(w, http.StatusBadRequest, "proposal_id parameter is required")
		return
	}

	items, err := h.Service.Repo.ListItems(r.Context(), proposalID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.ProposalItem{}
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *ProposalHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateProposalItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Proposal item not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *ProposalHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Proposal item not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Proposal item deleted"})
}

// ItemForm returns the dependent picker lists for the proposal item form.
// Optional location_id and invoice_id query parameters narrow the lists the
// same way the form selections do.
func (h *ProposalHandler) ItemForm(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	locationID, _ := strconv.Atoi(r.URL.Query().Get("location_id"))
	invoiceID, _ := strconv.Atoi(r.URL.Query().Get("invoice_id"))

	options, err := h.Service.ItemFormOptions(r.Context(), id, locationID, invoiceID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, options)
}

// GenerateDocument renders and stores the proposal PDF.
func (h *ProposalHandler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	email, _ := middleware.GetEmailFromContext(r.Context())

	doc, err := h.Documents.Generate(r.Context(), id, email)
	if err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Proposal not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, doc)
}

// SendEmail dispatches the proposal document. A proposal without a generated
// document returns 409 so the client can prompt for generation first.
func (h *ProposalHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	sentBy, _ := middleware.GetEmailFromContext(r.Context())

	var req models.SendProposalEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Emails.SendProposal(r.Context(), id, &req, sentBy)
	if err != nil {
		if errors.Is(err, services.ErrNoDocument) {
			utils.Error(w, http.StatusConflict, "Generate the proposal document before sending")
			return
		}
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Proposal not found")
			return
		}
		if record != nil {
			// The attempt was recorded even though delivery failed
			utils.JSON(w, http.StatusBadGateway, record)
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, record)
}
