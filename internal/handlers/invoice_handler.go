package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
	"amc-backend/internal/services"
	"amc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func NewInvoiceHandler(s *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: s}
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.Service.CreateInvoice(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	invoice, err := h.Service.GetInvoice(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	params := utils.ParseListParams(r)
	customerID, _ := strconv.Atoi(r.URL.Query().Get("customer_id"))
	locationID, _ := strconv.Atoi(r.URL.Query().Get("location_id"))

	invoices, pagination, err := h.Service.ListInvoices(r.Context(), params, customerID, locationID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.List(w, invoices, pagination)
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.Service.UpdateInvoice(r.Context(), id, &req)
	if err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Invoice not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteInvoice(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Invoice deleted"})
}

func (h *InvoiceHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceItemRequest
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

func (h *InvoiceHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	invoiceID, _ := strconv.Atoi(r.URL.Query().Get("invoice_id"))
	if invoiceID <= 0 {
		utils.Error(w, http.StatusBadRequest, "invoice_id parameter is required")
		return
	}

	items, err := h.Service.Repo.ListItems(r.Context(), invoiceID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.InvoiceItem{}
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *InvoiceHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateInvoiceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Invoice item not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *InvoiceHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Invoice item not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Invoice item deleted"})
}
