package handlers

import (
	"encoding/json"
	"net/http"

	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
	"amc-backend/internal/services"
	"amc-backend/pkg/utils"
)

type MailSetupHandler struct {
	Service *services.MailSetupService
}

func NewMailSetupHandler(s *services.MailSetupService) *MailSetupHandler {
	return &MailSetupHandler{Service: s}
}

func (h *MailSetupHandler) Get(w http.ResponseWriter, r *http.Request) {
	setup, err := h.Service.Get(r.Context())
	if err != nil {
		if repositories.IsNotFound(err) {
			// No row saved yet; the form starts blank
			utils.JSON(w, http.StatusOK, &models.MailSetup{SMTPPort: 587})
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, setup)
}

func (h *MailSetupHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveMailSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	setup, err := h.Service.Save(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, setup)
}
