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

type LocationHandler struct {
	Service *services.LocationService
}

func NewLocationHandler(s *services.LocationService) *LocationHandler {
	return &LocationHandler{Service: s}
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	location, err := h.Service.CreateLocation(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, location)
}

func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	location, err := h.Service.GetLocation(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Location not found")
		return
	}

	utils.JSON(w, http.StatusOK, location)
}

func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	params := utils.ParseListParams(r)
	customerID, _ := strconv.Atoi(r.URL.Query().Get("customer_id"))

	locations, pagination, err := h.Service.ListLocations(r.Context(), params, customerID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.List(w, locations, pagination)
}

func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	location, err := h.Service.UpdateLocation(r.Context(), id, &req)
	if err != nil {
		if repositories.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, location)
}

func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteLocation(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Location deleted"})
}
