package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

type TariffHandler struct {
	Repo repository.TariffRepository
}

func (h *TariffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.TariffItem
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := validate.Struct(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Create(&t); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save tariff: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Tariff saved", Data: t})
}

func (h *TariffHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.TariffItem{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

func (h *TariffHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var t models.TariffItem
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	t.ID = id

	if err := validate.Struct(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Update(&t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Tariff not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Tariff updated", Data: t})
}

func (h *TariffHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Tariff not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Tariff deleted successfully"})
}
