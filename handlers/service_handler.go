package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

type ServiceHandler struct {
	Repo repository.ServiceRepository
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s models.Service
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := validate.Struct(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Create(&s); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save service: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Service saved", Data: s})
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.Service{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

// ListActive serves the storefront: active services only.
func (h *ServiceHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	q.Status = "active"

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.Service{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

func (h *ServiceHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.Repo.GetByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if s == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Service not found"})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: s})
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var s models.Service
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	s.ID = id

	if err := validate.Struct(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Update(&s); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Service not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Service updated", Data: s})
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Service not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Service deleted successfully"})
}
