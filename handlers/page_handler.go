package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

type PageHandler struct {
	Repo repository.PageRepository
}

func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Page
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := validate.Struct(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if existing, err := h.Repo.GetBySlug(p.Slug); err == nil && existing != nil {
		writeJSON(w, http.StatusConflict, ApiResponse{Success: false, Message: "A page with this slug already exists"})
		return
	}

	if err := h.Repo.Create(&p); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save page: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Page saved", Data: p})
}

func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.Page{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

// GetBySlug serves a public content page.
func (h *PageHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "missing slug"})
		return
	}

	p, err := h.Repo.GetBySlug(slug)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Page not found"})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: p})
}

func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var p models.Page
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	p.ID = id

	if err := validate.Struct(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Update(&p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Page not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Page updated", Data: p})
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Page not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Page deleted successfully"})
}
