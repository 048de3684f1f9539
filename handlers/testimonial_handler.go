package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

type TestimonialHandler struct {
	Repo repository.TestimonialRepository
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := validate.Struct(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Create(&t); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save testimonial: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Testimonial saved", Data: t})
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.Testimonial{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

// ListPublished serves the storefront: published testimonials only.
func (h *TestimonialHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	q.Status = models.TestimonialPublished

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.Testimonial{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var t models.Testimonial
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
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Testimonial not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Testimonial updated", Data: t})
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Testimonial not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Testimonial deleted successfully"})
}
