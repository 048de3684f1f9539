package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"meenakshitravels/models"
	"meenakshitravels/repository"
	"meenakshitravels/utils"
)

type LeadHandler struct {
	Repo     repository.LeadRepository
	Settings repository.SettingsRepository
}

// Capture is the public quote/contact form endpoint.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var l models.Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	// Status and PDF URL are server-owned on capture.
	l.ID = ""
	l.Status = ""
	l.QuotePDFURL = ""

	if err := validate.Struct(&l); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Create(&l); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save enquiry: " + err.Error()})
		return
	}

	h.notify(&l)

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Enquiry received", Data: l})
}

// notify mails a new-lead summary if SMTP is configured. Failures are logged,
// never surfaced to the submitter.
func (h *LeadHandler) notify(l *models.Lead) {
	if h.Settings == nil {
		return
	}
	smtp, err := h.Settings.GetSMTP()
	if err != nil || smtp == nil || smtp.NotifyEmail == "" {
		return
	}
	if err := utils.NewMailer(smtp).SendLeadNotification(smtp.NotifyEmail, l); err != nil {
		log.Error().Err(err).Str("lead_id", l.ID).Msg("lead notification email failed")
	}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	items, total, err := h.Repo.List(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if items == nil {
		items = []*models.Lead{}
	}

	p := models.NewPagination(total, q)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: items, Pagination: &p})
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var l models.Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	l.ID = id

	if err := validate.Struct(&l); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.Update(&l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Lead not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Lead updated", Data: l})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Lead not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Lead deleted successfully"})
}
