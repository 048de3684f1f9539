package handlers

import (
	"encoding/json"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

type ContactHandler struct {
	Repo repository.SettingsRepository
}

// Get serves the contact singleton; defaults are returned if it was never saved.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.GetContact()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if c == nil {
		c = models.DefaultContactInfo()
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: c})
}

func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	var c models.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.Repo.SaveContact(&c); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save contact info: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Contact info saved", Data: c})
}
