package handlers

import (
	"encoding/json"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
	"meenakshitravels/utils"
)

type SMTPHandler struct {
	Repo repository.SettingsRepository
}

func (h *SMTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.GetSMTP()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if s == nil {
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: &models.SMTPSettings{Port: 587, UseTLS: true}})
		return
	}
	s.Password = "" // never echo the stored password
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: s})
}

func (h *SMTPHandler) Save(w http.ResponseWriter, r *http.Request) {
	var s models.SMTPSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := validate.Struct(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	// An empty password on save keeps the previously stored one.
	if s.Password == "" {
		if existing, err := h.Repo.GetSMTP(); err == nil && existing != nil {
			s.Password = existing.Password
		}
	}

	if err := h.Repo.SaveSMTP(&s); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save SMTP settings: " + err.Error()})
		return
	}

	s.Password = ""
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "SMTP settings saved", Data: s})
}

// Action handles POST {action: "test-connection" | "send-test-email", to}.
func (h *SMTPHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
		To     string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	s, err := h.Repo.GetSMTP()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if s == nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "SMTP settings have not been saved yet"})
		return
	}

	mailer := utils.NewMailer(s)

	switch req.Action {
	case "test-connection":
		if err := mailer.TestConnection(); err != nil {
			writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: "Connection failed: " + err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Connection successful"})

	case "send-test-email":
		to := req.To
		if to == "" {
			to = s.NotifyEmail
		}
		if to == "" {
			writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "No recipient address provided"})
			return
		}
		if err := mailer.SendTestEmail(to); err != nil {
			writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: "Send failed: " + err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Test email sent to " + to})

	default:
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Unknown action: " + req.Action})
	}
}
