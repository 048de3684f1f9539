package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"meenakshitravels/models"
	"meenakshitravels/repository"
	"meenakshitravels/utils"
)

type PDFHandler struct {
	Leads    repository.LeadRepository
	Tariffs  repository.TariffRepository
	Settings repository.SettingsRepository
	SavePath string
}

// QuotePDF generates a quotation PDF for a lead, saves it locally, uploads it
// to R2 and records the public URL on the lead.
func (h *PDFHandler) QuotePDF(w http.ResponseWriter, r *http.Request) {
	leadID := r.URL.Query().Get("id")
	if leadID == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "missing lead id"})
		return
	}

	lead, err := h.Leads.GetByID(leadID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if lead == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Lead not found"})
		return
	}

	tariffs, _, err := h.Tariffs.List(models.ListQuery{Page: 1, Limit: 50, Status: "active"})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	contact, err := h.Settings.GetContact()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	siteName := models.DefaultTheme().SiteName
	if theme, err := h.Settings.GetTheme(); err == nil && theme != nil && theme.SiteName != "" {
		siteName = theme.SiteName
	}

	pdfBytes, err := utils.GenerateQuotePDF(lead, tariffs, contact, siteName)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "failed to generate PDF: " + err.Error()})
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "failed to create save directory: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("quote_%s_%d.pdf", lead.ID, time.Now().Unix())
	if err := os.WriteFile(filepath.Join(saveDir, filename), pdfBytes, 0644); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "failed to save PDF: " + err.Error()})
		return
	}

	fileURL, err := utils.UploadToR2(pdfBytes, "quotes/"+filename, "application/pdf")
	if err != nil {
		// Local copy exists; the upload is best-effort.
		log.Error().Err(err).Str("lead_id", lead.ID).Msg("quote PDF upload failed")
	} else {
		lead.QuotePDFURL = fileURL
		if err := h.Leads.Update(lead); err != nil {
			log.Error().Err(err).Str("lead_id", lead.ID).Msg("failed to record quote PDF URL")
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{
		"file": filename,
		"url":  fileURL,
	}})
}
