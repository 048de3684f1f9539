package handlers

import (
	"encoding/json"
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
	"meenakshitravels/utils"
)

type ThemeHandler struct {
	Repo repository.SettingsRepository
}

func (h *ThemeHandler) get() (*models.Theme, error) {
	t, err := h.Repo.GetTheme()
	if err != nil {
		return nil, err
	}
	if t == nil {
		t = models.DefaultTheme()
	}
	return t, nil
}

// Get serves the theme singleton; the default branding if never saved.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.get()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: t})
}

func (h *ThemeHandler) Save(w http.ResponseWriter, r *http.Request) {
	var t models.Theme
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := validate.Struct(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: validationMessage(err)})
		return
	}

	if err := h.Repo.SaveTheme(&t); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to save theme: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Theme saved", Data: t})
}

// Reset restores the default branding server-side.
func (h *ThemeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	t := models.DefaultTheme()
	if err := h.Repo.SaveTheme(t); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to reset theme: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Theme reset to defaults", Data: t})
}

// CSS serves the :root custom-property block the storefront links on every
// page, so branding propagates without a per-page round trip.
func (h *ThemeHandler) CSS(w http.ResponseWriter, r *http.Request) {
	t, err := h.get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defaults := models.DefaultTheme()
	css := utils.ThemeCSS(t.PrimaryColor, t.SecondaryColor, t.GradientDirection,
		defaults.PrimaryColor, defaults.SecondaryColor)

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(css))
}
