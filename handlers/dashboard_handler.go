package handlers

import (
	"net/http"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

type DashboardHandler struct {
	Leads        repository.LeadRepository
	Testimonials repository.TestimonialRepository
	Services     repository.ServiceRepository
	Tariffs      repository.TariffRepository
}

// Stats aggregates the counters for the admin landing page. Counts are read
// sequentially; the page tolerates slightly stale numbers.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := models.DashboardStats{
		LeadsByStatus: map[string]int64{},
	}

	var err error
	if stats.TotalLeads, err = h.Leads.Count(); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	for _, status := range []string{models.LeadNew, models.LeadContacted, models.LeadConverted, models.LeadClosed} {
		n, err := h.Leads.CountByStatus(status)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
			return
		}
		stats.LeadsByStatus[status] = n
	}

	if stats.PendingTestimonials, err = h.Testimonials.CountByStatus(models.TestimonialPending); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if stats.PublishedTestimonials, err = h.Testimonials.CountByStatus(models.TestimonialPublished); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if stats.ActiveServices, err = h.Services.CountByStatus("active"); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if stats.TariffItems, err = h.Tariffs.Count(); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats})
}
