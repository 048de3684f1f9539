package models

// DashboardStats aggregates the counters shown on the admin landing page.
type DashboardStats struct {
	TotalLeads            int64            `json:"total_leads"`
	LeadsByStatus         map[string]int64 `json:"leads_by_status"`
	PendingTestimonials   int64            `json:"pending_testimonials"`
	PublishedTestimonials int64            `json:"published_testimonials"`
	ActiveServices        int64            `json:"active_services"`
	TariffItems           int64            `json:"tariff_items"`
}
