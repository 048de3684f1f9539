package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"meenakshitravels/handlers"
	"meenakshitravels/utils"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// Handlers bundles everything SetupRoutes wires up.
type Handlers struct {
	User        *handlers.UserHandler
	Testimonial *handlers.TestimonialHandler
	Service     *handlers.ServiceHandler
	Tariff      *handlers.TariffHandler
	Lead        *handlers.LeadHandler
	Page        *handlers.PageHandler
	Contact     *handlers.ContactHandler
	Theme       *handlers.ThemeHandler
	SMTP        *handlers.SMTPHandler
	Dashboard   *handlers.DashboardHandler
	Upload      *handlers.UploadHandler
	PDF         *handlers.PDFHandler
	JWTSecret   string
}

// requireAuth enforces a valid admin bearer token.
func (h *Handlers) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || token == authHeader {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Bearer token required"}`))
			return
		}

		if _, err := utils.ValidateToken(token, h.JWTSecret); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Invalid or expired token"}`))
			return
		}

		next(w, r)
	}
}

func handle(pattern string, fn http.HandlerFunc) {
	http.Handle(pattern, withLogging(withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn)))))
}

func SetupRoutes(h *Handlers) {
	// Auth
	handle("/api/admin/signup", h.User.Signup)
	handle("/api/admin/login", h.User.Login)

	// Public storefront
	handle("/api/contact", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Contact.Get(w, r)
	})
	handle("/api/theme", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Theme.Get(w, r)
	})
	handle("/api/theme.css", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Theme.CSS(w, r)
	})
	handle("/api/testimonials", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Testimonial.ListPublished(w, r)
	})
	handle("/api/services", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Service.ListActive(w, r)
	})
	handle("/api/services/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/api/services/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.Service.GetByID(w, r, id)
	})
	handle("/api/tariff", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Tariff.List(w, r)
	})
	handle("/api/page", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Page.GetBySlug(w, r)
	})

	// Leads: the public form POSTs here, the admin panel lists with auth.
	handle("/api/admin/lead", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.Lead.Capture(w, r)
		case http.MethodGet:
			h.requireAuth(h.Lead.List)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/admin/lead/pdf", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.PDF.QuotePDF(w, r)
	}))
	handle("/api/admin/lead/", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/lead/")
		if id == "" || id == "pdf" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			h.Lead.Update(w, r, id)
		case http.MethodDelete:
			h.Lead.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Admin CRUD
	adminCollection("/api/admin/testimonial", h,
		h.Testimonial.List, h.Testimonial.Create, h.Testimonial.Update, h.Testimonial.Delete)
	adminCollection("/api/admin/service", h,
		h.Service.List, h.Service.Create, h.Service.Update, h.Service.Delete)
	adminCollection("/api/admin/tariff", h,
		h.Tariff.List, h.Tariff.Create, h.Tariff.Update, h.Tariff.Delete)
	adminCollection("/api/admin/page", h,
		h.Page.List, h.Page.Create, h.Page.Update, h.Page.Delete)

	// Singletons
	handle("/api/admin/contact", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Contact.Get(w, r)
		case http.MethodPut:
			h.Contact.Save(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	handle("/api/admin/Theme", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Theme.Get(w, r)
		case http.MethodPut:
			h.Theme.Save(w, r)
		case http.MethodPost:
			h.Theme.Reset(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	handle("/api/admin/EmailSmtp", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.SMTP.Get(w, r)
		case http.MethodPut:
			h.SMTP.Save(w, r)
		case http.MethodPost:
			h.SMTP.Action(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Misc admin
	handle("/api/admin/dashboard", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Dashboard.Stats(w, r)
	}))
	handle("/api/admin/upload", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Upload.Upload(w, r)
	}))
}

// adminCollection wires GET/POST on the collection path and PUT/DELETE on the
// item path, all behind auth.
func adminCollection(
	base string,
	h *Handlers,
	list http.HandlerFunc,
	create http.HandlerFunc,
	update func(http.ResponseWriter, *http.Request, string),
	del func(http.ResponseWriter, *http.Request, string),
) {
	handle(base, h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	handle(base+"/", h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, base+"/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			update(w, r, id)
		case http.MethodDelete:
			del(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}
