package handlers

import (
	"fmt"
	"strings"
	"time"

	"meenakshitravels/models"
	"meenakshitravels/repository"
)

// The fakes below back handler tests with in-memory state. They apply the
// same creation defaults as the database repositories so handler tests see
// the documented behavior.

func nextID(n *int) string {
	*n++
	return fmt.Sprintf("id-%d", *n)
}

func matchSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), strings.ToLower(search)) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, q models.ListQuery) ([]T, int64) {
	total := int64(len(items))
	start := (q.Page - 1) * q.Limit
	if start >= len(items) {
		return nil, total
	}
	end := start + q.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

type fakeTestimonialRepo struct {
	items []*models.Testimonial
	n     int
	err   error
}

func (r *fakeTestimonialRepo) Create(t *models.Testimonial) error {
	if r.err != nil {
		return r.err
	}
	t.ID = nextID(&r.n)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	if t.Status == "" {
		t.Status = models.TestimonialPublished
	}
	cp := *t
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeTestimonialRepo) List(q models.ListQuery) ([]*models.Testimonial, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []*models.Testimonial
	for _, t := range r.items {
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if !matchSearch(q.Search, t.Name, t.Location, t.Content) {
			continue
		}
		out = append(out, t)
	}
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeTestimonialRepo) GetByID(id string) (*models.Testimonial, error) {
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTestimonialRepo) Update(t *models.Testimonial) error {
	for i, existing := range r.items {
		if existing.ID == t.ID {
			cp := *t
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeTestimonialRepo) Delete(id string) error {
	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeTestimonialRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, t := range r.items {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeServiceRepo struct {
	items []*models.Service
	n     int
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	s.ID = nextID(&r.n)
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = "active"
	}
	cp := *s
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeServiceRepo) List(q models.ListQuery) ([]*models.Service, int64, error) {
	var out []*models.Service
	for _, s := range r.items {
		if q.Status != "" && s.Status != q.Status {
			continue
		}
		if q.Featured != nil && s.Featured != *q.Featured {
			continue
		}
		if !matchSearch(q.Search, s.Title, s.Description) {
			continue
		}
		out = append(out, s)
	}
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) Update(s *models.Service) error {
	for i, existing := range r.items {
		if existing.ID == s.ID {
			cp := *s
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeServiceRepo) Delete(id string) error {
	for i, s := range r.items {
		if s.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeServiceRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, s := range r.items {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeTariffRepo struct {
	items []*models.TariffItem
	n     int
}

func (r *fakeTariffRepo) Create(t *models.TariffItem) error {
	t.ID = nextID(&r.n)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Status == "" {
		t.Status = "active"
	}
	if t.AdditionalCharges == nil {
		t.AdditionalCharges = []models.AdditionalCharge{}
	}
	cp := *t
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeTariffRepo) List(q models.ListQuery) ([]*models.TariffItem, int64, error) {
	var out []*models.TariffItem
	for _, t := range r.items {
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if !matchSearch(q.Search, t.VehicleType) {
			continue
		}
		out = append(out, t)
	}
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeTariffRepo) GetByID(id string) (*models.TariffItem, error) {
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTariffRepo) Update(t *models.TariffItem) error {
	for i, existing := range r.items {
		if existing.ID == t.ID {
			cp := *t
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeTariffRepo) Delete(id string) error {
	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeTariffRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type fakeLeadRepo struct {
	items []*models.Lead
	n     int
}

func (r *fakeLeadRepo) Create(l *models.Lead) error {
	l.ID = nextID(&r.n)
	if l.SubmittedAt.IsZero() {
		l.SubmittedAt = time.Now().UTC()
	}
	if l.Status == "" {
		l.Status = models.LeadNew
	}
	cp := *l
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeLeadRepo) List(q models.ListQuery) ([]*models.Lead, int64, error) {
	var out []*models.Lead
	for _, l := range r.items {
		if q.Status != "" && l.Status != q.Status {
			continue
		}
		if !matchSearch(q.Search, l.FullName, l.Email, l.Phone) {
			continue
		}
		out = append(out, l)
	}
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeLeadRepo) GetByID(id string) (*models.Lead, error) {
	for _, l := range r.items {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLeadRepo) Update(l *models.Lead) error {
	for i, existing := range r.items {
		if existing.ID == l.ID {
			cp := *l
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeLeadRepo) Delete(id string) error {
	for i, l := range r.items {
		if l.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeLeadRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, l := range r.items {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeLeadRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type fakePageRepo struct {
	items []*models.Page
	n     int
}

func (r *fakePageRepo) Create(p *models.Page) error {
	p.ID = nextID(&r.n)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakePageRepo) List(q models.ListQuery) ([]*models.Page, int64, error) {
	var out []*models.Page
	for _, p := range r.items {
		if !matchSearch(q.Search, p.Title, p.Slug) {
			continue
		}
		out = append(out, p)
	}
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakePageRepo) GetBySlug(slug string) (*models.Page, error) {
	for _, p := range r.items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePageRepo) GetByID(id string) (*models.Page, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePageRepo) Update(p *models.Page) error {
	for i, existing := range r.items {
		if existing.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePageRepo) Delete(id string) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSettingsRepo struct {
	contact *models.ContactInfo
	theme   *models.Theme
	smtp    *models.SMTPSettings
}

func (r *fakeSettingsRepo) GetContact() (*models.ContactInfo, error) { return r.contact, nil }

func (r *fakeSettingsRepo) SaveContact(c *models.ContactInfo) error {
	cp := *c
	r.contact = &cp
	return nil
}

func (r *fakeSettingsRepo) GetTheme() (*models.Theme, error) { return r.theme, nil }

func (r *fakeSettingsRepo) SaveTheme(t *models.Theme) error {
	cp := *t
	r.theme = &cp
	return nil
}

func (r *fakeSettingsRepo) GetSMTP() (*models.SMTPSettings, error) { return r.smtp, nil }

func (r *fakeSettingsRepo) SaveSMTP(s *models.SMTPSettings) error {
	cp := *s
	r.smtp = &cp
	return nil
}

type fakeUserRepo struct {
	users []*models.AdminUser
	n     int
}

func (r *fakeUserRepo) CreateUser(u *models.AdminUser) error {
	u.ID = nextID(&r.n)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.AdminUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}
