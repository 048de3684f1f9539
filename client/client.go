// Package client is the Go API client used by the seed tooling and by
// anything else that talks to the backend the way the storefront does:
// single-document fetchers with a fallback timeout, a paginated list
// controller, and the multi-step quote wizard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"meenakshitravels/models"
	"meenakshitravels/utils"
)

// adminTokenKey is the preference key the admin token is stored under.
const adminTokenKey = "admin_token"

// ErrIncompleteForm is returned when a submit is attempted before every step
// of a multi-step form has been filled out.
var ErrIncompleteForm = errors.New("client: form is incomplete")

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Prefs   PrefStore

	// FallbackAfter bounds how long single-document fetchers wait before
	// serving default content instead.
	FallbackAfter time.Duration

	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:       baseURL,
		HTTP:          &http.Client{Timeout: 30 * time.Second},
		Prefs:         NewMemoryPrefs(),
		FallbackAfter: 5 * time.Second,
	}
}

// envelope mirrors the server's ApiResponse.
type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return env, fmt.Errorf("request failed: %s", msg)
	}
	return env, nil
}

// Login authenticates and persists the bearer token for later sessions.
func (c *Client) Login(ctx context.Context, email, password string) error {
	env, err := c.do(ctx, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return err
	}
	c.token = data.Token
	_ = c.Prefs.Set(adminTokenKey, data.Token)
	return nil
}

// RestoreSession loads a previously persisted token, if any.
func (c *Client) RestoreSession() bool {
	token, ok := c.Prefs.Get(adminTokenKey)
	if ok {
		c.token = token
	}
	return ok
}

// SetToken injects a token directly (tests, pre-shared credentials).
func (c *Client) SetToken(token string) {
	c.token = token
}

// GetContact fetches the contact singleton. If the request has not completed
// within FallbackAfter, default copy is returned instead so callers never
// block indefinitely; the fetch result is discarded. The second return value
// reports whether the fallback was used.
func (c *Client) GetContact(ctx context.Context) (*models.ContactInfo, bool, error) {
	type result struct {
		contact *models.ContactInfo
		err     error
	}
	ch := make(chan result, 1)

	go func() {
		env, err := c.do(ctx, http.MethodGet, "/api/contact", nil)
		if err != nil {
			ch <- result{err: err}
			return
		}
		contact := &models.ContactInfo{}
		if err := json.Unmarshal(env.Data, contact); err != nil {
			ch <- result{err: err}
			return
		}
		ch <- result{contact: contact}
	}()

	fallback := time.NewTimer(c.FallbackAfter)
	defer fallback.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, false, res.err
		}
		return res.contact, false, nil
	case <-fallback.C:
		return models.DefaultContactInfo(), true, nil
	}
}

// GetTheme fetches the theme singleton.
func (c *Client) GetTheme(ctx context.Context) (*models.Theme, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/theme", nil)
	if err != nil {
		return nil, err
	}
	theme := &models.Theme{}
	if err := json.Unmarshal(env.Data, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// ThemeVars recomputes the CSS custom properties a page applies to its root
// element: raw hex, the brand gradient, and HSL triples.
func ThemeVars(t *models.Theme) map[string]string {
	defaults := models.DefaultTheme()

	primary := t.PrimaryColor
	if _, err := utils.HexToHSL(primary); err != nil {
		primary = defaults.PrimaryColor
	}
	secondary := t.SecondaryColor
	if _, err := utils.HexToHSL(secondary); err != nil {
		secondary = defaults.SecondaryColor
	}

	primaryHSL, _ := utils.HexToHSL(primary)
	secondaryHSL, _ := utils.HexToHSL(secondary)

	return map[string]string{
		"--color-primary":   primary,
		"--color-secondary": secondary,
		"--brand-gradient":  utils.GradientString(primary, secondary, t.GradientDirection),
		"--primary":         primaryHSL.String(),
		"--secondary":       secondaryHSL.String(),
		"--accent":          primaryHSL.String(),
	}
}

// SubmitLead posts a public quote/contact submission.
func (c *Client) SubmitLead(ctx context.Context, lead *models.Lead) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/lead", lead)
	return err
}

// CreateService posts a service through the admin API (requires a session).
func (c *Client) CreateService(ctx context.Context, s *models.Service) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/service", s)
	return err
}

// CreateTestimonial posts a testimonial through the admin API.
func (c *Client) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/testimonial", t)
	return err
}

// CreateTariff posts a tariff item through the admin API.
func (c *Client) CreateTariff(ctx context.Context, t *models.TariffItem) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/tariff", t)
	return err
}
