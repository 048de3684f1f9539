package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meenakshitravels/models"
)

// writeEnvelope renders the server's response shape for test handlers.
func writeEnvelope(rw http.ResponseWriter, success bool, message string, data interface{}, pagination *models.Pagination) {
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(map[string]interface{}{
		"success":    success,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

func TestLoginPersistsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/login", r.URL.Path)
		writeEnvelope(rw, true, "Login successful", map[string]string{"token": "tok-1"}, nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Login(context.Background(), "admin@example.com", "secret"))

	v, ok := c.Prefs.Get("admin_token")
	assert.True(t, ok)
	assert.Equal(t, "tok-1", v)

	// A fresh client over the same prefs picks the session back up.
	c2 := New(srv.URL)
	c2.Prefs = c.Prefs
	assert.True(t, c2.RestoreSession())
}

func TestRestoreSessionWithoutToken(t *testing.T) {
	c := New("http://unused")
	assert.False(t, c.RestoreSession())
}

func TestDoSendsBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeEnvelope(rw, true, "", &models.Theme{}, nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-2")
	_, err := c.GetTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", auth)
}

func TestDoReturnsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadRequest)
		writeEnvelope(rw, false, "Validation failed", nil, nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SubmitLead(context.Background(), &models.Lead{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validation failed")
}

func TestGetContactReturnsDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contact", r.URL.Path)
		writeEnvelope(rw, true, "", &models.ContactInfo{City: "Madurai"}, nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	contact, usedFallback, err := c.GetContact(context.Background())
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, "Madurai", contact.City)
}

func TestGetContactFallsBackOnSlowServer(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		<-release
		writeEnvelope(rw, true, "", &models.ContactInfo{City: "Madurai"}, nil)
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL)
	c.FallbackAfter = 20 * time.Millisecond

	contact, usedFallback, err := c.GetContact(context.Background())
	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, models.DefaultContactInfo().Email, contact.Email)
}

func TestThemeVars(t *testing.T) {
	vars := ThemeVars(&models.Theme{
		PrimaryColor:      "#F59E0B",
		SecondaryColor:    "#1E3A8A",
		GradientDirection: "to right",
	})

	assert.Len(t, vars, 6)
	assert.Equal(t, "#F59E0B", vars["--color-primary"])
	assert.Equal(t, "#1E3A8A", vars["--color-secondary"])
	assert.Equal(t, "linear-gradient(to right, #F59E0B, #1E3A8A)", vars["--brand-gradient"])
	assert.Equal(t, "38 92% 50%", vars["--primary"])
	assert.Equal(t, vars["--primary"], vars["--accent"])
}

func TestThemeVarsInvalidColorFallsBack(t *testing.T) {
	vars := ThemeVars(&models.Theme{PrimaryColor: "##bad", SecondaryColor: ""})
	defaults := models.DefaultTheme()
	assert.Equal(t, defaults.PrimaryColor, vars["--color-primary"])
	assert.Equal(t, defaults.SecondaryColor, vars["--color-secondary"])
}
