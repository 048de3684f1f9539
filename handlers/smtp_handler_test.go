package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meenakshitravels/models"
)

func TestSMTPGetServesDefaultsWhenUnsaved(t *testing.T) {
	h := &SMTPHandler{Repo: &fakeSettingsRepo{}}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/admin/EmailSmtp", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	d := decodeResponse(t, rec)
	var s models.SMTPSettings
	require.NoError(t, json.Unmarshal(d.Data, &s))
	assert.Equal(t, 587, s.Port)
	assert.True(t, s.UseTLS)
}

func TestSMTPGetMasksPassword(t *testing.T) {
	repo := &fakeSettingsRepo{smtp: &models.SMTPSettings{
		Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com",
		Password: "hunter2",
	}}
	h := &SMTPHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	d := decodeResponse(t, rec)
	var s models.SMTPSettings
	require.NoError(t, json.Unmarshal(d.Data, &s))
	assert.Empty(t, s.Password)
}

func TestSMTPSaveKeepsStoredPasswordWhenBlank(t *testing.T) {
	repo := &fakeSettingsRepo{smtp: &models.SMTPSettings{
		Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com",
		Password: "hunter2",
	}}
	h := &SMTPHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest(http.MethodPut, "/", jsonBody(t, models.SMTPSettings{
		Host: "smtp.example.com", Port: 465, FromEmail: "noreply@example.com", UseTLS: true,
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "hunter2", repo.smtp.Password)
	assert.Equal(t, 465, repo.smtp.Port)

	// The response never echoes a password either.
	d := decodeResponse(t, rec)
	var s models.SMTPSettings
	require.NoError(t, json.Unmarshal(d.Data, &s))
	assert.Empty(t, s.Password)
}

func TestSMTPSaveValidation(t *testing.T) {
	h := &SMTPHandler{Repo: &fakeSettingsRepo{}}

	t.Run("missing host", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Save(rec, httptest.NewRequest(http.MethodPut, "/", jsonBody(t, models.SMTPSettings{
			Port: 587, FromEmail: "noreply@example.com",
		})))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("port out of range", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Save(rec, httptest.NewRequest(http.MethodPut, "/", jsonBody(t, models.SMTPSettings{
			Host: "smtp.example.com", Port: 99999, FromEmail: "noreply@example.com",
		})))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSMTPActionWithoutSavedSettings(t *testing.T) {
	h := &SMTPHandler{Repo: &fakeSettingsRepo{}}

	rec := httptest.NewRecorder()
	h.Action(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{
		"action": "test-connection",
	})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSMTPActionUnknown(t *testing.T) {
	repo := &fakeSettingsRepo{smtp: &models.SMTPSettings{
		Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com",
	}}
	h := &SMTPHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.Action(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{
		"action": "reboot",
	})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	d := decodeResponse(t, rec)
	assert.Contains(t, d.Message, "Unknown action")
}

func TestSMTPSendTestEmailRequiresRecipient(t *testing.T) {
	repo := &fakeSettingsRepo{smtp: &models.SMTPSettings{
		Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com",
	}}
	h := &SMTPHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.Action(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{
		"action": "send-test-email",
	})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
