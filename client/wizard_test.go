package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meenakshitravels/models"
)

func TestWizardStartsAtContact(t *testing.T) {
	w := NewQuoteWizard(New("http://unused"))
	assert.Equal(t, StepContact, w.Step())
	assert.False(t, w.StepValid())
}

func TestWizardContactStepGating(t *testing.T) {
	w := NewQuoteWizard(New("http://unused"))

	w.Form.FullName = "Asha"
	w.Form.Phone = "+91 98400 00000"
	w.Form.Email = "not-an-email"
	assert.False(t, w.Next())
	assert.Equal(t, StepContact, w.Step())

	// Emails without a domain dot stay invalid.
	w.Form.Email = "asha@local"
	assert.False(t, w.Next())

	w.Form.Email = "asha@example.com"
	assert.True(t, w.Next())
	assert.Equal(t, StepService, w.Step())
}

func TestWizardServiceStepGating(t *testing.T) {
	w := wizardAtStep(t, StepService)

	assert.False(t, w.Next())

	w.Form.Service = "Airport Taxi"
	assert.True(t, w.Next())
	assert.Equal(t, StepDescription, w.Step())
}

func TestWizardDescriptionStepGating(t *testing.T) {
	w := wizardAtStep(t, StepDescription)

	w.Form.ProjectDescription = "too short"
	assert.False(t, w.StepValid())

	// Whitespace does not count toward the minimum length.
	w.Form.ProjectDescription = "   hi   "
	assert.False(t, w.StepValid())

	w.Form.ProjectDescription = "Pickup from Chennai airport on Friday night."
	assert.True(t, w.StepValid())
	assert.False(t, w.Next(), "last step has nowhere to advance")
}

func TestWizardPrevIsUnconditional(t *testing.T) {
	w := wizardAtStep(t, StepDescription)

	w.Prev()
	assert.Equal(t, StepService, w.Step())
	w.Prev()
	assert.Equal(t, StepContact, w.Step())
	w.Prev()
	assert.Equal(t, StepContact, w.Step())
}

func TestWizardSubmitSuccessResets(t *testing.T) {
	var got models.Lead
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/lead", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(rw, true, "Lead captured", nil, nil)
	}))
	defer srv.Close()

	w := wizardAtStep(t, StepDescription)
	w.Form.ProjectDescription = "Pickup from Chennai airport on Friday night."
	w.client = New(srv.URL)

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, "Asha", got.FullName)
	assert.Equal(t, "asha@example.com", got.Email)
	assert.Equal(t, "Airport Taxi", got.Service)
	assert.Equal(t, "quote-wizard", got.FormSource)

	assert.Equal(t, StepContact, w.Step())
	assert.Equal(t, QuoteForm{}, w.Form)
}

func TestWizardSubmitFailurePreservesState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, false, "database unavailable", nil, nil)
	}))
	defer srv.Close()

	w := wizardAtStep(t, StepDescription)
	w.Form.ProjectDescription = "Pickup from Chennai airport on Friday night."
	w.client = New(srv.URL)

	require.Error(t, w.Submit(context.Background()))

	assert.Equal(t, StepDescription, w.Step())
	assert.Equal(t, "Asha", w.Form.FullName)
	assert.Equal(t, "Pickup from Chennai airport on Friday night.", w.Form.ProjectDescription)
}

func TestWizardSubmitRequiresLastStep(t *testing.T) {
	w := NewQuoteWizard(New("http://unused"))
	assert.ErrorIs(t, w.Submit(context.Background()), ErrIncompleteForm)
}

// wizardAtStep walks a wizard forward with valid data up to the given step.
func wizardAtStep(t *testing.T, step WizardStep) *QuoteWizard {
	t.Helper()
	w := NewQuoteWizard(New("http://unused"))
	w.Form.FullName = "Asha"
	w.Form.Phone = "+91 98400 00000"
	w.Form.Email = "asha@example.com"
	if step > StepContact {
		require.True(t, w.Next())
	}
	if step > StepService {
		w.Form.Service = "Airport Taxi"
		require.True(t, w.Next())
	}
	require.Equal(t, step, w.Step())
	return w
}
