package client

import (
	"context"
	"regexp"
	"strings"

	"meenakshitravels/models"
)

// WizardStep identifies one step of the quote form.
type WizardStep int

const (
	StepContact WizardStep = iota + 1
	StepService
	StepDescription
)

const minDescriptionLen = 10

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// QuoteForm aggregates the fields collected across all steps.
type QuoteForm struct {
	FullName               string
	Email                  string
	Phone                  string
	Company                string
	Service                string
	Message                string
	ProjectDescription     string
	AdditionalRequirements string
}

// QuoteWizard is the linear three-step quotation form: contact details, then
// service selection, then trip description. Advancing requires the current
// step to be valid; going back never does.
type QuoteWizard struct {
	client     *Client
	step       WizardStep
	Form       QuoteForm
	FormSource string
}

func NewQuoteWizard(c *Client) *QuoteWizard {
	return &QuoteWizard{client: c, step: StepContact, FormSource: "quote-wizard"}
}

// Step returns the active step.
func (w *QuoteWizard) Step() WizardStep {
	return w.step
}

// StepValid reports whether the active step's required fields pass.
func (w *QuoteWizard) StepValid() bool {
	switch w.step {
	case StepContact:
		return strings.TrimSpace(w.Form.FullName) != "" &&
			strings.TrimSpace(w.Form.Phone) != "" &&
			emailRe.MatchString(w.Form.Email)
	case StepService:
		return w.Form.Service != ""
	case StepDescription:
		return len(strings.TrimSpace(w.Form.ProjectDescription)) >= minDescriptionLen
	}
	return false
}

// Next advances to the following step. It is a no-op, returning false, while
// the active step is invalid or already the last.
func (w *QuoteWizard) Next() bool {
	if !w.StepValid() || w.step == StepDescription {
		return false
	}
	w.step++
	return true
}

// Prev steps backward unconditionally.
func (w *QuoteWizard) Prev() {
	if w.step > StepContact {
		w.step--
	}
}

// Submit posts the aggregated payload. On success all state resets to a blank
// first step; on failure everything entered is preserved for a retry.
func (w *QuoteWizard) Submit(ctx context.Context) error {
	if w.step != StepDescription || !w.StepValid() {
		return ErrIncompleteForm
	}

	lead := &models.Lead{
		FullName:               w.Form.FullName,
		Email:                  w.Form.Email,
		Phone:                  w.Form.Phone,
		Company:                w.Form.Company,
		Service:                w.Form.Service,
		Message:                w.Form.Message,
		ProjectDescription:     w.Form.ProjectDescription,
		AdditionalRequirements: w.Form.AdditionalRequirements,
		FormSource:             w.FormSource,
	}

	if err := w.client.SubmitLead(ctx, lead); err != nil {
		return err
	}

	w.Reset()
	return nil
}

// Reset clears the form and returns to the first step.
func (w *QuoteWizard) Reset() {
	w.Form = QuoteForm{}
	w.step = StepContact
}
