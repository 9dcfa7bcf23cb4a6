// File: services/signup/wizard.go
package signup

import (
	"context"
	"strings"
	"time"

	"streamify/models"
	"streamify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSignup creates a fresh draft around the captured email. Starting over
// simply issues a new draft; there is at most one live draft per wizard tab.
func (s *DefaultService) StartSignup(ctx context.Context, email string) (*models.SignupDraft, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &ValidationError{Fields: map[string]string{"email": "Email is required"}}
	}
	// The browser's native email input is the only format check the original
	// performs; mirror that with a minimal shape test.
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return nil, &ValidationError{Fields: map[string]string{"email": "Enter a valid email address"}}
	}

	draft := &models.SignupDraft{
		DraftID:   uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		utils.GetLogger().Error("StartSignup: failed to save draft", zap.Error(err))
		return nil, err
	}
	return draft, nil
}

// GetStep loads the draft and runs the entry guard for the step, so a deep
// link into a later step redirects before its form ever renders.
func (s *DefaultService) GetStep(ctx context.Context, draftID string, step Step) (*models.SignupDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := GuardStep(draft, step); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetPassword validates the password step and merges it into the draft.
func (s *DefaultService) SetPassword(ctx context.Context, draftID, password, confirm string) (*models.SignupDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := GuardStep(draft, StepPassword); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if len(password) < 6 {
		fields["password"] = "Password must be at least 6 characters long"
	}
	if password != confirm {
		fields["confirmPassword"] = "Passwords do not match"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	draft.Password = password
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectPlan commits the plan choice. Pressing "Next" always succeeds: an
// unknown or empty id collapses to the default plan instead of failing.
func (s *DefaultService) SelectPlan(ctx context.Context, draftID, planID string) (*models.SignupDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := GuardStep(draft, StepPlan); err != nil {
		return nil, err
	}

	if !models.IsKnownPlan(planID) {
		planID = models.DefaultPlanID
	}
	draft.PlanID = planID
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectPaymentMethod records the branch choice and returns the step it
// routes to. card and upi are the only reachable branches.
func (s *DefaultService) SelectPaymentMethod(ctx context.Context, draftID, method string) (Step, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return "", err
	}
	if err := GuardStep(draft, StepPaymentMethod); err != nil {
		return "", err
	}

	next, ok := NextAfterMethod(method)
	if !ok {
		return "", &ValidationError{Fields: map[string]string{"method": "Choose card or UPI"}}
	}
	draft.PaymentMethod = method
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return "", err
	}
	return next, nil
}

func (s *DefaultService) loadDraft(ctx context.Context, draftID string) (*models.SignupDraft, error) {
	if draftID == "" {
		return nil, ErrDraftNotFound
	}
	return s.Drafts.Get(ctx, draftID)
}
