package signup

import (
	"errors"
	"testing"

	"streamify/models"
)

func draftThrough(step Step) *models.SignupDraft {
	d := &models.SignupDraft{DraftID: "d-1"}
	pos := stepOrder[step]
	if pos >= 1 {
		d.Email = "viewer@example.com"
	}
	if pos >= 2 {
		d.Password = "secret1"
	}
	if pos >= 3 {
		d.PlanID = models.PlanBasic
	}
	if pos >= 4 {
		d.PaymentMethod = models.PaymentMethodCard
	}
	if pos >= 5 {
		d.Card = &models.CardDetails{Number: "4111 1111 1111 1111", Expiry: "12/27", CVV: "123", NameOnCard: "A Viewer"}
	}
	return d
}

func redirectTarget(t *testing.T, err error) Step {
	t.Helper()
	var incomplete *StepIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected StepIncompleteError, got %v", err)
	}
	return incomplete.RedirectTo
}

func TestGuardStep(t *testing.T) {
	allSteps := []Step{StepEmail, StepPassword, StepPlan, StepPaymentMethod, StepPaymentCard, StepPaymentUpi, StepSuccess}

	t.Run("empty draft may only enter the first step", func(t *testing.T) {
		empty := &models.SignupDraft{DraftID: "d-1"}
		if err := GuardStep(empty, StepEmail); err != nil {
			t.Fatalf("entering email step: %v", err)
		}
		for _, step := range allSteps[1:] {
			err := GuardStep(empty, step)
			if err == nil {
				t.Fatalf("entering %s with empty draft should fail", step)
			}
			if got := redirectTarget(t, err); got != StepEmail {
				t.Errorf("entering %s redirects to %s, want %s", step, got, StepEmail)
			}
		}
	})

	t.Run("nil draft redirects to the first step", func(t *testing.T) {
		err := GuardStep(nil, StepPlan)
		if got := redirectTarget(t, err); got != StepEmail {
			t.Errorf("redirect = %s, want %s", got, StepEmail)
		}
	})

	t.Run("each step admits a draft complete through it", func(t *testing.T) {
		for _, step := range []Step{StepEmail, StepPassword, StepPlan, StepPaymentMethod, StepPaymentCard} {
			if err := GuardStep(draftThrough(step), step); err != nil {
				t.Errorf("entering %s with its prerequisites met: %v", step, err)
			}
		}
	})

	t.Run("redirect targets the earliest incomplete step", func(t *testing.T) {
		d := draftThrough(StepPassword)
		// Password not yet set; deep link all the way to the card form.
		err := GuardStep(d, StepPaymentCard)
		if got := redirectTarget(t, err); got != StepPassword {
			t.Errorf("redirect = %s, want %s", got, StepPassword)
		}
	})

	t.Run("redirects never point forward", func(t *testing.T) {
		// Every possible redirect must land strictly before the step being
		// entered, otherwise a guard chain could loop.
		for _, step := range allSteps {
			for _, have := range allSteps {
				err := GuardStep(draftThrough(have), step)
				if err == nil {
					continue
				}
				got := redirectTarget(t, err)
				if stepOrder[got] >= stepOrder[step] {
					t.Errorf("entering %s with draft through %s redirects to %s, which is not earlier", step, have, got)
				}
			}
		}
	})

	t.Run("wrong branch redirects to the method choice", func(t *testing.T) {
		d := draftThrough(StepPaymentCard)
		d.PaymentMethod = models.PaymentMethodUpi
		err := GuardStep(d, StepPaymentCard)
		if got := redirectTarget(t, err); got != StepPaymentMethod {
			t.Errorf("redirect = %s, want %s", got, StepPaymentMethod)
		}

		d.PaymentMethod = models.PaymentMethodCard
		err = GuardStep(d, StepPaymentUpi)
		if got := redirectTarget(t, err); got != StepPaymentMethod {
			t.Errorf("redirect = %s, want %s", got, StepPaymentMethod)
		}
	})
}

func TestNextAfterMethod(t *testing.T) {
	cases := []struct {
		method string
		want   Step
		ok     bool
	}{
		{models.PaymentMethodCard, StepPaymentCard, true},
		{models.PaymentMethodUpi, StepPaymentUpi, true},
		{"", "", false},
		{"cash", "", false},
	}
	for _, tc := range cases {
		got, ok := NextAfterMethod(tc.method)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NextAfterMethod(%q) = (%s, %v), want (%s, %v)", tc.method, got, ok, tc.want, tc.ok)
		}
	}
}
