package signup

import "streamify/models"

// Step names one state of the signup wizard.
type Step string

const (
	StepEmail         Step = "email"
	StepPassword      Step = "password"
	StepPlan          Step = "plan"
	StepPaymentMethod Step = "payment_method"
	StepPaymentCard   Step = "payment_card"
	StepPaymentUpi    Step = "payment_upi"
	StepSuccess       Step = "success"
)

// stepField names a draft field owned by exactly one step.
type stepField string

const (
	fieldEmail         stepField = "email"
	fieldPassword      stepField = "password"
	fieldPlan          stepField = "selectedPlanId"
	fieldPaymentMethod stepField = "paymentMethod"
	fieldPaymentData   stepField = "paymentDetails"
)

// stepOrder is the linear position of each step. The two payment branches
// share a position: only one of them is ever visited.
var stepOrder = map[Step]int{
	StepEmail:         0,
	StepPassword:      1,
	StepPlan:          2,
	StepPaymentMethod: 3,
	StepPaymentCard:   4,
	StepPaymentUpi:    4,
	StepSuccess:       5,
}

// ownedField maps a step to the draft field it owns. StepSuccess owns
// nothing.
var ownedField = map[Step]stepField{
	StepEmail:         fieldEmail,
	StepPassword:      fieldPassword,
	StepPlan:          fieldPlan,
	StepPaymentMethod: fieldPaymentMethod,
	StepPaymentCard:   fieldPaymentData,
	StepPaymentUpi:    fieldPaymentData,
}

// fieldOwner is the earliest step owning each field, used to turn a missing
// field into a redirect target.
var fieldOwner = map[stepField]Step{
	fieldEmail:         StepEmail,
	fieldPassword:      StepPassword,
	fieldPlan:          StepPlan,
	fieldPaymentMethod: StepPaymentMethod,
	fieldPaymentData:   StepPaymentCard,
}

// RequiredFields returns, in step order, the fields owned by every step
// strictly before the given one. A step never requires its own field, which
// is what makes guard redirects cycle-free: the redirect target is always
// strictly earlier than the step being entered.
func RequiredFields(step Step) []stepField {
	pos, ok := stepOrder[step]
	if !ok {
		return nil
	}
	ordered := []struct {
		s Step
		f stepField
	}{
		{StepEmail, fieldEmail},
		{StepPassword, fieldPassword},
		{StepPlan, fieldPlan},
		{StepPaymentMethod, fieldPaymentMethod},
		{StepPaymentCard, fieldPaymentData},
	}
	var fields []stepField
	for _, e := range ordered {
		if stepOrder[e.s] < pos {
			fields = append(fields, e.f)
		}
	}
	return fields
}

// hasField reports whether the draft carries a value for the field.
func hasField(d *models.SignupDraft, f stepField) bool {
	switch f {
	case fieldEmail:
		return d.Email != ""
	case fieldPassword:
		return d.Password != ""
	case fieldPlan:
		return d.PlanID != ""
	case fieldPaymentMethod:
		return d.PaymentMethod != ""
	case fieldPaymentData:
		return d.Card != nil || d.Upi != nil
	}
	return false
}

// GuardStep checks that every field required on entry to step is present in
// the draft. A nil draft fails the guard for anything past the first step.
// On a missing field it returns a StepIncompleteError naming the earliest
// step that owns it; the caller converts that into a redirect, never an
// error message.
func GuardStep(d *models.SignupDraft, step Step) error {
	required := RequiredFields(step)
	if len(required) == 0 {
		return nil
	}
	if d == nil {
		return &StepIncompleteError{RedirectTo: StepEmail, MissingField: string(fieldEmail)}
	}
	for _, f := range required {
		if !hasField(d, f) {
			return &StepIncompleteError{RedirectTo: fieldOwner[f], MissingField: string(f)}
		}
	}
	// Entering a payment branch that contradicts the stored method sends the
	// viewer back to the method choice. That is the wizard's only branch.
	switch step {
	case StepPaymentCard:
		if d.PaymentMethod != models.PaymentMethodCard {
			return &StepIncompleteError{RedirectTo: StepPaymentMethod, MissingField: string(fieldPaymentMethod)}
		}
	case StepPaymentUpi:
		if d.PaymentMethod != models.PaymentMethodUpi {
			return &StepIncompleteError{RedirectTo: StepPaymentMethod, MissingField: string(fieldPaymentMethod)}
		}
	}
	return nil
}

// NextAfterMethod returns the branch step selected by the stored payment
// method.
func NextAfterMethod(method string) (Step, bool) {
	switch method {
	case models.PaymentMethodCard:
		return StepPaymentCard, true
	case models.PaymentMethodUpi:
		return StepPaymentUpi, true
	}
	return "", false
}
