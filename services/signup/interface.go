package signup

import (
	"context"
	"sync"
	"time"

	invoiceRepo "streamify/database/repository/invoice"
	userRepo "streamify/database/repository/user"
	"streamify/models"
)

// Service drives the signup wizard: one operation per step, plus the success
// countdown. Every operation past StartSignup runs the step guard before
// touching its own fields.
type Service interface {
	// StartSignup captures the email and creates a fresh draft.
	StartSignup(ctx context.Context, email string) (*models.SignupDraft, error)
	// GetStep re-enters a step, running only the guard. Used when a step
	// page loads so an invalid deep link redirects before the form renders.
	GetStep(ctx context.Context, draftID string, step Step) (*models.SignupDraft, error)
	// SetPassword validates and commits the password step.
	SetPassword(ctx context.Context, draftID, password, confirm string) (*models.SignupDraft, error)
	// SelectPlan commits the plan step. It never fails validation: unknown
	// ids resolve to the default plan.
	SelectPlan(ctx context.Context, draftID, planID string) (*models.SignupDraft, error)
	// SelectPaymentMethod commits the branch choice and names the next step.
	SelectPaymentMethod(ctx context.Context, draftID, method string) (Step, error)
	// SubmitCardDetails commits the card form and finalizes the signup.
	SubmitCardDetails(ctx context.Context, draftID string, in CardDetailsInput) (*FinalizeResult, error)
	// SubmitUpiDetails commits the UPI form and finalizes the signup.
	SubmitUpiDetails(ctx context.Context, draftID string, in UpiDetailsInput) (*FinalizeResult, error)
	// SuccessStatus reports the remaining countdown for a finalized signup.
	SuccessStatus(draftID string) (*SuccessState, bool)
	// AcknowledgeSuccess cancels the countdown ("sign in now").
	AcknowledgeSuccess(draftID string)
}

// CardDetailsInput is the card form as submitted.
type CardDetailsInput struct {
	Number       string `json:"number"`
	Expiry       string `json:"expiry"`
	CVV          string `json:"cvv"`
	NameOnCard   string `json:"nameOnCard"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

// UpiDetailsInput is the UPI form as submitted.
type UpiDetailsInput struct {
	Handle       string `json:"handle"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

// FinalizeResult is returned once an account has been created.
type FinalizeResult struct {
	UserID           string `json:"userId"`
	Email            string `json:"email"`
	PlanID           string `json:"planId"`
	InvoiceID        string `json:"invoiceId"`
	RedirectTo       string `json:"redirectTo"`
	CountdownSeconds int    `json:"countdownSeconds"`
}

// SuccessState is the live view of a finished signup's countdown.
type SuccessState struct {
	UserID     string `json:"userId"`
	Remaining  int    `json:"remaining"`
	RedirectTo string `json:"redirectTo"`
}

// DefaultService is the production implementation.
type DefaultService struct {
	Drafts   DraftStore
	Repo     userRepo.UserRepository
	Invoices invoiceRepo.InvoiceRepository
	Payments PaymentProcessor

	// CountdownTick overrides the 1s success tick in tests.
	CountdownTick time.Duration

	countdowns sync.Map // draftID -> *successEntry
}

const (
	loginRedirect    = "/auth/login"
	countdownSeconds = 5
)
