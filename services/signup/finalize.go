// File: services/signup/finalize.go
package signup

import (
	"context"
	"strings"
	"time"

	"streamify/models"
	"streamify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SubmitCardDetails validates and commits the card form, then finalizes the
// draft into an account.
func (s *DefaultService) SubmitCardDetails(ctx context.Context, draftID string, in CardDetailsInput) (*FinalizeResult, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := GuardStep(draft, StepPaymentCard); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if !in.AgreeToTerms {
		fields["agreeToTerms"] = "Please agree to the Terms of Use and Privacy Policy"
	}
	number := FormatCardNumber(in.Number)
	if number == "" {
		fields["number"] = "Card number is required"
	}
	expiry := FormatExpiry(in.Expiry)
	if expiry == "" {
		fields["expiry"] = "Expiry date is required"
	}
	cvv := NormalizeCVV(in.CVV)
	if cvv == "" {
		fields["cvv"] = "CVV is required"
	}
	if strings.TrimSpace(in.NameOnCard) == "" {
		fields["nameOnCard"] = "Name on card is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	draft.Card = &models.CardDetails{
		Number:     number,
		Expiry:     expiry,
		CVV:        cvv,
		NameOnCard: strings.TrimSpace(in.NameOnCard),
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.finalize(ctx, draft)
}

// SubmitUpiDetails validates and commits the UPI form, then finalizes the
// draft into an account.
func (s *DefaultService) SubmitUpiDetails(ctx context.Context, draftID string, in UpiDetailsInput) (*FinalizeResult, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := GuardStep(draft, StepPaymentUpi); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if !in.AgreeToTerms {
		fields["agreeToTerms"] = "Please agree to the Terms of Use and Privacy Policy"
	}
	handle := strings.TrimSpace(in.Handle)
	if handle == "" || !strings.Contains(handle, "@") {
		fields["handle"] = "Enter a valid UPI ID (name@bank)"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	draft.Upi = &models.UpiDetails{Handle: handle}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.finalize(ctx, draft)
}

// finalize assembles the complete draft into one account: settle the charge,
// create the user, record the invoice, and only then clear the draft. Every
// failure before that point leaves the draft intact so the viewer retries
// without re-entering the earlier steps.
func (s *DefaultService) finalize(ctx context.Context, draft *models.SignupDraft) (*FinalizeResult, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(draft.Email)
	if err != nil {
		logger.Error("finalize: failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateEmailError{Email: draft.Email}
	}

	plan := models.ResolvePlan(draft.PlanID)
	payReq := models.PaymentRequest{
		DraftID:  draft.DraftID,
		Email:    draft.Email,
		PlanID:   plan.ID,
		Amount:   plan.MonthlyPrice,
		Currency: plan.Currency,
		Method:   draft.PaymentMethod,
	}
	if draft.Card != nil {
		payReq.CardNumber = draft.Card.Number
	}
	if draft.Upi != nil {
		payReq.UpiHandle = draft.Upi.Handle
	}

	inv, err := s.Payments.Settle(ctx, payReq)
	if err != nil {
		logger.Error("finalize: payment settlement failed", zap.Error(err))
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("finalize: failed to hash password", zap.Error(err))
		return nil, err
	}

	userObj := models.User{
		ID:            uuid.New().String(),
		Email:         draft.Email,
		PasswordHash:  string(hashed),
		PlanID:        plan.ID,
		PaymentMethod: draft.PaymentMethod,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("finalize: failed to create user", zap.Error(err))
		return nil, err
	}

	inv.UserID = userObj.ID
	if s.Invoices != nil {
		if err := s.Invoices.Create(inv); err != nil {
			// The account exists and the charge settled; a lost invoice row
			// is logged, not fatal.
			logger.Error("finalize: failed to record invoice", zap.Error(err))
		}
	}

	// Confirmed success: only now does the draft go away.
	if err := s.Drafts.Delete(ctx, draft.DraftID); err != nil {
		logger.Warn("finalize: failed to clear draft", zap.Error(err))
	}

	s.startSuccessCountdown(draft.DraftID, userObj.ID)

	return &FinalizeResult{
		UserID:           userObj.ID,
		Email:            userObj.Email,
		PlanID:           plan.ID,
		InvoiceID:        inv.InvoiceID,
		RedirectTo:       loginRedirect,
		CountdownSeconds: countdownSeconds,
	}, nil
}
