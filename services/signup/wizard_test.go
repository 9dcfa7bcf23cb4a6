package signup

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"streamify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo keeps users in memory and can be told to fail writes.
type fakeUserRepo struct {
	users      map[string]*models.User // keyed by email
	createErr  error
	getByEmail error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", id)
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if r.getByEmail != nil {
		return nil, r.getByEmail
	}
	return r.users[email], nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error { return nil }

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

// fakeInvoiceRepo records created invoices.
type fakeInvoiceRepo struct {
	invoices  []models.Invoice
	createErr error
}

func (r *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.invoices = append(r.invoices, *inv)
	return nil
}

func (r *fakeInvoiceRepo) ListByUser(userID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// fakePayments settles instantly unless told to fail.
type fakePayments struct {
	settled []models.PaymentRequest
	err     error
}

func (p *fakePayments) Settle(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.settled = append(p.settled, req)
	return &models.Invoice{
		InvoiceID: uuid.New().String(),
		PlanID:    req.PlanID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

type wizardFixture struct {
	svc      *DefaultService
	store    *MemoryDraftStore
	users    *fakeUserRepo
	invoices *fakeInvoiceRepo
	payments *fakePayments
}

func newWizardFixture() *wizardFixture {
	f := &wizardFixture{
		store:    NewMemoryDraftStore(),
		users:    newFakeUserRepo(),
		invoices: &fakeInvoiceRepo{},
		payments: &fakePayments{},
	}
	f.svc = &DefaultService{
		Drafts:        f.store,
		Repo:          f.users,
		Invoices:      f.invoices,
		Payments:      f.payments,
		CountdownTick: time.Millisecond,
	}
	return f
}

// advanceToCard walks a draft up to the card form.
func (f *wizardFixture) advanceToCard(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	draft, err := f.svc.StartSignup(ctx, email)
	if err != nil {
		t.Fatalf("StartSignup: %v", err)
	}
	if _, err := f.svc.SetPassword(ctx, draft.DraftID, "secret1", "secret1"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if _, err := f.svc.SelectPlan(ctx, draft.DraftID, models.PlanStandard); err != nil {
		t.Fatalf("SelectPlan: %v", err)
	}
	next, err := f.svc.SelectPaymentMethod(ctx, draft.DraftID, models.PaymentMethodCard)
	if err != nil {
		t.Fatalf("SelectPaymentMethod: %v", err)
	}
	if next != StepPaymentCard {
		t.Fatalf("next step = %s, want %s", next, StepPaymentCard)
	}
	return draft.DraftID
}

func validCard() CardDetailsInput {
	return CardDetailsInput{
		Number:       "4111111111111234",
		Expiry:       "1227",
		CVV:          "123",
		NameOnCard:   "A Viewer",
		AgreeToTerms: true,
	}
}

func TestStartSignup(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	t.Run("captures the email into a fresh draft", func(t *testing.T) {
		draft, err := f.svc.StartSignup(ctx, "  viewer@example.com ")
		if err != nil {
			t.Fatalf("StartSignup: %v", err)
		}
		if draft.Email != "viewer@example.com" {
			t.Errorf("email = %q", draft.Email)
		}
		if draft.DraftID == "" {
			t.Error("no draft id issued")
		}
		stored, err := f.store.Get(ctx, draft.DraftID)
		if err != nil {
			t.Fatalf("draft not persisted: %v", err)
		}
		if stored.Email != draft.Email {
			t.Errorf("persisted email = %q", stored.Email)
		}
	})

	t.Run("rejects a missing or shapeless email", func(t *testing.T) {
		for _, email := range []string{"", "   ", "nope", "@bank", "viewer@"} {
			if _, err := f.svc.StartSignup(ctx, email); err == nil {
				t.Errorf("StartSignup(%q) should fail", email)
			}
		}
	})
}

func TestSetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects short passwords with a field error", func(t *testing.T) {
		f := newWizardFixture()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, err := f.svc.SetPassword(ctx, draft.DraftID, "abc", "abc")
		var invalid *ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if _, ok := invalid.Fields["password"]; !ok {
			t.Errorf("fields = %v, want a password entry", invalid.Fields)
		}
	})

	t.Run("rejects a mismatched confirmation", func(t *testing.T) {
		f := newWizardFixture()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, err := f.svc.SetPassword(ctx, draft.DraftID, "secret1", "secret2")
		var invalid *ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if _, ok := invalid.Fields["confirmPassword"]; !ok {
			t.Errorf("fields = %v, want a confirmPassword entry", invalid.Fields)
		}
	})

	t.Run("a failed attempt leaves the draft on the same step", func(t *testing.T) {
		f := newWizardFixture()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, _ = f.svc.SetPassword(ctx, draft.DraftID, "abc", "abc")
		stored, err := f.store.Get(ctx, draft.DraftID)
		if err != nil {
			t.Fatalf("draft gone after a validation failure: %v", err)
		}
		if stored.Password != "" {
			t.Errorf("password committed despite failing validation")
		}
	})
}

func TestSelectPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown plan ids collapse to the default", func(t *testing.T) {
		f := newWizardFixture()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, _ = f.svc.SetPassword(ctx, draft.DraftID, "secret1", "secret1")

		for _, id := range []string{"", "ultra", "BASIC"} {
			updated, err := f.svc.SelectPlan(ctx, draft.DraftID, id)
			if err != nil {
				t.Fatalf("SelectPlan(%q) should never fail: %v", id, err)
			}
			if updated.PlanID != models.DefaultPlanID {
				t.Errorf("SelectPlan(%q) stored %q, want %q", id, updated.PlanID, models.DefaultPlanID)
			}
		}
	})

	t.Run("known plan ids stick", func(t *testing.T) {
		f := newWizardFixture()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, _ = f.svc.SetPassword(ctx, draft.DraftID, "secret1", "secret1")
		updated, err := f.svc.SelectPlan(ctx, draft.DraftID, models.PlanPremium)
		if err != nil {
			t.Fatalf("SelectPlan: %v", err)
		}
		if updated.PlanID != models.PlanPremium {
			t.Errorf("plan = %q, want premium", updated.PlanID)
		}
	})

	t.Run("guard blocks plan selection before the password", func(t *testing.T) {
		f := newWizardFixture()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, err := f.svc.SelectPlan(ctx, draft.DraftID, models.PlanBasic)
		var incomplete *StepIncompleteError
		if !errors.As(err, &incomplete) {
			t.Fatalf("got %v, want StepIncompleteError", err)
		}
		if incomplete.RedirectTo != StepPassword {
			t.Errorf("redirect = %s, want %s", incomplete.RedirectTo, StepPassword)
		}
	})
}

func TestGetStepDeepLink(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()
	draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")

	_, err := f.svc.GetStep(ctx, draft.DraftID, StepPaymentMethod)
	var incomplete *StepIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("got %v, want StepIncompleteError", err)
	}
	if incomplete.RedirectTo != StepPassword {
		t.Errorf("redirect = %s, want %s", incomplete.RedirectTo, StepPassword)
	}

	if _, err := f.svc.GetStep(ctx, "no-such-draft", StepEmail); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("unknown draft: got %v, want ErrDraftNotFound", err)
	}
}

func TestSubmitCardDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path creates the account and clears the draft", func(t *testing.T) {
		f := newWizardFixture()
		draftID := f.advanceToCard(t, "viewer@example.com")

		result, err := f.svc.SubmitCardDetails(ctx, draftID, validCard())
		if err != nil {
			t.Fatalf("SubmitCardDetails: %v", err)
		}
		if result.PlanID != models.PlanStandard {
			t.Errorf("plan = %q, want standard", result.PlanID)
		}
		if result.RedirectTo != "/auth/login" {
			t.Errorf("redirect = %q", result.RedirectTo)
		}
		if result.CountdownSeconds != 5 {
			t.Errorf("countdown = %d, want 5", result.CountdownSeconds)
		}

		u := f.users.users["viewer@example.com"]
		if u == nil {
			t.Fatal("user not created")
		}
		if u.PlanID != models.PlanStandard || u.PaymentMethod != models.PaymentMethodCard {
			t.Errorf("user = %+v", u)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")); err != nil {
			t.Error("stored hash does not match the chosen password")
		}
		if len(f.payments.settled) != 1 {
			t.Fatalf("settled %d payments, want 1", len(f.payments.settled))
		}
		if got := f.payments.settled[0].Amount; got != 499 {
			t.Errorf("charged %d, want the standard plan price 499", got)
		}
		if len(f.invoices.invoices) != 1 {
			t.Fatalf("recorded %d invoices, want 1", len(f.invoices.invoices))
		}
		if f.invoices.invoices[0].UserID != u.ID {
			t.Error("invoice not linked to the created user")
		}

		if _, err := f.store.Get(ctx, draftID); !errors.Is(err, ErrDraftNotFound) {
			t.Errorf("draft should be cleared after success, got %v", err)
		}
	})

	t.Run("terms must be agreed", func(t *testing.T) {
		f := newWizardFixture()
		draftID := f.advanceToCard(t, "viewer@example.com")
		in := validCard()
		in.AgreeToTerms = false

		_, err := f.svc.SubmitCardDetails(ctx, draftID, in)
		var invalid *ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if _, ok := invalid.Fields["agreeToTerms"]; !ok {
			t.Errorf("fields = %v, want an agreeToTerms entry", invalid.Fields)
		}
		if len(f.users.users) != 0 {
			t.Error("no account should exist without agreed terms")
		}
	})

	t.Run("a failed payment leaves the draft intact", func(t *testing.T) {
		f := newWizardFixture()
		f.payments.err = errors.New("card declined")
		draftID := f.advanceToCard(t, "viewer@example.com")

		if _, err := f.svc.SubmitCardDetails(ctx, draftID, validCard()); err == nil {
			t.Fatal("expected settlement failure")
		}
		if _, err := f.store.Get(ctx, draftID); err != nil {
			t.Errorf("draft should survive a failed payment: %v", err)
		}
		if len(f.users.users) != 0 {
			t.Error("no account should exist after a failed payment")
		}
	})

	t.Run("a failed user insert leaves the draft intact", func(t *testing.T) {
		f := newWizardFixture()
		f.users.createErr = errors.New("write concern failed")
		draftID := f.advanceToCard(t, "viewer@example.com")

		if _, err := f.svc.SubmitCardDetails(ctx, draftID, validCard()); err == nil {
			t.Fatal("expected create failure")
		}
		if _, err := f.store.Get(ctx, draftID); err != nil {
			t.Errorf("draft should survive a failed insert: %v", err)
		}
	})

	t.Run("an existing account blocks finalization", func(t *testing.T) {
		f := newWizardFixture()
		f.users.users["viewer@example.com"] = &models.User{ID: "u-1", Email: "viewer@example.com"}
		draftID := f.advanceToCard(t, "viewer@example.com")

		_, err := f.svc.SubmitCardDetails(ctx, draftID, validCard())
		var dup *DuplicateEmailError
		if !errors.As(err, &dup) {
			t.Fatalf("got %v, want DuplicateEmailError", err)
		}
		if _, err := f.store.Get(ctx, draftID); err != nil {
			t.Errorf("draft should survive a duplicate email: %v", err)
		}
	})

	t.Run("a lost invoice row does not fail the signup", func(t *testing.T) {
		f := newWizardFixture()
		f.invoices.createErr = errors.New("collection unavailable")
		draftID := f.advanceToCard(t, "viewer@example.com")

		if _, err := f.svc.SubmitCardDetails(ctx, draftID, validCard()); err != nil {
			t.Fatalf("signup should survive a lost invoice: %v", err)
		}
		if len(f.users.users) != 1 {
			t.Error("account should still be created")
		}
	})
}

func TestSubmitUpiDetails(t *testing.T) {
	ctx := context.Background()

	advance := func(t *testing.T, f *wizardFixture) string {
		t.Helper()
		draft, _ := f.svc.StartSignup(ctx, "viewer@example.com")
		_, _ = f.svc.SetPassword(ctx, draft.DraftID, "secret1", "secret1")
		_, _ = f.svc.SelectPlan(ctx, draft.DraftID, models.PlanMobile)
		next, err := f.svc.SelectPaymentMethod(ctx, draft.DraftID, models.PaymentMethodUpi)
		if err != nil {
			t.Fatalf("SelectPaymentMethod: %v", err)
		}
		if next != StepPaymentUpi {
			t.Fatalf("next step = %s, want %s", next, StepPaymentUpi)
		}
		return draft.DraftID
	}

	t.Run("happy path settles through the UPI rail", func(t *testing.T) {
		f := newWizardFixture()
		draftID := advance(t, f)

		result, err := f.svc.SubmitUpiDetails(ctx, draftID, UpiDetailsInput{Handle: "viewer@bank", AgreeToTerms: true})
		if err != nil {
			t.Fatalf("SubmitUpiDetails: %v", err)
		}
		if result.PlanID != models.PlanMobile {
			t.Errorf("plan = %q, want mobile", result.PlanID)
		}
		if len(f.payments.settled) != 1 || f.payments.settled[0].UpiHandle != "viewer@bank" {
			t.Errorf("settled = %+v", f.payments.settled)
		}
		if f.payments.settled[0].Amount != 149 {
			t.Errorf("charged %d, want the mobile plan price 149", f.payments.settled[0].Amount)
		}
	})

	t.Run("rejects a handle without an at sign", func(t *testing.T) {
		f := newWizardFixture()
		draftID := advance(t, f)

		_, err := f.svc.SubmitUpiDetails(ctx, draftID, UpiDetailsInput{Handle: "viewerbank", AgreeToTerms: true})
		var invalid *ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})

	t.Run("card branch rejects a draft routed to UPI", func(t *testing.T) {
		f := newWizardFixture()
		draftID := advance(t, f)

		_, err := f.svc.SubmitCardDetails(ctx, draftID, validCard())
		var incomplete *StepIncompleteError
		if !errors.As(err, &incomplete) {
			t.Fatalf("got %v, want StepIncompleteError", err)
		}
		if incomplete.RedirectTo != StepPaymentMethod {
			t.Errorf("redirect = %s, want %s", incomplete.RedirectTo, StepPaymentMethod)
		}
	})
}
