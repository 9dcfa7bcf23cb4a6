// File: services/signup/payment.go
package signup

import (
	"context"
	"fmt"
	"time"

	"streamify/config"
	"streamify/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor settles a subscription charge and produces an invoice.
type PaymentProcessor interface {
	Settle(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentProcessor settles card charges through Stripe when a key is
// configured, and simulates settlement otherwise. UPI is always simulated;
// the original never had a real UPI rail either.
type UnifiedPaymentProcessor struct {
	Logger *zap.Logger
}

func NewPaymentProcessor(logger *zap.Logger) *UnifiedPaymentProcessor {
	return &UnifiedPaymentProcessor{Logger: logger}
}

func (p *UnifiedPaymentProcessor) Settle(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %d", req.Amount)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		PlanID:    req.PlanID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case models.PaymentMethodCard:
		return p.settleCard(ctx, req, inv)
	case models.PaymentMethodUpi:
		return p.settleUpi(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (p *UnifiedPaymentProcessor) settleCard(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	inv.CardLast4 = cardLast4(req.CardNumber)

	if config.AppConfig.StripeKey != "" {
		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(int64(req.Amount) * 100),
			Currency:           stripe.String("inr"),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			Description:        stripe.String("Streamify " + req.PlanID + " plan"),
			ReceiptEmail:       stripe.String(req.Email),
		}
		params.Context = ctx
		pi, err := paymentintent.New(params)
		if err != nil {
			return nil, fmt.Errorf("card payment failed: %w", err)
		}
		inv.PaymentID = pi.ID
	} else {
		inv.PaymentID = "pi_" + uuid.New().String()
	}

	inv.Status = "paid"
	inv.UpdatedAt = time.Now()
	p.Logger.Info("Card payment settled",
		zap.String("invoice", inv.InvoiceID), zap.String("payment", inv.PaymentID))
	return inv, nil
}

func (p *UnifiedPaymentProcessor) settleUpi(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	inv.PaymentID = "upi_" + uuid.New().String()
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()
	p.Logger.Info("UPI payment settled",
		zap.String("invoice", inv.InvoiceID), zap.String("handle", req.UpiHandle))
	return inv, nil
}
