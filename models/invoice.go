package models

import "time"

// Invoice records one settled (or attempted) subscription charge.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	UserID    string    `bson:"user_id" json:"userId"`
	PlanID    string    `bson:"plan_id" json:"planId"`
	Amount    int       `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"` // card | upi
	Status    string    `bson:"status" json:"status"` // pending | paid | failed
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CardLast4 string    `bson:"card_last4,omitempty" json:"cardLast4,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PaymentRequest is what the signup finalizer hands to the payment processor.
type PaymentRequest struct {
	DraftID    string
	Email      string
	PlanID     string
	Amount     int
	Currency   string
	Method     string
	CardNumber string // masked display form, card method only
	UpiHandle  string // upi method only
}
