package models

import "time"

// SignupDraftSchemaVersion is bumped whenever the stored draft shape changes.
// A draft persisted under a different version is treated as absent so a
// half-upgraded client restarts the wizard instead of reading garbage.
const SignupDraftSchemaVersion = 1

const (
	PaymentMethodCard = "card"
	PaymentMethodUpi  = "upi"
)

// SignupDraft is the in-progress, not-yet-finalized signup record. Exactly
// zero or one draft exists per wizard session; each step fills in the fields
// it owns and later steps must not run until all earlier fields are present.
type SignupDraft struct {
	SchemaVersion int    `json:"schemaVersion"`
	DraftID       string `json:"draftId"`

	Email string `json:"email,omitempty"`
	// Plaintext until finalization hashes it. The browser original kept the
	// password in localStorage the same way; known weakness, kept on purpose.
	Password      string `json:"password,omitempty"`
	PlanID        string `json:"selectedPlanId,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`

	Card *CardDetails `json:"cardDetails,omitempty"`
	Upi  *UpiDetails  `json:"upiDetails,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CardDetails holds the card form as entered. Number and expiry are stored in
// their masked display forms ("4111 1111 1111 1111", "12/27"). No Luhn or
// expiry-in-future check is run anywhere.
type CardDetails struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

// UpiDetails holds the UPI handle as entered.
type UpiDetails struct {
	Handle string `json:"handle"`
}
