package user

import (
	"fmt"

	"streamify/models"
	"streamify/utils"

	"go.uber.org/zap"
)

// AccountView is the membership-and-billing screen payload. Plan details
// come from the one immutable catalog so they cannot drift from what the
// wizard sold.
type AccountView struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Plan     models.Plan      `json:"plan"`
	Method   string           `json:"paymentMethod,omitempty"`
	Invoices []models.Invoice `json:"invoices,omitempty"`
}

// GetAccount assembles the account screen for a user.
func (s *DefaultUserService) GetAccount(userID string) (*AccountView, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetAccount: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to load account")
	}

	view := &AccountView{
		ID:     userRec.ID,
		Email:  userRec.Email,
		Plan:   models.ResolvePlan(userRec.PlanID),
		Method: userRec.PaymentMethod,
	}

	if s.Invoices != nil {
		invoices, err := s.Invoices.ListByUser(userID)
		if err != nil {
			// Billing history is decoration on this screen; log and move on.
			utils.GetLogger().Warn("GetAccount: failed to list invoices", zap.Error(err))
		} else {
			view.Invoices = invoices
		}
	}

	return view, nil
}
