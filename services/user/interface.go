package user

import (
	invoiceRepo "streamify/database/repository/invoice"
	userRepo "streamify/database/repository/user"
)

type UserService interface {
	// Authentication
	AuthenticateUser(email, password string) (*AuthResponse, error)

	// Account surface
	GetAccount(userID string) (*AccountView, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Invoices invoiceRepo.InvoiceRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Email  string `json:"email"`
	PlanID string `json:"planId"`
}
