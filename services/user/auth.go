package user

import (
	"fmt"

	"streamify/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies credentials and issues a token. An unknown email
// and a wrong password produce the same error on purpose, so the endpoint
// cannot be used to enumerate accounts.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:     userRec.ID,
		Token:  token,
		Email:  userRec.Email,
		PlanID: userRec.PlanID,
	}, nil
}
