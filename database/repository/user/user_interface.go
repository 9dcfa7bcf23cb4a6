package userRepo

import (
	"streamify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. A missing user is
	// (nil, nil), not an error.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record. Inserting a duplicate email fails.
	Create(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a $set-style partial update by ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
