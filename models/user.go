package models

import "time"

// User represents a member account.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	PlanID        string    `bson:"plan_id" json:"planId"`
	PaymentMethod string    `bson:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
