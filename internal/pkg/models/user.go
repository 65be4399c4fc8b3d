package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable identity of a registered salesperson. Rows are
// provisioned by an administrator; the OTP flow never creates one.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Nom       string    `json:"nom" db:"nom"`
	Prenom    string    `json:"prenom" db:"prenom"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest is the admin payload for registering a salesperson
type CreateUserRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
}

// UpdateUserRequest carries the mutable identity fields. The phone number
// is immutable once created.
type UpdateUserRequest struct {
	Nom    *string `json:"nom"`
	Prenom *string `json:"prenom"`
}
