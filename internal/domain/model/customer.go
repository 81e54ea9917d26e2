package model

import (
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// Customer represents a customer that owns devices under repair.
type Customer struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Phone     *string   `db:"phone"      json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateCustomerRequest carries the fields needed to register a customer.
type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

const maxCustomerNameLength = 255

// Validate checks the request for required and well-formed fields.
func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	if len(r.Name) > maxCustomerNameLength {
		return apperrors.ValidationField("name", "name cannot exceed 255 characters")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return apperrors.ValidationField("email", "email is required and cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.ValidationField("email", "email must be a valid address")
	}
	return nil
}
