package models

import (
	"time"
)

// OTP represents a one-time code for salesperson authentication. At most
// one live code exists per phone: a new request overwrites the prior one.
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its validity window
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// RequestOTPRequest is the body of POST /auth/request-otp
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyOTPRequest is the body of POST /auth/verify-otp
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// AdminLoginRequest is the body of POST /admin/login
type AdminLoginRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
