package prospection

import "errors"

// Domain errors mapped to HTTP statuses by the handlers
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidOTP    = errors.New("invalid or expired OTP")
	ErrInvalidAPIKey = errors.New("invalid API key")
)
