package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9]{6,15}$`)

// NormalizePhone strips separators and a leading "+" from a phone number
// and validates the remainder is 6 to 15 digits
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	return stripped, nil
}

// GenerateOTPCode generates a random 6-digit numeric code
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits
// visible. Used when logging PII.
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
