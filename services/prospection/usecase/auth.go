package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	jwtpkg "github.com/prospecta/backend/internal/pkg/jwt"
	"github.com/prospecta/backend/internal/pkg/logger"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/internal/utils"
	"github.com/prospecta/backend/services/prospection"
)

// RequestOTP generates a one-time code for a registered phone and replaces
// any code still live for it. Unregistered phones are rejected: identities
// are provisioned by an administrator, never through the OTP flow.
func (u *ProspectionUC) RequestOTP(ctx context.Context, phone string) error {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return prospection.ErrInvalidPhone
	}

	if _, err := u.userRepo.GetByPhone(ctx, normalized); err != nil {
		return err
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		Phone:     normalized,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.Expiration) * time.Minute),
	}

	if err := u.otpRepo.Store(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	// Out-of-band delivery is mocked as a log line; a real deployment
	// would hand the code to an SMS gateway here.
	logger.Info("Mock SMS with OTP code",
		logger.String("phone", utils.MaskPhoneNumber(normalized)),
		logger.String("otp_code", code))

	return nil
}

// VerifyOTP checks the supplied code against the live one for the phone
// and issues a sales session token on success. The code is consumed so it
// cannot be replayed inside its validity window.
func (u *ProspectionUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, prospection.ErrInvalidOTP
	}

	otp, err := u.otpRepo.Get(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil || otp.Code != code {
		return nil, prospection.ErrInvalidOTP
	}

	token, expiresAt, err := jwtpkg.GenerateUserToken(normalized, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.otpRepo.Consume(ctx, normalized); err != nil {
		// The token is already issued and the key expires on its own;
		// log and move on.
		logger.Warn("Failed to consume OTP",
			logger.String("phone", utils.MaskPhoneNumber(normalized)),
			logger.Err(err))
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// AdminLogin exchanges the shared admin secret for an admin session token
func (u *ProspectionUC) AdminLogin(ctx context.Context, apiKey string) (*models.AuthResponse, error) {
	configured := u.cfg.Admin.APIKey
	if configured == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(configured)) != 1 {
		return nil, prospection.ErrInvalidAPIKey
	}

	token, expiresAt, err := jwtpkg.GenerateAdminToken(u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
