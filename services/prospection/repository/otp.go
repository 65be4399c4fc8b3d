package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prospecta/backend/internal/pkg/constants"
	"github.com/prospecta/backend/internal/pkg/models"
)

// Store writes the one-time code for a phone, replacing any live code. The
// Redis TTL matches the validity window so stale codes vanish on their own.
func (r *OTPRepo) Store(ctx context.Context, otp *models.OTP) error {
	payload, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyProspectionOTP, otp.Phone)
	if err := r.redisClient.Set(ctx, key, payload, r.ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// Get retrieves the live code for a phone. Returns nil when no code exists
// or the stored one is past its expiry.
func (r *OTPRepo) Get(ctx context.Context, phone string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyProspectionOTP, phone)
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	// The TTL already bounds the key lifetime; the timestamp check guards
	// against clock drift between writers.
	if otp.Expired(time.Now()) {
		return nil, nil
	}

	return &otp, nil
}

// Consume removes the live code for a phone so it cannot be replayed
func (r *OTPRepo) Consume(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyProspectionOTP, phone)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}
