package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prospecta/backend/internal/pkg/database"
	"github.com/prospecta/backend/internal/pkg/models"
)

// UserRepo persists salesperson identities in PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ProspectionRepo persists visit records in PostgreSQL
type ProspectionRepo struct {
	db *sqlx.DB
}

// NewProspectionRepo creates a new prospection repository instance
func NewProspectionRepo(db *sqlx.DB) *ProspectionRepo {
	return &ProspectionRepo{db: db}
}

// OTPRepo keeps one-time codes in Redis with a TTL matching their validity
// window
type OTPRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewOTPRepo creates a new OTP repository instance
func NewOTPRepo(redisClient *database.RedisClient, cfg *models.Config) *OTPRepo {
	return &OTPRepo{
		redisClient: redisClient,
		ttl:         time.Duration(cfg.OTP.Expiration) * time.Minute,
	}
}
