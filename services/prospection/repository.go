package prospection

import (
	"context"

	"github.com/prospecta/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prospecta/backend/services/prospection UserRepo,ProspectionRepo,OTPRepo

// UserRepo persists salesperson identities
type UserRepo interface {
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, phone string) error
}

// ProspectionRepo persists visit records. GetByPhone returns the current
// record for a phone; older rows, if any, only feed the metrics.
type ProspectionRepo interface {
	GetByPhone(ctx context.Context, phone string) (*models.Prospection, error)
	ListAll(ctx context.Context) ([]*models.Prospection, error)
	Upsert(ctx context.Context, p *models.Prospection) error
	DeleteByPhone(ctx context.Context, phone string) error
}

// OTPRepo is the one-time code ledger. Store replaces any live code for
// the phone; Get returns nil when no unexpired code exists.
type OTPRepo interface {
	Store(ctx context.Context, otp *models.OTP) error
	Get(ctx context.Context, phone string) (*models.OTP, error)
	Consume(ctx context.Context, phone string) error
}
