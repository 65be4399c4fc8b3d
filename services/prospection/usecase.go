package prospection

import (
	"context"

	"github.com/prospecta/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prospecta/backend/services/prospection ProspectionUC

// ProspectionUC represents the prospection usecase interface
type ProspectionUC interface {
	// auth flow
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)
	AdminLogin(ctx context.Context, apiKey string) (*models.AuthResponse, error)

	// salesperson profile
	GetProfile(ctx context.Context, phone string) (*models.Profile, error)
	SaveProfile(ctx context.Context, phone string, req *models.ProfileRequest) (*models.Profile, error)

	// admin operations
	ListUsers(ctx context.Context) ([]*models.Profile, error)
	GetUser(ctx context.Context, phone string) (*models.Profile, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.Profile, error)
	UpdateUser(ctx context.Context, phone string, req *models.UpdateUserRequest) (*models.Profile, error)
	DeleteUser(ctx context.Context, phone string) error
	GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error)
}
