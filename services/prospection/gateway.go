package prospection

import (
	"context"

	"github.com/prospecta/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/prospecta/backend/services/prospection ProspectionGW

// ProspectionGW publishes domain events for downstream consumers. Failures
// are side-channel failures and must never fail the request that caused
// the event.
type ProspectionGW interface {
	PublishUserCreated(ctx context.Context, user *models.User) error
	PublishUserDeleted(ctx context.Context, phone string) error
	PublishVisitUpdated(ctx context.Context, p *models.Prospection) error
}
