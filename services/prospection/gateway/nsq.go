package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/prospecta/backend/internal/pkg/constants"
	"github.com/prospecta/backend/internal/pkg/logger"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/internal/utils"
)

// PublishUserCreated publishes a user created event
func (g *ProspectionGW) PublishUserCreated(ctx context.Context, user *models.User) error {
	if g.producer == nil {
		return nil
	}

	event := map[string]interface{}{
		"phone":     user.Phone,
		"nom":       user.Nom,
		"prenom":    user.Prenom,
		"timestamp": time.Now().Unix(),
	}

	if err := g.producer.Publish(constants.TopicUserCreated, event); err != nil {
		return fmt.Errorf("failed to publish user created event: %w", err)
	}

	logger.Info("Published user created event",
		logger.String("phone", utils.MaskPhoneNumber(user.Phone)))

	return nil
}

// PublishUserDeleted publishes a user deleted event
func (g *ProspectionGW) PublishUserDeleted(ctx context.Context, phone string) error {
	if g.producer == nil {
		return nil
	}

	event := map[string]interface{}{
		"phone":     phone,
		"timestamp": time.Now().Unix(),
	}

	if err := g.producer.Publish(constants.TopicUserDeleted, event); err != nil {
		return fmt.Errorf("failed to publish user deleted event: %w", err)
	}

	logger.Info("Published user deleted event",
		logger.String("phone", utils.MaskPhoneNumber(phone)))

	return nil
}

// PublishVisitUpdated publishes the current state of a visit record after a
// profile submission
func (g *ProspectionGW) PublishVisitUpdated(ctx context.Context, p *models.Prospection) error {
	if g.producer == nil {
		return nil
	}

	if err := g.producer.Publish(constants.TopicVisitUpdated, p); err != nil {
		return fmt.Errorf("failed to publish visit updated event: %w", err)
	}

	logger.Info("Published visit updated event",
		logger.String("phone", utils.MaskPhoneNumber(p.Phone)),
		logger.String("zone", p.Zone))

	return nil
}
