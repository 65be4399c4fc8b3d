package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/prospecta/backend/internal/pkg/logger"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/internal/utils"
	"github.com/prospecta/backend/services/prospection"
)

// ListUsers returns every identity joined with its current visit record,
// newest first
func (u *ProspectionUC) ListUsers(ctx context.Context) ([]*models.Profile, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	prospections, err := u.prospectionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// ListAll is newest-first, so the first record seen per phone is the
	// current one.
	currentByPhone := make(map[string]*models.Prospection, len(prospections))
	for _, p := range prospections {
		if _, ok := currentByPhone[p.Phone]; !ok {
			currentByPhone[p.Phone] = p
		}
	}

	profiles := make([]*models.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, models.BuildProfile(user, currentByPhone[user.Phone]))
	}

	return profiles, nil
}

// GetUser returns the merged view for one phone. The phone arrives as a
// path param and is normalized to the stored form first.
func (u *ProspectionUC) GetUser(ctx context.Context, phone string) (*models.Profile, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, prospection.ErrInvalidPhone
	}
	return u.GetProfile(ctx, normalized)
}

// CreateUser registers a new salesperson identity with no visit record
func (u *ProspectionUC) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.Profile, error) {
	normalized, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, prospection.ErrInvalidPhone
	}

	_, err = u.userRepo.GetByPhone(ctx, normalized)
	if err == nil {
		return nil, prospection.ErrUserExists
	}
	if !errors.Is(err, prospection.ErrUserNotFound) {
		return nil, err
	}

	user := &models.User{
		Phone:  normalized,
		Nom:    req.Nom,
		Prenom: req.Prenom,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.gw.PublishUserCreated(ctx, user); err != nil {
		logger.Warn("Failed to publish user created event", logger.Err(err))
	}

	return models.BuildProfile(user, nil), nil
}

// UpdateUser updates the name fields of an identity. The phone number is
// immutable once created.
func (u *ProspectionUC) UpdateUser(ctx context.Context, phone string, req *models.UpdateUserRequest) (*models.Profile, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, prospection.ErrInvalidPhone
	}

	user, err := u.userRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if req.Nom != nil {
		user.Nom = *req.Nom
	}
	if req.Prenom != nil {
		user.Prenom = *req.Prenom
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	current, err := u.prospectionRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return models.BuildProfile(user, current), nil
}

// DeleteUser removes an identity and its visit records. Visit records go
// first so the identity row is never referenced when it disappears.
func (u *ProspectionUC) DeleteUser(ctx context.Context, phone string) error {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return prospection.ErrInvalidPhone
	}

	if _, err := u.userRepo.GetByPhone(ctx, normalized); err != nil {
		return err
	}

	if err := u.prospectionRepo.DeleteByPhone(ctx, normalized); err != nil {
		return err
	}

	if err := u.userRepo.Delete(ctx, normalized); err != nil {
		return err
	}

	if err := u.gw.PublishUserDeleted(ctx, normalized); err != nil {
		logger.Warn("Failed to publish user deleted event", logger.Err(err))
	}

	return nil
}
