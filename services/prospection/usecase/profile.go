package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcloughlin/geohash"
	"github.com/prospecta/backend/internal/pkg/logger"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/services/prospection"
)

// geohashPrecision is the cell size stored with shared locations; 7
// characters is roughly a city block.
const geohashPrecision = 7

// GetProfile returns the merged identity + visit record view for the
// phone embedded in the caller's token
func (u *ProspectionUC) GetProfile(ctx context.Context, phone string) (*models.Profile, error) {
	user, err := u.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	current, err := u.prospectionRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	return models.BuildProfile(user, current), nil
}

// SaveProfile applies a partial profile submission for the phone embedded
// in the caller's token. Identity fields update the identity; visit fields
// upsert the current visit record, touching only the fields present in
// the payload. Calling it twice with the same payload leaves the same
// state as calling it once.
func (u *ProspectionUC) SaveProfile(ctx context.Context, phone string, req *models.ProfileRequest) (*models.Profile, error) {
	user, err := u.userRepo.GetByPhone(ctx, phone)
	if errors.Is(err, prospection.ErrUserNotFound) {
		// The identity was removed after the token was issued; recreate
		// it from the payload so the submission is not lost.
		user = &models.User{Phone: phone}
		if req.Nom != nil {
			user.Nom = *req.Nom
		}
		if req.Prenom != nil {
			user.Prenom = *req.Prenom
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, err
	} else if identityChanged(user, req) {
		if req.Nom != nil {
			user.Nom = *req.Nom
		}
		if req.Prenom != nil {
			user.Prenom = *req.Prenom
		}
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	current, err := u.prospectionRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &models.Prospection{Phone: phone}
	}

	applyProfileRequest(current, req)

	if err := u.prospectionRepo.Upsert(ctx, current); err != nil {
		return nil, err
	}

	if err := u.gw.PublishVisitUpdated(ctx, current); err != nil {
		logger.Warn("Failed to publish visit event", logger.Err(err))
	}

	return models.BuildProfile(user, current), nil
}

func identityChanged(user *models.User, req *models.ProfileRequest) bool {
	if req.Nom != nil && *req.Nom != user.Nom {
		return true
	}
	if req.Prenom != nil && *req.Prenom != user.Prenom {
		return true
	}
	return false
}

// applyProfileRequest copies the fields present in the payload onto the
// visit record. Omitted fields keep their stored value; a provided
// location flips locationShared and never clears implicitly.
func applyProfileRequest(p *models.Prospection, req *models.ProfileRequest) {
	if req.Zone != nil {
		p.Zone = *req.Zone
	}
	if req.Immeuble != nil {
		p.Immeuble = *req.Immeuble
	}
	if req.BlocImmeuble != nil {
		p.BlocImmeuble = *req.BlocImmeuble
	}
	if req.Appartement != nil {
		p.Appartement = *req.Appartement
	}
	if req.NomClient != nil {
		p.NomClient = *req.NomClient
	}
	if req.NumContact != nil {
		p.NumContact = *req.NumContact
	}
	if req.ResultatProspection != nil {
		p.ResultatProspection = *req.ResultatProspection
	}
	if req.TypeClient != nil {
		p.TypeClient = *req.TypeClient
	}

	if req.Location != nil {
		lat := req.Location.Latitude
		lng := req.Location.Longitude
		cell := geohash.EncodeWithPrecision(lat, lng, geohashPrecision)

		p.LocationShared = true
		p.Latitude = &lat
		p.Longitude = &lng
		p.Geohash = &cell

		// Only what the client sent is stored; an omitted timestamp keeps
		// the prior value so resubmitting a payload changes nothing.
		if ts := req.Location.Timestamp; !ts.IsZero() {
			p.LocationTimestamp = &ts
		}
	}
}
