package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/services/prospection"
)

func strPtr(s string) *string { return &s }

func TestGetProfile_NoVisitRecord(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone, Nom: "Dupont", Prenom: "Jean"}, nil)

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, nil)

	profile, err := uc.GetProfile(context.Background(), phone)
	require.NoError(t, err)
	assert.Equal(t, "Dupont", profile.Nom)
	assert.Empty(t, profile.Zone)
	assert.Nil(t, profile.Location)
}

func TestGetProfile_UnknownPhone(t *testing.T) {
	uc, userRepo, _, _, _, finish := setupUCTest(t)
	defer finish()

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), "999999999").
		Return(nil, prospection.ErrUserNotFound)

	profile, err := uc.GetProfile(context.Background(), "999999999")
	assert.ErrorIs(t, err, prospection.ErrUserNotFound)
	assert.Nil(t, profile)
}

func TestSaveProfile_FirstSubmission(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone, Nom: "Dupont", Prenom: "Jean"}, nil)

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Prospection) error {
			assert.Equal(t, phone, p.Phone)
			assert.Equal(t, "A", p.Zone)
			assert.Equal(t, "Client Test", p.NomClient)
			assert.Equal(t, models.OutcomeConfirmed, p.ResultatProspection)
			return nil
		})

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	req := &models.ProfileRequest{
		Zone:                strPtr("A"),
		Immeuble:            strPtr("1"),
		NomClient:           strPtr("Client Test"),
		NumContact:          strPtr("987654321"),
		ResultatProspection: strPtr(models.OutcomeConfirmed),
		TypeClient:          strPtr(models.ClientTypeB2C),
	}

	profile, err := uc.SaveProfile(context.Background(), phone, req)
	require.NoError(t, err)
	assert.Equal(t, "A", profile.Zone)
	assert.Equal(t, "Client Test", profile.NomClient)
}

func TestSaveProfile_PartialUpdateKeepsOtherFields(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone, Nom: "Dupont", Prenom: "Jean"}, nil)

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.Prospection{
			Phone:               phone,
			Zone:                "A",
			NomClient:           "Client Test",
			ResultatProspection: models.OutcomeNotInterested,
		}, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Prospection) error {
			// Only the submitted field changed.
			assert.Equal(t, models.OutcomeConfirmed, p.ResultatProspection)
			assert.Equal(t, "A", p.Zone)
			assert.Equal(t, "Client Test", p.NomClient)
			return nil
		})

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	req := &models.ProfileRequest{
		ResultatProspection: strPtr(models.OutcomeConfirmed),
	}

	_, err := uc.SaveProfile(context.Background(), phone, req)
	assert.NoError(t, err)
}

func TestSaveProfile_IdentityUpdateSkippedWhenUnchanged(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	// Submitting the same names must not trigger an identity write; only
	// the visit record is touched.
	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone, Nom: "Dupont", Prenom: "Jean"}, nil)

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.Prospection{Phone: phone, Zone: "A"}, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	req := &models.ProfileRequest{
		Nom:    strPtr("Dupont"),
		Prenom: strPtr("Jean"),
		Zone:   strPtr("A"),
	}

	_, err := uc.SaveProfile(context.Background(), phone, req)
	assert.NoError(t, err)
}

func TestSaveProfile_IdentityUpdatedWhenNameChanges(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone, Nom: "Dupont", Prenom: "Jean"}, nil)

	userRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "Martin", user.Nom)
			assert.Equal(t, "Jean", user.Prenom)
			return nil
		})

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	req := &models.ProfileRequest{Nom: strPtr("Martin")}

	profile, err := uc.SaveProfile(context.Background(), phone, req)
	require.NoError(t, err)
	assert.Equal(t, "Martin", profile.Nom)
}

func TestSaveProfile_RecreatesIdentityWhenMissing(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, prospection.ErrUserNotFound)

	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, phone, user.Phone)
			assert.Equal(t, "Dupont", user.Nom)
			return nil
		})

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	req := &models.ProfileRequest{Nom: strPtr("Dupont"), Zone: strPtr("A")}

	_, err := uc.SaveProfile(context.Background(), phone, req)
	assert.NoError(t, err)
}

func TestSaveProfile_LocationSetsGeohash(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone}, nil)

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Prospection) error {
			assert.True(t, p.LocationShared)
			require.NotNil(t, p.Latitude)
			require.NotNil(t, p.Longitude)
			assert.Equal(t, 36.8065, *p.Latitude)
			require.NotNil(t, p.Geohash)
			assert.Len(t, *p.Geohash, 7)
			require.NotNil(t, p.LocationTimestamp)
			assert.Equal(t, ts, *p.LocationTimestamp)
			return nil
		})

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	req := &models.ProfileRequest{
		Location: &models.ProfileLocation{
			Latitude:  36.8065,
			Longitude: 10.1815,
			Timestamp: ts,
		},
	}

	profile, err := uc.SaveProfile(context.Background(), phone, req)
	require.NoError(t, err)
	assert.True(t, profile.LocationShared)
	require.NotNil(t, profile.Location)
	assert.Equal(t, 36.8065, profile.Location.Latitude)
}

func TestSaveProfile_IdempotentForFixedPayload(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone, Nom: "Dupont", Prenom: "Jean"}, nil).
		Times(2)

	// Stateful fake: the second call reads back what the first one wrote.
	var stored *models.Prospection
	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		DoAndReturn(func(_ interface{}, _ string) (*models.Prospection, error) {
			if stored == nil {
				return nil, nil
			}
			cp := *stored
			return &cp, nil
		}).
		Times(2)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p *models.Prospection) error {
			cp := *p
			stored = &cp
			return nil
		}).
		Times(2)

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// A location without a timestamp: nothing in the payload varies
	// between the two calls.
	req := &models.ProfileRequest{
		Zone:                strPtr("A"),
		NomClient:           strPtr("Client Test"),
		ResultatProspection: strPtr(models.OutcomeConfirmed),
		Location: &models.ProfileLocation{
			Latitude:  36.8065,
			Longitude: 10.1815,
		},
	}

	_, err := uc.SaveProfile(context.Background(), phone, req)
	require.NoError(t, err)
	first := *stored

	_, err = uc.SaveProfile(context.Background(), phone, req)
	require.NoError(t, err)
	second := *stored

	assert.Equal(t, first, second)
	assert.Nil(t, second.LocationTimestamp)
	assert.True(t, second.LocationShared)
}

func TestSaveProfile_PublishFailureDoesNotFailRequest(t *testing.T) {
	uc, userRepo, prospectionRepo, _, gw, finish := setupUCTest(t)
	defer finish()

	phone := "123456789"

	userRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(&models.User{Phone: phone}, nil)

	prospectionRepo.EXPECT().
		GetByPhone(gomock.Any(), phone).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	gw.EXPECT().
		PublishVisitUpdated(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := uc.SaveProfile(context.Background(), phone, &models.ProfileRequest{Zone: strPtr("A")})
	assert.NoError(t, err)
}
