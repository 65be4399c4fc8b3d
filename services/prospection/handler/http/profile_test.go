package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/services/prospection"
	"github.com/prospecta/backend/services/prospection/mocks"
)

func TestGetProfile_Handler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProspectionUC(ctrl)
	profileHandler := NewProfileHandler(mockUC)

	c, rec := newJSONContext(http.MethodGet, "/profile", "")
	c.Set("phone", "123456789")

	mockUC.EXPECT().
		GetProfile(gomock.Any(), "123456789").
		Return(&models.Profile{
			Phone:  "123456789",
			Nom:    "Dupont",
			Prenom: "Jean",
			Zone:   "A",
		}, nil)

	err := profileHandler.GetProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "123456789", data["phone"])
	assert.Equal(t, "Dupont", data["nom"])
	assert.Equal(t, "A", data["zone"])
}

func TestGetProfile_Handler_MissingTokenContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProspectionUC(ctrl)
	profileHandler := NewProfileHandler(mockUC)

	c, rec := newJSONContext(http.MethodGet, "/profile", "")

	err := profileHandler.GetProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile_Handler_UserDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProspectionUC(ctrl)
	profileHandler := NewProfileHandler(mockUC)

	c, rec := newJSONContext(http.MethodGet, "/profile", "")
	c.Set("phone", "123456789")

	mockUC.EXPECT().
		GetProfile(gomock.Any(), "123456789").
		Return(nil, prospection.ErrUserNotFound)

	err := profileHandler.GetProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveProfile_Handler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProspectionUC(ctrl)
	profileHandler := NewProfileHandler(mockUC)

	body := `{"zone": "A", "nomClient": "Client Test", "resultatProspection": "Vente confirmée"}`
	c, rec := newJSONContext(http.MethodPost, "/profile", body)
	c.Set("phone", "123456789")

	mockUC.EXPECT().
		SaveProfile(gomock.Any(), "123456789", gomock.Any()).
		DoAndReturn(func(_ interface{}, phone string, req *models.ProfileRequest) (*models.Profile, error) {
			assert.Equal(t, "A", *req.Zone)
			assert.Equal(t, "Client Test", *req.NomClient)
			assert.Equal(t, models.OutcomeConfirmed, *req.ResultatProspection)
			assert.Nil(t, req.Nom)
			return &models.Profile{Phone: phone, Zone: "A"}, nil
		})

	err := profileHandler.SaveProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Profile saved successfully", response["message"])
}

func TestSaveProfile_Handler_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProspectionUC(ctrl)
	profileHandler := NewProfileHandler(mockUC)

	c, rec := newJSONContext(http.MethodPost, "/profile", `{invalid}`)
	c.Set("phone", "123456789")

	err := profileHandler.SaveProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
