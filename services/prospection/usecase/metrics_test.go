package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospecta/backend/internal/pkg/models"
)

func TestGetDashboardMetrics_ConversionRate(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	userRepo.EXPECT().
		List(gomock.Any()).
		Return([]*models.User{
			{Phone: "111111111", Nom: "Dupont", Prenom: "Jean"},
		}, nil)

	// 4 visits, 1 confirmed sale.
	prospectionRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]*models.Prospection{
			{Phone: "111111111", Zone: "A", ResultatProspection: models.OutcomeConfirmed, TypeClient: "B2C"},
			{Phone: "111111111", Zone: "A", ResultatProspection: models.OutcomeNotInterested, TypeClient: "B2C"},
			{Phone: "111111111", Zone: "A", ResultatProspection: models.OutcomeUnavailable, TypeClient: "B2B"},
			{Phone: "111111111", Zone: "A", ResultatProspection: models.OutcomeNotInterested, TypeClient: "b2c"},
		}, nil)

	metrics, err := uc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.TotalUsers)
	assert.Equal(t, 4, metrics.TotalProspections)

	require.Len(t, metrics.Performers, 1)
	performer := metrics.Performers[0]
	assert.Equal(t, "Jean Dupont", performer.Name)
	assert.Equal(t, 4, performer.TotalProspections)
	assert.Equal(t, 1, performer.ConfirmedSales)
	assert.Equal(t, "25.0", performer.ConversionRate)

	require.Len(t, metrics.SalesByZoneArray, 1)
	assert.Equal(t, "A", metrics.SalesByZoneArray[0].Zone)
	assert.Equal(t, "25.0", metrics.SalesByZoneArray[0].ConversionRate)
}

func TestGetDashboardMetrics_Empty(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	userRepo.EXPECT().
		List(gomock.Any()).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		ListAll(gomock.Any()).
		Return(nil, nil)

	metrics, err := uc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.TotalUsers)
	assert.Equal(t, 0, metrics.TotalProspections)
	assert.Equal(t, 0, metrics.ResultsDistribution[models.OutcomeConfirmed])
	assert.Empty(t, metrics.Performers)
	assert.Empty(t, metrics.TopPerformers)
	assert.Empty(t, metrics.SalesByZoneArray)
}

func TestGetDashboardMetrics_ResultsDistribution(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	userRepo.EXPECT().
		List(gomock.Any()).
		Return([]*models.User{{Phone: "111111111"}}, nil)

	prospectionRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]*models.Prospection{
			{Phone: "111111111", ResultatProspection: models.OutcomeConfirmed},
			{Phone: "111111111", ResultatProspection: models.OutcomeConfirmed},
			{Phone: "111111111", ResultatProspection: models.OutcomeUnavailable},
			{Phone: "111111111", ResultatProspection: "autre chose"},
		}, nil)

	metrics, err := uc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.ResultsDistribution[models.OutcomeConfirmed])
	assert.Equal(t, 1, metrics.ResultsDistribution[models.OutcomeUnavailable])
	assert.Equal(t, 0, metrics.ResultsDistribution[models.OutcomeNotInterested])

	// Unknown outcomes count toward the total but not the distribution.
	assert.Equal(t, 4, metrics.TotalProspections)

	require.Len(t, metrics.ResultsDistributionArray, 3)
	assert.Equal(t, models.OutcomeUnavailable, metrics.ResultsDistributionArray[0].Name)
	assert.Equal(t, 1, metrics.ResultsDistributionArray[0].Value)
}

func TestGetDashboardMetrics_SalesByTypeCaseInsensitive(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	userRepo.EXPECT().
		List(gomock.Any()).
		Return(nil, nil)

	prospectionRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]*models.Prospection{
			{Phone: "1", TypeClient: "B2B"},
			{Phone: "1", TypeClient: "b2b"},
			{Phone: "1", TypeClient: "B2c"},
			{Phone: "1", TypeClient: ""},
		}, nil)

	metrics, err := uc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.SalesByType.B2B)
	assert.Equal(t, 1, metrics.SalesByType.B2C)
}

func TestGetDashboardMetrics_TopPerformers(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	users := []*models.User{
		{Phone: "6", Nom: "F"},
		{Phone: "5", Nom: "E"},
		{Phone: "4", Nom: "D"},
		{Phone: "3", Nom: "C"},
		{Phone: "2", Nom: "B"},
		{Phone: "1", Nom: "A"},
	}
	userRepo.EXPECT().
		List(gomock.Any()).
		Return(users, nil)

	prospectionRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]*models.Prospection{
			{Phone: "1", ResultatProspection: models.OutcomeConfirmed},
			{Phone: "1", ResultatProspection: models.OutcomeConfirmed},
			{Phone: "2", ResultatProspection: models.OutcomeConfirmed},
			{Phone: "3", ResultatProspection: models.OutcomeNotInterested},
		}, nil)

	metrics, err := uc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Len(t, metrics.Performers, 6)
	require.Len(t, metrics.TopPerformers, 5)

	assert.Equal(t, "1", metrics.TopPerformers[0].Phone)
	assert.Equal(t, 2, metrics.TopPerformers[0].ConfirmedSales)
	assert.Equal(t, "2", metrics.TopPerformers[1].Phone)

	// Ties keep the listing order.
	assert.Equal(t, "6", metrics.TopPerformers[2].Phone)
	assert.Equal(t, "5", metrics.TopPerformers[3].Phone)
	assert.Equal(t, "4", metrics.TopPerformers[4].Phone)
}

func TestGetDashboardMetrics_ZeroVisitsRateIsZero(t *testing.T) {
	uc, userRepo, prospectionRepo, _, _, finish := setupUCTest(t)
	defer finish()

	userRepo.EXPECT().
		List(gomock.Any()).
		Return([]*models.User{{Phone: "111111111", Nom: "Dupont"}}, nil)

	prospectionRepo.EXPECT().
		ListAll(gomock.Any()).
		Return(nil, nil)

	metrics, err := uc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, metrics.Performers, 1)
	assert.Equal(t, "0.0", metrics.Performers[0].ConversionRate)
	assert.Equal(t, 0, metrics.Performers[0].TotalProspections)
}
