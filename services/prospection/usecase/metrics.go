package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/prospecta/backend/internal/pkg/models"
)

const topPerformerCount = 5

// GetDashboardMetrics aggregates every identity and visit record into the
// admin dashboard view
func (u *ProspectionUC) GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	prospections, err := u.prospectionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &models.DashboardMetrics{
		TotalUsers:        len(users),
		TotalProspections: len(prospections),
		ResultsDistribution: map[string]int{
			models.OutcomeUnavailable:   0,
			models.OutcomeNotInterested: 0,
			models.OutcomeConfirmed:     0,
		},
	}

	type counter struct {
		total     int
		confirmed int
	}
	byPhone := make(map[string]*counter)
	byZone := make(map[string]*counter)
	var zones []string

	for _, p := range prospections {
		confirmed := p.ResultatProspection == models.OutcomeConfirmed

		// Outcome distribution: three fixed categories, exact match;
		// anything else is ignored.
		if _, ok := metrics.ResultsDistribution[p.ResultatProspection]; ok {
			metrics.ResultsDistribution[p.ResultatProspection]++
		}

		switch strings.ToLower(p.TypeClient) {
		case "b2b":
			metrics.SalesByType.B2B++
		case "b2c":
			metrics.SalesByType.B2C++
		}

		c := byPhone[p.Phone]
		if c == nil {
			c = &counter{}
			byPhone[p.Phone] = c
		}
		c.total++
		if confirmed {
			c.confirmed++
		}

		if p.Zone != "" {
			z := byZone[p.Zone]
			if z == nil {
				z = &counter{}
				byZone[p.Zone] = z
				zones = append(zones, p.Zone)
			}
			z.total++
			if confirmed {
				z.confirmed++
			}
		}
	}

	metrics.ResultsDistributionArray = []models.DistributionEntry{
		{Name: models.OutcomeUnavailable, Value: metrics.ResultsDistribution[models.OutcomeUnavailable]},
		{Name: models.OutcomeNotInterested, Value: metrics.ResultsDistribution[models.OutcomeNotInterested]},
		{Name: models.OutcomeConfirmed, Value: metrics.ResultsDistribution[models.OutcomeConfirmed]},
	}

	sort.Strings(zones)
	metrics.SalesByZoneArray = make([]models.ZoneMetrics, 0, len(zones))
	for _, zone := range zones {
		z := byZone[zone]
		metrics.SalesByZoneArray = append(metrics.SalesByZoneArray, models.ZoneMetrics{
			Zone:           zone,
			Total:          z.total,
			Confirmed:      z.confirmed,
			ConversionRate: formatRate(z.confirmed, z.total),
		})
	}

	// Performers follow the listing order (identities newest-first), so
	// the top ranking is deterministic on ties.
	metrics.Performers = make([]models.PerformerMetrics, 0, len(users))
	for _, user := range users {
		c := byPhone[user.Phone]
		if c == nil {
			c = &counter{}
		}
		metrics.Performers = append(metrics.Performers, models.PerformerMetrics{
			Phone:             user.Phone,
			Name:              user.DisplayName(),
			TotalProspections: c.total,
			ConfirmedSales:    c.confirmed,
			ConversionRate:    formatRate(c.confirmed, c.total),
		})
	}

	ranked := make([]models.PerformerMetrics, len(metrics.Performers))
	copy(ranked, metrics.Performers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConfirmedSales > ranked[j].ConfirmedSales
	})
	if len(ranked) > topPerformerCount {
		ranked = ranked[:topPerformerCount]
	}
	metrics.TopPerformers = ranked

	return metrics, nil
}

// formatRate renders confirmed/total as a percentage with one decimal
// place; "0.0" when there is nothing to divide by.
func formatRate(confirmed, total int) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(confirmed)/float64(total)*100, 'f', 1, 64)
}
