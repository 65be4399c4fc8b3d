package models

// PerformerMetrics aggregates visit outcomes for one salesperson
type PerformerMetrics struct {
	Phone             string `json:"phone"`
	Name              string `json:"name"`
	TotalProspections int    `json:"totalProspections"`
	ConfirmedSales    int    `json:"confirmedSales"`
	ConversionRate    string `json:"conversionRate"`
}

// ZoneMetrics aggregates visit outcomes for one zone
type ZoneMetrics struct {
	Zone           string `json:"zone"`
	Total          int    `json:"total"`
	Confirmed      int    `json:"confirmed"`
	ConversionRate string `json:"conversionRate"`
}

// DistributionEntry is a name/value pair for the dashboard pie charts
type DistributionEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SalesByType counts visits by client type
type SalesByType struct {
	B2B int `json:"b2b"`
	B2C int `json:"b2c"`
}

// DashboardMetrics is the aggregate view served to the admin dashboard
type DashboardMetrics struct {
	TotalUsers               int                 `json:"totalUsers"`
	TotalProspections        int                 `json:"totalProspections"`
	ResultsDistribution      map[string]int      `json:"resultsDistribution"`
	ResultsDistributionArray []DistributionEntry `json:"resultsDistributionArray"`
	SalesByType              SalesByType         `json:"salesByType"`
	SalesByZoneArray         []ZoneMetrics       `json:"salesByZoneArray"`
	Performers               []PerformerMetrics  `json:"performers"`
	TopPerformers            []PerformerMetrics  `json:"topPerformers"`
}
