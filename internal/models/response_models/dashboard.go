package response_models

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate shown on the opticien dashboard.
// Revenue counts paiements with statut "paye" only; the savings figures
// cover active cagnottes only.
type DashboardStats struct {
	NewRequests        int             `json:"newRequests"`
	Revenue            decimal.Decimal `json:"revenue"`
	Deliveries         int             `json:"deliveries"`
	ActiveSavings      int             `json:"activeSavings"`
	TotalSavingsAmount decimal.Decimal `json:"totalSavingsAmount"`
}
