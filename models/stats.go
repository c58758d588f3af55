package models

// DashboardStats is the admin rollup. It is recomputed on every request.
type DashboardStats struct {
	TotalUsers      int     `json:"totalUsers"`
	TotalProviders  int     `json:"totalProviders"`
	TotalServices   int     `json:"totalServices"`
	TotalBookings   int     `json:"totalBookings"`
	PendingBookings int     `json:"pendingBookings"`
	Revenue         float64 `json:"revenue"`
}

// ProviderSummary backs the provider dashboard.
type ProviderSummary struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Confirmed  int     `json:"confirmed"`
	InProgress int     `json:"inProgress"`
	Completed  int     `json:"completed"`
	Cancelled  int     `json:"cancelled"`
	Earnings   float64 `json:"earnings"`
}
