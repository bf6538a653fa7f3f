package dto

// StatsResponse aggregates registry counters.
type StatsResponse struct {
	TotalAddresses       int64   `json:"total_addresses"`
	VerifiedAddresses    int64   `json:"verified_addresses"`
	SuccessfulDeliveries int64   `json:"successful_deliveries"`
	ActivePartners       int64   `json:"active_partners"`
	TotalLookups         int64   `json:"total_lookups"`
	RevenueEstimate      float64 `json:"revenue_estimate_usd"`
	Currency             string  `json:"currency"`
	InvoicesIssued       int64   `json:"invoices_issued"`
	InvoicesPaid         int64   `json:"invoices_paid"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}
