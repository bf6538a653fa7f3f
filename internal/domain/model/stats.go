package model

// Stats aggregates registry counters across all tables.
type Stats struct {
	TotalAddresses       int64
	VerifiedAddresses    int64
	SuccessfulDeliveries int64
	ActivePartners       int64
	TotalLookups         int64
	InvoicesIssued       int64
	InvoicesPaid         int64
	RevenueEstimate      float64
}
