package model

import "time"

// PartnerKey is a credential issued to a delivery partner.
type PartnerKey struct {
	ID          int64
	PartnerName string
	Key         string
	LookupsUsed int64
	CreatedAt   time.Time
	Active      bool
}

// PartnerUsage pairs a partner with the revenue its lookups represent.
type PartnerUsage struct {
	Partner PartnerKey
	Revenue float64
}
