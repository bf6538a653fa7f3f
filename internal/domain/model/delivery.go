package model

import "time"

// UnknownPartner attributes reports whose key no longer resolves to a partner.
const UnknownPartner = "Unknown"

// DeliveryReport records the outcome of a delivery to an address code.
type DeliveryReport struct {
	ID          int64
	AddressCode string
	Partner     string
	Success     bool
	Feedback    *string
	DeliveredAt time.Time
}
