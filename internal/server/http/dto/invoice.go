package dto

import "time"

// InvoiceResponse is the JSON view of an invoice.
type InvoiceResponse struct {
	ID                 int64      `json:"id"`
	InvoiceNumber      string     `json:"invoice_number"`
	PartnerID          int64      `json:"partner_id"`
	PartnerName        string     `json:"partner_name"`
	KeySnapshot        string     `json:"key_snapshot"`
	BillingPeriod      string     `json:"billing_period"`
	Lookups            int64      `json:"lookups"`
	VerifiedDeliveries int64      `json:"verified_deliveries"`
	Rate               float64    `json:"rate"`
	Currency           string     `json:"currency"`
	Subtotal           float64    `json:"subtotal"`
	Tax                float64    `json:"tax"`
	Total              float64    `json:"total"`
	CreatedAt          time.Time  `json:"created_at"`
	Status             string     `json:"status"`
	PaidAt             *time.Time `json:"paid_at"`
}
