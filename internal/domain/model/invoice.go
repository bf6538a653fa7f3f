package model

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// InvoiceStatus describes payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{4}-\d{4,}$`)

// Invoice is a billing snapshot for one partner and period.
type Invoice struct {
	ID                 int64
	Number             string
	PartnerID          int64
	PartnerName        string
	KeySnapshot        string
	BillingPeriod      string
	Lookups            int64
	VerifiedDeliveries int64
	Rate               float64
	Currency           string
	Subtotal           float64
	Tax                float64
	Total              float64
	CreatedAt          time.Time
	Status             InvoiceStatus
	PaidAt             *time.Time
}

// FormatInvoiceNumber renders a year scoped sequence value as an invoice number.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

// ValidInvoiceNumber reports whether number has the INV-<year>-<seq> shape.
func ValidInvoiceNumber(number string) bool {
	return invoiceNumberPattern.MatchString(number)
}

// BillingPeriod returns the label of the calendar month preceding now.
func BillingPeriod(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, -1, 0).Format("January 2006")
}

// RoundAmount rounds a monetary amount to cents.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
