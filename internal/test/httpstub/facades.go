// Package httpstub provides facade doubles for HTTP layer tests.
package httpstub

import (
	"context"
	"time"

	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/usecase"
)

// AddressFacadeStub provides controllable registration and lookup behaviour.
type AddressFacadeStub struct {
	RegisterFn func(context.Context, usecase.RegisterInput) (*model.Address, error)
	LookupFn   func(context.Context, usecase.LookupInput) (*model.Address, error)
}

// RegisterAddress delegates to RegisterFn or echoes the input under a fixed code.
func (s AddressFacadeStub) RegisterAddress(ctx context.Context, in usecase.RegisterInput) (*model.Address, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.Address{ID: 1, Code: "OM-MUS-1234A", Phone: in.Phone, Latitude: in.Latitude, Longitude: in.Longitude, City: "Muscat"}, nil
}

// LookupAddress delegates to LookupFn or returns a sample address.
func (s AddressFacadeStub) LookupAddress(ctx context.Context, in usecase.LookupInput) (*model.Address, error) {
	if s.LookupFn != nil {
		return s.LookupFn(ctx, in)
	}
	return &model.Address{ID: 1, Code: "OM-MUS-1234A", Phone: "96891234567", Latitude: 23.588, Longitude: 58.3829, City: "Muscat"}, nil
}

// DeliveryFacadeStub records delivery outcome calls.
type DeliveryFacadeStub struct {
	VerifyFn func(context.Context, usecase.VerifyInput) (*model.DeliveryReport, error)
}

// VerifyDelivery delegates to VerifyFn or acknowledges the report.
func (s DeliveryFacadeStub) VerifyDelivery(ctx context.Context, in usecase.VerifyInput) (*model.DeliveryReport, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, in)
	}
	success := in.Success != nil && *in.Success
	return &model.DeliveryReport{ID: 1, AddressCode: in.AddressCode, Partner: "Test Partner", Success: success}, nil
}

// PartnerFacadeStub issues predictable keys.
type PartnerFacadeStub struct {
	IssueFn func(context.Context, string) (*model.PartnerKey, error)
}

// IssueKey delegates to IssueFn or returns a fixed key.
func (s PartnerFacadeStub) IssueKey(ctx context.Context, partnerName string) (*model.PartnerKey, error) {
	if s.IssueFn != nil {
		return s.IssueFn(ctx, partnerName)
	}
	return &model.PartnerKey{ID: 1, PartnerName: partnerName, Key: "omaddr_test", Active: true}, nil
}

// InvoiceFacadeStub simulates invoice operations.
type InvoiceFacadeStub struct {
	GenerateFn func(context.Context, int64) (*model.Invoice, []byte, error)
	DownloadFn func(context.Context, string) (*model.Invoice, []byte, error)
	MarkPaidFn func(context.Context, int64) (*model.Invoice, error)
	ListFn     func(context.Context) ([]model.Invoice, error)
}

// GenerateInvoice delegates to GenerateFn or returns a sample document.
func (s InvoiceFacadeStub) GenerateInvoice(ctx context.Context, partnerID int64) (*model.Invoice, []byte, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, partnerID)
	}
	return &model.Invoice{ID: 1, Number: "INV-2026-0001", PartnerID: partnerID}, []byte("%PDF-sample"), nil
}

// DownloadInvoice delegates to DownloadFn or returns a sample document.
func (s InvoiceFacadeStub) DownloadInvoice(ctx context.Context, number string) (*model.Invoice, []byte, error) {
	if s.DownloadFn != nil {
		return s.DownloadFn(ctx, number)
	}
	return &model.Invoice{ID: 1, Number: number}, []byte("%PDF-sample"), nil
}

// MarkInvoicePaid delegates to MarkPaidFn or returns a paid invoice.
func (s InvoiceFacadeStub) MarkInvoicePaid(ctx context.Context, id int64) (*model.Invoice, error) {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, id)
	}
	paidAt := time.Unix(0, 0).UTC()
	return &model.Invoice{ID: id, Number: "INV-2026-0001", Status: model.InvoiceStatusPaid, PaidAt: &paidAt}, nil
}

// Invoices delegates to ListFn or returns one unpaid invoice.
func (s InvoiceFacadeStub) Invoices(ctx context.Context) ([]model.Invoice, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Invoice{{ID: 1, Number: "INV-2026-0001", PartnerName: "Test Partner", Currency: "USD", Status: model.InvoiceStatusUnpaid}}, nil
}

// DashboardFacadeStub feeds stats and pages.
type DashboardFacadeStub struct {
	StatsFn     func(context.Context) (*model.Stats, error)
	AddressesFn func(context.Context) ([]model.Address, error)
	UsageFn     func(context.Context) ([]model.PartnerUsage, error)
	Rate        float64
	Currency    string
}

// Stats delegates to StatsFn or returns fixed counters.
func (s DashboardFacadeStub) Stats(ctx context.Context) (*model.Stats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.Stats{TotalAddresses: 3, VerifiedAddresses: 1, TotalLookups: 10, RevenueEstimate: 1.5}, nil
}

// Pricing returns configured rate and currency, USD by default.
func (s DashboardFacadeStub) Pricing() usecase.Pricing {
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}
	return usecase.Pricing{Rate: s.Rate, Currency: currency}
}

// RecentAddresses delegates to AddressesFn or returns one address.
func (s DashboardFacadeStub) RecentAddresses(ctx context.Context) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx)
	}
	return []model.Address{{Code: "OM-MUS-1234A", Phone: "96891234567", City: "Muscat"}}, nil
}

// PartnerUsage delegates to UsageFn or returns one partner.
func (s DashboardFacadeStub) PartnerUsage(ctx context.Context) ([]model.PartnerUsage, error) {
	if s.UsageFn != nil {
		return s.UsageFn(ctx)
	}
	return []model.PartnerUsage{{Partner: model.PartnerKey{ID: 1, PartnerName: "Test Partner", Key: "omaddr_test", LookupsUsed: 10}, Revenue: 1.5}}, nil
}

// HealthFacadeStub reports the configured error.
type HealthFacadeStub struct {
	Err error
}

// Health returns Err.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// AdminVerifierStub accepts a single user and password pair when enabled.
type AdminVerifierStub struct {
	Enabled  bool
	User     string
	Password string
}

// AdminEnabled reports whether the guard is active.
func (s AdminVerifierStub) AdminEnabled() bool {
	return s.Enabled
}

// VerifyAdmin compares credentials with the configured pair.
func (s AdminVerifierStub) VerifyAdmin(user, password string) bool {
	if !s.Enabled {
		return true
	}
	return user == s.User && password == s.Password
}

// RegistryFacadeStub combines every facade stub.
type RegistryFacadeStub struct {
	AddressFacadeStub
	DeliveryFacadeStub
	PartnerFacadeStub
	InvoiceFacadeStub
	DashboardFacadeStub
	HealthFacadeStub
	AdminVerifierStub
}
