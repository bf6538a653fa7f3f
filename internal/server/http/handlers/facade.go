package handlers

import (
	"context"

	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/usecase"
)

// AddressFacade covers resident registration and partner lookups.
type AddressFacade interface {
	RegisterAddress(ctx context.Context, in usecase.RegisterInput) (*model.Address, error)
	LookupAddress(ctx context.Context, in usecase.LookupInput) (*model.Address, error)
}

// DeliveryFacade records delivery outcomes.
type DeliveryFacade interface {
	VerifyDelivery(ctx context.Context, in usecase.VerifyInput) (*model.DeliveryReport, error)
}

// PartnerFacade issues partner credentials.
type PartnerFacade interface {
	IssueKey(ctx context.Context, partnerName string) (*model.PartnerKey, error)
}

// StatsFacade exposes registry aggregates.
type StatsFacade interface {
	Stats(ctx context.Context) (*model.Stats, error)
	Pricing() usecase.Pricing
}

// InvoiceFacade manages partner invoices.
type InvoiceFacade interface {
	GenerateInvoice(ctx context.Context, partnerID int64) (*model.Invoice, []byte, error)
	DownloadInvoice(ctx context.Context, number string) (*model.Invoice, []byte, error)
	MarkInvoicePaid(ctx context.Context, id int64) (*model.Invoice, error)
	Invoices(ctx context.Context) ([]model.Invoice, error)
}

// DashboardFacade feeds the HTML pages.
type DashboardFacade interface {
	StatsFacade
	RecentAddresses(ctx context.Context) ([]model.Address, error)
	PartnerUsage(ctx context.Context) ([]model.PartnerUsage, error)
	Invoices(ctx context.Context) ([]model.Invoice, error)
}

// HealthFacade reports backing store reachability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// RegistryFacade aggregates the full set of operations used across handlers.
type RegistryFacade interface {
	AddressFacade
	DeliveryFacade
	PartnerFacade
	InvoiceFacade
	DashboardFacade
	HealthFacade
	AdminEnabled() bool
	VerifyAdmin(user, password string) bool
}
