package repository

import (
	"context"

	"github.com/polkiloo/wasul/internal/domain/model"
)

// AddressRepository persists registered addresses.
type AddressRepository interface {
	Create(ctx context.Context, address model.Address) (*model.Address, error)
	GetByPhone(ctx context.Context, phone string) (*model.Address, error)
	GetByCode(ctx context.Context, code string) (*model.Address, error)
	ListRecent(ctx context.Context) ([]model.Address, error)
}

// DeliveryRepository stores delivery outcome reports.
type DeliveryRepository interface {
	// Record appends the report and, for a successful outcome, bumps the
	// address counter in the same transaction.
	Record(ctx context.Context, report model.DeliveryReport) (*model.DeliveryReport, error)
	CountSuccessfulByPartner(ctx context.Context, partner string) (int64, error)
}

// PartnerRepository manages partner API keys.
type PartnerRepository interface {
	Create(ctx context.Context, partnerName, key string) (*model.PartnerKey, error)
	GetByKey(ctx context.Context, key string) (*model.PartnerKey, error)
	GetByID(ctx context.Context, id int64) (*model.PartnerKey, error)
	IncrementLookups(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]model.PartnerKey, error)
}

// InvoiceRepository persists generated invoices and their numbering.
type InvoiceRepository interface {
	NextSequence(ctx context.Context, year int) (int64, error)
	Create(ctx context.Context, invoice model.Invoice) (*model.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	MarkPaid(ctx context.Context, id int64) (*model.Invoice, error)
}

// StatsRepository computes registry wide aggregates.
type StatsRepository interface {
	Overview(ctx context.Context) (*model.Stats, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
