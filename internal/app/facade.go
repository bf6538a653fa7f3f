package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
	"github.com/polkiloo/wasul/internal/metrics"
	pkgAuth "github.com/polkiloo/wasul/internal/pkg/auth"
	"github.com/polkiloo/wasul/internal/usecase"
)

type RegistryFacade struct {
	addresses  *usecase.AddressUseCase
	deliveries *usecase.DeliveryUseCase
	partners   *usecase.PartnerUseCase
	invoices   *usecase.InvoiceUseCase
	stats      *usecase.StatsUseCase
	admin      *pkgAuth.AdminCredentials
	health     repository.HealthChecker
	metrics    *metrics.Metrics
}

type facadeParams struct {
	fx.In

	Addresses  *usecase.AddressUseCase
	Deliveries *usecase.DeliveryUseCase
	Partners   *usecase.PartnerUseCase
	Invoices   *usecase.InvoiceUseCase
	Stats      *usecase.StatsUseCase
	Admin      *pkgAuth.AdminCredentials
	Health     repository.HealthChecker
	Metrics    *metrics.Metrics `optional:"true"`
}

func NewRegistryFacade(p facadeParams) *RegistryFacade {
	return &RegistryFacade{
		addresses:  p.Addresses,
		deliveries: p.Deliveries,
		partners:   p.Partners,
		invoices:   p.Invoices,
		stats:      p.Stats,
		admin:      p.Admin,
		health:     p.Health,
		metrics:    p.Metrics,
	}
}

func (f *RegistryFacade) RegisterAddress(ctx context.Context, in usecase.RegisterInput) (*model.Address, error) {
	address, err := f.addresses.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	f.metrics.RecordRegistration()
	return address, nil
}

func (f *RegistryFacade) LookupAddress(ctx context.Context, in usecase.LookupInput) (*model.Address, error) {
	address, err := f.addresses.Lookup(ctx, in)
	if err != nil {
		return nil, err
	}
	f.metrics.RecordLookup()
	return address, nil
}

func (f *RegistryFacade) VerifyDelivery(ctx context.Context, in usecase.VerifyInput) (*model.DeliveryReport, error) {
	report, err := f.deliveries.Verify(ctx, in)
	if err != nil {
		return nil, err
	}
	f.metrics.RecordDelivery(report.Success)
	return report, nil
}

func (f *RegistryFacade) IssueKey(ctx context.Context, partnerName string) (*model.PartnerKey, error) {
	partner, err := f.partners.IssueKey(ctx, partnerName)
	if err != nil {
		return nil, err
	}
	f.metrics.RecordKeyIssued()
	return partner, nil
}

func (f *RegistryFacade) Stats(ctx context.Context) (*model.Stats, error) {
	return f.stats.Overview(ctx)
}

func (f *RegistryFacade) Pricing() usecase.Pricing {
	return f.stats.Pricing()
}

func (f *RegistryFacade) RecentAddresses(ctx context.Context) ([]model.Address, error) {
	return f.addresses.ListRecent(ctx)
}

// PartnerUsage lists active partners with the revenue of their lookups.
func (f *RegistryFacade) PartnerUsage(ctx context.Context) ([]model.PartnerUsage, error) {
	partners, err := f.partners.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	pricing := f.stats.Pricing()
	usage := make([]model.PartnerUsage, 0, len(partners))
	for _, p := range partners {
		usage = append(usage, model.PartnerUsage{Partner: p, Revenue: pricing.Revenue(p.LookupsUsed)})
	}
	return usage, nil
}

func (f *RegistryFacade) GenerateInvoice(ctx context.Context, partnerID int64) (*model.Invoice, []byte, error) {
	invoice, document, err := f.invoices.Generate(ctx, partnerID)
	if err != nil {
		return nil, nil, err
	}
	f.metrics.RecordInvoice()
	return invoice, document, nil
}

func (f *RegistryFacade) DownloadInvoice(ctx context.Context, number string) (*model.Invoice, []byte, error) {
	return f.invoices.Download(ctx, number)
}

func (f *RegistryFacade) MarkInvoicePaid(ctx context.Context, id int64) (*model.Invoice, error) {
	invoice, err := f.invoices.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	f.metrics.RecordInvoicePaid()
	return invoice, nil
}

func (f *RegistryFacade) Invoices(ctx context.Context) ([]model.Invoice, error) {
	return f.invoices.List(ctx)
}

func (f *RegistryFacade) AdminEnabled() bool {
	return f.admin.Enabled()
}

func (f *RegistryFacade) VerifyAdmin(user, password string) bool {
	return f.admin.Verify(user, password)
}

func (f *RegistryFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
