package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
	pkgAuth "github.com/polkiloo/wasul/internal/pkg/auth"
)

// Pricing holds billing parameters applied to every invoice.
type Pricing struct {
	Rate     float64
	Currency string
}

// Revenue prices a number of lookups.
func (p Pricing) Revenue(lookups int64) float64 {
	return model.RoundAmount(float64(lookups) * p.Rate)
}

// InvoiceUseCase composes, archives and tracks partner invoices.
type InvoiceUseCase struct {
	partners   repository.PartnerRepository
	deliveries repository.DeliveryRepository
	invoices   repository.InvoiceRepository
	renderer   repository.InvoiceRenderer
	archive    repository.InvoiceArchive
	pricing    Pricing
	logger     *slog.Logger
	now        func() time.Time
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(
	partners repository.PartnerRepository,
	deliveries repository.DeliveryRepository,
	invoices repository.InvoiceRepository,
	renderer repository.InvoiceRenderer,
	archive repository.InvoiceArchive,
	pricing Pricing,
	logger *slog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		partners:   partners,
		deliveries: deliveries,
		invoices:   invoices,
		renderer:   renderer,
		archive:    archive,
		pricing:    pricing,
		logger:     logger,
		now:        time.Now,
	}
}

// Generate bills the partner's cumulative lookups for the previous calendar
// month label. The lookup count is not scoped to that month.
func (u *InvoiceUseCase) Generate(ctx context.Context, partnerID int64) (*model.Invoice, []byte, error) {
	partner, err := u.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, nil, err
	}

	delivered, err := u.deliveries.CountSuccessfulByPartner(ctx, partner.PartnerName)
	if err != nil {
		return nil, nil, err
	}

	now := u.now()
	seq, err := u.invoices.NextSequence(ctx, now.Year())
	if err != nil {
		return nil, nil, err
	}

	subtotal := u.pricing.Revenue(partner.LookupsUsed)
	tax := 0.0
	invoice := model.Invoice{
		Number:             model.FormatInvoiceNumber(now.Year(), seq),
		PartnerID:          partner.ID,
		PartnerName:        partner.PartnerName,
		KeySnapshot:        pkgAuth.MaskAPIKey(partner.Key),
		BillingPeriod:      model.BillingPeriod(now),
		Lookups:            partner.LookupsUsed,
		VerifiedDeliveries: delivered,
		Rate:               u.pricing.Rate,
		Currency:           u.pricing.Currency,
		Subtotal:           subtotal,
		Tax:                tax,
		Total:              model.RoundAmount(subtotal + tax),
		CreatedAt:          now,
		Status:             model.InvoiceStatusUnpaid,
	}

	document, err := u.renderer.Render(invoice)
	if err != nil {
		return nil, nil, err
	}
	if err := u.archive.Save(ctx, invoice.Number, document); err != nil {
		return nil, nil, err
	}

	saved, err := u.invoices.Create(ctx, invoice)
	if err != nil {
		if delErr := u.archive.Delete(ctx, invoice.Number); delErr != nil {
			u.logger.Warn("remove orphaned invoice document",
				slog.String("invoice_number", invoice.Number),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, nil, err
	}

	u.logger.Info("invoice generated",
		slog.String("invoice_number", saved.Number),
		slog.Int64("partner_id", saved.PartnerID),
		slog.Int64("lookups", saved.Lookups),
		slog.Float64("total", saved.Total),
	)
	return saved, document, nil
}

// Download returns the stored invoice and its archived document.
// Numbers outside the invoice pattern cannot exist and report ErrNotFound.
func (u *InvoiceUseCase) Download(ctx context.Context, number string) (*model.Invoice, []byte, error) {
	if !model.ValidInvoiceNumber(number) {
		return nil, nil, domainErrors.ErrNotFound
	}
	invoice, err := u.invoices.GetByNumber(ctx, number)
	if err != nil {
		return nil, nil, err
	}
	document, err := u.archive.Load(ctx, number)
	if err != nil {
		return nil, nil, err
	}
	return invoice, document, nil
}

// MarkPaid flips the invoice to paid; repeated calls keep the first paid_at.
func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id int64) (*model.Invoice, error) {
	invoice, err := u.invoices.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	u.logger.Info("invoice marked paid", slog.String("invoice_number", invoice.Number))
	return invoice, nil
}

// List returns invoices newest first.
func (u *InvoiceUseCase) List(ctx context.Context) ([]model.Invoice, error) {
	return u.invoices.List(ctx)
}
