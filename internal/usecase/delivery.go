package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
)

// VerifyInput carries a partner's delivery outcome report.
type VerifyInput struct {
	APIKey      string
	AddressCode string
	Success     *bool
	Feedback    *string
}

// DeliveryUseCase records delivery outcomes.
type DeliveryUseCase struct {
	deliveries repository.DeliveryRepository
	partners   repository.PartnerRepository
	logger     *slog.Logger
}

// NewDeliveryUseCase constructs DeliveryUseCase.
func NewDeliveryUseCase(deliveries repository.DeliveryRepository, partners repository.PartnerRepository, logger *slog.Logger) *DeliveryUseCase {
	return &DeliveryUseCase{deliveries: deliveries, partners: partners, logger: logger}
}

// Verify appends the report; successful reports count towards verification
// of the address. Codes that match no address are still recorded.
func (u *DeliveryUseCase) Verify(ctx context.Context, in VerifyInput) (*model.DeliveryReport, error) {
	partner, err := authenticatePartner(ctx, u.partners, in.APIKey)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(in.AddressCode)
	if code == "" {
		return nil, domainErrors.ErrInvalidAddressCode
	}
	if in.Success == nil {
		return nil, domainErrors.ErrMissingOutcome
	}

	name := partner.PartnerName
	if name == "" {
		name = model.UnknownPartner
	}

	report, err := u.deliveries.Record(ctx, model.DeliveryReport{
		AddressCode: code,
		Partner:     name,
		Success:     *in.Success,
		Feedback:    in.Feedback,
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("delivery recorded",
		slog.String("address_code", code),
		slog.String("partner", name),
		slog.Bool("success", report.Success),
	)
	return report, nil
}
