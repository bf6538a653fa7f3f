package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
	pkgAuth "github.com/polkiloo/wasul/internal/pkg/auth"
)

// PartnerUseCase issues and checks delivery partner credentials.
type PartnerUseCase struct {
	partners repository.PartnerRepository
	keys     pkgAuth.KeyGenerator
	logger   *slog.Logger
}

// NewPartnerUseCase constructs PartnerUseCase.
func NewPartnerUseCase(partners repository.PartnerRepository, keys pkgAuth.KeyGenerator, logger *slog.Logger) *PartnerUseCase {
	return &PartnerUseCase{partners: partners, keys: keys, logger: logger}
}

// IssueKey creates an active key with a zero lookup counter.
func (u *PartnerUseCase) IssueKey(ctx context.Context, partnerName string) (*model.PartnerKey, error) {
	partnerName = strings.TrimSpace(partnerName)
	if partnerName == "" {
		return nil, domainErrors.ErrInvalidPartnerName
	}

	key, err := u.keys.Generate()
	if err != nil {
		return nil, err
	}

	partner, err := u.partners.Create(ctx, partnerName, key)
	if err != nil {
		return nil, err
	}

	u.logger.Info("api key issued", slog.Int64("partner_id", partner.ID), slog.String("partner", partner.PartnerName))
	return partner, nil
}

// Authenticate resolves an active partner by key.
func (u *PartnerUseCase) Authenticate(ctx context.Context, key string) (*model.PartnerKey, error) {
	return authenticatePartner(ctx, u.partners, key)
}

// Get returns partner by identifier.
func (u *PartnerUseCase) Get(ctx context.Context, id int64) (*model.PartnerKey, error) {
	return u.partners.GetByID(ctx, id)
}

// ListActive returns partners whose keys are active.
func (u *PartnerUseCase) ListActive(ctx context.Context) ([]model.PartnerKey, error) {
	return u.partners.ListActive(ctx)
}

func authenticatePartner(ctx context.Context, partners repository.PartnerRepository, key string) (*model.PartnerKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domainErrors.ErrInvalidAPIKey
	}
	partner, err := partners.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidAPIKey
		}
		return nil, err
	}
	if !partner.Active {
		return nil, domainErrors.ErrInvalidAPIKey
	}
	return partner, nil
}
