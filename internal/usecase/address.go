package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
	"github.com/polkiloo/wasul/internal/pkg/addresscode"
)

const (
	defaultCity = "Muscat"

	maxCodeAttempts = 5
)

// RegisterInput carries a resident's registration request.
type RegisterInput struct {
	Phone         string
	Latitude      float64
	Longitude     float64
	POBox         *string
	Area          *string
	City          string
	DeliveryNotes *string
}

// LookupInput carries a partner's lookup request.
type LookupInput struct {
	APIKey string
	Phone  string
	Code   string
}

// AddressUseCase registers addresses and serves partner lookups.
type AddressUseCase struct {
	addresses repository.AddressRepository
	partners  repository.PartnerRepository
	codes     addresscode.Generator
	logger    *slog.Logger
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository, partners repository.PartnerRepository, codes addresscode.Generator, logger *slog.Logger) *AddressUseCase {
	return &AddressUseCase{addresses: addresses, partners: partners, codes: codes, logger: logger}
}

// Register stores a new address under a freshly generated code.
// A phone that already owns an address yields DuplicatePhoneError.
func (u *AddressUseCase) Register(ctx context.Context, in RegisterInput) (*model.Address, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, domainErrors.ErrInvalidPhone
	}
	if !model.ValidCoordinates(in.Latitude, in.Longitude) {
		return nil, domainErrors.ErrInvalidCoordinates
	}
	city := strings.TrimSpace(in.City)
	if city == "" {
		city = defaultCity
	}

	if err := u.ensurePhoneFree(ctx, phone); err != nil {
		return nil, err
	}

	address := model.Address{
		Phone:         phone,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		POBox:         in.POBox,
		Area:          in.Area,
		City:          city,
		DeliveryNotes: in.DeliveryNotes,
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		address.Code = u.codes.Generate(city)
		created, err := u.addresses.Create(ctx, address)
		switch {
		case err == nil:
			u.logger.Info("address registered", slog.String("address_code", created.Code), slog.String("city", city))
			return created, nil
		case errors.Is(err, domainErrors.ErrCodeCollision):
			u.logger.Warn("address code collision", slog.String("address_code", address.Code), slog.Int("attempt", attempt))
			continue
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			// lost a race with a concurrent registration of the same phone
			if err := u.ensurePhoneFree(ctx, phone); err != nil {
				return nil, err
			}
			return nil, err
		default:
			return nil, err
		}
	}

	return nil, domainErrors.ErrCodeCollision
}

func (u *AddressUseCase) ensurePhoneFree(ctx context.Context, phone string) error {
	existing, err := u.addresses.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		return &domainErrors.DuplicatePhoneError{Code: existing.Code}
	case errors.Is(err, domainErrors.ErrNotFound):
		return nil
	default:
		return err
	}
}

// Lookup authenticates the partner, resolves the address by phone or code
// (phone wins when both are given) and bills one lookup.
func (u *AddressUseCase) Lookup(ctx context.Context, in LookupInput) (*model.Address, error) {
	partner, err := authenticatePartner(ctx, u.partners, in.APIKey)
	if err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(in.Phone)
	code := strings.TrimSpace(in.Code)

	var address *model.Address
	switch {
	case phone != "":
		address, err = u.addresses.GetByPhone(ctx, phone)
	case code != "":
		address, err = u.addresses.GetByCode(ctx, code)
	default:
		return nil, domainErrors.ErrMissingLookupKey
	}
	if err != nil {
		return nil, err
	}

	if err := u.partners.IncrementLookups(ctx, partner.ID); err != nil {
		return nil, err
	}

	return address, nil
}

// ListRecent returns every address, newest first.
func (u *AddressUseCase) ListRecent(ctx context.Context) ([]model.Address, error) {
	return u.addresses.ListRecent(ctx)
}
