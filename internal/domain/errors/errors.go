package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidAPIKey      = errors.New("invalid or inactive API key")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidPhone       = errors.New("phone number is required")
	ErrMissingLookupKey   = errors.New("must provide either phone or address_code")
	ErrInvalidAddressCode = errors.New("address_code is required")
	ErrInvalidPartnerName = errors.New("partner_name is required")
	ErrMissingOutcome     = errors.New("success is required")
	ErrCodeCollision      = errors.New("address code collision")
	ErrInvalidInvoice     = errors.New("invalid invoice number")
)

// DuplicatePhoneError reports a registration for a phone that already owns an address.
type DuplicatePhoneError struct {
	Code string
}

func (e *DuplicatePhoneError) Error() string {
	return fmt.Sprintf("Phone number already registered with code: %s", e.Code)
}

func (e *DuplicatePhoneError) Unwrap() error {
	return ErrAlreadyExists
}

// IsValidation reports whether err describes bad client input.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidCoordinates),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrMissingLookupKey),
		errors.Is(err, ErrInvalidAddressCode),
		errors.Is(err, ErrInvalidPartnerName),
		errors.Is(err, ErrMissingOutcome),
		errors.Is(err, ErrInvalidInvoice):
		return true
	}
	return false
}
