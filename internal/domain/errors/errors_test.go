package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid api key", ErrInvalidAPIKey},
		{"invalid coordinates", ErrInvalidCoordinates},
		{"missing lookup key", ErrMissingLookupKey},
		{"code collision", ErrCodeCollision},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestDuplicatePhoneError(t *testing.T) {
	err := fmt.Errorf("register: %w", &DuplicatePhoneError{Code: "OM-MUS-1234A"})

	if !stdErrors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected duplicate to unwrap to ErrAlreadyExists")
	}

	var dup *DuplicatePhoneError
	if !stdErrors.As(err, &dup) {
		t.Fatalf("expected errors.As to find DuplicatePhoneError")
	}
	if dup.Code != "OM-MUS-1234A" {
		t.Fatalf("unexpected code %q", dup.Code)
	}
	if got := dup.Error(); got != "Phone number already registered with code: OM-MUS-1234A" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestIsValidation(t *testing.T) {
	for _, err := range []error{ErrInvalidCoordinates, ErrInvalidPhone, ErrMissingLookupKey, ErrInvalidAddressCode, ErrInvalidPartnerName, ErrMissingOutcome, ErrInvalidInvoice} {
		if !IsValidation(fmt.Errorf("wrapped: %w", err)) {
			t.Errorf("expected %v to be a validation error", err)
		}
	}
	for _, err := range []error{ErrNotFound, ErrInvalidAPIKey, ErrAlreadyExists, stdErrors.New("boom")} {
		if IsValidation(err) {
			t.Errorf("did not expect %v to be a validation error", err)
		}
	}
}
