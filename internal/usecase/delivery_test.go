package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	testhelpers "github.com/polkiloo/wasul/internal/test"
)

func TestDeliveryUseCaseVerify(t *testing.T) {
	partners := testhelpers.NewPartnerRepositoryStub()
	partners.Add(model.PartnerKey{ID: 1, PartnerName: "Al Maha", Key: "omaddr_valid", Active: true})
	deliveries := &testhelpers.DeliveryRepositoryStub{}
	uc := NewDeliveryUseCase(deliveries, partners, discardLogger())

	report, err := uc.Verify(context.Background(), VerifyInput{
		APIKey:      "omaddr_valid",
		AddressCode: " OM-MUS-1234A ",
		Success:     boolPtr(true),
		Feedback:    strPtr("Easy to find"),
	})
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if report.Partner != "Al Maha" || report.AddressCode != "OM-MUS-1234A" || !report.Success {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Feedback == nil || *report.Feedback != "Easy to find" {
		t.Fatalf("expected feedback stored, got %v", report.Feedback)
	}
}

func TestDeliveryUseCaseVerifyValidation(t *testing.T) {
	partners := testhelpers.NewPartnerRepositoryStub()
	partners.Add(model.PartnerKey{ID: 1, PartnerName: "Al Maha", Key: "omaddr_valid", Active: true})
	uc := NewDeliveryUseCase(&testhelpers.DeliveryRepositoryStub{}, partners, discardLogger())

	cases := []struct {
		name string
		in   VerifyInput
		want error
	}{
		{"bad key", VerifyInput{APIKey: "nope", AddressCode: "X", Success: boolPtr(true)}, domainErrors.ErrInvalidAPIKey},
		{"bad key wins over missing fields", VerifyInput{APIKey: ""}, domainErrors.ErrInvalidAPIKey},
		{"missing code", VerifyInput{APIKey: "omaddr_valid", Success: boolPtr(true)}, domainErrors.ErrInvalidAddressCode},
		{"missing outcome", VerifyInput{APIKey: "omaddr_valid", AddressCode: "X"}, domainErrors.ErrMissingOutcome},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Verify(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDeliveryUseCaseVerifyUnknownPartnerName(t *testing.T) {
	partners := testhelpers.NewPartnerRepositoryStub()
	partners.Add(model.PartnerKey{ID: 1, Key: "omaddr_valid", Active: true})
	uc := NewDeliveryUseCase(&testhelpers.DeliveryRepositoryStub{}, partners, discardLogger())

	report, err := uc.Verify(context.Background(), VerifyInput{APIKey: "omaddr_valid", AddressCode: "X", Success: boolPtr(false)})
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if report.Partner != model.UnknownPartner {
		t.Fatalf("expected Unknown partner, got %q", report.Partner)
	}
}

func TestDeliveryUseCaseVerifyRecordError(t *testing.T) {
	partners := testhelpers.NewPartnerRepositoryStub()
	partners.Add(model.PartnerKey{ID: 1, PartnerName: "A", Key: "omaddr_valid", Active: true})
	deliveries := &testhelpers.DeliveryRepositoryStub{RecordFn: func(context.Context, model.DeliveryReport) (*model.DeliveryReport, error) {
		return nil, errors.New("tx failed")
	}}
	uc := NewDeliveryUseCase(deliveries, partners, discardLogger())

	if _, err := uc.Verify(context.Background(), VerifyInput{APIKey: "omaddr_valid", AddressCode: "X", Success: boolPtr(true)}); err == nil {
		t.Fatal("expected record error")
	}
}

func TestVerificationAfterTwoSuccesses(t *testing.T) {
	ctx := context.Background()
	addresses := testhelpers.NewAddressRepositoryStub()
	partners := testhelpers.NewPartnerRepositoryStub()
	deliveries := &testhelpers.DeliveryRepositoryStub{Addresses: addresses}

	partnerUC := NewPartnerUseCase(partners, &testhelpers.KeyGeneratorStub{}, discardLogger())
	addressUC := NewAddressUseCase(addresses, partners, &testhelpers.CodeGeneratorStub{}, discardLogger())
	deliveryUC := NewDeliveryUseCase(deliveries, partners, discardLogger())

	partner, err := partnerUC.IssueKey(ctx, "Test Partner")
	if err != nil {
		t.Fatalf("issue key: %v", err)
	}
	address, err := addressUC.Register(ctx, RegisterInput{Phone: "96891234567", Latitude: 23.588, Longitude: 58.3829, City: "Muscat"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	outcomes := []struct {
		success  bool
		count    int
		verified bool
	}{
		{false, 0, false},
		{true, 1, false},
		{true, 2, true},
		{false, 2, true},
		{true, 3, true},
	}
	for i, o := range outcomes {
		if _, err := deliveryUC.Verify(ctx, VerifyInput{APIKey: partner.Key, AddressCode: address.Code, Success: boolPtr(o.success)}); err != nil {
			t.Fatalf("verify %d: %v", i, err)
		}
		got, err := addressUC.Lookup(ctx, LookupInput{APIKey: partner.Key, Code: address.Code})
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if got.SuccessfulDeliveries != o.count || got.Verified != o.verified {
			t.Fatalf("step %d: expected count=%d verified=%v, got %+v", i, o.count, o.verified, got)
		}
	}

	stored, _ := partners.GetByID(ctx, partner.ID)
	if stored.LookupsUsed != int64(len(outcomes)) {
		t.Fatalf("expected %d lookups billed, got %d", len(outcomes), stored.LookupsUsed)
	}
	if len(deliveries.Reports) != len(outcomes) {
		t.Fatalf("expected every report recorded, got %d", len(deliveries.Reports))
	}
}
