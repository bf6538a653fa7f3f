package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
)

// AddressRepositoryStub stores addresses in-memory for tests.
type AddressRepositoryStub struct {
	mu sync.Mutex

	CreateFn     func(context.Context, model.Address) (*model.Address, error)
	GetByPhoneFn func(context.Context, string) (*model.Address, error)
	Err          error

	ByPhone map[string]*model.Address
	ByCode  map[string]*model.Address
	Next    int64
}

// NewAddressRepositoryStub constructs stub repository with initialized maps.
func NewAddressRepositoryStub() *AddressRepositoryStub {
	return &AddressRepositoryStub{
		ByPhone: make(map[string]*model.Address),
		ByCode:  make(map[string]*model.Address),
		Next:    1,
	}
}

// Create stores address unless phone or code is taken.
func (s *AddressRepositoryStub) Create(ctx context.Context, address model.Address) (*model.Address, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, address)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ByPhone[address.Phone]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByCode[address.Code]; exists {
		return nil, domainErrors.ErrCodeCollision
	}
	address.ID = s.Next
	s.Next++
	address.CreatedAt = time.Now()
	stored := address
	s.ByPhone[address.Phone] = &stored
	s.ByCode[address.Code] = &stored
	out := stored
	return &out, nil
}

// GetByPhone returns a copy of the stored address.
func (s *AddressRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.Address, error) {
	if s.GetByPhoneFn != nil {
		return s.GetByPhoneFn(ctx, phone)
	}
	return s.get(s.ByPhone, phone)
}

// GetByCode returns a copy of the stored address.
func (s *AddressRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Address, error) {
	return s.get(s.ByCode, code)
}

func (s *AddressRepositoryStub) get(index map[string]*model.Address, key string) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := index[key]; ok {
		out := *a
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListRecent returns addresses newest first.
func (s *AddressRepositoryStub) ListRecent(ctx context.Context) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Address, 0, len(s.ByCode))
	for _, a := range s.ByCode {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// RecordSuccess mirrors the storage counter update for a successful delivery.
func (s *AddressRepositoryStub) RecordSuccess(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.ByCode[code]; ok {
		a.SuccessfulDeliveries++
		if a.SuccessfulDeliveries >= model.VerificationThreshold {
			a.Verified = true
		}
	}
}

// DeliveryRepositoryStub records reports and optionally updates linked addresses.
type DeliveryRepositoryStub struct {
	mu sync.Mutex

	RecordFn func(context.Context, model.DeliveryReport) (*model.DeliveryReport, error)
	CountFn  func(context.Context, string) (int64, error)

	Addresses *AddressRepositoryStub
	Reports   []model.DeliveryReport
}

// Record appends report and bumps linked address counters on success.
func (s *DeliveryRepositoryStub) Record(ctx context.Context, report model.DeliveryReport) (*model.DeliveryReport, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, report)
	}
	s.mu.Lock()
	report.ID = int64(len(s.Reports) + 1)
	report.DeliveredAt = time.Now()
	s.Reports = append(s.Reports, report)
	s.mu.Unlock()
	if report.Success && s.Addresses != nil {
		s.Addresses.RecordSuccess(report.AddressCode)
	}
	return &report, nil
}

// CountSuccessfulByPartner counts stored successful reports.
func (s *DeliveryRepositoryStub) CountSuccessfulByPartner(ctx context.Context, partner string) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, partner)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, r := range s.Reports {
		if r.Partner == partner && r.Success {
			count++
		}
	}
	return count, nil
}

// PartnerRepositoryStub stores partner keys in-memory.
type PartnerRepositoryStub struct {
	mu sync.Mutex

	CreateFn    func(context.Context, string, string) (*model.PartnerKey, error)
	IncrementFn func(context.Context, int64) error
	Err         error

	ByID  map[int64]*model.PartnerKey
	ByKey map[string]*model.PartnerKey
	Next  int64
}

// NewPartnerRepositoryStub constructs stub repository with initialized maps.
func NewPartnerRepositoryStub() *PartnerRepositoryStub {
	return &PartnerRepositoryStub{
		ByID:  make(map[int64]*model.PartnerKey),
		ByKey: make(map[string]*model.PartnerKey),
		Next:  1,
	}
}

// Create stores an active key with zero lookups.
func (s *PartnerRepositoryStub) Create(ctx context.Context, partnerName, key string) (*model.PartnerKey, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, partnerName, key)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ByKey[key]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	p := &model.PartnerKey{ID: s.Next, PartnerName: partnerName, Key: key, CreatedAt: time.Now(), Active: true}
	s.Next++
	s.ByID[p.ID] = p
	s.ByKey[key] = p
	out := *p
	return &out, nil
}

// Add inserts a prepared partner, used to seed inactive keys.
func (s *PartnerRepositoryStub) Add(p model.PartnerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := p
	s.ByID[p.ID] = &stored
	s.ByKey[p.Key] = &stored
	if p.ID >= s.Next {
		s.Next = p.ID + 1
	}
}

// GetByKey returns a copy of the stored partner.
func (s *PartnerRepositoryStub) GetByKey(ctx context.Context, key string) (*model.PartnerKey, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.ByKey[key]; ok {
		out := *p
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns a copy of the stored partner.
func (s *PartnerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.PartnerKey, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.ByID[id]; ok {
		out := *p
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// IncrementLookups bumps the stored counter.
func (s *PartnerRepositoryStub) IncrementLookups(ctx context.Context, id int64) error {
	if s.IncrementFn != nil {
		return s.IncrementFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.LookupsUsed++
	return nil
}

// ListActive returns active partners ordered by id.
func (s *PartnerRepositoryStub) ListActive(ctx context.Context) ([]model.PartnerKey, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.PartnerKey
	for _, p := range s.ByID {
		if p.Active {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// InvoiceRepositoryStub stores invoices and per-year sequences in-memory.
type InvoiceRepositoryStub struct {
	mu sync.Mutex

	NextSequenceFn func(context.Context, int) (int64, error)
	CreateFn       func(context.Context, model.Invoice) (*model.Invoice, error)
	Err            error

	Sequences map[int]int64
	Items     []model.Invoice
}

// NextSequence increments and returns the year counter.
func (s *InvoiceRepositoryStub) NextSequence(ctx context.Context, year int) (int64, error) {
	if s.NextSequenceFn != nil {
		return s.NextSequenceFn(ctx, year)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Sequences == nil {
		s.Sequences = make(map[int]int64)
	}
	s.Sequences[year]++
	return s.Sequences[year], nil
}

// Create stores invoice with next identifier.
func (s *InvoiceRepositoryStub) Create(ctx context.Context, invoice model.Invoice) (*model.Invoice, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, invoice)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, invoice)
	return &invoice, nil
}

// GetByNumber finds an invoice by number.
func (s *InvoiceRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.Items {
		if inv.Number == number {
			out := inv
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns invoices newest first.
func (s *InvoiceRepositoryStub) List(ctx context.Context) ([]model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Invoice, 0, len(s.Items))
	for i := len(s.Items) - 1; i >= 0; i-- {
		result = append(result, s.Items[i])
	}
	return result, nil
}

// MarkPaid sets status and keeps first paid_at.
func (s *InvoiceRepositoryStub) MarkPaid(ctx context.Context, id int64) (*model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Status = model.InvoiceStatusPaid
			if s.Items[i].PaidAt == nil {
				now := time.Now()
				s.Items[i].PaidAt = &now
			}
			out := s.Items[i]
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// StatsRepositoryStub returns configured aggregates.
type StatsRepositoryStub struct {
	Stats model.Stats
	Err   error
}

// Overview returns a copy of configured stats.
func (s *StatsRepositoryStub) Overview(ctx context.Context) (*model.Stats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := s.Stats
	return &out, nil
}

var (
	_ repository.AddressRepository  = (*AddressRepositoryStub)(nil)
	_ repository.DeliveryRepository = (*DeliveryRepositoryStub)(nil)
	_ repository.PartnerRepository  = (*PartnerRepositoryStub)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepositoryStub)(nil)
	_ repository.StatsRepository    = (*StatsRepositoryStub)(nil)
)

// HealthCheckerStub returns the configured error.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck reports Err.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

var _ repository.HealthChecker = HealthCheckerStub{}
