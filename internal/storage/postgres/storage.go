package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/wasul/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type addressRepository struct {
	storage *Storage
}

type deliveryRepository struct {
	storage *Storage
}

type partnerRepository struct {
	storage *Storage
}

type invoiceRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Deliveries() repository.DeliveryRepository {
	return &deliveryRepository{storage: s}
}

func (s *Storage) Partners() repository.PartnerRepository {
	return &partnerRepository{storage: s}
}

func (s *Storage) Invoices() repository.InvoiceRepository {
	return &invoiceRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS addresses (
            id BIGSERIAL PRIMARY KEY,
            address_code TEXT NOT NULL,
            phone TEXT NOT NULL,
            latitude DOUBLE PRECISION NOT NULL,
            longitude DOUBLE PRECISION NOT NULL,
            po_box TEXT,
            area TEXT,
            city TEXT NOT NULL,
            delivery_notes TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            verified BOOLEAN NOT NULL DEFAULT FALSE,
            successful_deliveries INTEGER NOT NULL DEFAULT 0,
            CONSTRAINT addresses_address_code_key UNIQUE (address_code),
            CONSTRAINT addresses_phone_key UNIQUE (phone)
        )`,
		`CREATE TABLE IF NOT EXISTS deliveries (
            id BIGSERIAL PRIMARY KEY,
            address_code TEXT NOT NULL,
            delivery_partner TEXT NOT NULL,
            success BOOLEAN NOT NULL,
            feedback TEXT,
            delivered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS api_keys (
            id BIGSERIAL PRIMARY KEY,
            partner_name TEXT NOT NULL,
            api_key TEXT UNIQUE NOT NULL,
            lookups_used BIGINT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS invoice_sequences (
            year INTEGER PRIMARY KEY,
            last_value BIGINT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS invoices (
            id BIGSERIAL PRIMARY KEY,
            invoice_number TEXT UNIQUE NOT NULL,
            partner_id BIGINT NOT NULL REFERENCES api_keys(id),
            partner_name TEXT NOT NULL,
            key_snapshot TEXT NOT NULL,
            billing_period TEXT NOT NULL,
            lookups BIGINT NOT NULL,
            verified_deliveries BIGINT NOT NULL,
            rate DOUBLE PRECISION NOT NULL,
            currency TEXT NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            tax DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            status TEXT NOT NULL,
            paid_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_created ON addresses(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_partner ON deliveries(delivery_partner, success)`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_created ON invoices(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
