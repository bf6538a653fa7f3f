package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
)

const invoiceColumns = `id, invoice_number, partner_id, partner_name, key_snapshot, billing_period, lookups, verified_deliveries,
                        rate, currency, subtotal, tax, total, created_at, status, paid_at`

func scanInvoice(row pgx.Row, inv *model.Invoice) error {
	return row.Scan(&inv.ID, &inv.Number, &inv.PartnerID, &inv.PartnerName, &inv.KeySnapshot, &inv.BillingPeriod,
		&inv.Lookups, &inv.VerifiedDeliveries, &inv.Rate, &inv.Currency, &inv.Subtotal, &inv.Tax, &inv.Total,
		&inv.CreatedAt, &inv.Status, &inv.PaidAt)
}

func (r *invoiceRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	const query = `INSERT INTO invoice_sequences (year, last_value) VALUES ($1, 1)
                   ON CONFLICT (year) DO UPDATE SET last_value = invoice_sequences.last_value + 1
                   RETURNING last_value`
	var seq int64
	if err := r.storage.pool.QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *invoiceRepository) Create(ctx context.Context, inv model.Invoice) (*model.Invoice, error) {
	const query = `INSERT INTO invoices (invoice_number, partner_id, partner_name, key_snapshot, billing_period,
                       lookups, verified_deliveries, rate, currency, subtotal, tax, total, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		inv.Number, inv.PartnerID, inv.PartnerName, inv.KeySnapshot, inv.BillingPeriod,
		inv.Lookups, inv.VerifiedDeliveries, inv.Rate, inv.Currency, inv.Subtotal, inv.Tax, inv.Total, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_number=$1`
	var inv model.Invoice
	if err := scanInvoice(r.storage.pool.QueryRow(ctx, query, number), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, err
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkPaid keeps the first paid_at when the invoice is already paid.
func (r *invoiceRepository) MarkPaid(ctx context.Context, id int64) (*model.Invoice, error) {
	const query = `UPDATE invoices SET status=$2, paid_at=COALESCE(paid_at, NOW())
                   WHERE id=$1 RETURNING ` + invoiceColumns
	var inv model.Invoice
	if err := scanInvoice(r.storage.pool.QueryRow(ctx, query, id, model.InvoiceStatusPaid), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}
