package postgres

import (
	"context"

	"github.com/polkiloo/wasul/internal/domain/model"
)

func (r *statsRepository) Overview(ctx context.Context) (*model.Stats, error) {
	const query = `SELECT
            (SELECT COUNT(*) FROM addresses),
            (SELECT COUNT(*) FROM addresses WHERE verified),
            (SELECT COUNT(*) FROM deliveries WHERE success),
            (SELECT COUNT(*) FROM api_keys WHERE active),
            (SELECT COALESCE(SUM(lookups_used), 0)::BIGINT FROM api_keys),
            (SELECT COUNT(*) FROM invoices),
            (SELECT COUNT(*) FROM invoices WHERE status = 'paid')`
	var st model.Stats
	err := r.storage.pool.QueryRow(ctx, query).Scan(
		&st.TotalAddresses, &st.VerifiedAddresses, &st.SuccessfulDeliveries, &st.ActivePartners,
		&st.TotalLookups, &st.InvoicesIssued, &st.InvoicesPaid,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
