package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/wasul/internal/domain/model"
)

func (r *deliveryRepository) Record(ctx context.Context, report model.DeliveryReport) (*model.DeliveryReport, error) {
	const insertReport = `INSERT INTO deliveries (address_code, delivery_partner, success, feedback)
                          VALUES ($1, $2, $3, $4) RETURNING id, delivered_at`
	const bumpAddress = `UPDATE addresses
                         SET successful_deliveries = successful_deliveries + 1,
                             verified = verified OR successful_deliveries + 1 >= $2
                         WHERE address_code=$1`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertReport, report.AddressCode, report.Partner, report.Success, report.Feedback).
			Scan(&report.ID, &report.DeliveredAt); err != nil {
			return err
		}
		if !report.Success {
			return nil
		}
		// Unknown codes match no row; the report itself is still kept.
		_, err := tx.Exec(ctx, bumpAddress, report.AddressCode, model.VerificationThreshold)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *deliveryRepository) CountSuccessfulByPartner(ctx context.Context, partner string) (int64, error) {
	const query = `SELECT COUNT(*) FROM deliveries WHERE delivery_partner=$1 AND success`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, partner).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
