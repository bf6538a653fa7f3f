package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
)

const partnerColumns = `id, partner_name, api_key, lookups_used, created_at, active`

func scanPartner(row pgx.Row, p *model.PartnerKey) error {
	return row.Scan(&p.ID, &p.PartnerName, &p.Key, &p.LookupsUsed, &p.CreatedAt, &p.Active)
}

func (r *partnerRepository) Create(ctx context.Context, partnerName, key string) (*model.PartnerKey, error) {
	const query = `INSERT INTO api_keys (partner_name, api_key) VALUES ($1, $2)
                   RETURNING ` + partnerColumns
	var p model.PartnerKey
	if err := scanPartner(r.storage.pool.QueryRow(ctx, query, partnerName, key), &p); err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) GetByKey(ctx context.Context, key string) (*model.PartnerKey, error) {
	const query = `SELECT ` + partnerColumns + ` FROM api_keys WHERE api_key=$1`
	var p model.PartnerKey
	if err := scanPartner(r.storage.pool.QueryRow(ctx, query, key), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*model.PartnerKey, error) {
	const query = `SELECT ` + partnerColumns + ` FROM api_keys WHERE id=$1`
	var p model.PartnerKey
	if err := scanPartner(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) IncrementLookups(ctx context.Context, id int64) error {
	const query = `UPDATE api_keys SET lookups_used = lookups_used + 1 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *partnerRepository) ListActive(ctx context.Context) ([]model.PartnerKey, error) {
	const query = `SELECT ` + partnerColumns + ` FROM api_keys WHERE active ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PartnerKey
	for rows.Next() {
		var p model.PartnerKey
		if err := scanPartner(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
