package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
)

const (
	addressCodeConstraint = "addresses_address_code_key"

	addressColumns = `id, address_code, phone, latitude, longitude, po_box, area, city, delivery_notes, created_at, verified, successful_deliveries`
)

func scanAddress(row pgx.Row, a *model.Address) error {
	return row.Scan(&a.ID, &a.Code, &a.Phone, &a.Latitude, &a.Longitude, &a.POBox, &a.Area, &a.City, &a.DeliveryNotes, &a.CreatedAt, &a.Verified, &a.SuccessfulDeliveries)
}

func (r *addressRepository) Create(ctx context.Context, address model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses (address_code, phone, latitude, longitude, po_box, area, city, delivery_notes)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at, verified, successful_deliveries`
	err := r.storage.pool.QueryRow(ctx, query,
		address.Code, address.Phone, address.Latitude, address.Longitude,
		address.POBox, address.Area, address.City, address.DeliveryNotes,
	).Scan(&address.ID, &address.CreatedAt, &address.Verified, &address.SuccessfulDeliveries)
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			if constraint == addressCodeConstraint {
				return nil, domainErrors.ErrCodeCollision
			}
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) GetByPhone(ctx context.Context, phone string) (*model.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE phone=$1`
	return r.getOne(ctx, query, phone)
}

func (r *addressRepository) GetByCode(ctx context.Context, code string) (*model.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE address_code=$1`
	return r.getOne(ctx, query, code)
}

func (r *addressRepository) getOne(ctx context.Context, query, arg string) (*model.Address, error) {
	var a model.Address
	if err := scanAddress(r.storage.pool.QueryRow(ctx, query, arg), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) ListRecent(ctx context.Context) ([]model.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM addresses ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := scanAddress(rows, &a); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
