package store

import (
	"context"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

const addressColumns = "id, street, house_number, city, postal_code"

// AddressStore persists address rows.
type AddressStore struct {
	t table[entity.Address]
}

func NewAddressStore() *AddressStore {
	return &AddressStore{
		t: table[entity.Address]{
			kind: entity.KindAddress,
			insertSQL: `INSERT INTO address (street, house_number, city, postal_code)
				VALUES ($1, $2, $3, $4) RETURNING id`,
			updateSQL: `UPDATE address SET street = $1, house_number = $2, city = $3, postal_code = $4
				WHERE id = $5`,
			deleteSQL:     `DELETE FROM address WHERE id = $1`,
			selectByIDSQL: `SELECT ` + addressColumns + ` FROM address WHERE id = $1`,
			selectAllSQL:  `SELECT ` + addressColumns + ` FROM address ORDER BY id`,
			insertArgs: func(a *entity.Address) []any {
				return []any{a.Street, a.HouseNumber, a.City, a.PostalCode}
			},
			updateArgs: func(a *entity.Address) []any {
				return []any{a.Street, a.HouseNumber, a.City, a.PostalCode}
			},
			scan:  scanAddress,
			id:    func(a *entity.Address) int64 { return a.ID },
			setID: func(a *entity.Address, id int64) { a.ID = id },
		},
	}
}

func scanAddress(s scanner) (*entity.Address, error) {
	var a entity.Address
	if err := s.Scan(&a.ID, &a.Street, &a.HouseNumber, &a.City, &a.PostalCode); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *AddressStore) Save(ctx context.Context, q Querier, a *entity.Address) error {
	return s.t.save(ctx, q, a)
}

func (s *AddressStore) Update(ctx context.Context, q Querier, a *entity.Address) error {
	return s.t.update(ctx, q, a)
}

func (s *AddressStore) Delete(ctx context.Context, q Querier, id int64) error {
	return s.t.delete(ctx, q, id)
}

func (s *AddressStore) FindByID(ctx context.Context, q Querier, id int64) (*entity.Address, error) {
	return s.t.findByID(ctx, q, id)
}

func (s *AddressStore) FindAll(ctx context.Context, q Querier) ([]*entity.Address, error) {
	return s.t.findAll(ctx, q)
}

// FindByIDs fetches the given addresses in one query, keyed by id. Missing
// ids are simply absent from the result.
func (s *AddressStore) FindByIDs(ctx context.Context, q Querier, ids []int64) (map[int64]*entity.Address, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Address{}, nil
	}

	query := `SELECT ` + addressColumns + ` FROM address WHERE id IN (` + inClause(len(ids), 1) + `)`

	rows, err := q.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching addresses by ids")
	}
	defer rows.Close()

	out := make(map[int64]*entity.Address, len(ids))

	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning address")
		}

		out[a.ID] = a
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating address rows")
	}

	return out, nil
}
