package store

import (
	"context"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

const freelancerColumns = "id, first_name, last_name, email, phone_number, address_id, " +
	"business_name, business_id_no, bank_account, active"

// FreelancerStore persists freelancer rows. The address column holds only
// the foreign key; scanned rows carry an address reference for the service
// layer to hydrate.
type FreelancerStore struct {
	t table[entity.Freelancer]
}

func NewFreelancerStore() *FreelancerStore {
	return &FreelancerStore{
		t: table[entity.Freelancer]{
			kind: entity.KindFreelancer,
			insertSQL: `INSERT INTO freelancer (first_name, last_name, email, phone_number, address_id,
				business_name, business_id_no, bank_account, active)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			updateSQL: `UPDATE freelancer SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
				address_id = $5, business_name = $6, business_id_no = $7, bank_account = $8, active = $9
				WHERE id = $10`,
			deleteSQL:     `DELETE FROM freelancer WHERE id = $1`,
			selectByIDSQL: `SELECT ` + freelancerColumns + ` FROM freelancer WHERE id = $1`,
			selectAllSQL:  `SELECT ` + freelancerColumns + ` FROM freelancer ORDER BY id`,
			insertArgs:    freelancerArgs,
			updateArgs:    freelancerArgs,
			scan:          scanFreelancer,
			id:            func(f *entity.Freelancer) int64 { return f.ID },
			setID:         func(f *entity.Freelancer, id int64) { f.ID = id },
		},
	}
}

func freelancerArgs(f *entity.Freelancer) []any {
	return []any{
		f.FirstName, f.LastName, f.Email, f.PhoneNumber, f.Address.ID,
		f.BusinessName, f.BusinessIDNo, f.BankAccount, f.Active,
	}
}

func scanFreelancer(s scanner) (*entity.Freelancer, error) {
	var (
		f         entity.Freelancer
		addressID int64
	)

	err := s.Scan(
		&f.ID, &f.FirstName, &f.LastName, &f.Email, &f.PhoneNumber, &addressID,
		&f.BusinessName, &f.BusinessIDNo, &f.BankAccount, &f.Active,
	)
	if err != nil {
		return nil, err
	}

	f.Address = entity.AddressRef(addressID)

	return &f, nil
}

func (s *FreelancerStore) Save(ctx context.Context, q Querier, f *entity.Freelancer) error {
	return s.t.save(ctx, q, f)
}

func (s *FreelancerStore) Update(ctx context.Context, q Querier, f *entity.Freelancer) error {
	return s.t.update(ctx, q, f)
}

func (s *FreelancerStore) Delete(ctx context.Context, q Querier, id int64) error {
	return s.t.delete(ctx, q, id)
}

func (s *FreelancerStore) FindByID(ctx context.Context, q Querier, id int64) (*entity.Freelancer, error) {
	return s.t.findByID(ctx, q, id)
}

func (s *FreelancerStore) FindAll(ctx context.Context, q Querier) ([]*entity.Freelancer, error) {
	return s.t.findAll(ctx, q)
}

// FindByIDs fetches the given freelancers in one query, keyed by id.
func (s *FreelancerStore) FindByIDs(ctx context.Context, q Querier, ids []int64) (map[int64]*entity.Freelancer, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Freelancer{}, nil
	}

	query := `SELECT ` + freelancerColumns + ` FROM freelancer WHERE id IN (` + inClause(len(ids), 1) + `)`

	rows, err := q.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching freelancers by ids")
	}
	defer rows.Close()

	out := make(map[int64]*entity.Freelancer, len(ids))

	for rows.Next() {
		f, err := scanFreelancer(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning freelancer")
		}

		out[f.ID] = f
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating freelancer rows")
	}

	return out, nil
}
