package store

import (
	"context"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

const invoiceColumns = "id, freelancer_id, invoice_date, due_date"

// InvoiceStore persists invoice header rows. Line items live in the service
// table and are managed by ServiceStore.
type InvoiceStore struct {
	t table[entity.Invoice]
}

func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{
		t: table[entity.Invoice]{
			kind: entity.KindInvoice,
			insertSQL: `INSERT INTO invoice (freelancer_id, invoice_date, due_date)
				VALUES ($1, $2, $3) RETURNING id`,
			updateSQL: `UPDATE invoice SET freelancer_id = $1, invoice_date = $2, due_date = $3
				WHERE id = $4`,
			deleteSQL:     `DELETE FROM invoice WHERE id = $1`,
			selectByIDSQL: `SELECT ` + invoiceColumns + ` FROM invoice WHERE id = $1`,
			selectAllSQL:  `SELECT ` + invoiceColumns + ` FROM invoice ORDER BY id`,
			insertArgs:    invoiceArgs,
			updateArgs:    invoiceArgs,
			scan:          scanInvoice,
			id:            func(i *entity.Invoice) int64 { return i.ID },
			setID:         func(i *entity.Invoice, id int64) { i.ID = id },
		},
	}
}

func invoiceArgs(i *entity.Invoice) []any {
	return []any{i.Freelancer.ID, i.InvoiceDate, i.DueDate}
}

func scanInvoice(s scanner) (*entity.Invoice, error) {
	var (
		i            entity.Invoice
		freelancerID int64
	)

	if err := s.Scan(&i.ID, &freelancerID, &i.InvoiceDate, &i.DueDate); err != nil {
		return nil, err
	}

	i.Freelancer = entity.FreelancerRef(freelancerID)

	return &i, nil
}

func (s *InvoiceStore) Save(ctx context.Context, q Querier, i *entity.Invoice) error {
	return s.t.save(ctx, q, i)
}

func (s *InvoiceStore) Update(ctx context.Context, q Querier, i *entity.Invoice) error {
	return s.t.update(ctx, q, i)
}

func (s *InvoiceStore) Delete(ctx context.Context, q Querier, id int64) error {
	return s.t.delete(ctx, q, id)
}

func (s *InvoiceStore) FindByID(ctx context.Context, q Querier, id int64) (*entity.Invoice, error) {
	return s.t.findByID(ctx, q, id)
}

func (s *InvoiceStore) FindAll(ctx context.Context, q Querier) ([]*entity.Invoice, error) {
	return s.t.findAll(ctx, q)
}

// FindByIDs fetches the given invoice headers in one query, keyed by id.
func (s *InvoiceStore) FindByIDs(ctx context.Context, q Querier, ids []int64) (map[int64]*entity.Invoice, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Invoice{}, nil
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoice WHERE id IN (` + inClause(len(ids), 1) + `)`

	rows, err := q.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching invoices by ids")
	}
	defer rows.Close()

	out := make(map[int64]*entity.Invoice, len(ids))

	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning invoice")
		}

		out[i.ID] = i
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating invoice rows")
	}

	return out, nil
}
