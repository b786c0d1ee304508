package store

import (
	"context"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

const paymentColumns = "id, invoice_id, amount, paid_on, transaction_id"

// PaymentStore persists payment rows. An invoice carries at most one
// payment; the by-invoice readers treat a second row as corruption.
type PaymentStore struct {
	t table[entity.Payment]
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		t: table[entity.Payment]{
			kind: entity.KindPayment,
			insertSQL: `INSERT INTO payment (invoice_id, amount, paid_on, transaction_id)
				VALUES ($1, $2, $3, $4) RETURNING id`,
			updateSQL: `UPDATE payment SET invoice_id = $1, amount = $2, paid_on = $3, transaction_id = $4
				WHERE id = $5`,
			deleteSQL:     `DELETE FROM payment WHERE id = $1`,
			selectByIDSQL: `SELECT ` + paymentColumns + ` FROM payment WHERE id = $1`,
			selectAllSQL:  `SELECT ` + paymentColumns + ` FROM payment ORDER BY id`,
			insertArgs:    paymentArgs,
			updateArgs:    paymentArgs,
			scan:          scanPayment,
			id:            func(p *entity.Payment) int64 { return p.ID },
			setID:         func(p *entity.Payment, id int64) { p.ID = id },
		},
	}
}

func paymentArgs(p *entity.Payment) []any {
	return []any{p.Invoice.ID, p.Amount, p.PaidOn, p.TransactionID}
}

func scanPayment(s scanner) (*entity.Payment, error) {
	var (
		p         entity.Payment
		invoiceID int64
	)

	if err := s.Scan(&p.ID, &invoiceID, &p.Amount, &p.PaidOn, &p.TransactionID); err != nil {
		return nil, err
	}

	p.Invoice = entity.InvoiceRef(invoiceID)

	return &p, nil
}

func (s *PaymentStore) Save(ctx context.Context, q Querier, p *entity.Payment) error {
	return s.t.save(ctx, q, p)
}

func (s *PaymentStore) Update(ctx context.Context, q Querier, p *entity.Payment) error {
	return s.t.update(ctx, q, p)
}

func (s *PaymentStore) Delete(ctx context.Context, q Querier, id int64) error {
	return s.t.delete(ctx, q, id)
}

func (s *PaymentStore) FindByID(ctx context.Context, q Querier, id int64) (*entity.Payment, error) {
	return s.t.findByID(ctx, q, id)
}

func (s *PaymentStore) FindAll(ctx context.Context, q Querier) ([]*entity.Payment, error) {
	return s.t.findAll(ctx, q)
}

// FindByInvoiceID returns the payment settling the invoice, or
// apperror.ErrNotFound when the invoice is unpaid. More than one payment
// row for an invoice is reported as an integrity error.
func (s *PaymentStore) FindByInvoiceID(ctx context.Context, q Querier, invoiceID int64) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment WHERE invoice_id = $1`

	rows, err := q.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching payment for invoice id=%d", invoiceID)
	}
	defer rows.Close()

	var found *entity.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning payment")
		}

		if found != nil {
			return nil, apperror.Databasef(nil, "invoice id=%d has more than one payment", invoiceID)
		}

		found = p
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating payment rows")
	}

	if found == nil {
		return nil, apperror.ErrNotFound
	}

	return found, nil
}

// FindByInvoiceIDs returns the payments for all given invoices in one
// query, keyed by invoice id. Unpaid invoices are absent from the result.
func (s *PaymentStore) FindByInvoiceIDs(ctx context.Context, q Querier, invoiceIDs []int64) (map[int64]*entity.Payment, error) {
	out := make(map[int64]*entity.Payment, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + paymentColumns + ` FROM payment WHERE invoice_id IN (` +
		inClause(len(invoiceIDs), 1) + `)`

	rows, err := q.QueryContext(ctx, query, idArgs(invoiceIDs)...)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching payments by invoice ids")
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning payment")
		}

		if _, dup := out[p.Invoice.ID]; dup {
			return nil, apperror.Databasef(nil, "invoice id=%d has more than one payment", p.Invoice.ID)
		}

		out[p.Invoice.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating payment rows")
	}

	return out, nil
}

// DeleteByInvoiceID removes the invoice's payment if one exists.
func (s *PaymentStore) DeleteByInvoiceID(ctx context.Context, q Querier, invoiceID int64) error {
	_, err := q.ExecContext(ctx, `DELETE FROM payment WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return apperror.Databasef(err, "deleting payment for invoice id=%d", invoiceID)
	}

	return nil
}
