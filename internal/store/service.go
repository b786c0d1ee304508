package store

import (
	"context"
	"database/sql"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

const serviceColumns = "id, invoice_id, service_name, unit_fee, quantity"

// ServiceStore persists invoice line items. Items are always read and
// written through their owning invoice.
type ServiceStore struct {
	t table[entity.Service]
}

func NewServiceStore() *ServiceStore {
	return &ServiceStore{
		t: table[entity.Service]{
			kind: entity.KindService,
			insertSQL: `INSERT INTO service (invoice_id, service_name, unit_fee, quantity)
				VALUES ($1, $2, $3, $4) RETURNING id`,
			updateSQL: `UPDATE service SET invoice_id = $1, service_name = $2, unit_fee = $3, quantity = $4
				WHERE id = $5`,
			deleteSQL:     `DELETE FROM service WHERE id = $1`,
			selectByIDSQL: `SELECT ` + serviceColumns + ` FROM service WHERE id = $1`,
			selectAllSQL:  `SELECT ` + serviceColumns + ` FROM service ORDER BY id`,
			insertArgs:    serviceArgs,
			updateArgs:    serviceArgs,
			scan:          scanService,
			id:            func(s *entity.Service) int64 { return s.ID },
			setID:         func(s *entity.Service, id int64) { s.ID = id },
		},
	}
}

func serviceArgs(s *entity.Service) []any {
	return []any{s.InvoiceID, s.Name, s.UnitFee, s.Quantity}
}

func scanService(sc scanner) (*entity.Service, error) {
	var s entity.Service
	if err := sc.Scan(&s.ID, &s.InvoiceID, &s.Name, &s.UnitFee, &s.Quantity); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *ServiceStore) Save(ctx context.Context, q Querier, item *entity.Service) error {
	return s.t.save(ctx, q, item)
}

func (s *ServiceStore) Update(ctx context.Context, q Querier, item *entity.Service) error {
	return s.t.update(ctx, q, item)
}

func (s *ServiceStore) Delete(ctx context.Context, q Querier, id int64) error {
	return s.t.delete(ctx, q, id)
}

func (s *ServiceStore) FindByID(ctx context.Context, q Querier, id int64) (*entity.Service, error) {
	return s.t.findByID(ctx, q, id)
}

// FindByInvoiceID returns the invoice's line items in insertion order.
func (s *ServiceStore) FindByInvoiceID(ctx context.Context, q Querier, invoiceID int64) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM service WHERE invoice_id = $1 ORDER BY id`

	rows, err := q.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching services for invoice id=%d", invoiceID)
	}
	defer rows.Close()

	return collectServices(rows)
}

// FindByInvoiceIDs returns line items for all given invoices in one query,
// grouped by invoice id and ordered within each group.
func (s *ServiceStore) FindByInvoiceIDs(ctx context.Context, q Querier, invoiceIDs []int64) (map[int64][]*entity.Service, error) {
	out := make(map[int64][]*entity.Service, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + serviceColumns + ` FROM service WHERE invoice_id IN (` +
		inClause(len(invoiceIDs), 1) + `) ORDER BY invoice_id, id`

	rows, err := q.QueryContext(ctx, query, idArgs(invoiceIDs)...)
	if err != nil {
		return nil, apperror.Databasef(err, "fetching services by invoice ids")
	}
	defer rows.Close()

	items, err := collectServices(rows)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		out[item.InvoiceID] = append(out[item.InvoiceID], item)
	}

	return out, nil
}

// DeleteByInvoiceID removes every line item of the invoice. Zero rows is
// fine: an invoice may have had its items replaced already.
func (s *ServiceStore) DeleteByInvoiceID(ctx context.Context, q Querier, invoiceID int64) error {
	_, err := q.ExecContext(ctx, `DELETE FROM service WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return apperror.Databasef(err, "deleting services for invoice id=%d", invoiceID)
	}

	return nil
}

func collectServices(rows *sql.Rows) ([]*entity.Service, error) {
	var out []*entity.Service

	for rows.Next() {
		item, err := scanService(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning service")
		}

		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating service rows")
	}

	return out, nil
}
