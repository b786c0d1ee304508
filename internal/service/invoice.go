package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// InvoiceView pairs an invoice with its payment, if any.
type InvoiceView struct {
	Invoice *entity.Invoice
	Payment *entity.Payment
}

// IsPaid reports whether a payment settles the invoice.
func (v *InvoiceView) IsPaid() bool { return v.Payment != nil }

// Overdue reports an unpaid invoice past its due date at the given instant.
func (v *InvoiceView) Overdue(now time.Time) bool {
	return !v.IsPaid() && v.Invoice.DueDate.Before(now)
}

// InvoiceService manages invoices as aggregates: the header row plus its
// line items are written in one transaction.
type InvoiceService struct {
	base
}

func NewInvoiceService(repo Repository, audit AuditLog, user UserSource, log *zap.Logger) *InvoiceService {
	return &InvoiceService{base: base{repo: repo, audit: audit, user: user, log: log}}
}

// Save persists a new invoice and its line items in order. Returns the
// generated invoice id.
func (s *InvoiceService) Save(ctx context.Context, inv *entity.Invoice) (int64, error) {
	if inv == nil {
		return 0, apperror.Validation("invoice is required")
	}

	if inv.ID != 0 {
		return 0, apperror.Validation("invoice is already saved with id=%d", inv.ID)
	}

	if len(inv.Services) == 0 {
		return 0, apperror.Validation("invoice requires at least one service")
	}

	_, err := inTx(ctx, s.repo, s.log, func(tx Tx) (struct{}, error) {
		if err := tx.SaveInvoice(ctx, inv); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, saveServices(ctx, tx, inv)
	})
	if err != nil {
		return 0, err
	}

	return inv.ID, s.recordCreated(inv)
}

// Update rewrites the header and replaces the line items with the ones on
// the given invoice. The audit entry carries the previous state including
// the previous items.
func (s *InvoiceService) Update(ctx context.Context, inv *entity.Invoice) error {
	if inv == nil || inv.ID == 0 {
		return apperror.Validation("a saved invoice is required to update")
	}

	if len(inv.Services) == 0 {
		return apperror.Validation("invoice requires at least one service")
	}

	old, err := inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Invoice, error) {
		old, err := fetchInvoice(ctx, tx, inv.ID)
		if err != nil {
			return nil, err
		}

		if err := tx.UpdateInvoice(ctx, inv); err != nil {
			return nil, err
		}

		if err := tx.DeleteServicesByInvoice(ctx, inv.ID); err != nil {
			return nil, err
		}

		return old, saveServices(ctx, tx, inv)
	})
	if err != nil {
		return err
	}

	return s.recordUpdated(old, inv)
}

// Delete removes the invoice aggregate: line items first, then the payment
// if one exists, then the header. The payment removal gets its own audit
// entry.
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	type deleted struct {
		invoice *entity.Invoice
		payment *entity.Payment
	}

	out, err := inTx(ctx, s.repo, s.log, func(tx Tx) (deleted, error) {
		old, err := fetchInvoice(ctx, tx, id)
		if err != nil {
			return deleted{}, err
		}

		payment, err := tx.PaymentByInvoice(ctx, id)
		if err != nil && !errors.Is(err, apperror.ErrNotFound) {
			return deleted{}, err
		}

		if err := tx.DeleteServicesByInvoice(ctx, id); err != nil {
			return deleted{}, err
		}

		if err := tx.DeletePaymentByInvoice(ctx, id); err != nil {
			return deleted{}, err
		}

		return deleted{invoice: old, payment: payment}, tx.DeleteInvoice(ctx, id)
	})
	if err != nil {
		return err
	}

	if out.payment != nil {
		if err := s.recordDeleted(out.payment); err != nil {
			return err
		}
	}

	return s.recordDeleted(out.invoice)
}

// FindByID returns the fully hydrated invoice view: line items, freelancer
// with address, and the payment when one exists.
func (s *InvoiceService) FindByID(ctx context.Context, id int64) (*InvoiceView, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) (*InvoiceView, error) {
		inv, err := fetchInvoice(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		freelancer, err := tx.GetFreelancer(ctx, inv.Freelancer.ID)
		if err != nil {
			return nil, apperror.WrapDatabase("fetching invoice freelancer", err)
		}

		address, err := tx.GetAddress(ctx, freelancer.Address.ID)
		if err != nil {
			return nil, apperror.WrapDatabase("fetching freelancer address", err)
		}

		freelancer.Address = address
		inv.Freelancer = freelancer

		payment, err := tx.PaymentByInvoice(ctx, id)
		if err != nil && !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}

		return &InvoiceView{Invoice: inv, Payment: payment}, nil
	})
}

// FindAll returns every invoice view. Hydration runs one batch query per
// related table regardless of invoice count.
func (s *InvoiceService) FindAll(ctx context.Context) ([]*InvoiceView, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) ([]*InvoiceView, error) {
		invoices, err := tx.ListInvoices(ctx)
		if err != nil {
			return nil, err
		}

		invoiceIDs := make([]int64, 0, len(invoices))
		freelancerIDs := make([]int64, 0, len(invoices))

		for _, inv := range invoices {
			invoiceIDs = append(invoiceIDs, inv.ID)
			freelancerIDs = append(freelancerIDs, inv.Freelancer.ID)
		}

		items, err := tx.ServicesByInvoiceIDs(ctx, invoiceIDs)
		if err != nil {
			return nil, err
		}

		freelancers, err := tx.FreelancersByIDs(ctx, freelancerIDs)
		if err != nil {
			return nil, err
		}

		addressIDs := make([]int64, 0, len(freelancers))
		for _, f := range freelancers {
			addressIDs = append(addressIDs, f.Address.ID)
		}

		addresses, err := tx.AddressesByIDs(ctx, addressIDs)
		if err != nil {
			return nil, err
		}

		for _, f := range freelancers {
			if a, ok := addresses[f.Address.ID]; ok {
				f.Address = a
			}
		}

		payments, err := tx.PaymentsByInvoiceIDs(ctx, invoiceIDs)
		if err != nil {
			return nil, err
		}

		views := make([]*InvoiceView, 0, len(invoices))

		for _, inv := range invoices {
			inv.Services = items[inv.ID]
			if f, ok := freelancers[inv.Freelancer.ID]; ok {
				inv.Freelancer = f
			}

			views = append(views, &InvoiceView{Invoice: inv, Payment: payments[inv.ID]})
		}

		return views, nil
	})
}

// saveServices stamps each line item with the invoice id and inserts them
// in slice order. Item ids are reset so replaced items get fresh rows.
func saveServices(ctx context.Context, tx Tx, inv *entity.Invoice) error {
	for _, item := range inv.Services {
		item.ID = 0
		item.InvoiceID = inv.ID

		if err := tx.SaveService(ctx, item); err != nil {
			return err
		}
	}

	return nil
}

// fetchInvoice reads the header and its line items.
func fetchInvoice(ctx context.Context, tx Tx, id int64) (*entity.Invoice, error) {
	inv, err := tx.GetInvoice(ctx, id)
	if err != nil {
		return nil, apperror.WrapDatabase("fetching invoice", err)
	}

	items, err := tx.ServicesByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Services = items

	return inv, nil
}
