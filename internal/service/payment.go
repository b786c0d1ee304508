package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// PaymentService manages payments under the one-payment-per-invoice rule.
type PaymentService struct {
	base
}

func NewPaymentService(repo Repository, audit AuditLog, user UserSource, log *zap.Logger) *PaymentService {
	return &PaymentService{base: base{repo: repo, audit: audit, user: user, log: log}}
}

// Save records a payment against an existing, unpaid invoice. A second
// payment for the same invoice is rejected before anything is written, so
// no audit entry is produced for the attempt.
func (s *PaymentService) Save(ctx context.Context, p *entity.Payment) (int64, error) {
	if p == nil {
		return 0, apperror.Validation("payment is required")
	}

	if p.ID != 0 {
		return 0, apperror.Validation("payment is already saved with id=%d", p.ID)
	}

	_, err := inTx(ctx, s.repo, s.log, func(tx Tx) (struct{}, error) {
		if err := checkInvoiceUnpaid(ctx, tx, p.Invoice.ID); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, tx.SavePayment(ctx, p)
	})
	if err != nil {
		return 0, err
	}

	return p.ID, s.recordCreated(p)
}

// Update rewrites an existing payment. Moving the payment to a different
// invoice re-checks that the target exists and is unpaid.
func (s *PaymentService) Update(ctx context.Context, p *entity.Payment) error {
	if p == nil || p.ID == 0 {
		return apperror.Validation("a saved payment is required to update")
	}

	old, err := inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Payment, error) {
		old, err := tx.GetPayment(ctx, p.ID)
		if err != nil {
			return nil, apperror.WrapDatabase("fetching payment", err)
		}

		if p.Invoice.ID != old.Invoice.ID {
			if err := checkInvoiceUnpaid(ctx, tx, p.Invoice.ID); err != nil {
				return nil, err
			}
		}

		return old, tx.UpdatePayment(ctx, p)
	})
	if err != nil {
		return err
	}

	return s.recordUpdated(old, p)
}

// Delete removes the payment, returning its invoice to the unpaid state.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	old, err := inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Payment, error) {
		old, err := tx.GetPayment(ctx, id)
		if err != nil {
			return nil, apperror.WrapDatabase("fetching payment", err)
		}

		return old, tx.DeletePayment(ctx, id)
	})
	if err != nil {
		return err
	}

	return s.recordDeleted(old)
}

// FindByID returns the payment with its invoice, the invoice's freelancer
// and the freelancer's address hydrated.
func (s *PaymentService) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Payment, error) {
		p, err := tx.GetPayment(ctx, id)
		if err != nil {
			return nil, apperror.WrapDatabase("fetching payment", err)
		}

		return p, hydratePayment(ctx, tx, p)
	})
}

// FindByInvoiceID returns the hydrated payment settling the invoice, or
// apperror.ErrNotFound when the invoice is unpaid.
func (s *PaymentService) FindByInvoiceID(ctx context.Context, invoiceID int64) (*entity.Payment, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Payment, error) {
		p, err := tx.PaymentByInvoice(ctx, invoiceID)
		if err != nil {
			return nil, err
		}

		return p, hydratePayment(ctx, tx, p)
	})
}

// FindAll returns every payment hydrated down to the freelancer address.
// Hydration runs one batch query per related table regardless of payment
// count.
func (s *PaymentService) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) ([]*entity.Payment, error) {
		payments, err := tx.ListPayments(ctx)
		if err != nil {
			return nil, err
		}

		invoiceIDs := make([]int64, 0, len(payments))
		for _, p := range payments {
			invoiceIDs = append(invoiceIDs, p.Invoice.ID)
		}

		invoices, err := tx.InvoicesByIDs(ctx, invoiceIDs)
		if err != nil {
			return nil, err
		}

		freelancerIDs := make([]int64, 0, len(invoices))
		for _, inv := range invoices {
			freelancerIDs = append(freelancerIDs, inv.Freelancer.ID)
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

		for _, inv := range invoices {
			if f, ok := freelancers[inv.Freelancer.ID]; ok {
				inv.Freelancer = f
			}
		}

		for _, p := range payments {
			if inv, ok := invoices[p.Invoice.ID]; ok {
				p.Invoice = inv
			}
		}

		return payments, nil
	})
}

// hydratePayment loads the payment's invoice chain down to the freelancer
// address.
func hydratePayment(ctx context.Context, tx Tx, p *entity.Payment) error {
	inv, err := tx.GetInvoice(ctx, p.Invoice.ID)
	if err != nil {
		return apperror.WrapDatabase("fetching payment invoice", err)
	}

	f, err := tx.GetFreelancer(ctx, inv.Freelancer.ID)
	if err != nil {
		return apperror.WrapDatabase("fetching invoice freelancer", err)
	}

	a, err := tx.GetAddress(ctx, f.Address.ID)
	if err != nil {
		return apperror.WrapDatabase("fetching freelancer address", err)
	}

	f.Address = a
	inv.Freelancer = f
	p.Invoice = inv

	return nil
}

// checkInvoiceUnpaid verifies the invoice exists and carries no payment.
func checkInvoiceUnpaid(ctx context.Context, tx Tx, invoiceID int64) error {
	if invoiceID == 0 {
		return apperror.Validation("payment requires a saved invoice")
	}

	if _, err := tx.GetInvoice(ctx, invoiceID); err != nil {
		return apperror.WrapDatabase("fetching invoice for payment", err)
	}

	// A duplicate payment is a persistence-integrity failure, not bad
	// input: the row set would violate the one-payment-per-invoice rule.
	_, err := tx.PaymentByInvoice(ctx, invoiceID)
	if err == nil {
		return apperror.Databasef(nil, "invoice id=%d is already paid", invoiceID)
	}

	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	return nil
}
