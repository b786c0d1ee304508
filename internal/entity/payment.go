package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// Payment settles an invoice. Business rule: at most one payment per
// invoice; an invoice is paid iff a payment row exists for it.
type Payment struct {
	ID            int64           `json:"id"`
	Invoice       *Invoice        `json:"invoice" validate:"-"`
	Amount        decimal.Decimal `json:"amount"`
	PaidOn        time.Time       `json:"paidOn"`
	TransactionID string          `json:"transactionId" validate:"required"`
}

// PaymentParams carries the fields of a new payment.
type PaymentParams struct {
	Invoice       *Invoice
	Amount        decimal.Decimal
	PaidOn        time.Time
	TransactionID string
}

// NewPayment validates params and constructs an unsaved payment.
func NewPayment(params PaymentParams) (*Payment, error) {
	if params.Invoice == nil || params.Invoice.ID == 0 {
		return nil, apperror.Validation("payment requires an invoice reference")
	}
	if params.PaidOn.IsZero() {
		return nil, apperror.Validation("payment timestamp is required")
	}
	if !params.Amount.IsPositive() {
		return nil, apperror.Validation("payment amount must be positive")
	}

	p := &Payment{
		Invoice:       params.Invoice,
		Amount:        params.Amount,
		PaidOn:        params.PaidOn,
		TransactionID: params.TransactionID,
	}
	if err := runValidate(p); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Payment) EntityID() int64 { return p.ID }

func (p *Payment) Kind() string { return KindPayment }
