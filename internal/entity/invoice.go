package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// Invoice is the header of a billed aggregate: a freelancer reference, the
// issue and due dates, and an ordered sequence of line items.
type Invoice struct {
	ID          int64       `json:"id"`
	Freelancer  *Freelancer `json:"freelancer" validate:"-"`
	InvoiceDate time.Time   `json:"invoiceDate"`
	DueDate     time.Time   `json:"dueDate"`
	Services    []*Service  `json:"services" validate:"-"`
}

// InvoiceParams carries the fields of a new invoice.
type InvoiceParams struct {
	Freelancer  *Freelancer
	InvoiceDate time.Time
	DueDate     time.Time
	Services    []*Service
}

// NewInvoice validates params and constructs an unsaved invoice.
func NewInvoice(params InvoiceParams) (*Invoice, error) {
	if params.Freelancer == nil || params.Freelancer.ID == 0 {
		return nil, apperror.Validation("invoice requires a freelancer reference")
	}
	if params.InvoiceDate.IsZero() {
		return nil, apperror.Validation("invoice date is required")
	}
	if params.DueDate.IsZero() {
		return nil, apperror.Validation("due date is required")
	}
	if params.DueDate.Before(params.InvoiceDate) {
		return nil, apperror.Validation("due date must not precede the invoice date")
	}

	return &Invoice{
		Freelancer:  params.Freelancer,
		InvoiceDate: params.InvoiceDate,
		DueDate:     params.DueDate,
		Services:    params.Services,
	}, nil
}

// InvoiceRef returns a reference placeholder carrying only the id.
func InvoiceRef(id int64) *Invoice {
	return &Invoice{ID: id}
}

// TotalCost sums unitFee × quantity over all line items.
func (i *Invoice) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, s := range i.Services {
		total = total.Add(s.TotalCost())
	}

	return total
}

func (i *Invoice) EntityID() int64 { return i.ID }

func (i *Invoice) Kind() string { return KindInvoice }
