package entity

import (
	"github.com/shopspring/decimal"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// Service is a single line item on an invoice. Its lifetime is bounded by
// the owning invoice.
type Service struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoiceId"`
	Name      string          `json:"name" validate:"required"`
	UnitFee   decimal.Decimal `json:"unitFee"`
	Quantity  int             `json:"quantity" validate:"gte=1"`
}

// ServiceParams carries the fields of a new line item.
type ServiceParams struct {
	Name     string
	UnitFee  decimal.Decimal
	Quantity int
}

// NewService validates params and constructs an unsaved line item. The
// invoice id is stamped by the invoice service when the owning invoice is
// persisted.
func NewService(params ServiceParams) (*Service, error) {
	s := &Service{
		Name:     params.Name,
		UnitFee:  params.UnitFee,
		Quantity: params.Quantity,
	}
	if err := runValidate(s); err != nil {
		return nil, err
	}
	if s.UnitFee.IsNegative() {
		return nil, apperror.Validation("unit fee must not be negative")
	}

	return s, nil
}

// TotalCost is unitFee × quantity.
func (s *Service) TotalCost() decimal.Decimal {
	return s.UnitFee.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

func (s *Service) EntityID() int64 { return s.ID }

func (s *Service) Kind() string { return KindService }
