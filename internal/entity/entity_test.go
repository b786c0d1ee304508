package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

func validFreelancerParams() entity.FreelancerParams {
	return entity.FreelancerParams{
		FirstName:   "Vesna",
		LastName:    "Horvat",
		Email:       "vesna.horvat@example.com",
		PhoneNumber: "0915551234",
		Address: &entity.Address{
			Street:      "Ilica",
			HouseNumber: "12",
			City:        "Zagreb",
			PostalCode:  "10000",
		},
		BusinessName: "Horvat Design",
		BusinessIDNo: "12345678901",
		BankAccount:  "HR1210010051863000160",
		Active:       true,
	}
}

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		params  entity.AddressParams
		wantErr bool
	}{
		{
			name:   "Valid",
			params: entity.AddressParams{Street: "Ilica", HouseNumber: "12", City: "Zagreb", PostalCode: "10000"},
		},
		{
			name:    "BlankStreet",
			params:  entity.AddressParams{HouseNumber: "12", City: "Zagreb", PostalCode: "10000"},
			wantErr: true,
		},
		{
			name:    "PostalCodeTooShort",
			params:  entity.AddressParams{Street: "Ilica", HouseNumber: "12", City: "Zagreb", PostalCode: "1000"},
			wantErr: true,
		},
		{
			name:    "PostalCodeNotDigits",
			params:  entity.AddressParams{Street: "Ilica", HouseNumber: "12", City: "Zagreb", PostalCode: "1000a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := entity.NewAddress(tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, a.ID)
		})
	}
}

func TestNewFreelancer(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		f, err := entity.NewFreelancer(validFreelancerParams())
		require.NoError(t, err)
		assert.Equal(t, entity.KindFreelancer, f.Kind())
	})

	t.Run("BadEmail", func(t *testing.T) {
		p := validFreelancerParams()
		p.Email = "not-an-email"
		_, err := entity.NewFreelancer(p)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("PhoneNotTenDigits", func(t *testing.T) {
		p := validFreelancerParams()
		p.PhoneNumber = "12345"
		_, err := entity.NewFreelancer(p)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("BankAccountBadChecksum", func(t *testing.T) {
		p := validFreelancerParams()
		// Valid shape, last digit off by one.
		p.BankAccount = "HR1210010051863000161"
		_, err := entity.NewFreelancer(p)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("BankAccountNotIBANShaped", func(t *testing.T) {
		p := validFreelancerParams()
		p.BankAccount = "12345"
		_, err := entity.NewFreelancer(p)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("MissingAddress", func(t *testing.T) {
		p := validFreelancerParams()
		p.Address = nil
		_, err := entity.NewFreelancer(p)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("AddressRefAccepted", func(t *testing.T) {
		p := validFreelancerParams()
		p.Address = entity.AddressRef(7)
		f, err := entity.NewFreelancer(p)
		require.NoError(t, err)
		assert.EqualValues(t, 7, f.Address.ID)
	})
}

func TestNewService(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, err := entity.NewService(entity.ServiceParams{
			Name:     "Design",
			UnitFee:  decimal.RequireFromString("100.00"),
			Quantity: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "300", s.TotalCost().String())
	})

	t.Run("NegativeFee", func(t *testing.T) {
		_, err := entity.NewService(entity.ServiceParams{
			Name:     "Design",
			UnitFee:  decimal.NewFromInt(-1),
			Quantity: 1,
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		_, err := entity.NewService(entity.ServiceParams{
			Name:     "Design",
			UnitFee:  decimal.NewFromInt(10),
			Quantity: 0,
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestNewInvoice(t *testing.T) {
	issued := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		inv, err := entity.NewInvoice(entity.InvoiceParams{
			Freelancer:  entity.FreelancerRef(1),
			InvoiceDate: issued,
			DueDate:     due,
		})
		require.NoError(t, err)
		assert.True(t, inv.TotalCost().IsZero())
	})

	t.Run("DueBeforeIssued", func(t *testing.T) {
		_, err := entity.NewInvoice(entity.InvoiceParams{
			Freelancer:  entity.FreelancerRef(1),
			InvoiceDate: due,
			DueDate:     issued,
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("MissingFreelancerRef", func(t *testing.T) {
		_, err := entity.NewInvoice(entity.InvoiceParams{InvoiceDate: issued, DueDate: due})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("TotalSumsLineItems", func(t *testing.T) {
		inv, err := entity.NewInvoice(entity.InvoiceParams{
			Freelancer:  entity.FreelancerRef(1),
			InvoiceDate: issued,
			DueDate:     due,
			Services: []*entity.Service{
				{Name: "Design", UnitFee: decimal.RequireFromString("100.00"), Quantity: 3},
				{Name: "Edit", UnitFee: decimal.RequireFromString("50.00"), Quantity: 2},
			},
		})
		require.NoError(t, err)
		assert.True(t, inv.TotalCost().Equal(decimal.RequireFromString("400.00")))
	})
}

func TestNewPayment(t *testing.T) {
	paidOn := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		p, err := entity.NewPayment(entity.PaymentParams{
			Invoice:       entity.InvoiceRef(42),
			Amount:        decimal.RequireFromString("300.00"),
			PaidOn:        paidOn,
			TransactionID: "TX-1",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 42, p.Invoice.ID)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		_, err := entity.NewPayment(entity.PaymentParams{
			Invoice:       entity.InvoiceRef(42),
			Amount:        decimal.Zero,
			PaidOn:        paidOn,
			TransactionID: "TX-1",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("BlankTransactionID", func(t *testing.T) {
		_, err := entity.NewPayment(entity.PaymentParams{
			Invoice: entity.InvoiceRef(42),
			Amount:  decimal.NewFromInt(1),
			PaidOn:  paidOn,
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("MissingInvoiceRef", func(t *testing.T) {
		_, err := entity.NewPayment(entity.PaymentParams{
			Amount:        decimal.NewFromInt(1),
			PaidOn:        paidOn,
			TransactionID: "TX-1",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}
