package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/service"
)

func testPayment(id, invoiceID int64) *entity.Payment {
	return &entity.Payment{
		ID:            id,
		Invoice:       entity.InvoiceRef(invoiceID),
		Amount:        decimal.RequireFromString("250"),
		PaidOn:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TransactionID: "TX-9c1b2a",
	}
}

func TestPaymentService_Save(t *testing.T) {
	t.Run("UnpaidInvoice", func(t *testing.T) {
		m := newMocks(t)

		p := testPayment(0, 7)

		var entry changelog.Entry

		gomock.InOrder(
			m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(testInvoice(7), nil),
			m.tx.EXPECT().PaymentByInvoice(gomock.Any(), int64(7)).Return(nil, apperror.ErrNotFound),
			m.tx.EXPECT().
				SavePayment(gomock.Any(), p).
				DoAndReturn(func(_ context.Context, p *entity.Payment) error {
					p.ID = 3
					return nil
				}),
			m.tx.EXPECT().Commit().Return(nil),
		)
		m.audit.EXPECT().
			Append(gomock.Any()).
			DoAndReturn(func(e changelog.Entry) error {
				entry = e
				return nil
			})

		svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

		id, err := svc.Save(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)

		assert.Equal(t, entity.KindPayment, entry.EntityType)
		assert.Equal(t, changelog.OpCreate, entry.Op)
		assert.Equal(t, "ana", entry.Username)
	})

	t.Run("AlreadyPaidInvoiceRejected", func(t *testing.T) {
		m := newMocks(t)

		gomock.InOrder(
			m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(testInvoice(7), nil),
			m.tx.EXPECT().PaymentByInvoice(gomock.Any(), int64(7)).Return(testPayment(3, 7), nil),
			m.tx.EXPECT().Rollback().Return(nil),
		)

		svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

		_, err := svc.Save(context.Background(), testPayment(0, 7))

		var dbErr *apperror.DatabaseError
		require.ErrorAs(t, err, &dbErr)
		assert.NotErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("MissingInvoice", func(t *testing.T) {
		m := newMocks(t)

		gomock.InOrder(
			m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(nil, apperror.ErrNotFound),
			m.tx.EXPECT().Rollback().Return(nil),
		)

		svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

		_, err := svc.Save(context.Background(), testPayment(0, 7))
		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestPaymentService_Update(t *testing.T) {
	t.Run("SameInvoice", func(t *testing.T) {
		m := newMocks(t)

		updated := testPayment(3, 7)
		updated.Amount = decimal.RequireFromString("300")

		var entry changelog.Entry

		gomock.InOrder(
			m.tx.EXPECT().GetPayment(gomock.Any(), int64(3)).Return(testPayment(3, 7), nil),
			m.tx.EXPECT().UpdatePayment(gomock.Any(), updated).Return(nil),
			m.tx.EXPECT().Commit().Return(nil),
		)
		m.audit.EXPECT().
			Append(gomock.Any()).
			DoAndReturn(func(e changelog.Entry) error {
				entry = e
				return nil
			})

		svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

		require.NoError(t, svc.Update(context.Background(), updated))
		assert.Equal(t, changelog.OpUpdate, entry.Op)
	})

	t.Run("MovedToPaidInvoiceRejected", func(t *testing.T) {
		m := newMocks(t)

		moved := testPayment(3, 8)

		gomock.InOrder(
			m.tx.EXPECT().GetPayment(gomock.Any(), int64(3)).Return(testPayment(3, 7), nil),
			m.tx.EXPECT().GetInvoice(gomock.Any(), int64(8)).Return(testInvoice(8), nil),
			m.tx.EXPECT().PaymentByInvoice(gomock.Any(), int64(8)).Return(testPayment(4, 8), nil),
			m.tx.EXPECT().Rollback().Return(nil),
		)

		svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

		err := svc.Update(context.Background(), moved)

		var dbErr *apperror.DatabaseError
		require.ErrorAs(t, err, &dbErr)
		assert.NotErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestPaymentService_Delete(t *testing.T) {
	m := newMocks(t)

	var entry changelog.Entry

	gomock.InOrder(
		m.tx.EXPECT().GetPayment(gomock.Any(), int64(3)).Return(testPayment(3, 7), nil),
		m.tx.EXPECT().DeletePayment(gomock.Any(), int64(3)).Return(nil),
		m.tx.EXPECT().Commit().Return(nil),
	)
	m.audit.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(e changelog.Entry) error {
			entry = e
			return nil
		})

	svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, changelog.OpDelete, entry.Op)
	assert.NotEmpty(t, entry.OldValue)
}

func TestPaymentService_FindByID(t *testing.T) {
	m := newMocks(t)

	gomock.InOrder(
		m.tx.EXPECT().GetPayment(gomock.Any(), int64(3)).Return(testPayment(3, 7), nil),
		m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(testInvoice(7), nil),
		m.tx.EXPECT().GetFreelancer(gomock.Any(), int64(5)).Return(testFreelancer(5, entity.AddressRef(2)), nil),
		m.tx.EXPECT().GetAddress(gomock.Any(), int64(2)).Return(testAddress(2), nil),
		m.tx.EXPECT().Commit().Return(nil),
	)

	svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

	p, err := svc.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	require.NotNil(t, p.Invoice)
	require.NotNil(t, p.Invoice.Freelancer)
	assert.Equal(t, "Ana", p.Invoice.Freelancer.FirstName)
	require.NotNil(t, p.Invoice.Freelancer.Address)
	assert.Equal(t, "Zagreb", p.Invoice.Freelancer.Address.City)
}

func TestPaymentService_FindByInvoiceID(t *testing.T) {
	m := newMocks(t)

	gomock.InOrder(
		m.tx.EXPECT().PaymentByInvoice(gomock.Any(), int64(7)).Return(testPayment(3, 7), nil),
		m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(testInvoice(7), nil),
		m.tx.EXPECT().GetFreelancer(gomock.Any(), int64(5)).Return(testFreelancer(5, entity.AddressRef(2)), nil),
		m.tx.EXPECT().GetAddress(gomock.Any(), int64(2)).Return(testAddress(2), nil),
		m.tx.EXPECT().Commit().Return(nil),
	)

	svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

	p, err := svc.FindByInvoiceID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	require.NotNil(t, p.Invoice.Freelancer)
	assert.Equal(t, "Horvat", p.Invoice.Freelancer.LastName)
	require.NotNil(t, p.Invoice.Freelancer.Address)
}

func TestPaymentService_FindAll(t *testing.T) {
	m := newMocks(t)

	gomock.InOrder(
		m.tx.EXPECT().
			ListPayments(gomock.Any()).
			Return([]*entity.Payment{testPayment(3, 7), testPayment(4, 8)}, nil),
		m.tx.EXPECT().
			InvoicesByIDs(gomock.Any(), []int64{7, 8}).
			Return(map[int64]*entity.Invoice{7: testInvoice(7), 8: testInvoice(8)}, nil),
		m.tx.EXPECT().
			FreelancersByIDs(gomock.Any(), gomock.Any()).
			Return(map[int64]*entity.Freelancer{5: testFreelancer(5, entity.AddressRef(2))}, nil),
		m.tx.EXPECT().
			AddressesByIDs(gomock.Any(), []int64{2}).
			Return(map[int64]*entity.Address{2: testAddress(2)}, nil),
		m.tx.EXPECT().Commit().Return(nil),
	)

	svc := service.NewPaymentService(m.repo, m.audit, m.user, zap.NewNop())

	payments, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)

	for _, p := range payments {
		require.NotNil(t, p.Invoice.Freelancer)
		assert.Equal(t, "Ana", p.Invoice.Freelancer.FirstName)
		require.NotNil(t, p.Invoice.Freelancer.Address)
		assert.Equal(t, "Ilica", p.Invoice.Freelancer.Address.Street)
	}
}
