package service_test

import (
	"context"
	"encoding/json"
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

func testInvoice(id int64, items ...*entity.Service) *entity.Invoice {
	return &entity.Invoice{
		ID:          id,
		Freelancer:  entity.FreelancerRef(5),
		InvoiceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Services:    items,
	}
}

func testItem(name string, fee string, quantity int) *entity.Service {
	return &entity.Service{
		Name:     name,
		UnitFee:  decimal.RequireFromString(fee),
		Quantity: quantity,
	}
}

func TestInvoiceService_Save(t *testing.T) {
	m := newMocks(t)

	inv := testInvoice(0, testItem("Design", "100", 2), testItem("Review", "50", 1))

	var (
		entry     changelog.Entry
		itemOrder []string
	)

	gomock.InOrder(
		m.tx.EXPECT().
			SaveInvoice(gomock.Any(), inv).
			DoAndReturn(func(_ context.Context, i *entity.Invoice) error {
				i.ID = 7
				return nil
			}),
		m.tx.EXPECT().
			SaveService(gomock.Any(), gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, item *entity.Service) error {
				assert.Equal(t, int64(7), item.InvoiceID)
				itemOrder = append(itemOrder, item.Name)
				item.ID = int64(len(itemOrder))
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

	svc := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())

	id, err := svc.Save(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, []string{"Design", "Review"}, itemOrder)

	assert.Equal(t, entity.KindInvoice, entry.EntityType)
	assert.Equal(t, changelog.OpCreate, entry.Op)
	assert.Equal(t, int64(7), entry.EntityID)

	var snapshot entity.Invoice
	require.NoError(t, json.Unmarshal(entry.NewValue, &snapshot))
	assert.Len(t, snapshot.Services, 2)
}

func TestInvoiceService_RequiresServices(t *testing.T) {
	t.Run("Save", func(t *testing.T) {
		m := newMocks(t)

		svc := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())

		_, err := svc.Save(context.Background(), testInvoice(0))
		require.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("Update", func(t *testing.T) {
		m := newMocks(t)

		svc := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())

		err := svc.Update(context.Background(), testInvoice(7))
		require.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestInvoiceService_UpdateReplacesItems(t *testing.T) {
	m := newMocks(t)

	oldItems := []*entity.Service{
		{ID: 1, InvoiceID: 7, Name: "Design", UnitFee: decimal.RequireFromString("100"), Quantity: 2},
	}
	updated := testInvoice(7, testItem("Development", "200", 3))

	var entry changelog.Entry

	gomock.InOrder(
		m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(testInvoice(7), nil),
		m.tx.EXPECT().ServicesByInvoice(gomock.Any(), int64(7)).Return(oldItems, nil),
		m.tx.EXPECT().UpdateInvoice(gomock.Any(), updated).Return(nil),
		m.tx.EXPECT().DeleteServicesByInvoice(gomock.Any(), int64(7)).Return(nil),
		m.tx.EXPECT().
			SaveService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *entity.Service) error {
				assert.Equal(t, int64(7), item.InvoiceID)
				item.ID = 2
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

	svc := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())

	require.NoError(t, svc.Update(context.Background(), updated))

	assert.Equal(t, changelog.OpUpdate, entry.Op)

	var before entity.Invoice
	require.NoError(t, json.Unmarshal(entry.OldValue, &before))
	require.Len(t, before.Services, 1)
	assert.Equal(t, "Design", before.Services[0].Name)

	var after entity.Invoice
	require.NoError(t, json.Unmarshal(entry.NewValue, &after))
	require.Len(t, after.Services, 1)
	assert.Equal(t, "Development", after.Services[0].Name)
}

func TestInvoiceService_DeleteCascades(t *testing.T) {
	m := newMocks(t)

	payment := &entity.Payment{
		ID:            3,
		Invoice:       entity.InvoiceRef(7),
		Amount:        decimal.RequireFromString("250"),
		PaidOn:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TransactionID: "TX-1",
	}

	var entries []changelog.Entry

	gomock.InOrder(
		m.tx.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(testInvoice(7), nil),
		m.tx.EXPECT().ServicesByInvoice(gomock.Any(), int64(7)).Return(nil, nil),
		m.tx.EXPECT().PaymentByInvoice(gomock.Any(), int64(7)).Return(payment, nil),
		m.tx.EXPECT().DeleteServicesByInvoice(gomock.Any(), int64(7)).Return(nil),
		m.tx.EXPECT().DeletePaymentByInvoice(gomock.Any(), int64(7)).Return(nil),
		m.tx.EXPECT().DeleteInvoice(gomock.Any(), int64(7)).Return(nil),
		m.tx.EXPECT().Commit().Return(nil),
	)
	m.audit.EXPECT().
		Append(gomock.Any()).
		Times(2).
		DoAndReturn(func(e changelog.Entry) error {
			entries = append(entries, e)
			return nil
		})

	svc := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 7))

	require.Len(t, entries, 2)
	assert.Equal(t, entity.KindPayment, entries[0].EntityType)
	assert.Equal(t, changelog.OpDelete, entries[0].Op)
	assert.Equal(t, entity.KindInvoice, entries[1].EntityType)
	assert.Equal(t, changelog.OpDelete, entries[1].Op)
}

func TestInvoiceService_FindAll(t *testing.T) {
	m := newMocks(t)

	first := testInvoice(1)
	second := testInvoice(2)

	m.tx.EXPECT().ListInvoices(gomock.Any()).Return([]*entity.Invoice{first, second}, nil)
	m.tx.EXPECT().
		ServicesByInvoiceIDs(gomock.Any(), []int64{1, 2}).
		Return(map[int64][]*entity.Service{
			1: {{ID: 1, InvoiceID: 1, Name: "Design", UnitFee: decimal.RequireFromString("100"), Quantity: 1}},
		}, nil)
	m.tx.EXPECT().
		FreelancersByIDs(gomock.Any(), []int64{5, 5}).
		Return(map[int64]*entity.Freelancer{5: testFreelancer(5, entity.AddressRef(10))}, nil)
	m.tx.EXPECT().
		AddressesByIDs(gomock.Any(), []int64{10}).
		Return(map[int64]*entity.Address{10: testAddress(10)}, nil)
	m.tx.EXPECT().
		PaymentsByInvoiceIDs(gomock.Any(), []int64{1, 2}).
		Return(map[int64]*entity.Payment{
			1: {ID: 3, Invoice: entity.InvoiceRef(1), Amount: decimal.RequireFromString("100"),
				PaidOn: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), TransactionID: "TX-2"},
		}, nil)
	m.tx.EXPECT().Commit().Return(nil)

	svc := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())

	views, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].IsPaid())
	assert.Len(t, views[0].Invoice.Services, 1)
	assert.Equal(t, "Ilica", views[0].Invoice.Freelancer.Address.Street)

	assert.False(t, views[1].IsPaid())
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, views[1].Overdue(now))
}
