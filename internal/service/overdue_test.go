package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/service"
)

func TestOverdueWatcher_PublishesCount(t *testing.T) {
	m := newMocks(t)

	overdue := testInvoice(1)
	overdue.DueDate = time.Now().Add(-24 * time.Hour)
	current := testInvoice(2)
	current.DueDate = time.Now().Add(24 * time.Hour)

	m.tx.EXPECT().ListInvoices(gomock.Any()).
		Return([]*entity.Invoice{overdue, current}, nil).AnyTimes()
	m.tx.EXPECT().ServicesByInvoiceIDs(gomock.Any(), gomock.Any()).
		Return(map[int64][]*entity.Service{}, nil).AnyTimes()
	m.tx.EXPECT().FreelancersByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]*entity.Freelancer{}, nil).AnyTimes()
	m.tx.EXPECT().AddressesByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]*entity.Address{}, nil).AnyTimes()
	m.tx.EXPECT().PaymentsByInvoiceIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]*entity.Payment{}, nil).AnyTimes()
	m.tx.EXPECT().Commit().Return(nil).AnyTimes()

	counts := make(chan int, 1)

	invoices := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())
	watcher := service.NewOverdueWatcher(invoices, time.Hour, func(n int) {
		select {
		case counts <- n:
		default:
		}
	}, zap.NewNop())

	watcher.Start()
	defer watcher.Close()

	select {
	case n := <-counts:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		require.Fail(t, "no overdue count published")
	}
}

func TestOverdueWatcher_CloseIsIdempotent(t *testing.T) {
	m := newMocks(t)

	m.tx.EXPECT().ListInvoices(gomock.Any()).Return(nil, nil).AnyTimes()
	m.tx.EXPECT().ServicesByInvoiceIDs(gomock.Any(), gomock.Any()).
		Return(map[int64][]*entity.Service{}, nil).AnyTimes()
	m.tx.EXPECT().FreelancersByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]*entity.Freelancer{}, nil).AnyTimes()
	m.tx.EXPECT().AddressesByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]*entity.Address{}, nil).AnyTimes()
	m.tx.EXPECT().PaymentsByInvoiceIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]*entity.Payment{}, nil).AnyTimes()
	m.tx.EXPECT().Commit().Return(nil).AnyTimes()

	invoices := service.NewInvoiceService(m.repo, m.audit, m.user, zap.NewNop())
	watcher := service.NewOverdueWatcher(invoices, time.Hour, func(int) {}, zap.NewNop())

	watcher.Start()
	watcher.Close()
	watcher.Close()

	// Start after Close stays stopped.
	watcher.Start()
	watcher.Close()
}
