// Package service implements the business operations over the data layer:
// transactional aggregate writes, audited mutations and hydrated reads.
package service

import (
	"context"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=service

// Repository opens transactions over the data layer.
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one open transaction exposing every data-layer operation the
// services compose. Implementations must leave the database untouched
// after Rollback.
type Tx interface {
	SaveAddress(ctx context.Context, a *entity.Address) error
	UpdateAddress(ctx context.Context, a *entity.Address) error
	GetAddress(ctx context.Context, id int64) (*entity.Address, error)
	AddressesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Address, error)

	SaveFreelancer(ctx context.Context, f *entity.Freelancer) error
	UpdateFreelancer(ctx context.Context, f *entity.Freelancer) error
	DeleteFreelancer(ctx context.Context, id int64) error
	GetFreelancer(ctx context.Context, id int64) (*entity.Freelancer, error)
	ListFreelancers(ctx context.Context) ([]*entity.Freelancer, error)
	FreelancersByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Freelancer, error)

	SaveInvoice(ctx context.Context, i *entity.Invoice) error
	UpdateInvoice(ctx context.Context, i *entity.Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
	GetInvoice(ctx context.Context, id int64) (*entity.Invoice, error)
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)
	InvoicesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Invoice, error)

	SaveService(ctx context.Context, item *entity.Service) error
	ServicesByInvoice(ctx context.Context, invoiceID int64) ([]*entity.Service, error)
	ServicesByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]*entity.Service, error)
	DeleteServicesByInvoice(ctx context.Context, invoiceID int64) error

	SavePayment(ctx context.Context, p *entity.Payment) error
	UpdatePayment(ctx context.Context, p *entity.Payment) error
	DeletePayment(ctx context.Context, id int64) error
	GetPayment(ctx context.Context, id int64) (*entity.Payment, error)
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
	PaymentByInvoice(ctx context.Context, invoiceID int64) (*entity.Payment, error)
	PaymentsByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64]*entity.Payment, error)
	DeletePaymentByInvoice(ctx context.Context, invoiceID int64) error

	Commit() error
	Rollback() error
}

// AuditLog receives one entry per committed mutation.
type AuditLog interface {
	Append(e changelog.Entry) error
}

// UserSource names the actor recorded on audit entries.
type UserSource interface {
	Username() string
}
