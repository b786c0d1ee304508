package store

import (
	"context"
	"database/sql"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// Repository bundles the entity stores over one database handle and opens
// transactions that expose the full method set of the data layer.
type Repository struct {
	db *sql.DB

	addresses   *AddressStore
	freelancers *FreelancerStore
	invoices    *InvoiceStore
	services    *ServiceStore
	payments    *PaymentStore
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:          db,
		addresses:   NewAddressStore(),
		freelancers: NewFreelancerStore(),
		invoices:    NewInvoiceStore(),
		services:    NewServiceStore(),
		payments:    NewPaymentStore(),
	}
}

// Begin opens a transaction. The caller must finish it with Commit or
// Rollback.
func (r *Repository) Begin(ctx context.Context) (*Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperror.Databasef(err, "beginning transaction")
	}

	return &Tx{tx: tx, r: r}, nil
}

// Tx is one open transaction with every store operation scoped to it.
type Tx struct {
	tx *sql.Tx
	r  *Repository
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

func (t *Tx) SaveAddress(ctx context.Context, a *entity.Address) error {
	return t.r.addresses.Save(ctx, t.tx, a)
}

func (t *Tx) UpdateAddress(ctx context.Context, a *entity.Address) error {
	return t.r.addresses.Update(ctx, t.tx, a)
}

func (t *Tx) GetAddress(ctx context.Context, id int64) (*entity.Address, error) {
	return t.r.addresses.FindByID(ctx, t.tx, id)
}

func (t *Tx) AddressesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Address, error) {
	return t.r.addresses.FindByIDs(ctx, t.tx, ids)
}

func (t *Tx) SaveFreelancer(ctx context.Context, f *entity.Freelancer) error {
	return t.r.freelancers.Save(ctx, t.tx, f)
}

func (t *Tx) UpdateFreelancer(ctx context.Context, f *entity.Freelancer) error {
	return t.r.freelancers.Update(ctx, t.tx, f)
}

func (t *Tx) DeleteFreelancer(ctx context.Context, id int64) error {
	return t.r.freelancers.Delete(ctx, t.tx, id)
}

func (t *Tx) GetFreelancer(ctx context.Context, id int64) (*entity.Freelancer, error) {
	return t.r.freelancers.FindByID(ctx, t.tx, id)
}

func (t *Tx) ListFreelancers(ctx context.Context) ([]*entity.Freelancer, error) {
	return t.r.freelancers.FindAll(ctx, t.tx)
}

func (t *Tx) FreelancersByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Freelancer, error) {
	return t.r.freelancers.FindByIDs(ctx, t.tx, ids)
}

func (t *Tx) SaveInvoice(ctx context.Context, i *entity.Invoice) error {
	return t.r.invoices.Save(ctx, t.tx, i)
}

func (t *Tx) UpdateInvoice(ctx context.Context, i *entity.Invoice) error {
	return t.r.invoices.Update(ctx, t.tx, i)
}

func (t *Tx) DeleteInvoice(ctx context.Context, id int64) error {
	return t.r.invoices.Delete(ctx, t.tx, id)
}

func (t *Tx) GetInvoice(ctx context.Context, id int64) (*entity.Invoice, error) {
	return t.r.invoices.FindByID(ctx, t.tx, id)
}

func (t *Tx) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	return t.r.invoices.FindAll(ctx, t.tx)
}

func (t *Tx) InvoicesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Invoice, error) {
	return t.r.invoices.FindByIDs(ctx, t.tx, ids)
}

func (t *Tx) SaveService(ctx context.Context, item *entity.Service) error {
	return t.r.services.Save(ctx, t.tx, item)
}

func (t *Tx) ServicesByInvoice(ctx context.Context, invoiceID int64) ([]*entity.Service, error) {
	return t.r.services.FindByInvoiceID(ctx, t.tx, invoiceID)
}

func (t *Tx) ServicesByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]*entity.Service, error) {
	return t.r.services.FindByInvoiceIDs(ctx, t.tx, invoiceIDs)
}

func (t *Tx) DeleteServicesByInvoice(ctx context.Context, invoiceID int64) error {
	return t.r.services.DeleteByInvoiceID(ctx, t.tx, invoiceID)
}

func (t *Tx) SavePayment(ctx context.Context, p *entity.Payment) error {
	return t.r.payments.Save(ctx, t.tx, p)
}

func (t *Tx) UpdatePayment(ctx context.Context, p *entity.Payment) error {
	return t.r.payments.Update(ctx, t.tx, p)
}

func (t *Tx) DeletePayment(ctx context.Context, id int64) error {
	return t.r.payments.Delete(ctx, t.tx, id)
}

func (t *Tx) GetPayment(ctx context.Context, id int64) (*entity.Payment, error) {
	return t.r.payments.FindByID(ctx, t.tx, id)
}

func (t *Tx) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	return t.r.payments.FindAll(ctx, t.tx)
}

func (t *Tx) PaymentByInvoice(ctx context.Context, invoiceID int64) (*entity.Payment, error) {
	return t.r.payments.FindByInvoiceID(ctx, t.tx, invoiceID)
}

func (t *Tx) PaymentsByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64]*entity.Payment, error) {
	return t.r.payments.FindByInvoiceIDs(ctx, t.tx, invoiceIDs)
}

func (t *Tx) DeletePaymentByInvoice(ctx context.Context, invoiceID int64) error {
	return t.r.payments.DeleteByInvoiceID(ctx, t.tx, invoiceID)
}
