package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// FreelancerService manages freelancers together with their address rows.
type FreelancerService struct {
	base
}

func NewFreelancerService(repo Repository, audit AuditLog, user UserSource, log *zap.Logger) *FreelancerService {
	return &FreelancerService{base: base{repo: repo, audit: audit, user: user, log: log}}
}

// Save persists a new freelancer. An address without an id is persisted
// first so the freelancer row can reference it. Returns the generated id.
func (s *FreelancerService) Save(ctx context.Context, f *entity.Freelancer) (int64, error) {
	if f == nil {
		return 0, apperror.Validation("freelancer is required")
	}

	if f.ID != 0 {
		return 0, apperror.Validation("freelancer is already saved with id=%d", f.ID)
	}

	_, err := inTx(ctx, s.repo, s.log, func(tx Tx) (struct{}, error) {
		if f.Address.ID == 0 {
			if err := tx.SaveAddress(ctx, f.Address); err != nil {
				return struct{}{}, err
			}
		}

		return struct{}{}, tx.SaveFreelancer(ctx, f)
	})
	if err != nil {
		return 0, err
	}

	return f.ID, s.recordCreated(f)
}

// Update rewrites an existing freelancer. A populated address is written
// through; a bare reference leaves the address row untouched.
func (s *FreelancerService) Update(ctx context.Context, f *entity.Freelancer) error {
	if f == nil || f.ID == 0 {
		return apperror.Validation("a saved freelancer is required to update")
	}

	old, err := inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Freelancer, error) {
		old, err := s.fetch(ctx, tx, f.ID)
		if err != nil {
			return nil, err
		}

		switch {
		case f.Address.ID == 0:
			if err := tx.SaveAddress(ctx, f.Address); err != nil {
				return nil, err
			}
		case f.Address.Street != "":
			if err := tx.UpdateAddress(ctx, f.Address); err != nil {
				return nil, err
			}
		}

		return old, tx.UpdateFreelancer(ctx, f)
	})
	if err != nil {
		return err
	}

	return s.recordUpdated(old, f)
}

// Delete removes the freelancer row. Invoices referencing it make the
// delete fail on the foreign key; the address row is kept.
func (s *FreelancerService) Delete(ctx context.Context, id int64) error {
	old, err := inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Freelancer, error) {
		old, err := s.fetch(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		return old, tx.DeleteFreelancer(ctx, id)
	})
	if err != nil {
		return err
	}

	return s.recordDeleted(old)
}

// FindByID returns the freelancer with its address hydrated.
func (s *FreelancerService) FindByID(ctx context.Context, id int64) (*entity.Freelancer, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) (*entity.Freelancer, error) {
		return s.fetch(ctx, tx, id)
	})
}

// FindAll returns every freelancer with addresses hydrated in one batch
// query.
func (s *FreelancerService) FindAll(ctx context.Context) ([]*entity.Freelancer, error) {
	return inTx(ctx, s.repo, s.log, func(tx Tx) ([]*entity.Freelancer, error) {
		freelancers, err := tx.ListFreelancers(ctx)
		if err != nil {
			return nil, err
		}

		ids := make([]int64, 0, len(freelancers))
		for _, f := range freelancers {
			ids = append(ids, f.Address.ID)
		}

		addresses, err := tx.AddressesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}

		for _, f := range freelancers {
			if a, ok := addresses[f.Address.ID]; ok {
				f.Address = a
			}
		}

		return freelancers, nil
	})
}

func (s *FreelancerService) fetch(ctx context.Context, tx Tx, id int64) (*entity.Freelancer, error) {
	f, err := tx.GetFreelancer(ctx, id)
	if err != nil {
		return nil, apperror.WrapDatabase("fetching freelancer", err)
	}

	a, err := tx.GetAddress(ctx, f.Address.ID)
	if err != nil {
		return nil, apperror.WrapDatabase("fetching freelancer address", err)
	}

	f.Address = a

	return f, nil
}
