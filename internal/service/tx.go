package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// inTx runs fn inside one transaction. Any error from fn rolls the
// transaction back and is returned unchanged; commit failures are reported
// as database errors.
func inTx[R any](ctx context.Context, repo Repository, log *zap.Logger, fn func(tx Tx) (R, error)) (R, error) {
	var zero R

	tx, err := repo.Begin(ctx)
	if err != nil {
		return zero, apperror.WrapDatabase("beginning transaction", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Debug("transaction rollback failed", zap.Error(rbErr))
		}
	}()

	out, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, apperror.Databasef(err, "committing transaction")
	}

	committed = true

	return out, nil
}

// base carries the collaborators shared by every domain service. Audit
// entries are appended after the transaction commits, so a failed write
// never reaches the log and a failed append never undoes the write.
type base struct {
	repo  Repository
	audit AuditLog
	user  UserSource
	log   *zap.Logger
}

func (b *base) recordCreated(v entity.Auditable) error {
	entry, err := changelog.Created(v, b.user.Username())
	if err != nil {
		return err
	}

	return b.audit.Append(entry)
}

func (b *base) recordUpdated(oldValue, newValue entity.Auditable) error {
	entry, err := changelog.Updated(oldValue, newValue, b.user.Username())
	if err != nil {
		return err
	}

	return b.audit.Append(entry)
}

func (b *base) recordDeleted(oldValue entity.Auditable) error {
	entry, err := changelog.Deleted(oldValue, b.user.Username())
	if err != nil {
		return err
	}

	return b.audit.Append(entry)
}
