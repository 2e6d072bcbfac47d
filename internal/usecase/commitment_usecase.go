package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/infrastructure/logger"
	"recurring_dashboard/internal/usecase/interfaces"
	"recurring_dashboard/internal/usecase/query"
)

var (
	ErrCommitmentNotFound        = errors.New("commitment not found")
	ErrInvalidCommitmentID       = errors.New("invalid commitment id")
	ErrCommitmentAlreadyStopped  = errors.New("commitment already stopped")
	ErrCommitmentAlreadyRefunded = errors.New("commitment already refunded")
	ErrInvalidGenerateCount      = errors.New("invalid generate count")
)

// ICommitmentUseCase exposes the dashboard operations on commitments.
//
// These operations map to the gateway routes:
//   - GET /commitments => List()
//   - GET /commitment/{id} => GetByID()
//   - POST /commitment/{id} => Stop()
//   - POST /commitment/refund/{id} => Refund()
//   - GET /generate => Regenerate()

type ICommitmentUseCase interface {
	List(ctx context.Context, params query.RawParams) (query.Result, error)
	GetByID(ctx context.Context, id string) (entities.Commitment, error)
	Stop(ctx context.Context, id string) (entities.Commitment, error)
	Refund(ctx context.Context, id string) (entities.Commitment, error)
	Regenerate(ctx context.Context, count int) ([]entities.Commitment, error)
}

type CommitmentUseCase struct {
	repo            interfaces.ICommitmentRepository
	transactionRepo interfaces.ITransactionRepository
	generator       interfaces.IDataGenerator
	log             *logger.Logger
}

var _ ICommitmentUseCase = (*CommitmentUseCase)(nil)

func NewCommitmentUseCase(
	repo interfaces.ICommitmentRepository,
	transactionRepo interfaces.ITransactionRepository,
	generator interfaces.IDataGenerator,
	log *logger.Logger,
) *CommitmentUseCase {
	return &CommitmentUseCase{repo: repo, transactionRepo: transactionRepo, generator: generator, log: log}
}

// List runs the query engine over the current snapshot. Validation problems
// come back in Result.Errors with a nil error; a non-nil error means the
// store could not be read.
func (u *CommitmentUseCase) List(ctx context.Context, params query.RawParams) (query.Result, error) {
	commitments, err := u.repo.LoadAll(ctx)
	if err != nil {
		u.log.Error(ctx, "[commitment][usecase] list load failed", err)
		return query.Result{}, err
	}

	res := query.Run(commitments, params)
	if len(res.Errors) > 0 {
		ctx = u.log.WithField(ctx, "errors", res.Errors)
		u.log.Info(ctx, "[commitment][usecase] list rejected")
		return res, nil
	}

	ctx = u.log.WithFields(ctx, map[string]any{
		"total_count": res.Pagination.TotalCount,
		"returned":    len(res.Commitments),
	})
	u.log.Debug(ctx, "[commitment][usecase] list success")
	return res, nil
}

func (u *CommitmentUseCase) GetByID(ctx context.Context, id string) (entities.Commitment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Commitment{}, ErrInvalidCommitmentID
	}

	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Commitment{}, err
	}
	if c.ID == "" {
		return entities.Commitment{}, ErrCommitmentNotFound
	}
	return c, nil
}

func (u *CommitmentUseCase) Stop(ctx context.Context, id string) (entities.Commitment, error) {
	return u.transition(ctx, id, entities.CommitmentStatusStopped, func(current entities.CommitmentStatus) error {
		if current == entities.CommitmentStatusStopped {
			return ErrCommitmentAlreadyStopped
		}
		return nil
	})
}

// Refund is refused once the commitment is REFUNDED or STOPPED.
func (u *CommitmentUseCase) Refund(ctx context.Context, id string) (entities.Commitment, error) {
	return u.transition(ctx, id, entities.CommitmentStatusRefunded, func(current entities.CommitmentStatus) error {
		if current == entities.CommitmentStatusRefunded || current == entities.CommitmentStatusStopped {
			return ErrCommitmentAlreadyRefunded
		}
		return nil
	})
}

func (u *CommitmentUseCase) transition(
	ctx context.Context,
	id string,
	target entities.CommitmentStatus,
	guard func(current entities.CommitmentStatus) error,
) (entities.Commitment, error) {
	ctx = u.log.WithFields(ctx, map[string]any{"commitment_id": id, "target_status": target})

	current, err := u.GetByID(ctx, id)
	if err != nil {
		u.log.Warn(ctx, "[commitment][usecase] transition lookup failed", err)
		return entities.Commitment{}, err
	}
	if err := guard(current.Status); err != nil {
		ctx = u.log.WithField(ctx, "current_status", current.Status)
		u.log.Info(ctx, "[commitment][usecase] transition refused")
		return entities.Commitment{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, target)
	if err != nil {
		u.log.Error(ctx, "[commitment][usecase] transition write failed", err)
		return entities.Commitment{}, err
	}
	if updated.ID == "" {
		return entities.Commitment{}, ErrCommitmentNotFound
	}
	u.log.Info(ctx, "[commitment][usecase] transition success")
	return updated, nil
}

// Regenerate discards both collections and replaces them with fresh data.
func (u *CommitmentUseCase) Regenerate(ctx context.Context, count int) ([]entities.Commitment, error) {
	if count <= 0 {
		return nil, ErrInvalidGenerateCount
	}
	if u.generator == nil {
		return nil, errors.New("data generator not configured")
	}
	if u.transactionRepo == nil {
		return nil, errors.New("transaction repository not configured")
	}

	ctx = u.log.WithField(ctx, "count", count)
	commitments, transactions := u.generator.Generate(count)

	if err := u.transactionRepo.ReplaceAll(ctx, transactions); err != nil {
		u.log.Error(ctx, "[commitment][usecase] regenerate transactions failed", err)
		return nil, fmt.Errorf("replace transactions: %w", err)
	}
	if err := u.repo.ReplaceAll(ctx, commitments); err != nil {
		u.log.Error(ctx, "[commitment][usecase] regenerate commitments failed", err)
		return nil, fmt.Errorf("replace commitments: %w", err)
	}

	ctx = u.log.WithField(ctx, "transactions", len(transactions))
	u.log.Info(ctx, "[commitment][usecase] regenerate success")
	return commitments, nil
}

// EnsureSeeded regenerates both collections when either store holds nothing
// yet. Any other load failure is returned untouched so that it keeps
// surfacing after boot.
func (u *CommitmentUseCase) EnsureSeeded(ctx context.Context, count int) (bool, error) {
	_, cErr := u.repo.LoadAll(ctx)
	var tErr error
	if u.transactionRepo != nil {
		_, tErr = u.transactionRepo.LoadAll(ctx)
	}

	empty := errors.Is(cErr, interfaces.ErrStoreEmpty) || errors.Is(tErr, interfaces.ErrStoreEmpty)
	if !empty {
		if cErr != nil {
			return false, cErr
		}
		return false, tErr
	}

	u.log.Warn(ctx, "[commitment][usecase] store empty at boot, regenerating", errors.Join(cErr, tErr))
	if _, err := u.Regenerate(ctx, count); err != nil {
		return false, err
	}
	return true, nil
}
