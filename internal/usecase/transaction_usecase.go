package usecase

import (
	"context"
	"errors"
	"strings"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/interfaces"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

type ITransactionUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByCommitmentID(ctx context.Context, commitmentID string) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

// ListByCommitmentID returns the transactions recorded for a commitment in
// collection order. An unknown commitment yields an empty list.
func (u *TransactionUseCase) ListByCommitmentID(ctx context.Context, commitmentID string) ([]entities.Transaction, error) {
	commitmentID = strings.TrimSpace(commitmentID)
	if commitmentID == "" {
		return nil, ErrInvalidCommitmentID
	}

	all, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Transaction, 0)
	for _, t := range all {
		if t.BelongsTo(commitmentID) {
			out = append(out, t)
		}
	}
	return out, nil
}
