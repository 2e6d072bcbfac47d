package interfaces

import (
	"context"
	"recurring_dashboard/internal/domain/entities"
)

// ITransactionRepository abstracts the transactions collection.

type ITransactionRepository interface {
	LoadAll(ctx context.Context) ([]entities.Transaction, error)
	FindByID(ctx context.Context, id string) (entities.Transaction, error)
	ReplaceAll(ctx context.Context, transactions []entities.Transaction) error
}
