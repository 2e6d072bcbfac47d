package repository

import (
	"context"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/interfaces"
)

type TransactionRepository struct {
	records *collection[entities.Transaction]
}

var _ interfaces.ITransactionRepository = (*TransactionRepository)(nil)

func NewTransactionFileRepository(path string) *TransactionRepository {
	return &TransactionRepository{records: newCollection[entities.Transaction](newJSONFileSource[entities.Transaction](path))}
}

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionRepository {
	return &TransactionRepository{records: newCollection[entities.Transaction](newDynamoSource[entities.Transaction](ddb, tableName))}
}

func (r *TransactionRepository) LoadAll(ctx context.Context) ([]entities.Transaction, error) {
	return r.records.loadAll(ctx)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (entities.Transaction, error) {
	return r.records.findByID(ctx, id)
}

func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []entities.Transaction) error {
	return r.records.replaceAll(ctx, transactions)
}

func (r *TransactionRepository) Reset() {
	r.records.reset()
}
