package repository

import (
	"context"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/interfaces"
)

// CommitmentRepository serves the commitments collection from a memoized
// snapshot of its backing storage (JSON file or DynamoDB table).
type CommitmentRepository struct {
	records *collection[entities.Commitment]
}

var _ interfaces.ICommitmentRepository = (*CommitmentRepository)(nil)

func NewCommitmentFileRepository(path string) *CommitmentRepository {
	return &CommitmentRepository{records: newCollection[entities.Commitment](newJSONFileSource[entities.Commitment](path))}
}

func NewCommitmentDynamoRepository(ddb DynamoAPI, tableName string) *CommitmentRepository {
	return &CommitmentRepository{records: newCollection[entities.Commitment](newDynamoSource[entities.Commitment](ddb, tableName))}
}

func (r *CommitmentRepository) LoadAll(ctx context.Context) ([]entities.Commitment, error) {
	return r.records.loadAll(ctx)
}

func (r *CommitmentRepository) FindByID(ctx context.Context, id string) (entities.Commitment, error) {
	return r.records.findByID(ctx, id)
}

func (r *CommitmentRepository) UpdateStatus(ctx context.Context, id string, status entities.CommitmentStatus) (entities.Commitment, error) {
	return r.records.update(ctx, id, func(c *entities.Commitment) {
		c.Status = status
	})
}

func (r *CommitmentRepository) ReplaceAll(ctx context.Context, commitments []entities.Commitment) error {
	return r.records.replaceAll(ctx, commitments)
}

// Reset drops the memoized snapshot so the next call reads storage again.
func (r *CommitmentRepository) Reset() {
	r.records.reset()
}
