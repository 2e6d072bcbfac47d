package interfaces

import (
	"context"
	"recurring_dashboard/internal/domain/entities"
)

// ICommitmentRepository abstracts the commitments collection.
//
// The store must be able to:
//   - load the whole collection in its stored order
//   - resolve a commitment by id (zero value when missing)
//   - change a commitment status in place and write it back
//   - replace the whole collection (regenerate)

type ICommitmentRepository interface {
	LoadAll(ctx context.Context) ([]entities.Commitment, error)
	FindByID(ctx context.Context, id string) (entities.Commitment, error)
	UpdateStatus(ctx context.Context, id string, status entities.CommitmentStatus) (entities.Commitment, error)
	ReplaceAll(ctx context.Context, commitments []entities.Commitment) error
}
