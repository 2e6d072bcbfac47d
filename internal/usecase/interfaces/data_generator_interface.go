package interfaces

import "recurring_dashboard/internal/domain/entities"

// IDataGenerator builds fresh demo collections. Every generated installment
// references one of the returned transactions.
type IDataGenerator interface {
	Generate(count int) ([]entities.Commitment, []entities.Transaction)
}
