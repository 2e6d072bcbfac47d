package response

import "recurring_dashboard/internal/domain/entities"

type TransactionListResponse struct {
	CommitmentID string                 `json:"commitmentId"`
	Transactions []entities.Transaction `json:"transactions"`
}

func FromTransactions(commitmentID string, txs []entities.Transaction) TransactionListResponse {
	if txs == nil {
		txs = []entities.Transaction{}
	}
	return TransactionListResponse{CommitmentID: commitmentID, Transactions: txs}
}
