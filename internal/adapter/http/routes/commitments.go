package routes

import (
	"recurring_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCommitments  = "/commitments"
	PathCommitment   = "/commitment"
	PathTransaction  = "/transaction"
	PathTransactions = "/transactions"
	PathGenerate     = "/generate"
	PathPing         = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCommitmentRoutes(rg *gin.RouterGroup, commitmentHandler *handlers.CommitmentHandler, transactionHandler *handlers.TransactionHandler) {
	rg.GET(PathCommitments, commitmentHandler.ListCommitments)

	commitment := rg.Group(PathCommitment)
	{
		commitment.GET("/:id", commitmentHandler.GetCommitment)
		commitment.POST("/:id", commitmentHandler.StopCommitment)
		commitment.POST("/refund/:id", commitmentHandler.RefundCommitment)
		commitment.GET("/:id/transactions", transactionHandler.ListCommitmentTransactions)
	}

	rg.GET(PathTransaction+"/:id", transactionHandler.GetTransaction)
	// Older dashboards request the plural form.
	rg.GET(PathTransactions+"/:id", transactionHandler.GetTransaction)

	rg.GET(PathGenerate, commitmentHandler.Regenerate)
}
