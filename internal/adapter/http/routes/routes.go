package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "recurring_dashboard/docs"
	"recurring_dashboard/internal/adapter/http/handlers"
	"recurring_dashboard/internal/adapter/http/middleware"
	"recurring_dashboard/internal/adapter/persistence/repository"
	"recurring_dashboard/internal/infrastructure/config"
	"recurring_dashboard/internal/infrastructure/database"
	"recurring_dashboard/internal/infrastructure/generator"
	"recurring_dashboard/internal/infrastructure/logger"
	"recurring_dashboard/internal/infrastructure/metrics"
	"recurring_dashboard/internal/usecase"
	"recurring_dashboard/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// RouterDeps carries everything NewRouter wires into handlers.
type RouterDeps struct {
	CommitmentUseCase  usecase.ICommitmentUseCase
	TransactionUseCase usecase.ITransactionUseCase
	GenerateCount      int
	Logger             *logger.Logger
	Metrics            *metrics.HTTPMetrics
	Gatherer           prometheus.Gatherer
}

// NewRouter builds the gin engine. Every route is served at the root and
// again under /v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	commitmentHandler := handlers.NewCommitmentHandler(deps.CommitmentUseCase, deps.GenerateCount)
	transactionHandler := handlers.NewTransactionHandler(deps.TransactionUseCase)

	for _, rg := range []*gin.RouterGroup{&router.RouterGroup, router.Group("/v1")} {
		addPingRoutes(rg)
		addCommitmentRoutes(rg, commitmentHandler, transactionHandler)
	}
	return router
}

func setMiddlewares(router *gin.Engine, deps RouterDeps) {
	router.Use(middleware.Recoverer(deps.Logger))
	router.Use(middleware.RequestID(deps.Logger))
	router.Use(middleware.Logging(deps.Logger))
	router.Use(middleware.Metrics(deps.Metrics))
}

// Run wires the record store, seeds it when empty and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	gin.SetMode(cfg.App.GinMode)

	commitmentRepo, transactionRepo, err := buildRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	commitmentUseCase := usecase.NewCommitmentUseCase(commitmentRepo, transactionRepo, generator.New(cfg.Generator.Seed), logg)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)

	seeded, err := commitmentUseCase.EnsureSeeded(ctx, cfg.Generator.Count)
	if err != nil {
		// Keep serving; List and lookups report the failure as 500.
		logg.Error(ctx, "[routes] record store unreadable at boot", err)
	} else if seeded {
		logg.Info(logg.WithField(ctx, "count", cfg.Generator.Count), "[routes] record store seeded")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := NewRouter(RouterDeps{
		CommitmentUseCase:  commitmentUseCase,
		TransactionUseCase: transactionUseCase,
		GenerateCount:      cfg.Generator.Count,
		Logger:             logg,
		Metrics:            metrics.NewHTTPMetrics(registry),
		Gatherer:           registry,
	})

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", server.Addr), "[routes] starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logg.Info(ctx, "[routes] shutting down api server")
	return server.Shutdown(shutdownCtx)
}

func buildRepositories(ctx context.Context, cfg *config.Config) (interfaces.ICommitmentRepository, interfaces.ITransactionRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewCommitmentDynamoRepository(ddb, cfg.Store.CommitmentsTable),
			repository.NewTransactionDynamoRepository(ddb, cfg.Store.TransactionsTable),
			nil
	default:
		return repository.NewCommitmentFileRepository(cfg.Store.CommitmentsFile),
			repository.NewTransactionFileRepository(cfg.Store.TransactionsFile),
			nil
	}
}
