package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"recurring_dashboard/internal/adapter/http/routes"
	"recurring_dashboard/internal/infrastructure/config"
	"recurring_dashboard/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Recurring Giving Dashboard API
// @version         1.0
// @description     Commitment and transaction records behind the recurring giving dashboard.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9998

// @BasePath  /

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "recurring-dashboard-api"}).Error(ctx, "[main] invalid configuration", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: "recurring-dashboard-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if err := routes.Run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "[main] api server stopped", err)
		os.Exit(1)
	}
}
