package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"recurring_dashboard/internal/infrastructure/config"
	"recurring_dashboard/internal/infrastructure/logger"
	"recurring_dashboard/internal/infrastructure/metrics"
	"recurring_dashboard/internal/usecase/query"
	"recurring_dashboard/pkg/client"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	params   query.RawParams
	show     string
	stop     string
	refund   string
	generate int
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	var (
		opts        options
		limit, page string
	)
	fs.StringVar(&opts.params.Statuses, "statuses", "", "comma separated statuses to show")
	fs.StringVar(&opts.params.SortField, "sort", "", "commitment attribute to sort by")
	fs.StringVar(&opts.params.SortDirection, "dir", "", "ASC or DSC")
	fs.StringVar(&limit, "limit", "10", "rows per page")
	fs.StringVar(&page, "page", "0", "zero based page")
	fs.StringVar(&opts.params.Search, "search", "", "match on name or email")
	fs.StringVar(&opts.show, "show", "", "print one commitment and its transactions")
	fs.StringVar(&opts.stop, "stop", "", "stop the commitment with this id")
	fs.StringVar(&opts.refund, "refund", "", "refund the commitment with this id")
	fs.IntVar(&opts.generate, "generate", 0, "regenerate the data set with this many commitments")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if limit != "" {
		opts.params.Limit = &limit
	}
	if page != "" {
		opts.params.Page = &page
	}
	return opts, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadDashboard()
	if err != nil {
		return err
	}
	logg := logger.New(logger.Options{
		ServiceName: "recurring-dashboard",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
		Output:      os.Stderr,
	})

	store, closeStore, err := openStore(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer closeStore()

	cache := client.NewRequestCache(store, client.CacheOptions{
		Observer: metrics.NewCacheMetrics(prometheus.NewRegistry()),
	})
	api, err := client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout), client.WithCache(cache))
	if err != nil {
		return err
	}

	return execute(ctx, api, opts, out, logg)
}

func openStore(ctx context.Context, cfg *config.DashboardConfig, logg *logger.Logger) (client.ResponseStore, func(), error) {
	if cfg.RedisURL == "" {
		return client.NewMemoryStore(), func() {}, nil
	}
	store, err := client.OpenRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open response cache: %w", err)
	}
	logg.Debug(ctx, "[dashboard] using redis response cache")
	return store, func() {
		if err := store.Close(); err != nil {
			logg.Warn(ctx, "[dashboard] closing redis", err)
		}
	}, nil
}

func execute(ctx context.Context, api *client.Client, opts options, out io.Writer, logg *logger.Logger) error {
	switch {
	case opts.generate > 0:
		commitments, err := api.Regenerate(ctx, opts.generate)
		if err != nil {
			return fmt.Errorf("regenerate: %w", err)
		}
		logg.Info(logg.WithField(ctx, "count", len(commitments)), "[dashboard] data regenerated")
	case opts.stop != "":
		if _, err := api.StopCommitment(ctx, opts.stop); err != nil {
			return fmt.Errorf("stop %s: %w", opts.stop, err)
		}
		logg.Info(logg.WithField(ctx, "commitment_id", opts.stop), "[dashboard] commitment stopped")
	case opts.refund != "":
		if _, err := api.RefundCommitment(ctx, opts.refund); err != nil {
			return fmt.Errorf("refund %s: %w", opts.refund, err)
		}
		logg.Info(logg.WithField(ctx, "commitment_id", opts.refund), "[dashboard] commitment refunded")
	}

	if opts.show != "" {
		commitment, err := api.GetCommitment(ctx, opts.show)
		if err != nil {
			return fmt.Errorf("load %s: %w", opts.show, err)
		}
		txs, err := api.ListCommitmentTransactions(ctx, opts.show)
		if err != nil {
			return fmt.Errorf("load transactions for %s: %w", opts.show, err)
		}
		return renderCommitment(out, commitment, txs)
	}

	page, err := api.ListCommitments(ctx, opts.params)
	if err != nil {
		return fmt.Errorf("list commitments: %w", err)
	}
	ctx = logg.WithFields(ctx, map[string]any{
		"total_count": page.Pagination.TotalCount,
		"from_cache":  page.FromCache,
		"returned":    len(page.Commitments),
	})
	logg.Debug(ctx, "[dashboard] page loaded")
	return renderPage(out, page)
}
