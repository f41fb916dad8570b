package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/thefrederiksen/azprune/azure"
	"github.com/thefrederiksen/azprune/history"
	"github.com/thefrederiksen/azprune/orchestrator"
	"github.com/thefrederiksen/azprune/telemetry"
)

var (
	watchInterval    time.Duration
	watchMetricsAddr string
	watchSub         string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scan continuously and expose metrics",
	Long: `Scan continuously and expose Prometheus metrics.

Runs a scan immediately, then again on every interval. Results land in
scan history; waste and orphan counters are served on /metrics so a
dashboard can alert when forgotten resources pile up.`,
	Example: `  azprune watch                      # Hourly scans, metrics on :2113
  azprune watch --interval 15m
  azprune watch --metrics-addr :9090`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Scan interval (default from config, 1h)")
	watchCmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "Metrics listen address (default from config, :2113)")
	watchCmd.Flags().StringVarP(&watchSub, "subscription", "s", "", "Subscription id or name (default: az CLI default)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watchInterval > 0 {
		cfg.Watch.Interval = watchInterval
	}
	if watchMetricsAddr != "" {
		cfg.Watch.MetricsAddr = watchMetricsAddr
	}

	logger := telemetry.NewLogger("watch")
	ctx := cmd.Context()

	wanted := watchSub
	if wanted == "" {
		wanted = cfg.SubscriptionID
	}
	account, err := resolveAccount(ctx, wanted)
	if err != nil {
		return err
	}

	client, err := azure.NewClient(account.ID, account.TenantID)
	if err != nil {
		return err
	}

	promExporter, err := otelprom.New()
	if err != nil {
		return fmt.Errorf("creating prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(promExporter))
	otel.SetMeterProvider(provider)

	metrics, err := telemetry.InitScanMetrics(otel.Meter("azprune"))
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}

	scanner := orchestrator.NewScanner(client.Query, orchestrator.Options{
		FailFastThreshold: cfg.FailFastThreshold,
		Metrics:           metrics,
	})

	if err := os.MkdirAll(cfg.HistoryDir, 0o750); err != nil {
		return err
	}
	store, err := history.Open(cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info().
		Str("subscription", account.Name).
		Dur("interval", cfg.Watch.Interval).
		Str("metrics_addr", cfg.Watch.MetricsAddr).
		Msg("watch starting")

	var g run.Group

	// Shutdown on SIGINT/SIGTERM.
	g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	// Metrics server.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	server := &http.Server{Addr: cfg.Watch.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	g.Add(func() error {
		logger.Info().Str("addr", cfg.Watch.MetricsAddr).Msg("metrics server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	// Scan loop.
	loopCtx, cancelLoop := context.WithCancel(ctx)
	g.Add(func() error {
		scanOnce(loopCtx, logger, scanner, store, account)

		ticker := time.NewTicker(cfg.Watch.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				scanOnce(loopCtx, logger, scanner, store, account)
			case <-loopCtx.Done():
				return nil
			}
		}
	}, func(error) {
		cancelLoop()
	})

	err = g.Run()
	var sigErr run.SignalError
	if errors.As(err, &sigErr) {
		logger.Info().Str("signal", sigErr.Signal.String()).Msg("shutting down")
		return nil
	}
	return err
}

func scanOnce(ctx context.Context, logger *telemetry.Logger, scanner *orchestrator.Scanner, store *history.Store, account *azure.Account) {
	result, err := scanner.Scan(ctx)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("scan failed")
		return
	}
	if result.State != orchestrator.StateCompleted {
		return
	}

	if _, err := store.SaveScan(account.ID, account.Name, result.Records); err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("failed to record scan history")
	}
}
