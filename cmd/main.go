package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syamvenkatasai/payequity/internal/adapters/roster"
	app "github.com/syamvenkatasai/payequity/internal/app"
	"github.com/syamvenkatasai/payequity/internal/config"
	"github.com/syamvenkatasai/payequity/pkg/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optional metrics listener; the audit itself never touches the network.
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn(ctx, "metrics listener stopped", logger.Error(err))
			}
		}()
		defer srv.Close()
	}

	svc := app.New(
		app.WithLogger(log.Named("audit")),
		app.WithWorkerCount(cfg.WorkerCount),
	)

	populations := []struct {
		name string
		pop  config.Population
	}{
		{"salaried", cfg.Salaried},
		{"hourly", cfg.Hourly},
	}
	for _, p := range populations {
		if err := auditPopulation(ctx, svc, cfg, p.name, p.pop); err != nil {
			log.Error(ctx, "audit failed", logger.String("population", p.name), logger.Error(err))
			os.Exit(1)
		}
	}
	log.Info(ctx, "processed both salaried and hourly populations")
}

// auditPopulation runs one population end to end: load, audit, write
// the annotated roster back out.
func auditPopulation(ctx context.Context, svc *app.Service, cfg *config.Config, name string, pop config.Population) error {
	log := logger.Named(name)

	rows, err := roster.Load(pop.Input, cfg.Separator())
	if err != nil {
		return err
	}
	log.Info(ctx, "roster loaded",
		logger.String("input", pop.Input),
		logger.Int("rows", len(rows)),
		logger.String("compensationColumn", pop.CompensationColumn),
	)

	employees, err := roster.ToEmployees(rows, pop.CompensationColumn)
	if err != nil {
		return err
	}

	audited, err := svc.Run(ctx, employees, pop.Threshold)
	if err != nil {
		return err
	}
	if err := roster.ApplyFindings(rows, audited); err != nil {
		return err
	}

	output := pop.Output
	if output == "" {
		output = pop.Input
	}
	if err := roster.Save(output, rows, cfg.Separator()); err != nil {
		return err
	}
	log.Info(ctx, "annotated roster written", logger.String("output", output))
	return nil
}
