package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/snakequiz/internal/app"
	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/config"
	"github.com/abhisek/snakequiz/internal/ledger"
	"github.com/abhisek/snakequiz/internal/logging"
	"github.com/abhisek/snakequiz/internal/metrics"
	"github.com/abhisek/snakequiz/internal/sequencer"
	"github.com/abhisek/snakequiz/internal/session"
)

// runApp loads config and the catalog, wires logging and metrics into the
// session machine, and launches the TUI.
func runApp(cmd *cobra.Command, startCategory string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Error("catalog load failed", zap.String("path", cfg.Catalog), zap.Error(err))
		return err
	}
	log.Info("catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.String("config_file", cfg.File),
		zap.Int("categories", cat.Len()),
		zap.Int("questions", cat.QuestionCount()),
	)

	met := metrics.New()
	logTransition := logging.TransitionLogger(log)

	opts := []session.Option{
		session.WithObserver(func(ev session.Event) {
			logTransition(ev)
			met.Observe(ev)
		}),
		session.WithRejectionObserver(logging.RejectionLogger(log)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSource(sequencer.NewSource(uint64(cfg.Seed))))
	}
	machine := session.NewMachine(cat, ledger.New(), opts...)

	if cfg.Metrics.Addr != "" {
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := met.Serve(metricsCtx, cfg.Metrics.Addr, log); err != nil {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	return app.Run(ctx, app.Options{
		Machine:       machine,
		Categories:    cat.Categories(),
		StartCategory: startCategory,
		Logger:        log,
	})
}

// loadCatalog returns the catalog at cfg.Catalog, or the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(cfg.Catalog)
}
