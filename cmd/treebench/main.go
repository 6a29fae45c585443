package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var (
		cfg         Config
		metricsAddr string
		logLevel    string
	)
	cmd := &cobra.Command{
		Use:   "treebench",
		Short: "Applies a random insert/remove workload to an AVL tree and checks its invariants.",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().Int64Var(&cfg.Ops, "ops", 1_000_000, "Number of operations to apply.")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "Seed of the workload.")
	cmd.Flags().IntVar(&cfg.Range, "range", 1<<20, "Values are drawn from [0,range).")
	cmd.Flags().Float64Var(&cfg.RemoveRatio, "remove-ratio", 0.3, "Fraction of operations that are removals.")
	cmd.Flags().Int64Var(&cfg.CheckEvery, "check-every", 100_000, "Check the tree's invariants every this many operations, 0 to only check at the end.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve prometheus metrics on this address.")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("error parsing log level: %w", err)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(lvl).With().Timestamp().Logger()

		reg := prometheus.NewRegistry()
		m := NewMetrics(reg)
		if metricsAddr != "" {
			srv := &http.Server{Addr: metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("metrics server stopped")
				}
			}()
			defer srv.Close()
			log.Info().Str("addr", metricsAddr).Msg("serving metrics")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		res, err := Run(ctx, cfg, log, m)
		if err != nil {
			return err
		}
		log.Info().Uint("size", res.Size).Uint("height", res.Height).Dur("took", res.Took).Msg("done")
		return nil
	}
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
