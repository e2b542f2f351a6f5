package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bridgewatch/freqtrigger/invoker/internal/config"
	"github.com/bridgewatch/freqtrigger/invoker/internal/logging"
	"github.com/bridgewatch/freqtrigger/invoker/internal/report"
	"github.com/bridgewatch/freqtrigger/invoker/internal/trigger"
	"github.com/bridgewatch/freqtrigger/pkg/types"
)

// options carries the command-line flags.
type options struct {
	profile     string
	metricsFile string
}

func main() {
	var opts options
	flag.StringVar(&opts.profile, "profile", "", "path to a YAML profile (default $PROFILE)")
	flag.StringVar(&opts.metricsFile, "metrics-file", "", "write a Prometheus textfile report to this path (default $METRICS_FILE)")
	flag.Parse()

	logger, err := logging.New(os.Getenv(config.EnvLogLevel), os.Getenv(config.EnvLogFormat), "freqtrigger")
	if err != nil {
		fmt.Fprintf(os.Stderr, "freqtrigger: build logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, opts, os.LookupEnv, logger, os.Stdout)
	cancel()

	if err != nil {
		logger.Fatal("freqtrigger failed", zap.Error(err))
	}
	_ = logger.Sync()
}

// run loads the configuration, sends one frequency event and prints the
// result line to stdout. It returns an error for configuration and transport
// failures only; any HTTP status is a successful run.
func run(ctx context.Context, opts options, lookup config.LookupFunc, logger *zap.Logger, stdout io.Writer) error {
	cfg, err := config.Load(opts.profile, lookup)
	if err != nil {
		return err
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}

	logger.Debug("config loaded",
		zap.String("base_url", cfg.BaseURL),
		zap.String("device_id", cfg.DeviceID),
		zap.Int("fs", cfg.FS),
		zap.Int("n", cfg.N),
		zap.Float64("freq", cfg.Freq),
		zap.Float64("mag", cfg.Mag),
	)

	payload := types.NewAlertPayload(cfg.Event())

	res, err := trigger.New(cfg.BaseURL, logger).Send(ctx, payload)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, res.Line()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if cfg.MetricsFile != "" {
		err := report.WriteFile(cfg.MetricsFile, report.Run{
			DeviceID:   cfg.DeviceID,
			StatusCode: res.StatusCode,
			Duration:   res.Duration,
			Freq:       cfg.Freq,
			Mag:        cfg.Mag,
			FinishedAt: time.Now(),
		})
		if err != nil {
			logger.Warn("could not write metrics report", zap.String("path", cfg.MetricsFile), zap.Error(err))
		} else {
			logger.Debug("metrics report written", zap.String("path", cfg.MetricsFile))
		}
	}
	return nil
}
