// Command convert turns fixed-schema marine weather-station CSV files into
// annotated NetCDF artifacts, one artifact per input file.
//
// Usage:
//
//	go run ./cmd/convert -config config.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/couchcryptid/marine-obs-etl/internal/adapter/csvfile"
	httpadapter "github.com/couchcryptid/marine-obs-etl/internal/adapter/http"
	"github.com/couchcryptid/marine-obs-etl/internal/adapter/netcdf"
	"github.com/couchcryptid/marine-obs-etl/internal/config"
	"github.com/couchcryptid/marine-obs-etl/internal/observability"
	"github.com/couchcryptid/marine-obs-etl/internal/pipeline"
)

const (
	toolName    = "marine-obs-etl"
	toolVersion = "1.2.0"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogSettings{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	metrics := observability.NewMetrics()

	profile, err := cfg.Profile()
	if err != nil {
		logger.Error("invalid metadata profile", "error", err)
		os.Exit(1)
	}
	policy, err := cfg.Policy()
	if err != nil {
		logger.Error("invalid numeric policy", "error", err)
		os.Exit(1)
	}

	// Resolve the invoking identity once so provenance receives it as an
	// explicit parameter.
	username := "unknown"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	reader := csvfile.NewReader(logger)
	writer := netcdf.NewWriter(logger)
	transformer := pipeline.NewTransformer(profile, policy, cfg.GlobalAttributes, pipeline.Identity{
		Tool:    toolName,
		Version: toolVersion,
		User:    username,
	}, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics,
		cfg.InputPaths, cfg.OutputDir(), cfg.ContinueOnFailure())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	runErr := p.Run(ctx)

	if srv != nil {
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("conversion failed", "error", runErr)
		os.Exit(1)
	}
}
