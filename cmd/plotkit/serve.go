package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/plotkit-dev/plotkit/internal/config"
	"github.com/plotkit-dev/plotkit/pkg/docstore"
	"github.com/plotkit-dev/plotkit/pkg/document"
	"github.com/plotkit-dev/plotkit/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live document over HTTP/WebSocket",
		Long: `Start the document server.

The server exposes the live document at /document, streams change
events at /document/stream, and persists named documents under
/documents/{name} using the configured store backend.

Examples:
  plotkit serve
  plotkit serve --addr=:9000
  plotkit serve --config=deploy/plotkit.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, configPath)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from plotkit.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", config.FileName, "Path to config file")

	return cmd
}

func runServe(addr, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	for _, warning := range cfg.Warnings() {
		logger.Warn("config warning", "warning", warning)
	}

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	srv := server.New(document.New(), &server.Config{
		Addr:  cfg.Addr,
		Store: store,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

func buildStore(cfg *config.Config) (docstore.Store, error) {
	switch cfg.Store {
	case config.StoreDisk:
		return docstore.NewDiskStore(cfg.StoreDir)
	case config.StoreS3:
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("s3 store requires s3.bucket in %s", config.FileName)
		}
		client := s3.New(s3.Options{Region: cfg.S3.Region})
		return docstore.NewS3Store(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
	default:
		return docstore.NewMemoryStore(), nil
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
