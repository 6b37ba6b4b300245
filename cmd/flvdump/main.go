// flvdump decodes an FLV file and prints its structure, or serves the
// decoder over WebSocket for interactive inspection.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gengteng/flv-dump/internal/config"
	"github.com/gengteng/flv-dump/internal/dump"
	"github.com/gengteng/flv-dump/internal/flv"
	"github.com/gengteng/flv-dump/internal/server"
)

const defaultInput = "./resources/test.flv"

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	serve := flag.Bool("serve", false, "Run the WebSocket inspection server instead of dumping a file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *serve {
		runServe(cfg)
		return
	}

	path := flag.Arg(0)
	if path == "" {
		path = defaultInput
	}
	if err := runDump(cfg, path); err != nil {
		log.Fatalf("Dump failed: %v", err)
	}
}

// runDump decodes the file at path and prints every record until the
// stream ends or the first fatal error.
func runDump(cfg *config.Config, path string) error {
	f, err := flv.OpenSize(path, cfg.Dump.ChunkSize)
	if err != nil {
		return err
	}
	defer f.Close()

	d := dump.New(os.Stdout, cfg.Dump.PayloadPreview)
	if err := d.WriteFileInfo(path, f.Size, f.Header); err != nil {
		return err
	}

	for {
		rec, err := f.Next()
		if errors.Is(err, io.EOF) {
			return d.Close()
		}
		if err != nil {
			return fmt.Errorf("at record boundary: %w", err)
		}
		if err := d.WriteRecord(rec); err != nil {
			return err
		}
	}
}

// runServe starts the inspection server and blocks until shutdown.
func runServe(cfg *config.Config) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Server.LogLevel),
	}))

	srv := server.New(cfg, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	if err := srv.WaitForShutdown(context.Background()); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server shut down cleanly")
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
