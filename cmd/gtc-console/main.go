package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	flag "github.com/spf13/pflag"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/config"
	"github.com/bestxiangest/Goods-Trading-Center/internal/logging"
	"github.com/bestxiangest/Goods-Trading-Center/internal/server"
	"github.com/bestxiangest/Goods-Trading-Center/internal/store"
)

const sessionCleanupInterval = 10 * time.Minute

func main() {
	defaults := config.Default()

	configFile := flag.String("config", "", "Config file (default ./gtc.yaml or ~/.gtc/gtc.yaml)")
	flag.String("addr", defaults.Console.Addr, "Listen address")
	flag.String("db", defaults.Console.DBPath, "Session database path")
	flag.String("server", defaults.API.BaseURL, "Backend API base URL")
	flag.String("log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	flag.String("log-format", defaults.Log.Format, "Log format (text, json)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	v := config.New()
	for name, key := range map[string]string{
		"addr":       "console.addr",
		"db":         "console.db_path",
		"server":     "api.base_url",
		"log-level":  "log.level",
		"log-format": "log.format",
	} {
		if err := config.BindFlag(v, key, flag.Lookup(name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)

	if cfg.Console.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Console.DBPath), 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "create database directory: %v\n", err)
			os.Exit(1)
		}
	}
	st, err := store.NewSQLiteStore(cfg.Console.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session database ready", "path", cfg.Console.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := adminapi.NewClient(cfg.API.BaseURL, logger,
		adminapi.WithTimeout(cfg.API.Timeout),
		adminapi.WithMetrics(adminapi.NewMetrics(reg)),
	)

	srv, err := server.New(cfg, st, api, logger, server.WithGatherer(reg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create server: %v\n", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              cfg.Console.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.StartSessionCleanup(ctx, sessionCleanupInterval)

	go func() {
		logger.Info("console starting", "addr", cfg.Console.Addr, "backend", cfg.API.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("console stopped")
}
