package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bmidash.org/internal/app"
	"bmidash.org/internal/appconf"
	"bmidash.org/internal/logging"
	"bmidash.org/internal/restapi"
	"bmidash.org/internal/webui"
)

const csrfKeyLength = 32

// application holds the HTTP surfaces built on top of the shared app.Application.
type application struct {
	*app.Application
	api   *restapi.RestAPI
	webUI *webui.WebUI
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, logLevel, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger := logging.NewStructuredLogger(os.Stdout, logLevel)
	slog.SetDefault(logger)

	if len(cfg.CSRFKey) == 0 {
		cfg.CSRFKey = make([]byte, csrfKeyLength)
		if _, err := rand.Read(cfg.CSRFKey); err != nil {
			return fmt.Errorf("generating csrf key: %w", err)
		}
		logger.Warn("no -csrf-key given, generated an ephemeral one; page tokens will not survive a restart")
	}

	base, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	server := newApplication(base)
	defer server.api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.String("dataset", base.Dataset.Describe()))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func parseFlags(args []string) (appconf.Config, slog.Level, error) {
	var cfg appconf.Config
	var env, apiKeysFlag, csrfKeyFlag, logLevelFlag string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", 8050, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.StringVar(&cfg.DatasetPath, "dataset", "BMI.csv", "Path to the reference dataset (.csv or .db/.sqlite)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 10, "Requests per second per API key (negative disables)")
	fs.StringVar(&csrfKeyFlag, "csrf-key", "", "Hex encoded 32 byte key for web UI CSRF tokens")
	fs.StringVar(&logLevelFlag, "log-level", "info", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return cfg, 0, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = parseAPIKeys(apiKeysFlag)

	if csrfKeyFlag != "" {
		key, err := hex.DecodeString(csrfKeyFlag)
		if err != nil {
			return cfg, 0, fmt.Errorf("invalid -csrf-key: %w", err)
		}
		if len(key) != csrfKeyLength {
			return cfg, 0, fmt.Errorf("invalid -csrf-key: want %d bytes, got %d", csrfKeyLength, len(key))
		}
		cfg.CSRFKey = key
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevelFlag)); err != nil {
		return cfg, 0, fmt.Errorf("invalid -log-level: %w", err)
	}

	return cfg, level, nil
}

func parseAPIKeys(flagValue string) []string {
	var keys []string
	for _, k := range strings.Split(flagValue, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
