package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/drillwise/drillwise/internal/api"
	"github.com/drillwise/drillwise/internal/config"
	"github.com/drillwise/drillwise/internal/drills"
	"github.com/drillwise/drillwise/internal/identity"
	"github.com/drillwise/drillwise/internal/llm"
	"github.com/drillwise/drillwise/internal/objective"
	"github.com/drillwise/drillwise/internal/progress"
	"github.com/drillwise/drillwise/internal/session"
	"github.com/drillwise/drillwise/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP practice service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "Listen port (overrides DRILLWISE_PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		cfg.Port = p
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return err
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		return err
	}
	provider, err := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo())
	if err != nil {
		return err
	}
	logger.Info("generation provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())

	registry := session.NewRegistry(st.SessionRepo(), logger)
	saver := session.NewSaver(st.SessionRepo(), session.DefaultSaveInterval, logger)
	go saver.Run(context.Background())
	defer saver.Close()

	drillCfg := drills.DefaultConfig()
	engine := session.NewEngine(
		registry,
		saver,
		drills.NewOrchestrator(provider, drillCfg, logger),
		drills.NewEvaluator(provider, drillCfg),
		objective.NewDeriver(provider),
		st.SnapshotRepo(),
		cfg.FreeDailyLimit,
		logger,
	)
	recorder := progress.NewRecorder(st.ProgressRepo(), logger)

	var verifier identity.Verifier
	if cfg.JWTSecret != "" {
		verifier = identity.NewJWTVerifier(cfg.JWTSecret)
	} else {
		logger.Warn("no JWT secret configured, trusting X-User-ID header (dev mode)")
		verifier = identity.DevVerifier{}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewServer(engine, recorder, verifier, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "db", dbPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
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
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
