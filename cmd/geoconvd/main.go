package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/zhufengGNSS/pymap3d/internal/api"
	"github.com/zhufengGNSS/pymap3d/internal/auth"
	"github.com/zhufengGNSS/pymap3d/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg := loadConfig(logger)

	authCfg, err := loadAuthConfig(logger, cfg)
	if err != nil {
		logger.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	ells, err := cfg.ResolveEllipsoids()
	if err != nil {
		logger.Error("invalid ellipsoid configuration", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(cfg.Addr, logger, authCfg, ells, cfg.TrustProxy)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server",
			"addr", cfg.Addr,
			"auth_enabled", authCfg.Enabled,
			"default_ellipsoid", cfg.DefaultEllipsoid,
			"trust_proxy", cfg.TrustProxy,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadConfig reads the optional YAML config file, then applies environment
// variable overrides and defaults.
func loadConfig(logger *slog.Logger) *config.Config {
	cfg := &config.Config{}

	if path := os.Getenv("GEOCONVD_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
		logger.Info("loaded config file", "path", path)
	}

	if v := os.Getenv("GEOCONVD_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	if v := os.Getenv("GEOCONVD_ELLIPSOID"); v != "" {
		cfg.DefaultEllipsoid = v
	}
	if cfg.DefaultEllipsoid == "" {
		cfg.DefaultEllipsoid = "wgs84"
	}

	if v := os.Getenv("GEOCONVD_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid GEOCONVD_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			cfg.TrustProxy = b
		}
	}

	return cfg
}

func loadAuthConfig(logger *slog.Logger, cfg *config.Config) (auth.Config, error) {
	authCfg := auth.Config{
		Enabled: cfg.AuthEnabled,
		Token:   cfg.AuthToken,
	}

	if v := os.Getenv("GEOCONVD_AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return authCfg, errors.New("GEOCONVD_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		authCfg.Enabled = enabled
	}

	if v := os.Getenv("GEOCONVD_AUTH_TOKEN"); v != "" {
		authCfg.Token = v
	}

	if authCfg.Enabled {
		if authCfg.Token == "" {
			return authCfg, errors.New("GEOCONVD_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return authCfg, nil
}
