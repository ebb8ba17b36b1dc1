package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apiv1 "github.com/rlc-community-providers/rlc-hpalm-provider/api/v1"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/config"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/handlers"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/server"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/services"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store/migrations"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "rlc-hpalm-provider",
		Short: "RLC provider plugin for HP ALM defect tracking",
		Long: `rlc-hpalm-provider exposes HP ALM (Quality Center) defects to the
release lifecycle platform: defect search, field value lookups and
connection management over a small REST API.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the provider HTTP server",
		RunE:  runServe,
	}
	serveCmd.Flags().Int("port", 0, "override the configured http port")
	serveCmd.Flags().String("db", "", "override the configured database path")
	rootCmd.AddCommand(serveCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the provider version",
		Run: func(cmd *cobra.Command, args []string) {
			color.New(color.FgCyan, color.Bold).Printf("rlc-hpalm-provider %s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cfg, cmd.Flags()); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	log := zap.S().Named("main")
	log.Infow("starting rlc-hpalm-provider", "version", version)
	log.Debugw("configuration loaded", "config", cfg.DebugMap())

	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := migrations.Run(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	st := store.NewStore(db)
	defer st.Close() //nolint:errcheck

	handler := handlers.New(
		services.NewProviderService(st),
		services.NewConnectionService(st),
		services.NewSettingsService(st),
	)

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		apiv1.RegisterHandlers(router, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Infow("shutting down", "signal", sig.String())
		if err := srv.Stop(context.Background()); err != nil {
			log.Errorw("shutdown failed", "error", err)
		}
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// applyFlagOverrides layers explicit serve flags over the loaded
// configuration. Flags win over file and environment.
func applyFlagOverrides(cfg *config.Configuration, flags *pflag.FlagSet) error {
	if flags.Changed("port") {
		port, err := flags.GetInt("port")
		if err != nil {
			return err
		}
		cfg.Server.HTTPPort = port
	}
	if flags.Changed("db") {
		path, err := flags.GetString("db")
		if err != nil {
			return err
		}
		cfg.Database.Path = path
	}
	return cfg.Validate()
}

func newLogger(cfg *config.Configuration) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
