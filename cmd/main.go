package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"HospitalManagement/cache"
	"HospitalManagement/config"
	"HospitalManagement/database"
	"HospitalManagement/routes"
	"HospitalManagement/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital",
		Short: "Hospital management REST API",
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg, utils.NewLogger(cfg.LogLevel))
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := utils.NewLogger(cfg.LogLevel)

			db, err := database.InitDB(cmd.Context(), cfg.DBURL, cfg.IsDevelopment(), log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}

func runServer(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) error {
	// Initialize the database
	db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDevelopment(), log)
	if err != nil {
		log.WithError(err).Error("failed to initialize database")
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		log.WithError(err).Error("failed to migrate database")
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := routes.Dependencies{Logger: log, Registry: registry}

	// Password reset needs both Redis and SMTP.
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, database.DefaultRedisConfig(cfg.RedisURL), log)
		if err != nil {
			log.WithError(err).Error("failed to initialize Redis client")
			return err
		}
		defer client.Close()
		deps.CodeStore = cache.NewCache(client)
	} else {
		log.Warn("REDIS_URL not set, password reset disabled")
	}
	if cfg.MailerConfigured() {
		deps.Mailer = utils.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass)
	} else {
		log.Warn("SMTP settings incomplete, password reset disabled")
	}

	handler, err := routes.SetupRoutes(cfg, db, deps)
	if err != nil {
		return err
	}

	// Configure and start the server
	srv := &http.Server{
		Addr:           ":" + cfg.HTTPPort,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	serveErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.WithField("addr", srv.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serveErr:
		log.WithError(err).Error("server failed")
		return err
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
		return err
	}

	wg.Wait()
	log.Info("server exited gracefully")
	return nil
}
