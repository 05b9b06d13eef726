package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal_profile/internal/config"
	"personal_profile/internal/cryptox"
	"personal_profile/internal/handlers"
	"personal_profile/internal/logger"
	"personal_profile/internal/repository"
	"personal_profile/internal/repository/db"
	"personal_profile/internal/server"
	"personal_profile/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	if cfg.Secret == config.DefaultSecret {
		log.Warnw("running with the default application secret; set SECRET_KEY in any real deployment")
	}

	box, err := buildEncryptionBox(cfg, log)
	if err != nil {
		log.Fatalw("failed to init encryption", "err", err)
	}

	conn, err := openDB(cfg)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, box, service.AuthConfig{
		SigningKey: []byte(cfg.Secret),
		TokenTTL:   cfg.SessionTTL,
	})
	apiHandler := handlers.NewHandler(services, log, cfg.SessionTTL)

	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("server started", "port", cfg.Port)

	waitForShutdown(srv, log)
}

// buildEncryptionBox prefers the explicit key; without one it falls back to
// a key derived from the application secret so existing ciphertext survives
// restarts, and says so in the log.
func buildEncryptionBox(cfg *config.Config, log *logger.Logger) (*cryptox.Box, error) {
	key, err := cfg.EncryptionKey()
	if err != nil {
		return nil, err
	}
	if key == nil {
		log.Warnw("no explicit encryption key configured; deriving one from the application secret")
		key = cryptox.DeriveKey(cfg.Secret)
	}
	return cryptox.New(key)
}

// openDB opens the SQLite database and runs pending migrations before any
// traffic is served.
func openDB(cfg *config.Config) (*sql.DB, error) {
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
