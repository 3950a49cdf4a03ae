package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi"
	authhandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/auth"
	fileshandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/files"
	usershandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/users"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/queue/nats"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/repository/postgres"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/storage/minio"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/auth"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/cleanup"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/file"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/system"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//queue
	jobQueue, err := nats.NewQueue(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init job queue", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := jobQueue.Close(); err != nil {
			logger.Error("failed to close job queue", "error", err)
		}
	}()

	//repositories
	userRepo := postgres.NewSqlUserRepository(db)
	sessionRepo := postgres.NewSqlSessionRepository(db)
	fileRepo := postgres.NewSqlFileRepository(db)
	jobRepo := postgres.NewSqlJobRepository(db)

	//services
	authService := auth.NewAuthService(userRepo, sessionRepo, cfg.Auth)
	fileService := file.NewFileService(fileRepo, jobRepo, minioAdapter, jobQueue, logger)
	systemService := system.NewSystemService(db, jobQueue, userRepo, fileRepo, logger)
	cleanupService := cleanup.NewCleanupService(sessionRepo, logger)

	//http
	authHandler := authhandler.NewAuthHandlerV1(authService, logger)
	usersHandler := usershandler.NewUsersHandlerV1(authService, logger)
	filesHandler := fileshandler.NewFilesHandlerV1(fileService, logger)

	router := chi.NewRouter(logger, authService, authHandler, usersHandler, filesHandler, systemService, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init session purge task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initPurgeTask(ctx, cleanupService, cfg.Auth.PurgeEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initPurgeTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("session purge task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			err := service.PurgeExpiredSessions(ctx, time.Now())
			if err != nil {
				logger.Error("failed to purge expired sessions", "error", err)
			}
		case <-ctx.Done():
			logger.Info("session purge task stopped")
			return
		}
	}

}
