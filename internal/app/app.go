package app

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

	"inventory-api/internal/config"
	"inventory-api/internal/database"
	"inventory-api/internal/handler"
	"inventory-api/internal/middleware"
	"inventory-api/internal/repository"
	"inventory-api/internal/router"
	"inventory-api/internal/service"
	"inventory-api/pkg/password"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	hasher := password.NewHasher()

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}
	if err := db.Seed(context.Background(), hasher); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	warehouseRepo := repository.NewWarehouseRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	slog.Info("database ready")

	authService := service.NewAuthService(userRepo, hasher, cfg.JWT, slog.Default())
	userService := service.NewUserService(userRepo, hasher, slog.Default())
	warehouseService := service.NewWarehouseService(warehouseRepo, slog.Default())
	itemService := service.NewItemService(itemRepo, slog.Default())

	authMiddleware := middleware.NewAuthMiddleware(authService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Warehouse: handler.NewWarehouseHandler(warehouseService),
		Item:      handler.NewItemHandler(itemService),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
