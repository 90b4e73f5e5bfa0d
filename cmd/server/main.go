package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/builduhq/tenant-api/internal/app"
	"github.com/builduhq/tenant-api/internal/config"
	httpinfra "github.com/builduhq/tenant-api/internal/infra/http"
	"github.com/builduhq/tenant-api/internal/infra/http/handler"
	"github.com/builduhq/tenant-api/internal/infra/memory"
	"github.com/builduhq/tenant-api/internal/seed"
	"github.com/builduhq/tenant-api/pkg/logger"
	"github.com/builduhq/tenant-api/pkg/validator"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log := logger.NewDefault()
		log.Error("failed to load configuration", "error", err)
		return 1
	}

	log := initLogger(cfg)
	log.Info("starting application", "app", cfg.App.Name, "env", cfg.App.Env)

	// Repositories. Everything lives in process memory; no external
	// stores to connect to.
	roleRepo := memory.NewRoleRepository()
	userRepo := memory.NewUserRepository()
	tenantRepo := memory.NewTenantRepository()
	log.Info("in-memory repositories initialized")

	// Services
	ac := app.NewAccessControl(roleRepo, userRepo, log)
	roleService := app.NewRoleService(ac, log)
	userService := app.NewUserService(ac, log)
	tenantService := app.NewTenantService(tenantRepo, log)
	log.Info("services initialized")

	// Demo data
	if cfg.Seed.Enabled {
		fixture, err := seed.LoadFile(cfg.Seed.File)
		if err != nil {
			log.Error("failed to load seed fixture", "error", err)
			return 1
		}
		stores := seed.Stores{Roles: roleRepo, Users: userRepo, Tenant: tenantRepo}
		if err := seed.Apply(ctx, fixture, stores, log); err != nil {
			log.Error("failed to seed demo data", "error", err)
			return 1
		}
	}

	// Handlers
	v := validator.New()
	handlers := httpinfra.Handlers{
		Role:       handler.NewRoleHandler(roleService, v, log),
		User:       handler.NewUserHandler(userService, ac, v, log),
		Permission: handler.NewPermissionHandler(roleService),
		Tenant:     handler.NewTenantHandler(tenantService, v, log),
	}

	// HTTP server
	router := httpinfra.NewRouter(cfg, log, handlers)
	server := httpinfra.NewServer(cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", "error", err)
		}
	}()
	log.Info("application started", "http_addr", cfg.Server.Addr())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		return 1
	}

	log.Info("application stopped")
	return 0
}

func initLogger(cfg *config.Config) *logger.Logger {
	if cfg.IsProduction() {
		return logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	}
	return logger.NewDevelopment()
}
