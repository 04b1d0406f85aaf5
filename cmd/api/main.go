package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arunvel/stockkeep-backend/api/routes"
	authsvc "github.com/arunvel/stockkeep-backend/internal/auth"
	dashsvc "github.com/arunvel/stockkeep-backend/internal/dashboard"
	invsvc "github.com/arunvel/stockkeep-backend/internal/inventory"
	"github.com/arunvel/stockkeep-backend/internal/notifications"
	reportsvc "github.com/arunvel/stockkeep-backend/internal/reports"
	supsvc "github.com/arunvel/stockkeep-backend/internal/suppliers"
	usersvc "github.com/arunvel/stockkeep-backend/internal/users"
	"github.com/arunvel/stockkeep-backend/pkg/config"
	"github.com/arunvel/stockkeep-backend/pkg/db"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
	"github.com/arunvel/stockkeep-backend/pkg/metrics"
	"github.com/arunvel/stockkeep-backend/pkg/migrate"
	"github.com/arunvel/stockkeep-backend/pkg/redis"
	"github.com/arunvel/stockkeep-backend/pkg/storage/local"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	store, err := local.New(cfg.Storage)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare storage directories", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	mailMetrics := metrics.NewMailMetrics(registry)

	userRepo := usersvc.NewRepository(dbClient.DB())
	itemRepo := invsvc.NewRepository(dbClient.DB())
	supplierRepo := supsvc.NewRepository(dbClient.DB())

	if err := authsvc.BootstrapAdmin(context.Background(), userRepo, cfg.Bootstrap, cfg.Password, logg); err != nil {
		logg.Error(context.Background(), "failed to bootstrap admin account", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	userService, err := usersvc.NewService(userRepo, dbClient, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	supplierService, err := supsvc.NewService(supplierRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create supplier service", err)
		os.Exit(1)
	}

	pdfGenerator := reportsvc.NewGenerator(cfg.Inventory.CurrencySymbol)

	inventoryService, err := invsvc.NewService(invsvc.ServiceParams{
		Repo:              itemRepo,
		PDFRenderer:       pdfGenerator,
		Files:             store,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		Logger:            logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	var mailer notifications.Mailer = notifications.DisabledMailer{}
	if cfg.SMTP.Configured() {
		mailer, err = notifications.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			logg.Error(context.Background(), "failed to create smtp mailer", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "smtp not configured, email notifications will fail until it is")
	}

	notificationService, err := notifications.NewService(notifications.ServiceParams{
		Suppliers:         supplierRepo,
		Mailer:            mailer,
		SMTPConfig:        cfg.SMTP,
		CurrencySymbol:    cfg.Inventory.CurrencySymbol,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		MailMetrics:       mailMetrics,
		Logger:            logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create notification service", err)
		os.Exit(1)
	}

	reportService, err := reportsvc.NewService(reportsvc.ServiceParams{
		Items:             itemRepo,
		Generator:         pdfGenerator,
		Sender:            notificationService,
		Files:             store,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		Logger:            logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	dashboardService, err := dashsvc.NewService(dashsvc.ServiceParams{
		Items:             itemRepo,
		Suppliers:         supplierRepo,
		Users:             userRepo,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Deps{
		Config:        cfg,
		Logger:        logg,
		DB:            dbClient,
		Redis:         redisClient,
		Metrics:       httpMetrics,
		Gatherer:      registry,
		Auth:          authService,
		Users:         userService,
		Inventory:     inventoryService,
		Suppliers:     supplierService,
		Notifications: notificationService,
		Reports:       reportService,
		Dashboard:     dashboardService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
