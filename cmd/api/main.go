package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/saracafe/saracafe-backend/api/routes"
	authsvc "github.com/saracafe/saracafe-backend/internal/auth"
	"github.com/saracafe/saracafe-backend/internal/categories"
	"github.com/saracafe/saracafe-backend/internal/contacts"
	"github.com/saracafe/saracafe-backend/internal/products"
	"github.com/saracafe/saracafe-backend/internal/seed"
	"github.com/saracafe/saracafe-backend/internal/users"
	"github.com/saracafe/saracafe-backend/pkg/config"
	"github.com/saracafe/saracafe-backend/pkg/db"
	"github.com/saracafe/saracafe-backend/pkg/logger"
	"github.com/saracafe/saracafe-backend/pkg/metrics"
	"github.com/saracafe/saracafe-backend/pkg/migrate"
	"github.com/saracafe/saracafe-backend/pkg/storage/local"
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

	imageStore, err := local.NewStore(cfg.Media, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare image storage", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	categoryRepo := categories.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	contactRepo := contacts.NewRepository(dbClient.DB())

	if cfg.FeatureFlags.SeedOnBoot {
		seeder, err := seed.New(seed.Params{
			Users:      userRepo,
			Categories: categoryRepo,
			Products:   productRepo,
			Config:     cfg.Seed,
			Logger:     logg,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to build seeder", err)
			os.Exit(1)
		}
		if err := seeder.Run(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed database", err)
			os.Exit(1)
		}
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	userService, err := users.NewService(userRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}
	categoryService, err := categories.NewService(categoryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create category service", err)
		os.Exit(1)
	}
	productService, err := products.NewService(products.ServiceParams{
		Repo:       productRepo,
		Categories: categoryRepo,
		Images:     imageStore,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}
	contactService, err := contacts.NewService(contactRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

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
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, httpMetrics, nil, routes.Services{
			Auth:       authService,
			Categories: categoryService,
			Products:   productService,
			Contacts:   contactService,
			Users:      userService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
