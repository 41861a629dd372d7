package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/saracafe/saracafe-backend/internal/categories"
	"github.com/saracafe/saracafe-backend/internal/products"
	"github.com/saracafe/saracafe-backend/internal/seed"
	"github.com/saracafe/saracafe-backend/internal/users"
	"github.com/saracafe/saracafe-backend/pkg/config"
	"github.com/saracafe/saracafe-backend/pkg/db"
	"github.com/saracafe/saracafe-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	seeder, err := seed.New(seed.Params{
		Users:      users.NewRepository(dbClient.DB()),
		Categories: categories.NewRepository(dbClient.DB()),
		Products:   products.NewRepository(dbClient.DB()),
		Config:     cfg.Seed,
		Logger:     logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to build seeder", err)
		os.Exit(1)
	}

	if err := seeder.Run(ctx); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "seeding complete")
}
