package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dukapos/pos-backend/app/api"
	"github.com/dukapos/pos-backend/app/catalog"
	"github.com/dukapos/pos-backend/app/dashboard"
	"github.com/dukapos/pos-backend/app/payments"
	"github.com/dukapos/pos-backend/app/sales"
	"github.com/dukapos/pos-backend/config"
	"github.com/dukapos/pos-backend/models"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("configs/default.yaml")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Payment{}, &models.Sale{}); err != nil {
		logger.Fatal().Err(err).Msg("migrate schema")
	}

	productsRepo := models.NewProductsRepository(db)
	paymentsRepo := models.NewPaymentsRepository(db)
	salesRepo := models.NewSalesRepository(db)

	router := api.NewRouter(api.Handlers{
		Catalog:   catalog.NewCatalogHandler(productsRepo),
		Payments:  payments.NewPaymentsHandler(paymentsRepo),
		Sales:     sales.NewSalesHandler(salesRepo, paymentsRepo),
		Dashboard: dashboard.NewDashboardHandler(productsRepo, paymentsRepo),
	}, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Int("port", cfg.HTTPPort).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
