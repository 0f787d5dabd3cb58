package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/inventoryops/warehouse-api/internal/alert"
	authcommand "github.com/inventoryops/warehouse-api/internal/auth/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/config"
	"github.com/inventoryops/warehouse-api/internal/middleware"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/kafka"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/database"
	"github.com/inventoryops/warehouse-api/pkg/logger"
	"github.com/inventoryops/warehouse-api/pkg/tracing"

	authDelivery "github.com/inventoryops/warehouse-api/internal/auth/delivery/http"
	inventoryDelivery "github.com/inventoryops/warehouse-api/internal/inventory/delivery/http"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	inventoryRepo "github.com/inventoryops/warehouse-api/internal/inventory/repository"
	reportDelivery "github.com/inventoryops/warehouse-api/internal/report/delivery/http"
	reportQuery "github.com/inventoryops/warehouse-api/internal/report/usecase/query"
	stockDelivery "github.com/inventoryops/warehouse-api/internal/stock/delivery/http"
	stockRepo "github.com/inventoryops/warehouse-api/internal/stock/repository"
	userDelivery "github.com/inventoryops/warehouse-api/internal/user/delivery/http"
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	userRepo "github.com/inventoryops/warehouse-api/internal/user/repository"
	warehouseDelivery "github.com/inventoryops/warehouse-api/internal/warehouse/delivery/http"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	warehouseRepo "github.com/inventoryops/warehouse-api/internal/warehouse/repository"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&userdomain.User{},
		&inventorydomain.Product{},
		&warehousedomain.Warehouse{},
		&stockdomain.StockEntry{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	tokens := authpkg.NewTokenManager(
		cfg.JWTAccessSecret, cfg.JWTRefreshSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.ResetTokenTTL,
	)

	// Mail transport serves both low-stock alerts and reset links
	sender := alert.NewSMTPSender(alert.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})

	dispatchers := []alert.Dispatcher{
		alert.NewMailDispatcher(sender, cfg.MailFrom, cfg.AlertRecipient),
	}

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()
		dispatchers = append(dispatchers, alert.NewKafkaDispatcher(publisher))
	}
	dispatcher := alert.NewMultiDispatcher(dispatchers...)

	// Repositories
	users := userRepo.NewGormUserRepositoryWithTracing(db)
	products := inventoryRepo.NewGormProductRepositoryWithTracing(db)
	warehouses := warehouseRepo.NewGormWarehouseRepositoryWithTracing(db)
	stocks := stockRepo.NewGormStockRepositoryWithTracing(db)

	// HTTP handlers
	inventoryHandler := inventoryDelivery.NewInventoryHandler(products, stocks, warehouses, db, dispatcher, tokens)
	stockHandler := stockDelivery.NewStockHandler(stocks, products, warehouses, dispatcher, tokens)
	warehouseHandler := warehouseDelivery.NewWarehouseHandler(warehouses, tokens)
	userHandler := userDelivery.NewUserHandler(users, tokens)
	reportHandler := reportDelivery.NewReportHandler(
		reportQuery.NewBuildReportHandler(stocks, products, warehouses), tokens,
	)
	authHandler := authDelivery.NewAuthHandler(
		authcommand.NewLoginUserHandler(users, tokens),
		authcommand.NewRefreshTokenHandler(users, tokens),
		authcommand.NewLogoutUserHandler(users),
		authcommand.NewForgotPasswordHandler(users, tokens, sender, cfg.MailFrom, cfg.FrontendBaseURL),
		authcommand.NewResetPasswordHandler(users, tokens),
		tokens,
	)

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery)
	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.Logging)
	router.Use(middleware.Metrics)

	reportHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	stockHandler.RegisterRoutes(router)
	warehouseHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	inventoryDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())
	registerHealthCheck(router, sqlDB)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "http.server")

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "Database unavailable",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Service is healthy",
		})
	}).Methods("GET")
}
