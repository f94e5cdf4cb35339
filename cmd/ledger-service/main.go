package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/marketbay/vendor-ledger-service/internal/app/background"
	"github.com/marketbay/vendor-ledger-service/internal/clock"
	"github.com/marketbay/vendor-ledger-service/internal/config"
	"github.com/marketbay/vendor-ledger-service/internal/delivery/http/handlers"
	publisher "github.com/marketbay/vendor-ledger-service/internal/infrastructure/kafka"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/logger"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/metrics"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/migrate"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/repository"
	"github.com/marketbay/vendor-ledger-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init logger
	zapLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.LedgerDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.LedgerDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	kafkaPublisher, err := publisher.NewKafkaPublisher(publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	})
	if err != nil {
		log.Fatalf("failed to init kafka publisher: %v", err)
	}

	// Init metrics
	ledgerMetrics := metrics.NewLedgerMetrics()
	// Init clock
	systemClock := clock.NewSystem()

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	vendorRepo := repository.NewDefaultVendorRepository(db)
	ledgerRepo := repository.NewDefaultLedgerRepository(db)

	// Init usecases
	orderUsecase := usecase.NewDefaultOrderUsecase(orderRepo, vendorRepo, kafkaPublisher, ledgerMetrics, systemClock, zapLogger)
	vendorUsecase := usecase.NewDefaultVendorUsecase(vendorRepo, systemClock)
	ledgerUsecase := usecase.NewDefaultLedgerUsecase(
		orderRepo,
		ledgerRepo,
		vendorRepo,
		kafkaPublisher,
		ledgerMetrics,
		systemClock,
		zapLogger,
		usecase.LedgerParams{
			ReturnWindowDays: cfg.Payout.ReturnWindowDays,
			CommissionRate:   cfg.Payout.CommissionRate,
			GatewayRate:      cfg.Payout.GatewayRate,
		},
	)

	// Init handlers
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUsecase)
	vendorHandler := handlers.NewVendorHandler(vendorUsecase)
	router := handlers.NewRouter(orderHandler, ledgerHandler, vendorHandler, zapLogger)

	// Background tasks
	tasks := background.NewBackgroundTasks(ledgerUsecase, ledgerMetrics, zapLogger)
	tasks.StartAll(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
