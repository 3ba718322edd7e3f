package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	archiveBookingHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/archive_booking"
	createBookingHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/delete_booking"
	exportReportHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/export_report"
	getHistoryHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/get_history"
	getStatisticsHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/get_statistics"
	healthHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/list_bookings"
	sweepExpiredHandler "github.com/m04kA/CampusBook-Service/internal/api/handlers/sweep_expired"
	"github.com/m04kA/CampusBook-Service/internal/api/middleware"
	"github.com/m04kA/CampusBook-Service/internal/config"
	bookingRepo "github.com/m04kA/CampusBook-Service/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/CampusBook-Service/internal/service/bookings"
	getHistoryUC "github.com/m04kA/CampusBook-Service/internal/usecase/get_history"
	getStatisticsUC "github.com/m04kA/CampusBook-Service/internal/usecase/get_statistics"
	sweepExpiredUC "github.com/m04kA/CampusBook-Service/internal/usecase/sweep_expired"
	"github.com/m04kA/CampusBook-Service/internal/worker"
	"github.com/m04kA/CampusBook-Service/pkg/dbmetrics"
	"github.com/m04kA/CampusBook-Service/pkg/logger"
	"github.com/m04kA/CampusBook-Service/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CampusBook-Service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервис
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getStatisticsUseCase := getStatisticsUC.NewUseCase(bookingRepository, cfg.Rooms, log)
	getHistoryUseCase := getHistoryUC.NewUseCase(bookingRepository, log)
	sweepExpiredUseCase := sweepExpiredUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	archiveBooking := archiveBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(getStatisticsUseCase, log)
	getHistory := getHistoryHandler.NewHandler(getHistoryUseCase, log)
	exportReport := exportReportHandler.NewHandler(bookingSvc, getHistoryUseCase, log)
	sweepExpired := sweepExpiredHandler.NewHandler(sweepExpiredUseCase, log)

	// Фоновый монитор истечения сессий
	// При выключенной автоархивации монитор только обновляет метрики
	var sweepForMonitor worker.SweepUseCase
	if cfg.Sweep.AutoEnabled {
		sweepForMonitor = sweepExpiredUseCase
		log.Info("Automatic expiry sweep enabled")
	}

	expiryMonitor := worker.NewExpiryMonitor(
		bookingRepository,
		sweepForMonitor,
		metricsCollector,
		time.Duration(cfg.Dashboard.RefreshIntervalMS)*time.Millisecond,
		time.Duration(cfg.Dashboard.TimerTickMS)*time.Millisecond,
		time.Duration(cfg.Dashboard.NearingExpiryMinutes)*time.Minute,
		log,
	)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	expiryMonitor.Start(monitorCtx)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Дашборд ходит с другого origin, API открытый
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Liveness
	r.HandleFunc("/", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Фиксированные подпути регистрируются до /bookings/{bookingId},
	// иначе {bookingId} перехватит statistics/history/export/sweep
	api.HandleFunc("/bookings/statistics", getStatistics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/history", getHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/export", exportReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/sweep", sweepExpired.Handle).Methods(http.MethodPost)

	// CRUD по бронированиям
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", archiveBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновый монитор
	cancelMonitor()
	expiryMonitor.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
