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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_slot_availability"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	createTimeBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_time_block"
	deleteTimeBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_time_block"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_booking"
	getOperatingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_operating_hours"
	listBlockOccurrencesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_block_occurrences"
	listBookingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_bookings"
	listTimeBlocksHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_time_blocks"
	updateOperatingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_operating_hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	businessRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/business"
	customerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/customer"
	jobRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/job"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	timeBlockRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/timeblock"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	segmentsService "github.com/m04kA/SMC-AvailabilityService/internal/service/segments"
	timeBlocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
	checkSlotUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

// engineMetrics метрики движка доступности
type engineMetrics interface {
	getAvailableSlotsUC.MetricsRecorder
	checkSlotUC.MetricsRecorder
}

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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	defaultLocation, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load default timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var engine engineMetrics = metrics.Noop{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		engine = metricsCollector
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

	// Обёртка БД: с метриками запросов и пула или без них
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithPoolStats(db, metricsCollector, metricsCollector,
			cfg.Metrics.PoolStatsInterval(), stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	businessRepository := businessRepo.NewRepository(wrappedDB)
	jobRepository := jobRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	timeBlockRepository := timeBlockRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	segmentSvc := segmentsService.NewService(customerRepository, segmentsService.Config{
		VIPRevenueThreshold: cfg.Scheduling.VIPRevenueThreshold,
		CacheSize:           cfg.SegmentCache.Size,
		CacheTTL:            cfg.SegmentCache.TTL(),
	}, log)
	bookingSvc := bookingsService.NewService(jobRepository, log)
	hoursSvc := hoursService.NewService(businessRepository, log)
	timeBlockSvc := timeBlocksService.NewService(timeBlockRepository, businessRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		timeBlockRepository,
		reservationRepository,
		jobRepository,
		segmentSvc,
		engine,
		defaultLocation,
		log,
	)

	checkSlotUseCase := checkSlotUC.NewUseCase(getAvailableSlotsUseCase, engine, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		jobRepository,
		customerRepository,
		getAvailableSlotsUseCase,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getOperatingHours := getOperatingHoursHandler.NewHandler(hoursSvc, log)
	updateOperatingHours := updateOperatingHoursHandler.NewHandler(hoursSvc, log)
	createTimeBlock := createTimeBlockHandler.NewHandler(timeBlockSvc, log)
	listTimeBlocks := listTimeBlocksHandler.NewHandler(timeBlockSvc, log)
	deleteTimeBlock := deleteTimeBlockHandler.NewHandler(timeBlockSvc, log)
	listBlockOccurrences := listBlockOccurrencesHandler.NewHandler(timeBlockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	business := api.PathPrefix("/businesses/{businessId}").Subrouter()

	// --- Доступность ---
	business.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	business.HandleFunc("/slot-availability", checkSlot.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	business.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	business.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	business.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	business.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Часы работы ---
	business.HandleFunc("/operating-hours", getOperatingHours.Handle).Methods(http.MethodGet)
	business.HandleFunc("/operating-hours", updateOperatingHours.Handle).Methods(http.MethodPut)

	// --- Блокировки времени ---
	business.HandleFunc("/time-blocks", createTimeBlock.Handle).Methods(http.MethodPost)
	business.HandleFunc("/time-blocks", listTimeBlocks.Handle).Methods(http.MethodGet)
	business.HandleFunc("/time-blocks/occurrences", listBlockOccurrences.Handle).Methods(http.MethodGet)
	business.HandleFunc("/time-blocks/{blockId}", deleteTimeBlock.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
