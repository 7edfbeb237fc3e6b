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
	"github.com/redis/go-redis/v9"

	addScheduleBlockHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/add_schedule_block"
	cancelBookingHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/create_booking"
	deleteScheduleBlockHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/delete_schedule_block"
	getBookingHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_booking"
	getFieldBlocksHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_field_blocks"
	getFieldBookingsHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_field_bookings"
	quotePriceHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/quote_price"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/config"
	"github.com/m04kA/SMC-FieldBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-FieldBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	promotionRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/promotion"
	scheduleBlockRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/scheduleblock"
	bookingsService "github.com/m04kA/SMC-FieldBookingService/internal/service/bookings"
	scheduleBlocksService "github.com/m04kA/SMC-FieldBookingService/internal/service/scheduleblocks"
	addScheduleBlockUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/add_schedule_block"
	checkAvailabilityUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/check_availability"
	quotePriceUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/quote_price"
	reserveUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/reserve"
	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/logger"
	"github.com/m04kA/SMC-FieldBookingService/pkg/metrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-FieldBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-FieldBookingService...")
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

	// Подключаемся к RabbitMQ. Сбой брокера не валит сервис:
	// публикация событий best-effort, без брокера работаем дальше.
	var publisher *events.Publisher
	if cfg.RabbitMQ.URL != "" {
		publisher, err = events.NewPublisher(cfg.RabbitMQ.URL)
		if err != nil {
			log.Warn("Failed to connect to RabbitMQ, events disabled: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
			log.Info("Connected to RabbitMQ")
		}
	} else {
		log.Info("RabbitMQ URL is empty, events disabled")
	}

	// Подключаемся к Redis для кэша промоакций. Без Redis котировки
	// читают промоакции напрямую из БД.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		log.Info("Promotion cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	} else {
		log.Info("Redis addr is empty, promotion cache disabled")
	}
	promoCache := cache.NewPromotionCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		blockRepository     *scheduleBlockRepo.Repository
		fieldRepository     *fieldRepo.Repository
		promotionRepository *promotionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = scheduleBlockRepo.NewRepository(wrappedDB)
		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = scheduleBlockRepo.NewRepository(db)
		fieldRepository = fieldRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		fieldRepository,
		publisher,
		log,
	)

	blockSvc := scheduleBlocksService.NewService(
		blockRepository,
		fieldRepository,
		log,
	)

	// Инициализируем use cases
	reserveUseCase := reserveUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fieldRepository,
		promotionRepository,
		txMgr,
		publisher,
		log,
	)

	addScheduleBlockUseCase := addScheduleBlockUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fieldRepository,
		txMgr,
		publisher,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fieldRepository,
		txMgr,
		log,
	)

	quotePriceUseCase := quotePriceUC.NewUseCase(
		fieldRepository,
		promotionRepository,
		promoCache,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(reserveUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	addScheduleBlock := addScheduleBlockHandler.NewHandler(addScheduleBlockUseCase, log)
	getFieldBlocks := getFieldBlocksHandler.NewHandler(blockSvc, log)
	deleteScheduleBlock := deleteScheduleBlockHandler.NewHandler(blockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности интервала
	api.HandleFunc("/fields/{fieldId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет цены интервала
	api.HandleFunc("/fields/{fieldId}/quote", quotePrice.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Управление полем (для владельцев) ---
	// Список бронирований поля
	protected.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

	// Создание блокировки расписания
	protected.HandleFunc("/fields/{fieldId}/blocks", addScheduleBlock.Handle).Methods(http.MethodPost)

	// Список блокировок поля
	protected.HandleFunc("/fields/{fieldId}/blocks", getFieldBlocks.Handle).Methods(http.MethodGet)

	// Снятие блокировки расписания
	protected.HandleFunc("/fields/{fieldId}/blocks/{blockId}", deleteScheduleBlock.Handle).Methods(http.MethodDelete)

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
