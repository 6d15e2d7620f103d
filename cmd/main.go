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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activationStatusHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/activation_status"
	cancelReservationHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/cancel_reservation"
	completeActivationHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/complete_activation"
	confirmEmailHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/confirm_email"
	createReservationHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_availability"
	getOverviewHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_overview"
	getReservationHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_reservation"
	getResourcesHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_resources"
	getSummaryHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_summary"
	getUserReservationsHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/list_reservations"
	listResourcesHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/list_resources"
	sendVerificationHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/send_verification"
	updateResourceStatusHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/update_resource_status"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/internal/config"
	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/internal/infra/migrator"
	accountRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/account"
	reservationRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/resource"
	identityClient "github.com/m04kA/SMC-LabReservationService/internal/integrations/identity"
	activationService "github.com/m04kA/SMC-LabReservationService/internal/service/activation"
	adminService "github.com/m04kA/SMC-LabReservationService/internal/service/admin"
	reservationsService "github.com/m04kA/SMC-LabReservationService/internal/service/reservations"
	resourcesService "github.com/m04kA/SMC-LabReservationService/internal/service/resources"
	createReservationUC "github.com/m04kA/SMC-LabReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-LabReservationService/internal/usecase/get_availability"
	getSummaryUC "github.com/m04kA/SMC-LabReservationService/internal/usecase/get_summary"
	"github.com/m04kA/SMC-LabReservationService/migrations"
	"github.com/m04kA/SMC-LabReservationService/pkg/clock"
	"github.com/m04kA/SMC-LabReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
	"github.com/m04kA/SMC-LabReservationService/pkg/metrics"
	"github.com/m04kA/SMC-LabReservationService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("LAB_CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-LabReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	// Часы лаборатории: от них считаются "сегодня" и прошедшие слоты
	labClock, err := clock.New(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Lab timezone: %s", labClock.Location())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := m.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Обёртка с метриками; при выключенных метриках работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	resourceRepository := resourceRepo.NewRepository(wrappedDB)
	accountRepository := accountRepo.NewRepository(wrappedDB)

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	activationSvc := activationService.NewService(accountRepository, identity, log)
	adminSvc := adminService.NewService(resourceRepository, reservationRepository, log)
	resourcesSvc := resourcesService.NewService(resourceRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		txMgr,
		labClock,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		labClock,
		log,
	)
	getSummaryUseCase := getSummaryUC.NewUseCase(reservationRepository, labClock, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getResources := getResourcesHandler.NewHandler(resourcesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getSummary := getSummaryHandler.NewHandler(getSummaryUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	adminCancelReservation := cancelReservationHandler.NewAdminHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	activationStatus := activationStatusHandler.NewHandler(activationSvc, log)
	sendVerification := sendVerificationHandler.NewHandler(activationSvc, log)
	confirmEmail := confirmEmailHandler.NewHandler(activationSvc, log)
	completeActivation := completeActivationHandler.NewHandler(activationSvc, log)
	getOverview := getOverviewHandler.NewHandler(adminSvc, log)
	listResources := listResourcesHandler.NewHandler(adminSvc, log)
	updateResourceStatus := updateResourceStatusHandler.NewHandler(adminSvc, log)
	listReservations := listReservationsHandler.NewHandler(adminSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог компьютеров лаборатории
	api.HandleFunc("/resources", getResources.Handle).Methods(http.MethodGet)

	// Состояние слотов компьютера на дату
	api.HandleFunc("/resources/{resourceId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Сводка занятости на 7 дней
	api.HandleFunc("/resources/{resourceId}/summary", getSummary.Handle).Methods(http.MethodGet)

	// Подтверждение email по ссылке из письма
	api.HandleFunc("/activation/verify", confirmEmail.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// --- Брони ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Активация аккаунта ---
	protected.HandleFunc("/activation/status", activationStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/activation/verification-email", sendVerification.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/activation/complete", completeActivation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (роль admin)
	// ============================================================

	adminRoutes := protected.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.RequireRole(domain.RoleAdmin))

	adminRoutes.HandleFunc("/overview", getOverview.Handle).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/resources/{resourceId}/status", updateResourceStatus.Handle).Methods(http.MethodPatch)
	adminRoutes.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/reservations/{reservationId}/cancel", adminCancelReservation.Handle).Methods(http.MethodPatch)

	// Recovery, CORS и access-лог поверх роутера
	var handler http.Handler = r
	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		)(handler)
	}
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(handler)
	handler = gorillaHandlers.LoggingHandler(os.Stdout, handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
