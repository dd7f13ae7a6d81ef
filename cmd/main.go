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

	checkAvailabilityHandler "github.com/m04kA/SMC-DoctorService/internal/api/handlers/check_availability"
	createDoctorHandler "github.com/m04kA/SMC-DoctorService/internal/api/handlers/create_doctor"
	getDepartmentHandler "github.com/m04kA/SMC-DoctorService/internal/api/handlers/get_department"
	getDoctorHandler "github.com/m04kA/SMC-DoctorService/internal/api/handlers/get_doctor"
	healthHandler "github.com/m04kA/SMC-DoctorService/internal/api/handlers/health"
	listDoctorsHandler "github.com/m04kA/SMC-DoctorService/internal/api/handlers/list_doctors"
	"github.com/m04kA/SMC-DoctorService/internal/api/middleware"
	"github.com/m04kA/SMC-DoctorService/internal/config"
	doctorRepo "github.com/m04kA/SMC-DoctorService/internal/infra/storage/doctor"
	appointmentServiceClient "github.com/m04kA/SMC-DoctorService/internal/integrations/appointmentservice"
	doctorsService "github.com/m04kA/SMC-DoctorService/internal/service/doctors"
	checkAvailabilityUC "github.com/m04kA/SMC-DoctorService/internal/usecase/check_availability"
	createDoctorUC "github.com/m04kA/SMC-DoctorService/internal/usecase/create_doctor"
	"github.com/m04kA/SMC-DoctorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DoctorService/pkg/logger"
	"github.com/m04kA/SMC-DoctorService/pkg/metrics"
	"github.com/m04kA/SMC-DoctorService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DoctorService/pkg/txmanager"
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

	log.Info("Starting SMC-DoctorService...")
	log.Info("Configuration loaded from config.toml")

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

	// Репозиторий и transaction manager: с метриками запросов или без
	var doctorRepository *doctorRepo.Repository
	var txMgr createDoctorUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		doctorRepository = doctorRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Часы работы клиники из конфигурации
	clinicHours := cfg.Clinic.ToClinicHours()
	log.Info("Clinic hours configured: open=%s, close=%s, slot=%dm",
		clinicHours.OpenString(), clinicHours.CloseString(), clinicHours.SlotDurationMinutes)

	// Опциональная интеграция с appointment-service: вычитание занятых
	// интервалов из теоретических слотов
	var apptClient checkAvailabilityUC.AppointmentServiceClient
	if cfg.AppointmentService.Enabled {
		apptClient = appointmentServiceClient.NewClient(
			cfg.AppointmentService.URL,
			time.Duration(cfg.AppointmentService.Timeout)*time.Second,
			log,
		)
		log.Info("AppointmentService integration enabled (url=%s, timeout=%ds)",
			cfg.AppointmentService.URL, cfg.AppointmentService.Timeout)
	} else {
		log.Info("AppointmentService integration disabled, serving full slot grid")
	}

	// Инициализируем сервисы
	doctorsSvc := doctorsService.NewService(doctorRepository, log)

	// Инициализируем use cases
	createDoctorUseCase := createDoctorUC.NewUseCase(doctorRepository, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(doctorRepository, apptClient, clinicHours, log)

	// Инициализируем handlers
	createDoctor := createDoctorHandler.NewHandler(createDoctorUseCase, log)
	listDoctors := listDoctorsHandler.NewHandler(doctorsSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorsSvc, log)
	getDepartment := getDepartmentHandler.NewHandler(doctorsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API v1
	api := r.PathPrefix("/v1").Subrouter()

	// Создание врача
	api.HandleFunc("/doctors", createDoctor.Handle).Methods(http.MethodPost)

	// Список врачей с фильтрацией и пагинацией
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)

	// Врач по ID
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)

	// Доступные слоты врача на дату
	api.HandleFunc("/doctors/{doctorId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Отделение врача
	api.HandleFunc("/doctors/{doctorId}/department", getDepartment.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновый сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
