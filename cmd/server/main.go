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
	"github.com/robfig/cron/v3"

	addFavoriteHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/add_favorite"
	calculatePriceHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/calculate_price"
	cancelAppointmentHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/create_appointment"
	createReviewHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/create_review"
	deleteAppointmentHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/get_available_slots"
	getMasterReviewsHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/get_master_reviews"
	getUserAppointmentsHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/get_user_appointments"
	listCarsHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/list_cars"
	listCategoriesHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/list_categories"
	listMastersHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/list_masters"
	listNotificationsHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/list_notifications"
	listServicesHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/list_services"
	loginUserHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/login_user"
	markNotificationReadHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/mark_notification_read"
	registerUserHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/register_user"
	removeFavoriteHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/remove_favorite"
	updateAppointmentHandler "github.com/beepkz/BEEP-BookingService/internal/api/handlers/update_appointment"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	"github.com/beepkz/BEEP-BookingService/internal/config"
	appointmentRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/catalog"
	masterRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/master"
	notificationRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/notification"
	userRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/user"
	authService "github.com/beepkz/BEEP-BookingService/internal/service/auth"
	appointmentsService "github.com/beepkz/BEEP-BookingService/internal/service/appointments"
	catalogService "github.com/beepkz/BEEP-BookingService/internal/service/catalog"
	mastersService "github.com/beepkz/BEEP-BookingService/internal/service/masters"
	notificationsService "github.com/beepkz/BEEP-BookingService/internal/service/notifications"
	calculatePriceUC "github.com/beepkz/BEEP-BookingService/internal/usecase/calculate_price"
	createAppointmentUC "github.com/beepkz/BEEP-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/beepkz/BEEP-BookingService/internal/usecase/get_available_slots"
	"github.com/beepkz/BEEP-BookingService/pkg/logger"
	"github.com/beepkz/BEEP-BookingService/pkg/metrics"
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

	log.Info("Starting BEEP-BookingService...")
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

	if cfg.Metrics.Enabled {
		metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	masterRepository := masterRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)
	notificationRepository := notificationRepo.NewRepository(db)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	mastersSvc := mastersService.NewService(masterRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	notificationsSvc := notificationsService.NewService(notificationRepository, appointmentRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(masterRepository, appointmentRepository, log)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(catalogRepository, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		masterRepository,
		catalogRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(authSvc, log)
	loginUser := loginUserHandler.NewHandler(authSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listCars := listCarsHandler.NewHandler(catalogSvc, log)
	listMasters := listMastersHandler.NewHandler(mastersSvc, log)
	getMasterReviews := getMasterReviewsHandler.NewHandler(mastersSvc, log)
	createReview := createReviewHandler.NewHandler(mastersSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, notificationsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	addFavorite := addFavoriteHandler.NewHandler(mastersSvc, log)
	removeFavorite := removeFavoriteHandler.NewHandler(mastersSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationsSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)

	api.HandleFunc("/masters/{masterId}/reviews", getMasterReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/pricing/calculate", calculatePrice.Handle).Methods(http.MethodPost)

	// Список мастеров публичный, но с токеном отдаёт персональный is_favorite
	mastersRoute := api.PathPrefix("/masters").Subrouter()
	mastersRoute.Use(middleware.OptionalAuth(authSvc))
	mastersRoute.HandleFunc("", listMasters.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Отзывы и избранное ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/favorites", addFavorite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/favorites/{masterId}", removeFavorite.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPut)

	// Планировщик напоминаний и чистки сессий
	scheduler := cron.New()
	if cfg.Notifications.Enabled {
		_, err = scheduler.AddFunc(cfg.Notifications.ReminderSchedule, func() {
			if err := notificationsSvc.SendReminders(context.Background()); err != nil {
				log.Error("Reminder job failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule reminder job: %v", err)
		}
		log.Info("Reminder job scheduled: %s", cfg.Notifications.ReminderSchedule)
	}
	_, err = scheduler.AddFunc("@hourly", func() {
		if err := authSvc.CleanupExpiredTokens(context.Background()); err != nil {
			log.Error("Token cleanup job failed: %v", err)
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule token cleanup job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

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
