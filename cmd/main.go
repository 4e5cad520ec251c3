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

	bulkUpdateBookingsHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/bulk_update_bookings"
	cancelBookingHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/cancel_booking"
	createAdvertisementHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/create_advertisement"
	createBookingHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/create_review"
	createTournamentHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/create_tournament"
	getCurrentUserHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/get_current_user"
	getBookingHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/get_venue"
	getVenueAvailabilityHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/get_venue_availability"
	listAdvertisementsHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/list_advertisements"
	listCourtsHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/list_courts"
	listReviewsHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/list_reviews"
	listTournamentsHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/list_tournaments"
	listVenuesHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/list_venues"
	loginUserHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/login_user"
	registerUserHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/register_user"
	updateAdvertisementStatusHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/update_advertisement_status"
	updateBookingStatusHandler "github.com/goatcricket/GCB-BookingService/internal/api/handlers/update_booking_status"
	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/config"
	advertisementRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/advertisement"
	bookingRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/review"
	tournamentRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/tournament"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
	advertisementsService "github.com/goatcricket/GCB-BookingService/internal/service/advertisements"
	bookingsService "github.com/goatcricket/GCB-BookingService/internal/service/bookings"
	reviewsService "github.com/goatcricket/GCB-BookingService/internal/service/reviews"
	tournamentsService "github.com/goatcricket/GCB-BookingService/internal/service/tournaments"
	usersService "github.com/goatcricket/GCB-BookingService/internal/service/users"
	venuesService "github.com/goatcricket/GCB-BookingService/internal/service/venues"
	createBookingUC "github.com/goatcricket/GCB-BookingService/internal/usecase/create_booking"
	getVenueAvailabilityUC "github.com/goatcricket/GCB-BookingService/internal/usecase/get_venue_availability"
	"github.com/goatcricket/GCB-BookingService/pkg/dbmetrics"
	"github.com/goatcricket/GCB-BookingService/pkg/logger"
	"github.com/goatcricket/GCB-BookingService/pkg/metrics"
	"github.com/goatcricket/GCB-BookingService/pkg/simpletxmanager"
	"github.com/goatcricket/GCB-BookingService/pkg/txmanager"
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

	log.Info("Starting GCB-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository       *bookingRepo.Repository
		venueRepository         *venueRepo.Repository
		reviewRepository        *reviewRepo.Repository
		advertisementRepository *advertisementRepo.Repository
		tournamentRepository    *tournamentRepo.Repository
		userRepository          *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		advertisementRepository = advertisementRepo.NewRepository(wrappedDB)
		tournamentRepository = tournamentRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		advertisementRepository = advertisementRepo.NewRepository(db)
		tournamentRepository = tournamentRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, log)
	venueSvc := venuesService.NewService(venueRepository, reviewRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, venueRepository, log)
	advertisementSvc := advertisementsService.NewService(advertisementRepository, userRepository, log)
	tournamentSvc := tournamentsService.NewService(tournamentRepository, venueRepository, userRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		txMgr,
		log,
	)

	getVenueAvailabilityUseCase := getVenueAvailabilityUC.NewUseCase(
		bookingRepository,
		venueRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	bulkUpdateBookings := bulkUpdateBookingsHandler.NewHandler(bookingSvc, log)
	getVenueAvailability := getVenueAvailabilityHandler.NewHandler(getVenueAvailabilityUseCase, log)
	listVenues := listVenuesHandler.NewHandler(venueSvc, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	listCourts := listCourtsHandler.NewHandler(venueSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	createAdvertisement := createAdvertisementHandler.NewHandler(advertisementSvc, log)
	listAdvertisements := listAdvertisementsHandler.NewHandler(advertisementSvc, log)
	updateAdvertisementStatus := updateAdvertisementStatusHandler.NewHandler(advertisementSvc, log)
	listTournaments := listTournamentsHandler.NewHandler(tournamentSvc, log)
	createTournament := createTournamentHandler.NewHandler(tournamentSvc, log)
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Площадки и корты ---
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/courts", listCourts.Handle).Methods(http.MethodGet)

	// Занятость кортов площадки на дату
	api.HandleFunc("/venues/{venueId}/availability", getVenueAvailability.Handle).Methods(http.MethodGet)

	// --- Отзывы (чтение) ---
	api.HandleFunc("/venues/{venueId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// --- Турниры ---
	api.HandleFunc("/tournaments", listTournaments.Handle).Methods(http.MethodGet)

	// --- Рекламные заявки (публичная форма) ---
	api.HandleFunc("/advertisements", createAdvertisement.Handle).Methods(http.MethodPost)

	// --- Пользователи ---
	api.HandleFunc("/users/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/login", loginUser.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId:[0-9]+}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Текущий пользователь
	protected.HandleFunc("/users/me", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/venues/{venueId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	protected.HandleFunc("/admin/bookings/bulk", bulkUpdateBookings.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/advertisements", listAdvertisements.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/advertisements/{advertisementId}/status",
		updateAdvertisementStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/tournaments", createTournament.Handle).Methods(http.MethodPost)

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
