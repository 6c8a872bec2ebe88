package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CalendarGateway/internal/api"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CalendarGateway/internal/api/handlers/get_available_slots"
	getCalendarConfigHandler "github.com/m04kA/SMC-CalendarGateway/internal/api/handlers/get_calendar_config"
	getCalendarFeedHandler "github.com/m04kA/SMC-CalendarGateway/internal/api/handlers/get_calendar_feed"
	selectDateHandler "github.com/m04kA/SMC-CalendarGateway/internal/api/handlers/select_date"
	"github.com/m04kA/SMC-CalendarGateway/internal/config"
	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	slotServiceClient "github.com/m04kA/SMC-CalendarGateway/internal/integrations/slotservice"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
	getAvailableSlotsUC "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_available_slots"
	getCalendarFeedUC "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_calendar_feed"
	selectDateUC "github.com/m04kA/SMC-CalendarGateway/internal/usecase/select_date"
	"github.com/m04kA/SMC-CalendarGateway/pkg/logger"
	"github.com/m04kA/SMC-CalendarGateway/pkg/metrics"
)

func main() {
	configFile := flag.String("config", "config.toml", "path to the TOML configuration file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configFile)
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

	log.Info("Starting SMC-CalendarGateway...")
	log.Info("Configuration loaded from %s", *configFile)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента бэкенда слотов
	slotClient := slotServiceClient.NewClient(
		cfg.SlotService.URL,
		time.Duration(cfg.SlotService.Timeout)*time.Second,
		log,
	)
	if metricsCollector != nil {
		slotClient.WithMetrics(metricsCollector)
	}
	log.Info("Slot service client initialized (url=%s, timeout=%ds)", cfg.SlotService.URL, cfg.SlotService.Timeout)

	// Сессия: токен из Authorization, роль из claim токена
	resolver := session.NewResolver(cfg.Session.JWTSecret, cfg.Session.RoleClaim)
	if cfg.Session.JWTSecret == "" {
		log.Warn("session.jwt_secret is empty: token claims are read without signature verification")
	}

	// Инициализируем use cases
	palette := getCalendarFeedUC.Palette{
		Available: domain.EntryStyle{
			BackgroundColor: cfg.Calendar.AvailableColor,
			BorderColor:     cfg.Calendar.AvailableColor,
			TextColor:       cfg.Calendar.TextColor,
		},
		Booked: domain.EntryStyle{
			BackgroundColor: cfg.Calendar.BookedColor,
			BorderColor:     cfg.Calendar.BookedColor,
			TextColor:       cfg.Calendar.TextColor,
		},
	}
	getCalendarFeedUseCase := getCalendarFeedUC.NewUseCase(slotClient, palette, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotClient, log)

	selectDateUseCase := selectDateUC.NewUseCase(slotClient, cfg.Booking.SingleFlight, log)
	if metricsCollector != nil {
		selectDateUseCase.WithRecorder(metricsCollector)
	}
	log.Info("Date click single-flight: %t", cfg.Booking.SingleFlight)

	// Инициализируем handlers
	getCalendarFeed := getCalendarFeedHandler.NewHandler(getCalendarFeedUseCase, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendarConfig := getCalendarConfigHandler.NewHandler(getCalendarConfigHandler.Settings{
		InitialView:   cfg.Calendar.InitialView,
		Height:        cfg.Calendar.Height,
		ToolbarLeft:   cfg.Calendar.ToolbarLeft,
		ToolbarCenter: cfg.Calendar.ToolbarCenter,
		ToolbarRight:  cfg.Calendar.ToolbarRight,
		EventsURL:     api.EventsURL,
		DateClickURL:  api.DateClickURL,
	}, log)

	// Настраиваем роутер
	routerDeps := api.RouterDeps{
		FeedHandler:      getCalendarFeed,
		DateClickHandler: selectDate,
		SlotsHandler:     getAvailableSlots,
		ConfigHandler:    getCalendarConfig,
		Resolver:         resolver,
		Logger:           log,
	}
	if cfg.Metrics.Enabled {
		routerDeps.Metrics = metricsCollector
		routerDeps.MetricsPath = cfg.Metrics.Path
		routerDeps.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(routerDeps)

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
