package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
)

// ErrInvalidConfig возвращается, когда обязательные параметры не заданы
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, перекрывающие значения из файла
const (
	envSlotServiceURL   = "SLOT_SERVICE_URL"
	envSessionJWTSecret = "SESSION_JWT_SECRET"
	envLogLevel         = "LOG_LEVEL"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	SlotService SlotServiceConfig `toml:"slot_service"`
	Session     SessionConfig     `toml:"session"`
	Calendar    CalendarConfig    `toml:"calendar"`
	Booking     BookingConfig     `toml:"booking"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotServiceConfig бэкенд слотов, Timeout в секундах
type SlotServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SessionConfig разбор токена сессии
// Пустой JWTSecret - claims читаются без проверки подписи, токен проверяет бэкенд
type SessionConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	RoleClaim string `toml:"role_claim"`
}

// CalendarConfig настройки виджета календаря и оформления событий
type CalendarConfig struct {
	InitialView    string `toml:"initial_view"`
	Height         string `toml:"height"`
	ToolbarLeft    string `toml:"toolbar_left"`
	ToolbarCenter  string `toml:"toolbar_center"`
	ToolbarRight   string `toml:"toolbar_right"`
	AvailableColor string `toml:"available_color"`
	BookedColor    string `toml:"booked_color"`
	TextColor      string `toml:"text_color"`
}

type BookingConfig struct {
	// SingleFlight подавляет повторный клик по той же дате, пока первый в работе
	SingleFlight bool `toml:"single_flight"`
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envSlotServiceURL); v != "" {
		c.SlotService.URL = v
	}
	if v := os.Getenv(envSessionJWTSecret); v != "" {
		c.Session.JWTSecret = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.Logs.Level = v
	}
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 15)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "calendar_gateway")

	setInt(&c.SlotService.Timeout, 5)

	setString(&c.Session.RoleClaim, "role")

	setString(&c.Calendar.InitialView, domain.DefaultInitialView)
	setString(&c.Calendar.Height, domain.DefaultHeight)
	setString(&c.Calendar.ToolbarLeft, domain.DefaultToolbarLeft)
	setString(&c.Calendar.ToolbarCenter, domain.DefaultToolbarCenter)
	setString(&c.Calendar.ToolbarRight, domain.DefaultToolbarRight)
	setString(&c.Calendar.AvailableColor, domain.DefaultAvailableColor)
	setString(&c.Calendar.BookedColor, domain.DefaultBookedColor)
	setString(&c.Calendar.TextColor, domain.DefaultTextColor)
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.SlotService.URL == "" {
		return fmt.Errorf("%w: slot_service.url is required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.SlotService.Timeout < 0 {
		return fmt.Errorf("%w: slot_service.timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
