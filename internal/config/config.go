// Package config загрузка конфигурации сервиса из TOML-файла.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server      Server      `toml:"server"`
	Database    Database    `toml:"database"`
	Logs        Logs        `toml:"logs"`
	Metrics     Metrics     `toml:"metrics"`
	UserService UserService `toml:"userservice"`
	Booking     Booking     `toml:"booking"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// UserService настройки интеграции с сервисом профилей
type UserService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Booking параметры расчета слотов
type Booking struct {
	// SlotStepMinutes шаг генерации кандидатов слотов (по умолчанию 30).
	// Шаг фиксированный и не зависит от длительности услуги.
	SlotStepMinutes int `toml:"slot_step_minutes"`

	// AdvanceBookingDays максимальная глубина записи в днях (0 = без ограничений)
	AdvanceBookingDays int `toml:"advance_booking_days"`

	// MinBookingNoticeMinutes минимальное время до начала слота при записи на сегодня
	MinBookingNoticeMinutes int `toml:"min_booking_notice_minutes"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "sln-scheduling-service"
	}
	if cfg.Booking.SlotStepMinutes == 0 {
		cfg.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}

	step := cfg.Booking.SlotStepMinutes
	if step < domain.MinSlotStepMinutes || step > domain.MaxSlotStepMinutes {
		return fmt.Errorf("config: booking.slot_step_minutes must be in [%d, %d], got %d",
			domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes, step)
	}

	if cfg.Booking.AdvanceBookingDays < 0 {
		return fmt.Errorf("config: booking.advance_booking_days must be >= 0")
	}
	if cfg.Booking.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("config: booking.min_booking_notice_minutes must be >= 0")
	}

	return nil
}
