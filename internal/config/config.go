package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, читается из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Sweep     SweepConfig     `toml:"sweep"`

	// Rooms статическая таблица комната -> вместимость
	// Задаётся на этапе деплоя, не читается из хранилища
	Rooms map[string]int `toml:"rooms"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DashboardConfig настройки пересчёта производных представлений
type DashboardConfig struct {
	// RefreshIntervalMS интервал обновления снимка бронирований (мс)
	RefreshIntervalMS int `toml:"refresh_interval_ms"`
	// TimerTickMS интервал пересчёта таймеров по последнему снимку (мс)
	// Пересчёт не ходит в БД
	TimerTickMS int `toml:"timer_tick_ms"`
	// NearingExpiryMinutes окно предупреждения об истечении сессии
	NearingExpiryMinutes int `toml:"nearing_expiry_minutes"`
}

// SweepConfig настройки автоматической архивации истёкших сессий
type SweepConfig struct {
	// AutoEnabled включает фоновую архивацию на каждом обновлении снимка
	AutoEnabled bool `toml:"auto_enabled"`
}

// Дефолтные значения
const (
	defaultHTTPPort             = 3000
	defaultReadTimeout          = 10
	defaultWriteTimeout         = 10
	defaultIdleTimeout          = 60
	defaultShutdownTimeout      = 15
	defaultRefreshIntervalMS    = 30000
	defaultTimerTickMS          = 1000
	defaultNearingExpiryMinutes = 15
	defaultMetricsPath          = "/metrics"
	defaultServiceName          = "campusbook-service"
)

// Load загружает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = defaultIdleTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Dashboard.RefreshIntervalMS == 0 {
		c.Dashboard.RefreshIntervalMS = defaultRefreshIntervalMS
	}
	if c.Dashboard.TimerTickMS == 0 {
		c.Dashboard.TimerTickMS = defaultTimerTickMS
	}
	if c.Dashboard.NearingExpiryMinutes == 0 {
		c.Dashboard.NearingExpiryMinutes = defaultNearingExpiryMinutes
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}
	if c.Rooms == nil {
		c.Rooms = map[string]int{}
	}
}
