package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// passwordEnv переменная окружения, переопределяющая пароль БД
const passwordEnv = "DB_PASSWORD"

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Scheduling   SchedulingConfig   `toml:"scheduling"`
	SegmentCache SegmentCacheConfig `toml:"segment_cache"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто = только stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled             bool   `toml:"enabled"`
	ServiceName         string `toml:"service_name"`
	Path                string `toml:"path"`
	PoolStatsIntervalMs int    `toml:"pool_stats_interval_ms"`
}

// PoolStatsInterval период публикации статистики пула соединений
func (c MetricsConfig) PoolStatsInterval() time.Duration {
	return time.Duration(c.PoolStatsIntervalMs) * time.Millisecond
}

// SchedulingConfig параметры движка доступности
type SchedulingConfig struct {
	DefaultTimezone     string  `toml:"default_timezone"` // для бизнесов без часового пояса
	VIPRevenueThreshold float64 `toml:"vip_revenue_threshold"`
}

// Location загружает часовой пояс по умолчанию
func (c SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.DefaultTimezone)
}

// SegmentCacheConfig настройки кэша сегментов клиентов
type SegmentCacheConfig struct {
	Size       int `toml:"size"` // 0 = кэш отключен
	TTLSeconds int `toml:"ttl_seconds"`
}

// TTL время жизни записи кэша
func (c SegmentCacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "availability",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:             true,
			ServiceName:         "availability_service",
			Path:                "/metrics",
			PoolStatsIntervalMs: 15000,
		},
		Scheduling: SchedulingConfig{
			DefaultTimezone:     domain.DefaultTimezone,
			VIPRevenueThreshold: domain.DefaultVIPRevenueThreshold,
		},
		SegmentCache: SegmentCacheConfig{
			Size:       1024,
			TTLSeconds: 300,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и проверяет результат
// Пароль БД может быть передан через переменную окружения DB_PASSWORD
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if password, ok := os.LookupEnv(passwordEnv); ok {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.PoolStatsIntervalMs <= 0 {
		return fmt.Errorf("%w: metrics.pool_stats_interval_ms must be positive", ErrInvalidConfig)
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.default_timezone: %v", ErrInvalidConfig, err)
	}
	if c.Scheduling.VIPRevenueThreshold < 0 {
		return fmt.Errorf("%w: scheduling.vip_revenue_threshold must not be negative", ErrInvalidConfig)
	}
	if c.SegmentCache.Size > 0 && c.SegmentCache.TTLSeconds <= 0 {
		return fmt.Errorf("%w: segment_cache.ttl_seconds must be positive", ErrInvalidConfig)
	}
	return nil
}
