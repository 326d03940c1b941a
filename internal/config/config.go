package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"onlyflans/pkg/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	MailBackendConsole = "console"
	MailBackendSMTP    = "smtp"
)

type Config struct {
	HTTPPort    string
	Env         string
	SiteURL     string
	CORSOrigins []string
	DB          DBConfig
	Auth        AuthConfig
	Mail        MailConfig
	Digest      DigestConfig
	Alerts      AlertsConfig
	Catalog     CatalogConfig
	RateLimit   RateLimitConfig
}

type DBConfig struct {
	Driver          string
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	SkipAuth      bool
	MockUsername  string
	MockUserEmail string
	MockUserName  string
}

type MailConfig struct {
	Backend  string
	From     string
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

type DigestConfig struct {
	Enabled      bool
	Schedule     string
	LookbackDays int
}

type AlertsConfig struct {
	OnCreate bool
}

type CatalogConfig struct {
	PageSize      int
	StatsCacheTTL time.Duration
}

type RateLimitConfig struct {
	SubscribePerMinute int
	SubscribeBurst     int
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort:    getEnv("HTTP_PORT", "8000"),
		Env:         getEnv("ENV", "development"),
		SiteURL:     strings.TrimRight(getEnv("SITE_URL", "http://localhost:8000"), "/"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		DB: DBConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "onlyflans"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "onlyflans.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("AUTH_JWT_SECRET", ""),
			TokenTTL:      getEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
			SkipAuth:      getEnvBool("AUTH_SKIP", false),
			MockUsername:  getEnv("AUTH_MOCK_USERNAME", "flancreator"),
			MockUserEmail: getEnv("AUTH_MOCK_USER_EMAIL", "creator@onlyflans.com"),
			MockUserName:  getEnv("AUTH_MOCK_USER_NAME", "Flan Master"),
		},
		Mail: MailConfig{
			Backend:  strings.ToLower(getEnv("MAIL_BACKEND", MailBackendConsole)),
			From:     getEnv("MAIL_FROM", "noreply@onlyflans.com"),
			Host:     getEnv("MAIL_HOST", "localhost"),
			Port:     getEnvInt("MAIL_PORT", 587),
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			Timeout:  getEnvDuration("MAIL_TIMEOUT", 10*time.Second),
		},
		Digest: DigestConfig{
			Enabled:      getEnvBool("DIGEST_ENABLED", false),
			Schedule:     getEnv("DIGEST_SCHEDULE", "0 9 * * MON"),
			LookbackDays: getEnvInt("DIGEST_LOOKBACK_DAYS", 7),
		},
		Alerts: AlertsConfig{
			OnCreate: getEnvBool("ALERTS_ON_CREATE", false),
		},
		Catalog: CatalogConfig{
			PageSize:      getEnvInt("CATALOG_PAGE_SIZE", 12),
			StatsCacheTTL: getEnvDuration("CATALOG_STATS_CACHE_TTL", time.Minute),
		},
		RateLimit: RateLimitConfig{
			SubscribePerMinute: getEnvInt("RATE_LIMIT_SUBSCRIBE_PER_MINUTE", 10),
			SubscribeBurst:     getEnvInt("RATE_LIMIT_SUBSCRIBE_BURST", 5),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver == DriverSQLite {
		return c.SQLitePath + "?_pragma=foreign_keys(1)"
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
