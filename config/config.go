package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	LogLevel    string
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	Session     SessionConfig
	S3          S3Config
	Uploads     UploadsConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	SMTP        SMTPConfig
	Telegram    TelegramConfig
	Notify      NotifyConfig
	Locale      LocaleConfig
	Tracing     TracingConfig
	Metrics     MetricsConfig
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderMB    int
	AllowedOrigins []string
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
	MigrationsDir      string
}

type SessionConfig struct {
	// Store is "postgres" or "redis".
	Store       string
	TTL         time.Duration
	TokenLength int
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	PublicBaseURL   string
}

type UploadsConfig struct {
	Dir       string
	URLPrefix string
	MaxSizeMB int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
	FailOpen bool
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type NotifyConfig struct {
	EmailTo string
	Timeout time.Duration
}

type LocaleConfig struct {
	SupportedLanguages  []string
	DefaultLanguage     string
	SupportedCurrencies []string
	DefaultCurrency     string
}

type TracingConfig struct {
	Enabled      bool
	OTLPEndpoint string
	SampleRatio  float64
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

func NewConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	httpReadTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := getEnvAsDuration("POSTGRES_MAX_LIFETIME", "5m")
	if err != nil {
		return nil, err
	}

	sessionTTL, err := getEnvAsDuration("SESSION_TTL", "24h")
	if err != nil {
		return nil, err
	}

	rateLimitWindow, err := getEnvAsDuration("RATE_LIMIT_WINDOW", "1m")
	if err != nil {
		return nil, err
	}

	notifyTimeout, err := getEnvAsDuration("NOTIFY_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}

	sampleRatio, err := strconv.ParseFloat(getEnv("OTEL_SAMPLING_RATIO", "1"), 64)
	if err != nil || sampleRatio < 0 || sampleRatio > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLING_RATIO inválido: %q", getEnv("OTEL_SAMPLING_RATIO", "1"))
	}

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "barbershop"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Port:           getEnv("HTTP_PORT", "8080"),
			ReadTimeout:    httpReadTimeout,
			WriteTimeout:   httpWriteTimeout,
			MaxHeaderMB:    getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
			AllowedOrigins: getEnvAsList("HTTP_ALLOWED_ORIGINS", "*"),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "barbershop"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 2),
			MaxLifetime:        postgresMaxLifetime,
			MigrationsDir:      getEnv("MIGRATIONS_DIR", "./migrations"),
		},
		Session: SessionConfig{
			Store:       strings.ToLower(getEnv("SESSION_STORE", "postgres")),
			TTL:         sessionTTL,
			TokenLength: getEnvAsInt("SESSION_TOKEN_BYTES", 32),
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "barbershop"),
			UseSSL:          getEnvAsBool("S3_USE_SSL", true),
			PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		Uploads: UploadsConfig{
			Dir:       getEnv("UPLOADS_DIR", "./uploads"),
			URLPrefix: getEnv("UPLOADS_URL_PREFIX", "/uploads"),
			MaxSizeMB: getEnvAsInt("UPLOADS_MAX_SIZE_MB", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Enabled:  getEnvAsBool("RATE_LIMIT_ENABLED", true),
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 10),
			Window:   rateLimitWindow,
			FailOpen: getEnvAsBool("RATE_LIMIT_FAIL_OPEN", true),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@barbershop.local"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		},
		Notify: NotifyConfig{
			EmailTo: getEnv("NOTIFY_EMAIL_TO", ""),
			Timeout: notifyTimeout,
		},
		Locale: LocaleConfig{
			SupportedLanguages:  getEnvAsList("SUPPORTED_LANGUAGES", "es,pt"),
			DefaultLanguage:     strings.ToLower(getEnv("DEFAULT_LANGUAGE", "es")),
			SupportedCurrencies: upper(getEnvAsList("SUPPORTED_CURRENCIES", "USD,BRL,PYG")),
			DefaultCurrency:     strings.ToUpper(getEnv("DEFAULT_CURRENCY", "USD")),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvAsBool("OTEL_ENABLED", false),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			SampleRatio:  sampleRatio,
		},
		Metrics: MetricsConfig{
			Enabled:   getEnvAsBool("METRICS_ENABLED", true),
			Namespace: getEnv("METRICS_NAMESPACE", "barbershop"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Store != "postgres" && c.Session.Store != "redis" {
		return fmt.Errorf("SESSION_STORE debe ser postgres o redis, recibido %q", c.Session.Store)
	}
	if c.Session.Store == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("SESSION_STORE=redis requiere REDIS_ADDR")
	}
	if len(c.Locale.SupportedLanguages) == 0 {
		return fmt.Errorf("SUPPORTED_LANGUAGES no puede estar vacío")
	}
	if len(c.Locale.SupportedCurrencies) == 0 {
		return fmt.Errorf("SUPPORTED_CURRENCIES no puede estar vacío")
	}
	if !contains(c.Locale.SupportedLanguages, c.Locale.DefaultLanguage) {
		return fmt.Errorf("DEFAULT_LANGUAGE %q no está en SUPPORTED_LANGUAGES", c.Locale.DefaultLanguage)
	}
	if !contains(c.Locale.SupportedCurrencies, c.Locale.DefaultCurrency) {
		return fmt.Errorf("DEFAULT_CURRENCY %q no está en SUPPORTED_CURRENCIES", c.Locale.DefaultCurrency)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvAsList(key, defaultValue string) []string {
	raw := strings.Split(getEnv(key, defaultValue), ",")
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func upper(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToUpper(v)
	}
	return values
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
