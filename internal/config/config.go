package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Staff        StaffConfig
	Notes        NotesConfig
	Forms        FormsConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values. An empty DSN disables the
// staff-account table backend.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables the
// remote notes backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session and credential parameters.
type AuthConfig struct {
	CookieSecret      string
	SessionTTLMinutes int
	AdminPassword     string
	BcryptCost        int
	CookieSecure      bool
}

// StaffConfig selects and parameterizes the staff credential backend.
// FixedEmail/FixedPhone describe the single-account deployment; DirectoryPath
// points at a read-only JSON list of staff records.
type StaffConfig struct {
	FixedEmail       string
	FixedName        string
	FixedPhone       string
	FixedDesignation string
	DirectoryPath    string
	CountryCode      string
}

// NotesConfig configures the local-file notes backend.
type NotesConfig struct {
	FilePath string
}

// FormsConfig holds per-category upstream form URLs. Empty URLs leave the
// category unconfigured.
type FormsConfig struct {
	PlacementURL        string
	AchievementsURL     string
	GeneralURL          string
	FetchTimeoutSeconds int
}

// NotificationConfig holds the optional event webhook endpoint.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "staff-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			CookieSecret:      getEnv("AUTH_COOKIE_SECRET", "dev-secret"),
			SessionTTLMinutes: getEnvAsInt("AUTH_SESSION_TTL_MINUTES", 720),
			AdminPassword:     os.Getenv("AUTH_ADMIN_PASSWORD"),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 12),
			CookieSecure:      getEnvAsBool("AUTH_COOKIE_SECURE", false),
		},
		Staff: StaffConfig{
			FixedEmail:       os.Getenv("STAFF_FIXED_EMAIL"),
			FixedName:        getEnv("STAFF_FIXED_NAME", "Staff"),
			FixedPhone:       os.Getenv("STAFF_FIXED_PHONE"),
			FixedDesignation: os.Getenv("STAFF_FIXED_DESIGNATION"),
			DirectoryPath:    os.Getenv("STAFF_DIRECTORY_PATH"),
			CountryCode:      getEnv("STAFF_PHONE_COUNTRY_CODE", "+91"),
		},
		Notes: NotesConfig{
			FilePath: os.Getenv("NOTES_FILE_PATH"),
		},
		Forms: FormsConfig{
			PlacementURL:        os.Getenv("FORM_URL_PLACEMENT"),
			AchievementsURL:     os.Getenv("FORM_URL_ACHIEVEMENTS"),
			GeneralURL:          os.Getenv("FORM_URL_GENERAL"),
			FetchTimeoutSeconds: getEnvAsInt("FORM_FETCH_TIMEOUT_SECONDS", 20),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SessionTTL returns the session cookie lifetime.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// FetchTimeout returns the outbound form fetch deadline.
func (f FormsConfig) FetchTimeout() time.Duration {
	if f.FetchTimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(f.FetchTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
