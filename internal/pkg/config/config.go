package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timeouts, intervals, paths)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Backend    BackendConfig
	Store      StoreConfig
	DB         DBConfig
	Migrations MigrationsConfig
	Workflow   WorkflowConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Tracing    TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

const (
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type StoreConfig struct {
	Driver   string `envconfig:"PROGRESS_STORE" default:"bolt"`
	BoltPath string `envconfig:"PROGRESS_BOLT_PATH" default:"data/wizard_progress.db"`
}

// DBConfig is only read when PROGRESS_STORE=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

type MigrationsConfig struct {
	Path string `envconfig:"MIGRATIONS_PATH" default:"file://migrations"`
}

type WorkflowConfig struct {
	CompletionPollInterval time.Duration `envconfig:"COMPLETION_POLL_INTERVAL" default:"30s"`
	SuccessDisplayDelay    time.Duration `envconfig:"SUCCESS_DISPLAY_DELAY" default:"1500ms"`
	BookingsPath           string        `envconfig:"BOOKINGS_PATH" default:"/company/bookings"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// TracingConfig leaves export off when OTLPEndpoint is empty; spans are still
// recorded so trace ids reach the request log.
type TracingConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"tour-booking-console"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file (ENV_FILE, default ".env") before
// processing the environment. Real environment variables win.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load env file", "file", envFile, "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreBolt, StoreMemory:
	case StorePostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("PROGRESS_STORE=postgres requires DB_USER and DB_NAME")
		}
	default:
		return fmt.Errorf("unknown PROGRESS_STORE %q", c.Store.Driver)
	}
	if c.Workflow.CompletionPollInterval <= 0 {
		return fmt.Errorf("COMPLETION_POLL_INTERVAL must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Store: StoreConfig{
			Driver: StoreMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Ho_Chi_Minh",
		},
		Migrations: MigrationsConfig{
			Path: "file://migrations",
		},
		Workflow: WorkflowConfig{
			CompletionPollInterval: 30 * time.Second,
			SuccessDisplayDelay:    1500 * time.Millisecond,
			BookingsPath:           "/company/bookings",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Tracing: TracingConfig{
			ServiceName: "tour-booking-console-test",
		},
	}
}
