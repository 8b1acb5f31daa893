package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dataset sources
const (
	DatasetSourceCSV      = "csv"
	DatasetSourceDatabase = "database"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Dataset  DatasetConfig
	Database DatabaseConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
	APIBasePath      string
	StaticDir        string
}

type DatasetConfig struct {
	Source            string
	TransactionsPath  string
	ProbabilitiesPath string
	CacheEnabled      bool
	CacheTTL          time.Duration

	// BreakerMaxFailures consecutive load failures stop source reads for BreakerResetTimeout
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads an optional .env file and builds the configuration from the environment.
// Variables already set in the environment take precedence over the file.
func Load() *Config {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: failed to load %s: %v", envFile, err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			APIBasePath:     normalizeBasePath(getEnv("API_BASE_PATH", "/api")),
			StaticDir:       os.Getenv("STATIC_DIR"),
		},
		Dataset: DatasetConfig{
			Source:              strings.ToLower(getEnv("DATASET_SOURCE", DatasetSourceCSV)),
			TransactionsPath:    getEnv("TRANSACTIONS_CSV_PATH", "data/transactions.csv"),
			ProbabilitiesPath:   getEnv("PROBABILITIES_CSV_PATH", "data/customer_probabilities.csv"),
			CacheEnabled:        getBoolEnv("DATASET_CACHE_ENABLED", true),
			CacheTTL:            getDurationEnv("DATASET_CACHE_TTL", 0),
			BreakerMaxFailures:  getIntEnv("DATASET_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("DATASET_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "insights_user"),
			Password:        getEnv("DB_PASSWORD", "insights_password"),
			Name:            getEnv("DB_NAME", "insights_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "data/insights.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports configuration values the server cannot start with
func (c *Config) Validate() error {
	var errs []error

	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.TransactionsPath == "" || c.Dataset.ProbabilitiesPath == "" {
			errs = append(errs, errors.New("TRANSACTIONS_CSV_PATH and PROBABILITIES_CSV_PATH must be set for the csv dataset source"))
		}
	case DatasetSourceDatabase:
		if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverSQLite {
			errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.Database.Driver, DriverPostgres, DriverSQLite))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DATASET_SOURCE %q (want %s or %s)", c.Dataset.Source, DatasetSourceCSV, DatasetSourceDatabase))
	}

	if c.Dataset.BreakerMaxFailures <= 0 || c.Dataset.BreakerResetTimeout <= 0 {
		errs = append(errs, errors.New("DATASET_BREAKER_MAX_FAILURES and DATASET_BREAKER_RESET_TIMEOUT must be positive"))
	}
	if c.Dataset.CacheTTL < 0 {
		errs = append(errs, errors.New("DATASET_CACHE_TTL must not be negative"))
	}
	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Address returns the host:port the HTTP server listens on
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// normalizeBasePath returns path with a single leading slash and no trailing slash.
// The root path becomes "".
func normalizeBasePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return "/" + path
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
