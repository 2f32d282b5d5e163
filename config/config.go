package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	// CORSOrigins lists allowed origins; empty means any origin.
	CORSOrigins []string  `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
	UserLimit   RateLimit `yaml:"user_create_limit"`
}

type HTTPServer struct {
	Port              string        `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout       time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	WriteTimeout      time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"20s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type Database struct {
	// Driver is one of mysql, postgres or sqlite.
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql"`
	URL      string `yaml:"url" env:"DATABASE_URL"`
	MySQLURL string `yaml:"mysql_url" env:"MYSQL_URL"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER" env-default:"root"`
	Password string `yaml:"password" env:"DB_PASS"`
	// Name is the database name, or the file (":memory:" allowed) for sqlite.
	Name    string `yaml:"name" env:"DB_NAME" env-default:"locker_booking"`
	SSLMode string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`

	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`

	// LogLevel is gorm's: silent, error, warn or info.
	LogLevel string `yaml:"log_level" env:"DB_LOG_LEVEL" env-default:"warn"`
	Seed     bool   `yaml:"seed" env:"DB_SEED" env-default:"false"`
}

type RateLimit struct {
	Limit  int           `yaml:"limit" env:"USER_CREATE_LIMIT" env-default:"100"`
	Window time.Duration `yaml:"window" env:"USER_CREATE_WINDOW" env-default:"15m"`
}

// MustLoad reads .env (optional), then the YAML file named by CONFIG_PATH
// if set, then the environment. It exits on invalid configuration.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("❌ cannot read config %s: %v", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("❌ cannot read config from environment: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ invalid config: %v", err)
	}
	return &cfg
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.UserLimit.Limit <= 0 {
		return fmt.Errorf("USER_CREATE_LIMIT must be positive, got %d", c.UserLimit.Limit)
	}
	if c.UserLimit.Window <= 0 {
		return fmt.Errorf("USER_CREATE_WINDOW must be positive, got %s", c.UserLimit.Window)
	}
	return nil
}
