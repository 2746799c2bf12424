package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverFile     StorageDriver = "file"
	DriverSQLite   StorageDriver = "sqlite"
	DriverPostgres StorageDriver = "postgres"
)

var (
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrMissingDSN        = errors.New("postgres driver requires DB_DSN")
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Si viene, el server exige Authorization: Bearer <token>
	APIToken        string        `env:"ECHO_API_TOKEN"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Storage
	StorageDriver StorageDriver `env:"STORAGE_DRIVER" envDefault:"file"`
	DataDir       string        `env:"DATA_DIR" envDefault:"data"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"data/echo.db"`
	DBDSN         string        `env:"DB_DSN"`

	// Persistencia fire-and-forget: tope por escritura
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT" envDefault:"5s"`

	// Zona horaria usada para el bucketing por día (vacío = local del proceso)
	Timezone string `env:"ECHO_TIMEZONE"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"echo-journal"`
}

// Load lee .env (si existe) y luego el entorno.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse solo mira el entorno del proceso.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.StorageDriver = StorageDriver(strings.ToLower(strings.TrimSpace(string(c.StorageDriver))))
	switch c.StorageDriver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return ErrMissingDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.StorageDriver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resuelve ECHO_TIMEZONE; vacío devuelve time.Local.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid ECHO_TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
