package main

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/stemstr/quotes/internal/quotestore"
)

const (
	defaultPort            = 8080
	defaultDBDriver        = quotestore.DriverPostgres
	defaultDBMaxOpenConns  = 80
	defaultDBMaxIdleConns  = 10
	defaultDBConnLifetime  = 30 * time.Minute
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	// API settings
	Port               int           `yaml:"port" envconfig:"PORT"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`

	// Database settings
	DBDriver          string        `yaml:"db_driver" envconfig:"DB_DRIVER"`
	DBURL             string        `yaml:"db_url" envconfig:"DB_URL"`
	DBMaxOpenConns    int           `yaml:"db_max_open_conns" envconfig:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `yaml:"db_max_idle_conns" envconfig:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `yaml:"db_conn_max_lifetime" envconfig:"DB_CONN_MAX_LIFETIME"`

	// Logging settings
	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`
}

// Load Config from a yaml file at path.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return err
	}

	c.applyDefaults()
	return nil
}

// Load Config from the environment.
func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return err
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if len(c.CORSAllowedOrigins) == 0 {
		c.CORSAllowedOrigins = []string{"*"}
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.DBDriver == "" {
		c.DBDriver = defaultDBDriver
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = defaultDBMaxOpenConns
	}
	if c.DBMaxIdleConns == 0 {
		c.DBMaxIdleConns = defaultDBMaxIdleConns
	}
	if c.DBConnMaxLifetime == 0 {
		c.DBConnMaxLifetime = defaultDBConnLifetime
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
}

func (c *Config) storeOptions() quotestore.Options {
	return quotestore.Options{
		Driver:          c.DBDriver,
		URL:             c.DBURL,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}
