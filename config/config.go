// Package config loads the runtime configuration of the annotate tool from
// the environment.
package config

import (
	"os"

	"github.com/cbsinteractive/annotate/db"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable name, e.g. ANNOTATE_STORE. The
// unprefixed names are accepted too.
const Prefix = "annotate"

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config is the full configuration.
type Config struct {
	// DefaultFrameRate replaces the 30fps assumption for wire maps that
	// carry no frame rate.
	DefaultFrameRate float64 `envconfig:"DEFAULT_FRAME_RATE" default:"30"`

	Store      string `envconfig:"STORE" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"annotations.db"`
	Redis      db.Options

	Log    Log
	Sentry Sentry
}

// Log configures the logrus logger.
type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Sentry configures exception reporting. Reporting is off without a DSN.
type Sentry struct {
	DSN string `envconfig:"SENTRY_DSN"`
	Env string `envconfig:"ENV" default:"dev"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that envconfig cannot.
func (c *Config) Validate() error {
	if err := timecode.CheckRate(c.DefaultFrameRate); err != nil {
		return errors.Wrap(err, "default frame rate")
	}
	switch c.Store {
	case StoreSQLite, StoreRedis:
	default:
		return errors.Errorf("unknown store %q, want %s or %s", c.Store, StoreSQLite, StoreRedis)
	}
	return nil
}

// Logger builds a logger writing to stderr.
func (l Log) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", l.Level)
	}
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetLevel(level)
	switch l.Format {
	case "", "text":
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", l.Format)
	}
	return logger, nil
}
