package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"greg-hacke/go-evtinfo/locale"
)

// Environment variables read by Load
const (
	EnvLogLevel      = "EVTINFO_LOG_LEVEL"
	EnvLocaleCatalog = "EVTINFO_LOCALE_CATALOG"
	EnvVerbose       = "EVTINFO_VERBOSE"
)

// Config holds the settings shared by the evtinfo commands
type Config struct {
	LogLevel      string
	LocaleCatalog string
	Verbose       bool

	// Output receives reports; it is never read from the environment
	Output io.Writer
}

// Load reads envFile, or ./.env when envFile is empty, and then the
// environment. Only an explicitly named env file has to exist.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", envFile)
		}
	} else {
		_ = godotenv.Load()
	}

	verbose := false
	if raw := strings.TrimSpace(os.Getenv(EnvVerbose)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", EnvVerbose)
		}
		verbose = v
	}

	return &Config{
		LogLevel:      firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogLevel)), "info"),
		LocaleCatalog: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLocaleCatalog)), locale.CatalogPrimary),
		Verbose:       verbose,
		Output:        os.Stdout,
	}, nil
}

// Level returns the logrus level, raised to debug in verbose mode
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return level, errors.Wrap(err, "invalid log level")
	}
	if c.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	return level, nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := locale.ForCatalog(c.LocaleCatalog); err != nil {
		return err
	}
	if c.Output == nil {
		return errors.New("no output configured")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
