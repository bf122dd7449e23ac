package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/go-evtinfo/locale"
)

// clearEnv empties every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	for _, key := range []string{EnvLogLevel, EnvLocaleCatalog, EnvVerbose} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, locale.CatalogPrimary, cfg.LocaleCatalog)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, os.Stdout, cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLocaleCatalog, locale.CatalogExtended)
	t.Setenv(EnvVerbose, "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, locale.CatalogExtended, cfg.LocaleCatalog)
	assert.True(t, cfg.Verbose)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set
	for _, key := range []string{EnvLogLevel, EnvLocaleCatalog, EnvVerbose} {
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "evtinfo.env")
	content := EnvLogLevel + "=debug\n" + EnvLocaleCatalog + "=extended\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, locale.CatalogExtended, cfg.LocaleCatalog)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadInvalidVerbose(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvVerbose, "sometimes")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, level)

	cfg.Verbose = true
	level, err = cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	// Verbose never lowers a more detailed level
	cfg.LogLevel = "trace"
	level, err = cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.TraceLevel, level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{LogLevel: "info", LocaleCatalog: locale.CatalogPrimary, Output: os.Stdout}
	}
	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.LocaleCatalog = "full"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Output = nil
	assert.Error(t, cfg.Validate())
}
