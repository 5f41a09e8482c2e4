package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test in an empty directory so no .env or config file
// of the repository is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "assets/data/questions.json", cfg.CatalogPath)
	assert.Equal(t, []string{"de", "en"}, cfg.Languages)
	assert.Equal(t, "de", cfg.DefaultLanguage)
	assert.False(t, cfg.DB.Enabled())
	assert.Equal(t, int32(10), cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 60, cfg.Telegram.UpdateTimeout)
}

func TestLoad_MissingToken(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://quiz@localhost/quiz")
	t.Setenv("CATALOG_PATH", "/data/catalog.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "postgres://quiz@localhost/quiz", cfg.DB.URL)
	assert.Equal(t, "/data/catalog.json", cfg.CatalogPath)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")

	yaml := "languages: [en, fr]\ndefault_language: fr\ntelegram:\n  debug: true\n"
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "fr"}, cfg.Languages)
	assert.Equal(t, "fr", cfg.DefaultLanguage)
	assert.True(t, cfg.Telegram.Debug)
}

func TestLoad_UnknownDefaultLanguage(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DEFAULT_LANGUAGE", "it")

	_, err := Load()
	require.ErrorIs(t, err, ErrUnknownDefaultLanguage)
}
