package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSEnvOverridesFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_DRIVER=mysql\nAPP_PORT=9090\n"), 0o600))

	t.Setenv("DB_DRIVER", "postgres")

	require.NoError(t, loadFromFiles(filepath.Join(dir, "app.json"), envFile))

	// Precedence: defaults < app.json < .env < OS environment.
	assert.Equal(t, "postgres", get("DB_DRIVER", ""))
	assert.Equal(t, "9090", get("APP_PORT", ""))
}

func TestOSEnvCoversUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAX_BODY_BYTES", "1024")

	require.NoError(t, loadFromFiles(filepath.Join(dir, "app.json"), filepath.Join(dir, ".env")))

	assert.Equal(t, "1024", get("MAX_BODY_BYTES", ""))
}

func TestDotEnvParsing(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "# comment\nREDIS_ADDR = cache:6379\nQUOTED=\"hello\"\nbad-line\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	require.NoError(t, loadFromFiles(filepath.Join(dir, "app.json"), envFile))

	assert.Equal(t, "cache:6379", get("REDIS_ADDR", ""))
	assert.Equal(t, "hello", get("QUOTED", ""))
}
