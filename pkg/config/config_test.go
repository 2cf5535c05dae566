package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// It mirrors testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIToken, "test-token")
	t.Setenv(EnvAccountID, "test-account")
}

func clearOptionalEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvDelayMS, "")
	t.Setenv(EnvConfigPath, "")
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.APIToken)
	assert.Equal(t, "test-account", cfg.AccountID)
	assert.Empty(t, cfg.APIBase)
	assert.Zero(t, cfg.DelayMS)
}

func TestLoadMissingCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	clearOptionalEnv(t)

	t.Setenv(EnvAPIToken, "")
	t.Setenv(EnvAccountID, "test-account")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAPIToken)

	t.Setenv(EnvAPIToken, "test-token")
	t.Setenv(EnvAccountID, "")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAccountID)
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CLOUDFLARE_API_TOKEN=dotenv-token\nCLOUDFLARE_ACCOUNT_ID=dotenv-account\n"), 0o600)
	require.NoError(t, err)

	chdir(t, dir)
	clearOptionalEnv(t)
	// godotenv does not override already-set variables, so clear them.
	// t.Setenv first so the originals are restored after the test.
	t.Setenv(EnvAPIToken, "")
	t.Setenv(EnvAccountID, "")
	require.NoError(t, os.Unsetenv(EnvAPIToken))
	require.NoError(t, os.Unsetenv(EnvAccountID))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-token", cfg.APIToken)
	assert.Equal(t, "dotenv-account", cfg.AccountID)
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, DefaultConfigFile),
		[]byte("api_base: https://api.example.test/client/v4\ndelay_ms: 500\n"), 0o600)
	require.NoError(t, err)

	chdir(t, dir)
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/client/v4", cfg.APIBase)
	assert.Equal(t, 500, cfg.DelayMS)
}

func TestEnvOverridesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, DefaultConfigFile),
		[]byte("api_base: https://file.example.test\ndelay_ms: 500\n"), 0o600)
	require.NoError(t, err)

	chdir(t, dir)
	setRequiredEnv(t)
	t.Setenv(EnvAPIBase, "https://env.example.test")
	t.Setenv(EnvDelayMS, "250")
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.test", cfg.APIBase)
	assert.Equal(t, 250, cfg.DelayMS)
}

func TestLoadExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("delay_ms: 100\n"), 0o600))

	chdir(t, t.TempDir())
	setRequiredEnv(t)
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvDelayMS, "")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.DelayMS)
}

func TestLoadExplicitConfigPathMissing(t *testing.T) {
	chdir(t, t.TempDir())
	setRequiredEnv(t)
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvDelayMS, "")
	t.Setenv(EnvConfigPath, "/nonexistent/sweepctl.yml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadInvalidDelay(t *testing.T) {
	chdir(t, t.TempDir())
	setRequiredEnv(t)
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvConfigPath, "")

	t.Setenv(EnvDelayMS, "not-a-number")
	_, err := Load()
	require.Error(t, err)

	t.Setenv(EnvDelayMS, "-1")
	_, err = Load()
	require.Error(t, err)
}
