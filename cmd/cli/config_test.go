package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsjohal14/equipdash/internal/libs/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, dotenv string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	if dotenv != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600))
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-dir", dir, "--mode", "test"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestConfigStatus_Text(t *testing.T) {
	out, err := runCLI(t, "VITE_USE_HARDCODED_DATA=true\nVITE_ENABLE_AUTHENTICATION=true\n", "config", "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Valid:       yes")
	assert.Contains(t, out, "Data source: Hardcoded Data")
	assert.Contains(t, out, "auth=on realTime=off fileUploads=off")
	assert.NotContains(t, out, "Errors:")
}

func TestConfigStatus_JSON(t *testing.T) {
	out, err := runCLI(t, "VITE_SUPABASE_ENABLED=true\n", "config", "status", "-o", "json")
	require.NoError(t, err)

	var st config.Status
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.False(t, st.IsValid)
	assert.Equal(t, []string{config.ErrSupabaseURLMissing, config.ErrSupabaseKeyMissing}, st.Errors)
	assert.Equal(t, "Supabase", st.DataSource)
}

func TestConfigValidate_Invalid(t *testing.T) {
	out, err := runCLI(t, "", "config", "validate")

	require.ErrorIs(t, err, errInvalidConfig)
	assert.Contains(t, out, "Configuration is invalid:")
	assert.Contains(t, out, "  - Either hardcoded data or Supabase must be enabled")
}

func TestConfigValidate_Valid(t *testing.T) {
	dotenv := "VITE_SUPABASE_ENABLED=true\nVITE_SUPABASE_URL=https://x.supabase.co\nVITE_SUPABASE_ANON_KEY=anon\n"
	out, err := runCLI(t, dotenv, "config", "validate")

	require.NoError(t, err)
	assert.Equal(t, "Configuration is valid\n", out)
}

func TestConfigValidate_YAML(t *testing.T) {
	out, err := runCLI(t, "", "config", "validate", "-o", "yaml")
	require.ErrorIs(t, err, errInvalidConfig)

	var v config.ValidationResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.False(t, v.IsValid)
	assert.Equal(t, []string{config.ErrNoDataSource}, v.Errors)
}

func TestConfigDataSource(t *testing.T) {
	out, err := runCLI(t, "VITE_USE_HARDCODED_DATA=true\nVITE_SUPABASE_ENABLED=true\n", "config", "data-source")
	require.NoError(t, err)
	assert.Equal(t, "hardcoded (hardcoded=true supabase=true)\n", out)
}

func TestConfigShow_RedactsByDefault(t *testing.T) {
	dotenv := "VITE_JWT_SECRET=top-secret\nVITE_API_TIMEOUT=abc\n"

	out, err := runCLI(t, dotenv, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "top-secret")
	assert.Contains(t, out, "********")
	assert.Contains(t, out, "timeout: null")
	assert.Contains(t, out, "Warnings:")

	out, err = runCLI(t, dotenv, "config", "show", "--show-secrets", "-o", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "top-secret", cfg.Security.JWTSecret)
	assert.True(t, cfg.API.Timeout.IsNaN())
	assert.Equal(t, config.ModeTest, cfg.Mode)
}

func TestConfigVars(t *testing.T) {
	out, err := runCLI(t, "", "config", "vars")
	require.NoError(t, err)
	assert.Contains(t, out, "VARIABLE")
	assert.Contains(t, out, config.EnvEnablePerfMonitoring)

	out, err = runCLI(t, "", "config", "vars", "-o", "json")
	require.NoError(t, err)

	var vars []config.Var
	require.NoError(t, json.Unmarshal([]byte(out), &vars))
	assert.Equal(t, config.Vars(), vars)
}

func TestUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "", "config", "status", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestMalformedDotenv(t *testing.T) {
	_, err := runCLI(t, "VITE_LOG_LEVEL='unterminated\n", "config", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoadConfig_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&logs)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	out, err := runCLI(t, "VITE_ENABLE_DEBUG_LOGGING=true\nVITE_USE_HARDCODED_DATA=true\n", "config", "status", "--mode", "production")
	require.NoError(t, err)
	assert.Contains(t, out, "Valid:       yes")

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, logs.String(), `"component":"cli"`)
	assert.Contains(t, logs.String(), `"mode":"production"`)
	assert.Contains(t, logs.String(), `"message":"configuration loaded"`)
}
