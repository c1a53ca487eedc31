package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a directory without a .env file.
func inEmptyDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "1414", cfg.Port)
	assert.Equal(t, "medstore", cfg.MongoDatabase)
	assert.Equal(t, 10*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.S3Enabled())
	assert.False(t, cfg.AlertsEnabled())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("QUERY_TIMEOUT", "3s")
	t.Setenv("ALERT_RECIPIENTS", "ops@pharmacy.test,owner@pharmacy.test")
	t.Setenv("SMTP_HOST", "smtp.pharmacy.test")
	t.Setenv("SMTP_FROM", "alerts@pharmacy.test")
	t.Setenv("S3_ENDPOINT", "minio:9000")
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")
	t.Setenv("S3_USE_SSL", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
	assert.Equal(t, []string{"ops@pharmacy.test", "owner@pharmacy.test"}, cfg.AlertRecipients)
	assert.True(t, cfg.AlertsEnabled())
	assert.True(t, cfg.S3Enabled())
	assert.Equal(t, "http://minio:9000/prescriptions", cfg.PublicBaseURL())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsBadInput(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.ErrorContains(t, err, "Mars/Olympus")
}
