package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("STAFF_RETIREMENT_AGE", "55")
	os.Setenv("APP_TIMEZONE", "Asia/Colombo")
	defer os.Unsetenv("APP_TIMEZONE")
	defer os.Unsetenv("DB_MAX_OPEN_CONNS")
	defer os.Unsetenv("MINIO_USE_SSL")
	defer os.Unsetenv("STAFF_RETIREMENT_AGE")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 55, cfg.Staff.RetirementAge)
	assert.Equal(t, "Asia/Colombo", cfg.Timezone)
	assert.Equal(t, "Asia/Colombo", cfg.Database.Timezone)
	assert.Equal(t, "staffregistry", cfg.Database.ApplicationName)
}

func TestLoad_StaffDefaults(t *testing.T) {
	os.Unsetenv("STAFF_RETIREMENT_AGE")
	os.Unsetenv("STAFF_PHOTO_URL_EXPIRY_SEC")
	os.Unsetenv("STAFF_PHOTO_MAX_BYTES")
	os.Unsetenv("APP_TIMEZONE")

	cfg := Load()

	assert.Equal(t, 60, cfg.Staff.RetirementAge)
	assert.Equal(t, 900, cfg.Staff.PhotoURLExpirySec)
	assert.Equal(t, int64(5<<20), cfg.Staff.PhotoMaxBytes)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
