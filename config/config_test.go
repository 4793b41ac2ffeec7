package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: fittrack
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 15s
    writeTimeout: 30s
postgres:
  dsn: "host=localhost user=fittrack dbname=fittrack sslmode=disable"
redis:
  addr: "localhost:6379"
smtp:
  host: smtp.example.com
  port: 587
  username: mailer
  password: secret
  from: noreply@example.com
session:
  ttl: 24h
auth:
  bcryptCost: 10
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "fittrack", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nonexistent")
	assert.Error(t, err)
}
