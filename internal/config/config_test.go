package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_YAMLAndDefaults(t *testing.T) {
	dotEnvPath = filepath.Join(t.TempDir(), "missing.env")
	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: from-yaml
database:
  dbname: elearning
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-yaml", cfg.JWT.Secret)
	assert.Equal(t, "elearning", cfg.Database.DBName)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "168h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "10m", cfg.Redis.UserCacheTTL)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	dotEnvPath = filepath.Join(t.TempDir(), "missing.env")
	path := writeConfig(t, "jwt:\n  secret: from-yaml\n")

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	dotEnvPath = filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnvPath, []byte("SEED_ADMIN_PHONE=01000000000\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SEED_ADMIN_PHONE") })

	t.Setenv("JWT_SECRET", "secret")
	cfg, err := LoadConfig(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "01000000000", cfg.Seed.AdminPhone)
}

func TestLoadConfig_Validation(t *testing.T) {
	dotEnvPath = filepath.Join(t.TempDir(), "missing.env")

	tests := []struct {
		name string
		body string
	}{
		{name: "missing secret", body: "server:\n  port: \"8080\"\n"},
		{name: "bad expiration", body: "jwt:\n  secret: x\n  access_token_expiration: soon\n"},
		{name: "bad cache ttl", body: "jwt:\n  secret: x\nredis:\n  user_cache_ttl: never\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database = DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "genius"}

	assert.Equal(t, "postgres://u:p@db:5432/genius?sslmode=disable", cfg.GetPostgresConnectionString())
}
