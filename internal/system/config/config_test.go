package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  hostname: "127.0.0.1"
  port: 9090
  read_timeout: 5s
database:
  hostname: "db.local"
  port: 3307
  user: "app"
  password: "secret"
  database: "foodhunger"
  auto_migrate: true
logging:
  level: "debug"
  format: "text"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Hostname)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.local", cfg.Database.Hostname)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GetServerAddress())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  hostname: "localhost"
  database: "foodhunger"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"Content-Type", "Authorization", "X-Correlation-ID"}, cfg.CORS.AllowedHeaders)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("FOODHUNGER_DATABASE_PASSWORD", "from-env")
	t.Setenv("FOODHUNGER_SERVER_PORT", "7070")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080, Mode: "release"},
			Database: DatabaseConfig{Hostname: "localhost", Port: 3306, Database: "foodhunger"},
			Logging:  LoggingConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "invalid server port"},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Hostname = "" }, wantErr: "database hostname is required"},
		{name: "missing db name", mutate: func(c *Config) { c.Database.Database = "" }, wantErr: "database name is required"},
		{name: "bad db port", mutate: func(c *Config) { c.Database.Port = 0 }, wantErr: "invalid database port"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "invalid logging level"},
		{name: "bad mode", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: "invalid server mode"},
		{
			name:    "cors without origins",
			mutate:  func(c *Config) { c.CORS.Enabled = true },
			wantErr: "allowed origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Hostname: "db", Port: 3306, User: "u", Password: "p", Database: "foodhunger"}
	dsn := d.GetDSN()

	assert.Contains(t, dsn, "u:p@tcp(db:3306)/foodhunger")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "multiStatements=true")
}
