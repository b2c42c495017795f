package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
anchor:
  gateway_url: "https://gateway.example.com"
  mirror_url: "https://mirror.example.com"
  topic_id: "0.0.12345"
  submit_timeout: "30s"
  max_attempts: 5
claim:
  window_duration: "48h"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "https://gateway.example.com", cfg.Anchor.GatewayURL)
				assert.Equal(t, "https://mirror.example.com", cfg.Anchor.MirrorURL)
				assert.Equal(t, "0.0.12345", cfg.Anchor.TopicID)
				assert.Equal(t, 30*time.Second, cfg.Anchor.SubmitTimeout)
				assert.Equal(t, uint64(5), cfg.Anchor.MaxAttempts)
				assert.Equal(t, 48*time.Hour, cfg.Claim.WindowDuration)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
anchor:
  gateway_url: "https://gateway.example.com"
  mirror_url: "https://mirror.example.com"
  topic_id: "0.0.12345"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "AID_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 15*time.Second, cfg.Anchor.SubmitTimeout)
				assert.Equal(t, 500*time.Millisecond, cfg.Anchor.InitialInterval)
				assert.Equal(t, 5*time.Second, cfg.Anchor.MaxInterval)
				assert.Equal(t, 2.0, cfg.Anchor.Multiplier)
				assert.Equal(t, uint64(3), cfg.Anchor.MaxAttempts)
				assert.Equal(t, 24*time.Hour, cfg.Claim.WindowDuration)
			},
		},
		{
			name:        "missing config file - should work with env vars",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.NotNil(t, cfg)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var configFile string

			if tt.configFile != "" {
				tmpDir := t.TempDir()
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
anchor:
  gateway_url: "https://gateway.example.com"
  mirror_url: "https://mirror.example.com"
  topic_id: "0.0.12345"
stale_claim_sweeper:
  batch_size: 250
  pending_timeout: "30m"
  worker:
    pool_size: 4
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, 250, cfg.StaleClaimSweeper.BatchSize)
				assert.Equal(t, 30*time.Minute, cfg.StaleClaimSweeper.PendingTimeout)
				assert.Equal(t, 4, cfg.StaleClaimSweeper.Worker.WorkerPoolSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
anchor:
  gateway_url: "https://gateway.example.com"
  mirror_url: "https://mirror.example.com"
  topic_id: "0.0.12345"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, 2, cfg.Database.MaxIdleConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxIdleTime)
				assert.Equal(t, 100, cfg.StaleClaimSweeper.BatchSize)
				assert.Equal(t, 10*time.Minute, cfg.StaleClaimSweeper.PendingTimeout)
				assert.Equal(t, 10, cfg.StaleClaimSweeper.Worker.WorkerPoolSize)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: testdb
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
  user: testuser
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadSweeperConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		cfg.DSN())
}

func TestAnchorConfig_RetryPolicy(t *testing.T) {
	cfg := AnchorConfig{
		InitialInterval: 250 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      1.5,
		MaxAttempts:     7,
	}

	policy := cfg.RetryPolicy()
	assert.Equal(t, 250*time.Millisecond, policy.InitialInterval)
	assert.Equal(t, 2*time.Second, policy.MaxInterval)
	assert.Equal(t, 1.5, policy.Multiplier)
	assert.Equal(t, uint64(7), policy.MaxAttempts)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv.Overload sets real environment variables, which viper picks up
	// through AutomaticEnv with the HAID_ prefix and overrides file values.
	envFile := filepath.Join(envDir, ".env")
	envContent := `HAID_DEBUG=true
HAID_DATABASE_HOST=env-host
HAID_DATABASE_PORT=3306
HAID_DATABASE_USER=env-user
HAID_DATABASE_PASSWORD=env-pass
HAID_DATABASE_DBNAME=env-db
HAID_DATABASE_SSLMODE=require
HAID_ANCHOR_TOPIC_ID=0.0.99999
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
anchor:
  topic_id: "0.0.12345"
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "0.0.99999", cfg.Anchor.TopicID)
}
