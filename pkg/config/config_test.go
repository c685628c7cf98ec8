package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:reader.db?mode=rwc"

schedule:
  update_interval: 10m
  retention_days: 30
  user_agent: "Reader/2.0"

mail:
  timeout: 20s

llm:
  enabled: true
  api_key: "sk-test"
  model: "gpt-4o"
  temperature: 0.5

extraction:
  enabled: true
  timeout: 15s
`)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:reader.db?mode=rwc", cfg.Database.DSN)
		assert.Equal(t, 10*time.Minute, cfg.Schedule.UpdateInterval)
		assert.Equal(t, 30, cfg.Schedule.RetentionDays)
		assert.Equal(t, "Reader/2.0", cfg.Schedule.UserAgent)
		assert.Equal(t, 20*time.Second, cfg.Mail.Timeout)
		assert.True(t, cfg.LLM.Enabled)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
		assert.True(t, cfg.Extraction.Enabled)
		assert.Equal(t, 15*time.Second, cfg.Extraction.Timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server: {}\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:feedhaven.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 15*time.Minute, cfg.Schedule.UpdateInterval)
		assert.Equal(t, 30*time.Second, cfg.Schedule.FetchTimeout)
		assert.Equal(t, 90, cfg.Schedule.RetentionDays)
		assert.Equal(t, "FeedHaven/1.0", cfg.Schedule.UserAgent)
		assert.False(t, cfg.Schedule.AllowPrivateNetworks)
		assert.Equal(t, 30*time.Second, cfg.Mail.Timeout)
		assert.False(t, cfg.LLM.Enabled)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.False(t, cfg.Extraction.Enabled)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("FEEDHAVEN_TEST_KEY", "sk-from-env")
		cfg, err := Load(writeConfig(t, `
llm:
  enabled: true
  api_key: "${FEEDHAVEN_TEST_KEY}"
`))
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("llm enabled without api key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "llm:\n  enabled: true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.api_key")
	})

	t.Run("auth user without password", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  auth_user: admin\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth_user and auth_pass")
	})

	t.Run("update interval too short", func(t *testing.T) {
		_, err := Load(writeConfig(t, "schedule:\n  update_interval: 5s\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "update_interval")
	})
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 45 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestConfig_GetLLMConfig(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Enabled: true, Model: "llama3", APIKey: "k"}}
	llm := cfg.GetLLMConfig()
	assert.True(t, llm.Enabled)
	assert.Equal(t, "llama3", llm.Model)
}
