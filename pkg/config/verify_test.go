package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(validTestConfig()))
	})

	t.Run("missing listen address", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen")
	})

	t.Run("missing server timeout", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Timeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout")
	})

	t.Run("llm enabled without model", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.LLM.Enabled = true
		cfg.LLM.Model = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.model")
	})

	t.Run("extraction enabled without timeout", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Extraction.Enabled = true
		cfg.Extraction.Timeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extraction.timeout")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "server")
	assert.Contains(t, string(data), "database")
	assert.Contains(t, string(data), "schedule")
}

func TestValidate(t *testing.T) {
	t.Run("too short server timeout", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Timeout = 100 * time.Millisecond
		require.Error(t, validate(cfg))
	})

	t.Run("llm temperature out of range", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.LLM.Enabled = true
		cfg.LLM.APIKey = "key"
		cfg.LLM.Temperature = 3.5
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	})

	t.Run("retention must be positive", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Schedule.RetentionDays = -1
		require.Error(t, validate(cfg))
	})
}
