package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.CertStream.URL = "wss://certstream.calidog.io"
	cfg.CertStream.ReconnectDelay = 5 * time.Second
	cfg.Lookup.APIURL = "https://lookup.example.com/v1/domains"
	cfg.Lookup.Timeout = 15 * time.Second
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(validConfig()))
	})

	t.Run("missing server listen", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("missing certstream url", func(t *testing.T) {
		cfg := validConfig()
		cfg.CertStream.URL = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "certstream.url is required")
	})

	t.Run("missing lookup api url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Lookup.APIURL = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lookup.api_url is required")
	})
}

func TestEmbeddedSchema(t *testing.T) {
	// the embedded schema must stay parseable and reference the config type
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	assert.Contains(t, schema, "$defs")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "certstream")
	assert.Contains(t, string(data), "lookup")
	assert.Contains(t, string(data), "email")
}
