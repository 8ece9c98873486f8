package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":4000", c.EndpointAddr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, []string{"*"}, c.CORSAllowedOrigins)
	assert.True(t, c.EnableGraphiQL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, ":4000", c.EndpointAddr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, []string{"*"}, c.CORSAllowedOrigins)
	assert.True(t, c.EnableGraphiQL)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ADDRESS", "127.0.0.1:8080")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "24h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENABLE_GRAPHIQL", "false")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "127.0.0.1:8080", c.EndpointAddr)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSAllowedOrigins)
	assert.False(t, c.EnableGraphiQL)
}

func TestParseEnv_UnparseableValuesKeepDefaults(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "7 days")
	t.Setenv("ENABLE_GRAPHIQL", "yep")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
	assert.True(t, c.EnableGraphiQL)
}
