// Package config handles configuration for the server, layering defaults,
// environment variables, an optional JSON file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the to-do server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use
//     the test default in production.
//   - TokenValidityDuration: absolute session token lifetime.
//   - CORSAllowedOrigins: origins allowed by the CORS layer.
//   - EnableGraphiQL: serve the GraphiQL UI on the GraphQL endpoint.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	CORSAllowedOrigins    []string
	EnableGraphiQL        bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":4000"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.CORSAllowedOrigins = []string{"*"}
	c.EnableGraphiQL = true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and command-line flags, in
// that order (later layers win).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
