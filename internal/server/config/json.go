package config

import (
	"encoding/json"
	"os"

	"github.com/akarpov/gqltodo/internal/flagx"
	"github.com/akarpov/gqltodo/internal/timex"
)

// JSONConfig is the intermediate shape for JSON config files. It uses
// timex.Duration so the token lifetime can be written either as a duration
// string ("168h") or as integer nanoseconds. Pointer fields distinguish
// "absent" from an explicit zero value.
type JSONConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	CORSAllowedOrigins    []string       `json:"cors_allowed_origins"`
	EnableGraphiQL        *bool          `json:"enable_graphiql"`
}

// parseJSON loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named, nothing
// happens. An unreadable or invalid file panics: a config file that was
// asked for but cannot be used is a startup error.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JSONConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.EnableGraphiQL != nil {
		config.EnableGraphiQL = *c.EnableGraphiQL
	}
}
