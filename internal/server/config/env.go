package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// unparseable variables leave the current value in place.
//
// Recognized variables:
//
//	ADDRESS               bind address (e.g. ":4000")
//	JWT_SECRET            token signing secret
//	TOKEN_VALIDITY        token lifetime, Go duration string (e.g. "168h")
//	CORS_ALLOWED_ORIGINS  comma-separated origin list
//	ENABLE_GRAPHIQL       strconv.ParseBool syntax
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		config.CORSAllowedOrigins = origins
	}
	if v := os.Getenv("ENABLE_GRAPHIQL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.EnableGraphiQL = b
		}
	}
}
