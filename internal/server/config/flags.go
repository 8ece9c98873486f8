package config

import (
	"flag"
	"os"
	"strings"

	"github.com/akarpov/gqltodo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     bind address (e.g. ":4000")
//	-s string     JWT HMAC secret key
//	-t duration   token validity (e.g. "168h")
//	-o string     comma-separated CORS allowed origins
//	-i bool       enable GraphiQL UI
//
// os.Args is first filtered to only the flags handled here, so flags owned
// by other components (-c/-config, test flags) do not cause parse errors.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-o", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")

	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "CORS allowed origins (comma-separated)")
	fs.BoolVar(&config.EnableGraphiQL, "i", config.EnableGraphiQL, "enable GraphiQL UI")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	parts := strings.Split(*origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	config.CORSAllowedOrigins = parts
}
