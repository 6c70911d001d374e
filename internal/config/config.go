// Package config manages the application configuration.
//
// Values are layered, later layers winning:
//  1. struct defaults (DefaultConfig)
//  2. an optional JSON file named by PERSONAPI_CONFIG_FILE
//  3. environment variables prefixed with PERSONAPI_ (a `.env` file is
//     loaded into the environment first)
//
// The merged result is decoded into Config and validated so the app fails
// fast on bad values.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// ServiceName identifies this service in logs, traces and docs.
	ServiceName = "person-api"

	// EnvPrefix is the prefix every configuration env var carries.
	EnvPrefix = "PERSONAPI_"

	// ConfigFileEnv names the env var holding an optional JSON config file path.
	ConfigFileEnv = EnvPrefix + "CONFIG_FILE"
)

/*
	Env keys map onto koanf keys by trimming the prefix, lowercasing and
	turning a double underscore into the nesting delimiter:

	PERSONAPI_SERVER__PORT                      -> server.port
	PERSONAPI_OBSERVABILITY__LOGGING__LEVEL     -> observability.logging.level
	PERSONAPI_SERVER__CORS_ALLOWED_ORIGINS=a,b  -> server.cors_allowed_origins = [a b]
*/

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags name the keys; `validate:"..."` tags are enforced by
// go-playground/validator after decoding.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Server        ServerConfig        `koanf:"server" validate:"required"`
	Observability ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps request bodies, uploads included ("10M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`

	// RateLimit is the sustained requests per second allowed per client IP.
	RateLimit float64 `koanf:"rate_limit" validate:"gt=0"`
}

// DefaultConfig returns the lowest configuration layer.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			ShutdownTimeout:    30,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "10M",
			RateLimit:          20,
		},
		Observability: *DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from defaults, the optional JSON file and
// the environment, then validates it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %q: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		if s == ConfigFileEnv {
			return ""
		}
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}

	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           mainConfig,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment are not user-configurable under
	// observability; they always follow the primary block.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
