package binder

import "github.com/validtree/validtree/pkg/config"

// Config holds binder settings read from the environment.
type Config struct {
	// MaxBodyBytes caps the request body size. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"BINDER_MAX_BODY_BYTES" envDefault:"1048576"`

	// DefaultLanguage is used when Accept-Language negotiation fails.
	DefaultLanguage string `env:"BINDER_DEFAULT_LANGUAGE" envDefault:"en"`
}

// LoadConfig reads binder settings from the environment, cached per process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
