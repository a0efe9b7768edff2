// Package config loads typed configuration structs from environment
// variables, with optional .env file loading.
//
// Each configuration type is parsed at most once per process and served from
// a cache afterwards, so packages can call Load on their own config struct
// without coordinating.
//
//	type BinderConfig struct {
//		MaxBodyBytes int64 `env:"BINDER_MAX_BODY_BYTES" envDefault:"1048576"`
//	}
//
//	var cfg BinderConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// ResetCache exists for tests that mutate the process environment.
package config
