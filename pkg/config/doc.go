// Package config loads typed configuration structs from environment
// variables.
//
// A .env file in the working directory is loaded once per process, then
// struct fields are populated from `env` tags:
//
//	type AppConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Mongo    string `env:"MONGODB_URL,required"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Each config type is parsed once per process lifetime; later Load calls
// for the same type return the cached value.
package config
