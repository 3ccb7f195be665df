package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the process-level settings of the CLI and HTTP server. Engine
// parameters given per request override the defaults configured here.
type Config struct {
	Env  string
	Port int

	Log    LogConfig
	Engine EngineConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// EngineConfig carries the default evaluation parameters.
type EngineConfig struct {
	MaxCandidates int
	Policy        string
	Workers       int
}

// Load reads configuration from the environment, honouring a local .env file
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("engine.maxcandidates", 1000)
	v.SetDefault("engine.policy", "conflict")
	v.SetDefault("engine.workers", 0)

	cfg := &Config{
		Env:  v.GetString("env"),
		Port: v.GetInt("port"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Engine: EngineConfig{
			MaxCandidates: v.GetInt("engine.maxcandidates"),
			Policy:        v.GetString("engine.policy"),
			Workers:       v.GetInt("engine.workers"),
		},
	}
	return cfg, nil
}
