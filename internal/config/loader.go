package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file plus environment
// variables. Environment variables win, so deployments can run with nothing
// but OPENAI_API_KEY and OLLAMA_ENDPOINT set. An empty path falls back to
// the default search locations.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	// Env-only deployments are fine; only a malformed file is fatal.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Bind the flat env names the deployment environment actually uses.
	bindings := map[string]string{
		"app.environment": "APP_ENV",
		"server.host":     "SERVER_HOST",
		"server.port":     "SERVER_PORT",
		"openai.api_key":  "OPENAI_API_KEY",
		"openai.base_url": "OPENAI_BASE_URL",
		"ollama.endpoint": "OLLAMA_ENDPOINT",
		"backend.timeout": "BACKEND_TIMEOUT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "brandlens")
	v.SetDefault("app.environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.enable_cors", true)
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ollama.endpoint", "http://localhost:11434")
	v.SetDefault("backend.timeout", 60)
}
