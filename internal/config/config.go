package config

import "fmt"

// Config is the full application configuration, read once at startup and
// never mutated afterwards.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	Backend BackendConfig `mapstructure:"backend"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development | test | production
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // seconds
	EnableCORS   bool   `mapstructure:"enable_cors"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type OllamaConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// BackendConfig holds settings shared by all LLM backends. Timeout is applied
// uniformly per call; a timed-out call is treated like any other backend
// failure.
type BackendConfig struct {
	Timeout int `mapstructure:"timeout"` // seconds
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HasOpenAI reports whether the OpenAI-compatible backend is configured.
func (c *Config) HasOpenAI() bool {
	return c.OpenAI.APIKey != ""
}

func (c *Config) validate() error {
	switch c.App.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("invalid environment %q", c.App.Environment)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Ollama.Endpoint == "" {
		return fmt.Errorf("ollama endpoint must not be empty")
	}
	return nil
}
