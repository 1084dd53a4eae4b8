package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	AI            AIConfig            `yaml:"ai"`
	AviationStack AviationStackConfig `yaml:"aviationstack"`
	GoogleMaps    GoogleMapsConfig    `yaml:"googlemaps"`
	Trip          TripConfig          `yaml:"trip"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT" env-default:"8000"`
	// TimeoutSeconds is the uniform timeout applied to every upstream HTTP call.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"HTTP_TIMEOUT_SECONDS" env-default:"10"`
}

type AIConfig struct {
	// Plugin selects the completion provider driving the agent loop:
	// "gemini", "openai", or "off" to disable the agent driver entirely.
	Plugin string       `yaml:"plugin" env:"AI_PLUGIN" env-default:"off"`
	Gemini GeminiConfig `yaml:"gemini"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

type AviationStackConfig struct {
	AccessKey string `yaml:"access_key" env:"AVIATIONSTACK_ACCESS_KEY"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key" env:"GOOGLEMAPS_API_KEY"`
}

type TripConfig struct {
	// HomeCity and HomeRegion are the fallback origin used when IP
	// geolocation cannot resolve the caller.
	HomeCity   string `yaml:"home_city" env:"HOME_CITY" env-default:"Phoenix"`
	HomeRegion string `yaml:"home_region" env:"HOME_REGION" env-default:"Arizona"`
}

// Load reads configuration from config.yaml and environment variables.
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs. A missing file
	// is fine; env vars and defaults still apply.
	if err := cleanenv.ReadConfig("config.yaml", &cfg); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
