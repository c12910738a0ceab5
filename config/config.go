package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port       string `mapstructure:"port"`
	Env        string `mapstructure:"env"`
	AIProvider string `mapstructure:"ai_provider"`
	AIEndpoint string `mapstructure:"ai_endpoint"`
	Model      string `mapstructure:"model"`

	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	MongoURI     string `mapstructure:"MONGODB_URI"`
}

// Production reports whether error details must be withheld from
// responses.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
