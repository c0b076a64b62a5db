package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Agent relay specifics
	Salesforce SalesforceConfig
	ElevenLabs ElevenLabsConfig
	Chat       ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SalesforceConfig configures the token exchange and the Agent API.
type SalesforceConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	APIHost      string
	AgentID      string
	InstanceURL  string
	Timezone     string
	Timeout      time.Duration
}

type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
}

type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Salesforce
	cfg.Salesforce.TokenURL = viper.GetString("salesforce.token_url")
	cfg.Salesforce.ClientID = viper.GetString("salesforce.client_id")
	cfg.Salesforce.ClientSecret = viper.GetString("salesforce.client_secret")
	cfg.Salesforce.APIHost = viper.GetString("salesforce.api_host")
	cfg.Salesforce.AgentID = viper.GetString("salesforce.agent_id")
	cfg.Salesforce.InstanceURL = viper.GetString("salesforce.instance_url")
	cfg.Salesforce.Timezone = viper.GetString("salesforce.timezone")
	cfg.Salesforce.Timeout = viper.GetDuration("salesforce.timeout")

	// Flat env fallbacks (SF_TOKEN_URL, SF_CLIENT_ID, ...) so the service
	// keeps working with plain environment variables.
	if v := viper.GetString("sf_token_url"); v != "" {
		cfg.Salesforce.TokenURL = v
	}
	if v := viper.GetString("sf_client_id"); v != "" {
		cfg.Salesforce.ClientID = v
	}
	if v := viper.GetString("sf_client_secret"); v != "" {
		cfg.Salesforce.ClientSecret = v
	}
	if v := viper.GetString("sf_api_host"); v != "" {
		cfg.Salesforce.APIHost = v
	}
	if v := viper.GetString("agent_id"); v != "" {
		cfg.Salesforce.AgentID = v
	}
	if v := viper.GetString("sf_instance"); v != "" {
		cfg.Salesforce.InstanceURL = v
	}

	// ElevenLabs
	cfg.ElevenLabs.APIKey = viper.GetString("elevenlabs.api_key")
	cfg.ElevenLabs.VoiceID = viper.GetString("elevenlabs.voice_id")
	if v := viper.GetString("eleven_api_key"); v != "" {
		cfg.ElevenLabs.APIKey = v
	}
	if v := viper.GetString("eleven_voice_id"); v != "" {
		cfg.ElevenLabs.VoiceID = v
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Salesforce.TokenURL == "" {
		return fmt.Errorf("salesforce.token_url is required")
	}
	if cfg.Salesforce.ClientID == "" || cfg.Salesforce.ClientSecret == "" {
		return fmt.Errorf("salesforce client credentials are required")
	}
	if cfg.Salesforce.APIHost == "" {
		return fmt.Errorf("salesforce.api_host is required")
	}
	if cfg.Salesforce.AgentID == "" {
		return fmt.Errorf("salesforce.agent_id is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("salesforce.timezone", "America/Los_Angeles")
	viper.SetDefault("salesforce.timeout", "30s")
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
