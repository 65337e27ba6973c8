package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Explorer ExplorerConfig `mapstructure:"explorer"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Persona  PersonaConfig  `mapstructure:"persona"`
}

// AppConfig represents application-specific configuration
type AppConfig struct {
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	HTTPPort        int           `mapstructure:"http_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ExplorerConfig represents block-explorer API configuration. One API key
// per supported chain; chains without a key are still served (the explorers
// accept keyless requests at a lower rate limit).
type ExplorerConfig struct {
	Chains         []string      `mapstructure:"chains"`
	EtherscanKey   string        `mapstructure:"etherscan_api_key"`
	PolygonscanKey string        `mapstructure:"polygonscan_api_key"`
	BscscanKey     string        `mapstructure:"bscscan_api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	TxLimit        int           `mapstructure:"tx_limit"`
}

// APIKey returns the explorer API key configured for the given chain.
func (c *ExplorerConfig) APIKey(chain string) string {
	switch chain {
	case "ethereum":
		return c.EtherscanKey
	case "polygon":
		return c.PolygonscanKey
	case "bsc":
		return c.BscscanKey
	default:
		return ""
	}
}

// GeminiConfig represents the generative AI configuration. AnalysisKey
// enables the optional detailed-analysis endpoint and may differ from the
// primary key.
type GeminiConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	AnalysisKey   string        `mapstructure:"analysis_api_key"`
	Model         string        `mapstructure:"model"`
	AnalysisModel string        `mapstructure:"analysis_model"`
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// PersonaConfig represents tuning knobs of the persona pipeline.
type PersonaConfig struct {
	TopProtocols int `mapstructure:"top_protocols"`
	ChatQuota    int `mapstructure:"chat_quota"`
}

// Load loads configuration from environment variables and files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/chain-persona-engine")

	// Environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("")

	// Map environment variables to nested config keys
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Default values
	setDefaults()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.http_port", 8080)
	viper.SetDefault("app.shutdown_timeout", "30s")

	// Explorer defaults
	viper.SetDefault("explorer.chains", []string{"ethereum", "polygon", "bsc"})
	viper.SetDefault("explorer.request_timeout", "15s")
	viper.SetDefault("explorer.tx_limit", 100)

	// Gemini defaults
	viper.SetDefault("gemini.model", "gemini-pro")
	viper.SetDefault("gemini.analysis_model", "gemini-1.5-flash")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.timeout", "30s")

	// Persona defaults
	viper.SetDefault("persona.top_protocols", 3)
	viper.SetDefault("persona.chat_quota", 3)

	// Bind env for API keys
	viper.BindEnv("explorer.etherscan_api_key", "ETHERSCAN_API_KEY")
	viper.BindEnv("explorer.polygonscan_api_key", "POLYGONSCAN_API_KEY")
	viper.BindEnv("explorer.bscscan_api_key", "BSCSCAN_API_KEY")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.analysis_api_key", "GEMINI_ANALYSIS_API_KEY")
}
