package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode          string              `mapstructure:"mode"`
	Dotenv        string              `mapstructure:"dotenv"`
	Server        ServerConfig        `mapstructure:"server"`
	GenAI         GenAIConfig         `mapstructure:"genai"`
	Itinerary     ItineraryConfig     `mapstructure:"itinerary"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	CORS          struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
}

type ServerConfig struct {
	HTTPPort     string        `mapstructure:"HTTPPort"`
	Timeout      time.Duration `mapstructure:"HTTPTimeout"`
	ReadTimeout  time.Duration `mapstructure:"ReadTimeout"`
	WriteTimeout time.Duration `mapstructure:"WriteTimeout"`
}

// GenAIConfig configures the Gemini client. APIKey is normally supplied
// through GEMINI_API_KEY rather than the config file.
type GenAIConfig struct {
	APIKey      string        `mapstructure:"apiKey"`
	Model       string        `mapstructure:"model"`
	Temperature float32       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	// BaseURL overrides the Gemini endpoint. Empty means the SDK default.
	BaseURL string `mapstructure:"baseURL"`
}

type ItineraryConfig struct {
	// TrustModelHTML renders model output without escaping.
	TrustModelHTML bool  `mapstructure:"trustModelHTML"`
	MaxFormBytes   int64 `mapstructure:"maxFormBytes"`
}

type ObservabilityConfig struct {
	ServiceName string `mapstructure:"serviceName"`
	MetricsPort string `mapstructure:"metricsPort"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("genai.apiKey", "GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("failed to bind api key env: %w", err)
	}
	if err := v.BindEnv("mode", "APP_ENV"); err != nil {
		return Config{}, fmt.Errorf("failed to bind mode env: %w", err)
	}

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&config)
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

func applyDefaults(c *Config) {
	if c.Mode == "" {
		c.Mode = "development"
	}
	if c.Server.HTTPPort == "" {
		c.Server.HTTPPort = "8080"
	}
	if c.GenAI.Model == "" {
		c.GenAI.Model = "gemini-1.5-flash"
	}
	if c.Itinerary.MaxFormBytes <= 0 {
		c.Itinerary.MaxFormBytes = 64 << 10
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "trip-itinerary"
	}
}
