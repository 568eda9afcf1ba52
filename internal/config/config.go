package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Firm    FirmConfig    `mapstructure:"firm"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

type GeminiConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	TextModel      string        `mapstructure:"text_model"`
	ReasoningModel string        `mapstructure:"reasoning_model"`
	ImageModel     string        `mapstructure:"image_model"`
	ThinkingBudget int32         `mapstructure:"thinking_budget"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// FirmConfig carries the law-firm identity injected into the petition
// skeleton prompt. The defaults reproduce the office block the frontend
// previously hardcoded, but each deployment can override them.
type FirmConfig struct {
	OfficeAddress string   `mapstructure:"office_address"`
	Email         string   `mapstructure:"email"`
	Phones        []string `mapstructure:"phones"`
	Lawyers       []string `mapstructure:"lawyers"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Type    string `mapstructure:"type"`
	DataDir string `mapstructure:"data_dir"`
}

var cfg *Config

func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ADVOCACIA")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Config file wins; fall back to the environment for the API key,
	// mirroring the key resolution of the frontend this replaced.
	if cfg.Gemini.APIKey == "" {
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		}
		if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "60s")
	viper.SetDefault("server.write_timeout", "600s")
	viper.SetDefault("server.max_header_bytes", 1<<20)
	viper.SetDefault("server.max_upload_bytes", int64(64<<20))

	viper.SetDefault("gemini.text_model", "gemini-2.5-flash")
	viper.SetDefault("gemini.reasoning_model", "gemini-2.5-pro")
	viper.SetDefault("gemini.image_model", "gemini-2.5-flash-image")
	viper.SetDefault("gemini.thinking_budget", 32768)
	viper.SetDefault("gemini.timeout", "10m")

	viper.SetDefault("firm.office_address",
		"Escritório Profissional sito à Rua Flávio Roberto Sabbadini, n° 62, Bairro São Vicente, Gravataí/RS, CEP 94155-450, Fone (51) 3012-5755")
	viper.SetDefault("firm.email", "lucianomk@gmail.com")
	viper.SetDefault("firm.phones", []string{"(51) 99917-9974", "(51) 99917-0026"})
	viper.SetDefault("firm.lawyers", []string{
		"ANDERSON FURTADO PEREIRA OAB/RS 52.035",
		"DIRCEU ROCHA JUNIOR OAB/RS 55.401",
		"LUCIANO MATHEUS KISSMANN OAB/RS 101.353",
		"PAULO RODRIGO CASTELI ROSSETO OAB/DF 27.839",
	})

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("storage.type", "disk")
	viper.SetDefault("storage.data_dir", "./data")
}

func Get() *Config {
	return cfg
}
