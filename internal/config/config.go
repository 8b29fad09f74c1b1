package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultModel is the Gemini model queried when none is configured.
const DefaultModel = "gemini-2.5-flash"

type Config struct {
	Gemini struct {
		APIKey  string
		Model   string
		BaseURL string
		Timeout time.Duration
	}
	Template struct {
		Path string
	}
	Prompt struct {
		Path string
	}
	Render struct {
		Escape bool
	}
	HTTP struct {
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads config from an optional .env file, the environment (HOROSCOPE_
// prefix) and an optional horoscope.yaml. Web servers usually hand CGI
// scripts a stripped environment, so the .env file next to the binary is the
// expected home of the API key.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("HOROSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("horoscope")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	_ = v.BindEnv("gemini.api_key", "HOROSCOPE_GEMINI_API_KEY", "GEMINI_API_KEY")

	v.SetDefault("gemini.model", DefaultModel)
	v.SetDefault("gemini.timeout", "0s")
	v.SetDefault("template.path", "../../www/decouvrir.html")
	v.SetDefault("prompt.path", "prompt.txt")
	v.SetDefault("render.escape", true)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	cfg := &Config{}
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.BaseURL = v.GetString("gemini.base_url")
	cfg.Template.Path = v.GetString("template.path")
	cfg.Prompt.Path = v.GetString("prompt.path")
	cfg.Render.Escape = v.GetBool("render.escape")
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	timeout, err := time.ParseDuration(v.GetString("gemini.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOROSCOPE_GEMINI_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("HOROSCOPE_GEMINI_TIMEOUT must not be negative")
	}
	cfg.Gemini.Timeout = timeout

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("HOROSCOPE_GEMINI_API_KEY (or GEMINI_API_KEY) is required")
	}
	if cfg.Gemini.Model == "" {
		return nil, fmt.Errorf("HOROSCOPE_GEMINI_MODEL must not be empty")
	}
	if cfg.Template.Path == "" {
		return nil, fmt.Errorf("HOROSCOPE_TEMPLATE_PATH must not be empty")
	}
	if cfg.Prompt.Path == "" {
		return nil, fmt.Errorf("HOROSCOPE_PROMPT_PATH must not be empty")
	}

	return cfg, nil
}
