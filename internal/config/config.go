package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "RELAY_"

type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Cashea  CasheaConfig  `koanf:"cashea"`
	Shopify ShopifyConfig `koanf:"shopify"`
	Logger  LoggerConfig  `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// IsDevelopment reports whether error details may be exposed to callers.
func (p Primary) IsDevelopment() bool {
	return strings.EqualFold(p.Env, "development")
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type CasheaConfig struct {
	BaseURL            string        `koanf:"base_url" validate:"required,url"`
	APIKey             string        `koanf:"api_key" validate:"required"`
	Timeout            time.Duration `koanf:"timeout" validate:"required"`
	InsecureSkipVerify bool          `koanf:"insecure_skip_verify"`
}

type ShopifyConfig struct {
	Store       string        `koanf:"store" validate:"required"`
	BaseURL     string        `koanf:"base_url" validate:"omitempty,url"`
	APIVersion  string        `koanf:"api_version" validate:"required"`
	AccessToken string        `koanf:"access_token" validate:"required"`
	Timeout     time.Duration `koanf:"timeout" validate:"required"`
}

// StoreURL is the admin host of the store. BaseURL overrides it, which is
// how tests and staging proxies point the client elsewhere.
func (c ShopifyConfig) StoreURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return "https://" + c.Store + ".myshopify.com"
}

var defaults = map[string]interface{}{
	"primary.env":                 "production",
	"server.port":                 "8080",
	"server.read_timeout":         "15s",
	"server.write_timeout":        "30s",
	"server.idle_timeout":         "60s",
	"server.request_timeout":      "25s",
	"cashea.base_url":             "https://external.cashea.app",
	"cashea.timeout":              "8s",
	"cashea.insecure_skip_verify": false,
	"shopify.api_version":         "2024-01",
	"shopify.timeout":             "8s",
	"logger.level":                "info",
	"logger.format":               "json",
}

// legacyKeys maps the unprefixed variable names of the serverless
// deployment onto config keys.
var legacyKeys = map[string]string{
	"CASHEA_API_KEY":       "cashea.api_key",
	"SHOPIFY_STORE":        "shopify.store",
	"SHOPIFY_ACCESS_TOKEN": "shopify.access_token",
	"NODE_ENV":             "primary.env",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyKeys[s]
	}), nil)
	if err != nil {
		logger.Error("failed to load legacy environment variables", "error", err)
		return nil, err
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if err := mainConfig.checkTimeouts(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// checkTimeouts keeps the request deadline behind both outbound calls. A
// slow upstream then fails as TIMEOUT with its idNumber before the request
// deadline can answer 503.
func (c *Config) checkTimeouts() error {
	outbound := c.Cashea.Timeout + c.Shopify.Timeout
	if c.Server.RequestTimeout <= outbound {
		return fmt.Errorf(
			"server.request_timeout (%s) must exceed cashea.timeout + shopify.timeout (%s)",
			c.Server.RequestTimeout, outbound,
		)
	}
	return nil
}
