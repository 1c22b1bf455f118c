package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Log         struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Report struct {
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
		CacheTTL     time.Duration `yaml:"cache_ttl"`
	} `yaml:"report"`
	Cache struct {
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
		MemoryMaxSize int `yaml:"memory_max_size"`
	} `yaml:"cache"`
	Export struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
	} `yaml:"export"`
	Meta struct {
		AccessToken string `yaml:"access_token"`
		AccountID   string `yaml:"account_id"`
	} `yaml:"meta"`
	Google struct {
		DeveloperToken string `yaml:"developer_token"`
		// AccessToken is an OAuth2 bearer minted out-of-band; token
		// refresh is not this service's job.
		AccessToken     string `yaml:"access_token"`
		CustomerID      string `yaml:"customer_id"`
		LoginCustomerID string `yaml:"login_customer_id"`
	} `yaml:"google"`
	Shopify struct {
		ShopDomain  string `yaml:"shop_domain"`
		AccessToken string `yaml:"access_token"`
	} `yaml:"shopify"`
}

// MetaEnabled reports whether every required Meta credential is populated.
func (c *Config) MetaEnabled() bool {
	return c.Meta.AccessToken != "" && c.Meta.AccountID != ""
}

// GoogleEnabled reports whether every required Google Ads credential is
// populated. Google is an optional channel: when any field is missing the
// channel is reported as absent, not as an error.
func (c *Config) GoogleEnabled() bool {
	return c.Google.DeveloperToken != "" && c.Google.AccessToken != "" && c.Google.CustomerID != ""
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides credentials and
// infrastructure endpoints from environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("META_ACCESS_TOKEN"); v != "" {
		c.Meta.AccessToken = v
	}
	if v := os.Getenv("META_ACCOUNT_ID"); v != "" {
		c.Meta.AccountID = v
	}
	if v := os.Getenv("GOOGLE_DEVELOPER_TOKEN"); v != "" {
		c.Google.DeveloperToken = v
	}
	if v := os.Getenv("GOOGLE_ACCESS_TOKEN"); v != "" {
		c.Google.AccessToken = v
	}
	if v := os.Getenv("GOOGLE_CUSTOMER_ID"); v != "" {
		c.Google.CustomerID = v
	}
	if v := os.Getenv("GOOGLE_LOGIN_CUSTOMER_ID"); v != "" {
		c.Google.LoginCustomerID = v
	}
	if v := os.Getenv("SHOPIFY_SHOP_DOMAIN"); v != "" {
		c.Shopify.ShopDomain = v
	}
	if v := os.Getenv("SHOPIFY_ACCESS_TOKEN"); v != "" {
		c.Shopify.AccessToken = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Export.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Export.Topic = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Report.FetchTimeout == 0 {
		c.Report.FetchTimeout = 30 * time.Second
	}
	if c.Report.CacheTTL == 0 {
		c.Report.CacheTTL = 5 * time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks that the configuration can run at all. Meta and Shopify
// are required sources; Google is optional and only checked for internal
// consistency.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if !c.MetaEnabled() {
		return fmt.Errorf("meta.access_token and meta.account_id are required")
	}
	if c.Shopify.ShopDomain == "" || c.Shopify.AccessToken == "" {
		return fmt.Errorf("shopify.shop_domain and shopify.access_token are required")
	}
	if c.Export.Enabled {
		if len(c.Export.Brokers) == 0 {
			return fmt.Errorf("export.brokers cannot be empty when export is enabled")
		}
		if c.Export.Topic == "" {
			return fmt.Errorf("export.topic is required when export is enabled")
		}
	}
	return nil
}
