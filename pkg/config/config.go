package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:squatwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	CertStream CertStreamConfig `yaml:"certstream" json:"certstream" jsonschema:"description=Certificate transparency stream configuration"`

	Lookup LookupConfig `yaml:"lookup" json:"lookup" jsonschema:"description=Registration lookup configuration"`

	Email EmailConfig `yaml:"email" json:"email" jsonschema:"description=Email alert configuration"`
}

// CertStreamConfig holds certificate-transparency feed settings
type CertStreamConfig struct {
	URL            string        `yaml:"url" json:"url" jsonschema:"default=wss://certstream.calidog.io,description=Certstream websocket URL"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay" json:"reconnect_delay" jsonschema:"default=5s,description=Delay before reconnecting a dropped stream"`
}

// LookupConfig holds registration-lookup feed settings
type LookupConfig struct {
	APIURL  string        `yaml:"api_url" json:"api_url" jsonschema:"required,description=Registration lookup API base URL"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-request lookup timeout"`
}

// EmailConfig holds alert delivery settings; alerting is disabled when the
// destination address is empty
type EmailConfig struct {
	Endpoint   string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.emailjs.com/api/v1.0/email/send,description=Email service endpoint"`
	ServiceID  string        `yaml:"service_id" json:"service_id" jsonschema:"description=Email service identifier"`
	TemplateID string        `yaml:"template_id" json:"template_id" jsonschema:"description=Email template identifier"`
	UserID     string        `yaml:"user_id" json:"user_id" jsonschema:"description=Email service public key (can use environment variable)"`
	AlertEmail string        `yaml:"alert_email" json:"alert_email" jsonschema:"description=Destination address for threat alerts"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Email request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:squatwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for certstream
	if cfg.CertStream.URL == "" {
		cfg.CertStream.URL = "wss://certstream.calidog.io"
	}
	if cfg.CertStream.ReconnectDelay == 0 {
		cfg.CertStream.ReconnectDelay = 5 * time.Second
	}

	// set defaults for lookup
	if cfg.Lookup.Timeout == 0 {
		cfg.Lookup.Timeout = 15 * time.Second
	}

	// set defaults for email
	if cfg.Email.Endpoint == "" {
		cfg.Email.Endpoint = "https://api.emailjs.com/api/v1.0/email/send"
	}
	if cfg.Email.Timeout == 0 {
		cfg.Email.Timeout = 10 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate lookup config
	if cfg.Lookup.APIURL == "" {
		return fmt.Errorf("lookup.api_url is required")
	}
	if cfg.Lookup.Timeout < time.Second {
		return fmt.Errorf("lookup timeout must be at least 1 second")
	}

	// validate certstream config
	if cfg.CertStream.ReconnectDelay < time.Second {
		return fmt.Errorf("certstream reconnect_delay must be at least 1 second")
	}

	// validate email config, identifiers are required once a destination is set
	if cfg.Email.AlertEmail != "" {
		if cfg.Email.ServiceID == "" || cfg.Email.TemplateID == "" || cfg.Email.UserID == "" {
			return fmt.Errorf("email.service_id, email.template_id and email.user_id are required when alert_email is set")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCertStreamConfig returns certstream feed configuration
func (c *Config) GetCertStreamConfig() CertStreamConfig {
	return c.CertStream
}

// GetLookupConfig returns registration lookup configuration
func (c *Config) GetLookupConfig() LookupConfig {
	return c.Lookup
}

// GetEmailConfig returns email alert configuration
func (c *Config) GetEmailConfig() EmailConfig {
	return c.Email
}
