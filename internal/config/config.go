// Package config handles configuration loading for the wmsinfo tool.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so credentials embedded in
// service URLs can be injected at runtime.
//
// # Example Configuration
//
//	log:
//	  level: info
//
//	services:
//	  - name: national-roads
//	    url: https://maps.example.com/wms?map=roads
//	    version: 1.3.0
//	  - name: legacy-cadastre
//	    url: https://old.example.com/cgi-bin/mapserv?user=${WMS_USER}
//	    version: 1.1.1
//	    timeout: 10s
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/productinfo/Mapsui/pkg/wms"
)

// Config is the root configuration structure
type Config struct {
	Log      LogConfig       `yaml:"log"`
	Services []ServiceConfig `yaml:"services"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string `yaml:"level"`
}

// ServiceConfig describes one WMS endpoint to inspect
type ServiceConfig struct {
	// Name identifies the service in output and logs
	Name string `yaml:"name"`
	// URL is the base service endpoint; discovery parameters are injected
	// automatically when missing
	URL string `yaml:"url"`
	// Version is the optional protocol version hint (empty lets the server
	// pick)
	Version string `yaml:"version"`
	// Timeout bounds the capabilities fetch for this service
	Timeout Duration `yaml:"timeout"`
}

// Duration decodes YAML values like "10s" or "1m30s". yaml.v3 has no native
// time.Duration support.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	for i := range c.Services {
		if c.Services[i].Name == "" {
			c.Services[i].Name = c.Services[i].URL
		}
		if c.Services[i].Timeout == 0 {
			c.Services[i].Timeout = Duration(30 * time.Second)
		}
	}
}

func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level)
	}

	if len(c.Services) == 0 {
		return fmt.Errorf("at least one service must be configured")
	}
	for i, svc := range c.Services {
		if svc.URL == "" {
			return fmt.Errorf("services[%d].url is required", i)
		}
		if svc.Version != "" && !supportedVersion(svc.Version) {
			return fmt.Errorf("services[%d].version '%s' is not supported (one of %v)",
				i, svc.Version, wms.SupportedVersions())
		}
	}
	return nil
}

func supportedVersion(v string) bool {
	for _, s := range wms.SupportedVersions() {
		if s == v {
			return true
		}
	}
	return false
}
