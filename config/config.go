// Package config loads client defaults from a TOML file and the
// GRADIENTAI_* environment, and bridges them into provider options.
// Precedence: built-in defaults, then file, then environment.
package config

import (
	"os"
	"strconv"

	"github.com/digitalocean/gradientai-go/provider"
)

// InferenceConfig is the [inference] table of the config file.
type InferenceConfig struct {
	BaseURL     string   `toml:"base_url"`
	Model       string   `toml:"model"`
	Temperature *float64 `toml:"temperature,omitempty"`
	TopP        *float64 `toml:"top_p,omitempty"`
	UserAgent   string   `toml:"user_agent,omitempty"`
	// AccessKey may be set here for convenience, but the
	// GRADIENTAI_ACCESS_KEY environment variable is preferred so the
	// key stays out of files.
	AccessKey string `toml:"access_key,omitempty"`
}

// FileConfig mirrors the on-disk TOML layout.
type FileConfig struct {
	Inference InferenceConfig `toml:"inference"`
}

// Config is the resolved, flat view handed to callers.
type Config struct {
	BaseURL     string
	Model       string
	Temperature *float64
	TopP        *float64
	UserAgent   string
	AccessKey   string
}

func (c *Config) applyFile(fc *FileConfig) {
	if fc == nil {
		return
	}
	if fc.Inference.BaseURL != "" {
		c.BaseURL = fc.Inference.BaseURL
	}
	if fc.Inference.Model != "" {
		c.Model = fc.Inference.Model
	}
	if fc.Inference.Temperature != nil {
		c.Temperature = fc.Inference.Temperature
	}
	if fc.Inference.TopP != nil {
		c.TopP = fc.Inference.TopP
	}
	if fc.Inference.UserAgent != "" {
		c.UserAgent = fc.Inference.UserAgent
	}
	if fc.Inference.AccessKey != "" {
		c.AccessKey = fc.Inference.AccessKey
	}
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GRADIENTAI_ACCESS_KEY"); key != "" {
		c.AccessKey = key
	}
	if baseURL := os.Getenv("GRADIENTAI_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}
	if model := os.Getenv("GRADIENTAI_MODEL"); model != "" {
		c.Model = model
	}
	if temp := os.Getenv("GRADIENTAI_TEMPERATURE"); temp != "" {
		if v, err := strconv.ParseFloat(temp, 64); err == nil {
			c.Temperature = &v
		}
	}
}

// Load resolves configuration from the default file location (if the
// file exists) and the environment.
func Load() (*Config, error) {
	return LoadFrom(ConfigFilePath())
}

// LoadFrom is Load with an explicit file path. A missing file is not an
// error: defaults plus environment still apply.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	fc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyFile(fc)
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Options expands the resolved configuration into the access key and
// option list provider.New expects.
func (c *Config) Options() (string, []provider.Option) {
	opts := []provider.Option{}
	if c.BaseURL != "" {
		opts = append(opts, provider.WithBaseURL(c.BaseURL))
	}
	if c.Model != "" {
		opts = append(opts, provider.WithModel(c.Model))
	}
	if c.Temperature != nil {
		opts = append(opts, provider.WithTemperature(*c.Temperature))
	}
	if c.TopP != nil {
		opts = append(opts, provider.WithTopP(*c.TopP))
	}
	if c.UserAgent != "" {
		opts = append(opts, provider.WithUserAgent(c.UserAgent))
	}
	return c.AccessKey, opts
}
