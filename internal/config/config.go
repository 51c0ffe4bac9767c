package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the client configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	TUI    TUIConfig    `toml:"tui"`
}

type ServerConfig struct {
	URL                string `toml:"url"`
	Username           string `toml:"username"`
	Password           string `toml:"password"`
	PasswordFile       string `toml:"password_file"`
	InsecureSkipVerify bool   `toml:"insecure_skip_verify"`
}

type TUIConfig struct {
	// Icons selects the volume list glyph set: auto, unicode or text.
	Icons string `toml:"icons"`
}

// Load reads the client configuration from the default location.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}

	path := filepath.Join(configDir, "sfcli", "config.toml")
	return LoadFrom(path)
}

// LoadFrom reads the client configuration from a specific file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Load password from file if specified
	if cfg.Server.PasswordFile != "" && cfg.Server.Password == "" {
		pwData, err := os.ReadFile(expandPath(cfg.Server.PasswordFile))
		if err == nil {
			cfg.Server.Password = strings.TrimSpace(string(pwData))
		}
	}

	return cfg, nil
}

// DefaultConfig returns the default client configuration. The defaults
// match a stock Starfish appliance, which serves its API over HTTPS with
// a self-signed certificate.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:                "https://localhost/api",
			Username:           "starfish",
			Password:           "starfish",
			InsecureSkipVerify: true,
		},
		TUI: TUIConfig{
			Icons: "auto",
		},
	}
}

// Save writes the configuration to the default location.
func (c *Config) Save() error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}

	dir := filepath.Join(configDir, "sfcli")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	return c.SaveTo(path)
}

// SaveTo writes the configuration to a specific file.
func (c *Config) SaveTo(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Set updates a configuration value by dotted key path.
func (c *Config) Set(key, value string) error {
	switch key {
	case "server.url":
		c.Server.URL = value
	case "server.username":
		c.Server.Username = value
	case "server.password":
		c.Server.Password = value
	case "server.insecure_skip_verify":
		c.Server.InsecureSkipVerify = value == "true"
	case "tui.icons":
		c.TUI.Icons = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Get returns a configuration value by dotted key path.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "server.url":
		return c.Server.URL, nil
	case "server.username":
		return c.Server.Username, nil
	case "server.password":
		return c.Server.Password, nil
	case "server.insecure_skip_verify":
		return fmt.Sprintf("%v", c.Server.InsecureSkipVerify), nil
	case "tui.icons":
		return c.TUI.Icons, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
