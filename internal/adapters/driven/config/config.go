// Package config loads and persists the docket configuration file.
//
// Configuration is an explicit typed struct serialised as TOML. Callers
// read fields directly; there is no key-value lookup layer and no
// process-global state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied to zero-valued fields on load.
const (
	// DefaultListType is the document listing variant exported.
	DefaultListType = "all"

	// DefaultFilePrefix names reports <prefix>_<date>.csv.
	DefaultFilePrefix = "documents"

	// DefaultDeliveryBackend delivers to a local directory.
	DefaultDeliveryBackend = "local"
)

// Config is the complete docket configuration.
type Config struct {
	// API configures the catalog API client.
	API APIConfig `toml:"api"`

	// Auth configures the token endpoint credentials.
	Auth AuthConfig `toml:"auth"`

	// Export configures what an export run covers.
	Export ExportConfig `toml:"export"`

	// Delivery configures where reports are stored.
	Delivery DeliveryConfig `toml:"delivery"`

	// Storage configures local state such as the run ledger.
	Storage StorageConfig `toml:"storage"`
}

// APIConfig configures the catalog API client.
type APIConfig struct {
	// BaseURL is the API origin, e.g. "https://teamdocs.example.com".
	BaseURL string `toml:"base_url"`

	// PageSize is the per_page value for list requests. 0 = client default.
	PageSize int `toml:"page_size"`

	// Concurrency caps simultaneous page requests per fetch. 0 = client default.
	Concurrency int `toml:"concurrency"`

	// RequestsPerSecond throttles the client. 0 = client default.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// AuthConfig configures the client-credentials exchange.
type AuthConfig struct {
	// TokenURL is the token endpoint.
	TokenURL string `toml:"token_url"`

	// ClientID identifies the API client.
	ClientID string `toml:"client_id"`

	// ClientSecret authenticates the API client.
	ClientSecret string `toml:"client_secret"`
}

// ExportConfig configures what an export run covers.
type ExportConfig struct {
	// Teams are the team ids to export.
	Teams []string `toml:"teams"`

	// ListType is the document listing variant. Default: DefaultListType.
	ListType string `toml:"list_type"`

	// FilePrefix names reports <prefix>_<date>.csv. Default: DefaultFilePrefix.
	FilePrefix string `toml:"file_prefix"`
}

// DeliveryConfig configures where reports are stored.
type DeliveryConfig struct {
	// Backend selects the delivery adapter: "local" or "dropbox".
	Backend string `toml:"backend"`

	// DropboxToken authenticates the Dropbox backend.
	DropboxToken string `toml:"dropbox_token"`

	// DropboxFolder is the Dropbox folder reports are stored in.
	DropboxFolder string `toml:"dropbox_folder"`

	// LocalDir is the directory the local backend writes to. Default: ".".
	LocalDir string `toml:"local_dir"`
}

// StorageConfig configures local state.
type StorageConfig struct {
	// DataDir holds the run ledger database. Default: the config directory.
	DataDir string `toml:"data_dir"`
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".docket", "config.toml"), nil
}

// Load reads the configuration at path and applies defaults.
// A missing file yields a defaulted configuration, not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults(filepath.Dir(path))
	return cfg, nil
}

// Save writes the configuration to path with restricted permissions.
// The parent directory is created when missing.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// Restricted permissions: the file holds the client secret.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the configuration is complete enough to export.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("config: api.base_url is required")
	}
	if c.Auth.TokenURL == "" {
		return errors.New("config: auth.token_url is required")
	}
	if c.Auth.ClientID == "" || c.Auth.ClientSecret == "" {
		return errors.New("config: auth credentials are required, run 'docket auth set'")
	}

	switch c.Delivery.Backend {
	case "local":
	case "dropbox":
		if c.Delivery.DropboxToken == "" {
			return errors.New("config: delivery.dropbox_token is required for the dropbox backend")
		}
	default:
		return fmt.Errorf("config: unknown delivery backend %q", c.Delivery.Backend)
	}

	return nil
}

// applyDefaults fills zero-valued fields. configDir anchors relative state.
func (c *Config) applyDefaults(configDir string) {
	if c.Export.ListType == "" {
		c.Export.ListType = DefaultListType
	}
	if c.Export.FilePrefix == "" {
		c.Export.FilePrefix = DefaultFilePrefix
	}
	if c.Delivery.Backend == "" {
		c.Delivery.Backend = DefaultDeliveryBackend
	}
	if c.Delivery.LocalDir == "" {
		c.Delivery.LocalDir = "."
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = configDir
	}
}
