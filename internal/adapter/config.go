package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Recipes RecipesConfig `mapstructure:"recipes"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig locates the local database
type StorageConfig struct {
	Path       string `mapstructure:"path"`        // Directory holding freshbites.db; "memory" disables persistence
	QuotaBytes int    `mapstructure:"quota_bytes"` // Negative disables the quota
}

// SeedConfig overrides the built-in catalog
type SeedConfig struct {
	File string `mapstructure:"file"` // JSON array of recipes; empty uses the embedded catalog
}

// RecipesConfig holds recipe store settings
type RecipesConfig struct {
	IDScheme string `mapstructure:"id_scheme"` // "timestamp" or "ulid"
}

// ViewerConfig picks the program that opens recipe images
type ViewerConfig struct {
	Command string   `mapstructure:"command"` // Empty uses the system default
	Args    []string `mapstructure:"args"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"` // "grid" or "list"
	PageSize    int    `mapstructure:"page_size"`
	GridColumns int    `mapstructure:"grid_columns"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MemoryStorage is the storage.path value that keeps everything in memory
const MemoryStorage = "memory"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: defaultDataPath(),
		},
		Recipes: RecipesConfig{
			IDScheme: "timestamp",
		},
		Viewer: ViewerConfig{
			Args: []string{},
		},
		UI: UIConfig{
			DefaultView: "grid",
			PageSize:    6,
			GridColumns: 3,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "freshbites.log"),
			Level: "INFO",
		},
	}
}

// Validate rejects settings the program cannot run with
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.UI.DefaultView) {
	case "grid", "list":
	default:
		errs = append(errs, fmt.Errorf("ui.default_view must be grid or list, got %q", c.UI.DefaultView))
	}
	if c.UI.PageSize < 1 {
		errs = append(errs, fmt.Errorf("ui.page_size must be at least 1, got %d", c.UI.PageSize))
	}
	if c.UI.GridColumns < 1 {
		errs = append(errs, fmt.Errorf("ui.grid_columns must be at least 1, got %d", c.UI.GridColumns))
	}
	return errors.Join(errs...)
}

// StorageDir returns the database directory, or "" when persistence is disabled
func (c *Config) StorageDir() string {
	if strings.EqualFold(c.Storage.Path, MemoryStorage) {
		return ""
	}
	return expandHome(c.Storage.Path)
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "freshbites")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "freshbites")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "freshbites")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "freshbites")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.GetViper(), defaultConfigPath(), ".")
}

func loadConfig(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides, e.g. FRESHBITES_STORAGE_PATH
	v.SetEnvPrefix("FRESHBITES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// bindEnv registers every key so AutomaticEnv applies to Unmarshal
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"storage.path", "storage.quota_bytes",
		"seed.file",
		"recipes.id_scheme",
		"viewer.command",
		"ui.default_view", "ui.page_size", "ui.grid_columns",
		"logging.file", "logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	return saveConfig(viper.GetViper(), cfg, defaultConfigPath())
}

func saveConfig(v *viper.Viper, cfg *Config, configPath string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.quota_bytes", cfg.Storage.QuotaBytes)
	v.Set("seed.file", cfg.Seed.File)
	v.Set("recipes.id_scheme", cfg.Recipes.IDScheme)
	v.Set("viewer.command", cfg.Viewer.Command)
	v.Set("viewer.args", cfg.Viewer.Args)
	v.Set("ui.default_view", cfg.UI.DefaultView)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.grid_columns", cfg.UI.GridColumns)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResetStorage removes the local database, dropping likes, added recipes and
// the theme preference
func ResetStorage(cfg *Config) error {
	dir := cfg.StorageDir()
	if dir == "" {
		return nil
	}
	err := os.Remove(filepath.Join(dir, "freshbites.db"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
