package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/splitforest/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// SPLITFOREST_WORKSPACE_SURFACE_WIDTH and friends are picked up by
	// AutomaticEnv. Logging keeps the shorter names used before a config
	// file exists.
	v.SetEnvPrefix("SPLITFOREST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SPLITFOREST_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITFOREST_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SPLITFOREST_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITFOREST_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables,
// creating the default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// normalizeConfig folds case and fills values that may be left empty.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch LogFormat(strings.ToLower(string(config.Logging.Format))) {
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	default:
		config.Logging.Format = LogFormatConsole
	}
	config.Logging.File = strings.TrimSpace(config.Logging.File)

	// Unknown orientations are left alone so validation can name them.
	switch SplitOrientation(strings.ToLower(string(config.Workspace.DefaultOrientation))) {
	case "":
		config.Workspace.DefaultOrientation = SplitHorizontal
	case SplitHorizontal:
		config.Workspace.DefaultOrientation = SplitHorizontal
	case SplitVertical:
		config.Workspace.DefaultOrientation = SplitVertical
	}

	config.Appearance.Accent = strings.TrimSpace(config.Appearance.Accent)
	config.Appearance.Border = strings.TrimSpace(config.Appearance.Border)
	config.Appearance.Muted = strings.TrimSpace(config.Appearance.Muted)
}

// Orientation converts the configured default to the tree orientation.
func (w WorkspaceConfig) Orientation() entity.Orientation {
	if w.DefaultOrientation == SplitVertical {
		return entity.OrientationVertical
	}
	return entity.OrientationHorizontal
}

// LogFilePath returns the configured log file or the XDG state default.
func (c *Config) LogFilePath() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	return GetLogFile()
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	saved := *cfg
	m.config = &saved
	// The watcher sees our own write; the in-memory config is already current.
	m.skipNextReload = m.watching
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := GenerateSchemaFile(); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setWorkspaceDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", string(defaults.Logging.Format))
	m.viper.SetDefault("logging.file", defaults.Logging.File)
}

func (m *Manager) setWorkspaceDefaults(defaults *Config) {
	m.viper.SetDefault("workspace.default_orientation", string(defaults.Workspace.DefaultOrientation))
	m.viper.SetDefault("workspace.share_session_on_split", defaults.Workspace.ShareSessionOnSplit)
	m.viper.SetDefault("workspace.surface_width", defaults.Workspace.SurfaceWidth)
	m.viper.SetDefault("workspace.surface_height", defaults.Workspace.SurfaceHeight)
	m.viper.SetDefault("workspace.hide_single_pane_chrome", defaults.Workspace.HideSinglePaneChrome)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.accent", defaults.Appearance.Accent)
	m.viper.SetDefault("appearance.border", defaults.Appearance.Border)
	m.viper.SetDefault("appearance.muted", defaults.Appearance.Muted)
	m.viper.SetDefault("appearance.show_node_ids", defaults.Appearance.ShowNodeIDs)
}

var (
	globalManager *Manager
	globalOnce    sync.Once
	errGlobal     error
)

// Init initializes the global configuration manager once.
func Init() error {
	globalOnce.Do(func() {
		var m *Manager
		m, errGlobal = NewManager()
		if errGlobal != nil {
			return
		}
		if errGlobal = m.Load(); errGlobal != nil {
			return
		}
		globalManager = m
	})
	return errGlobal
}

// Get returns the global configuration, or the defaults before Init.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
