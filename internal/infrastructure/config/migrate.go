package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// MigrationResult describes how a user config file differs from the
// current set of keys.
type MigrationResult struct {
	ConfigFile string
	// MissingKeys are known keys absent from the file; defaults apply.
	MissingKeys []string
	// UnknownKeys are present in the file but ignored by splitforest.
	UnknownKeys []string
}

// NeedsMigration reports whether the file lacks any known key.
func (r *MigrationResult) NeedsMigration() bool {
	return r != nil && len(r.MissingKeys) > 0
}

// Migrator compares a user config file against the defaults and fills in
// missing keys.
type Migrator struct {
	defaultViper *viper.Viper
}

// NewMigrator creates a new Migrator instance.
func NewMigrator() *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{defaultViper: v}
}

// CheckMigration compares the user config file against the default keys.
// A missing file needs no migration and yields nil.
func (m *Migrator) CheckMigration() (*MigrationResult, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to get config file path: %w", err)
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		return nil, nil
	}

	userKeys, err := userConfigKeys(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	known := make(map[string]bool)
	result := &MigrationResult{ConfigFile: configFile}
	for _, key := range m.defaultViper.AllKeys() {
		known[key] = true
		if !userKeys[key] {
			result.MissingKeys = append(result.MissingKeys, key)
		}
	}
	for key := range userKeys {
		if !known[key] {
			result.UnknownKeys = append(result.UnknownKeys, key)
		}
	}
	sort.Strings(result.MissingKeys)
	sort.Strings(result.UnknownKeys)
	return result, nil
}

// Migrate rewrites the user config with every missing key set to its
// default. User values are kept; unknown keys are dropped. Returns the keys
// that were added.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil {
		return nil, err
	}
	if !result.NeedsMigration() && (result == nil || len(result.UnknownKeys) == 0) {
		return nil, nil
	}

	userViper := viper.New()
	userViper.SetConfigFile(result.ConfigFile)
	userViper.SetConfigType("toml")
	(&Manager{viper: userViper}).setDefaults()
	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	merged := &Config{}
	if err := userViper.Unmarshal(merged); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	normalizeConfig(merged)
	if err := validateConfig(merged); err != nil {
		return nil, fmt.Errorf("refusing to migrate an invalid config: %w", err)
	}
	if err := WriteConfigOrdered(merged, result.ConfigFile); err != nil {
		return nil, err
	}
	return result.MissingKeys, nil
}

// userConfigKeys returns the dotted keys defined in a TOML file.
func userConfigKeys(configFile string) (map[string]bool, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenKeys(raw, "", keys)
	return keys, nil
}

func flattenKeys(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}
