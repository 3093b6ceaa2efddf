package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks a configuration without loading it.
func Validate(config *Config) error {
	return validateConfig(config)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateWorkspace(config *Config) []string {
	var validationErrors []string
	switch config.Workspace.DefaultOrientation {
	case SplitHorizontal, SplitVertical:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("workspace.default_orientation must be horizontal or vertical (got %q)", config.Workspace.DefaultOrientation))
	}
	if config.Workspace.SurfaceWidth < minSurfaceWidth {
		validationErrors = append(validationErrors, fmt.Sprintf("workspace.surface_width must be at least %d", minSurfaceWidth))
	}
	if config.Workspace.SurfaceHeight < minSurfaceHeight {
		validationErrors = append(validationErrors, fmt.Sprintf("workspace.surface_height must be at least %d", minSurfaceHeight))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	colors := []struct {
		key   string
		value string
	}{
		{"appearance.accent", config.Appearance.Accent},
		{"appearance.border", config.Appearance.Border},
		{"appearance.muted", config.Appearance.Muted},
	}
	for _, c := range colors {
		if !isValidColor(c.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s must be a hex color (#RGB or #RRGGBB) or an ANSI color 0-255 (got %q)", c.key, c.value))
		}
	}
	return validationErrors
}

func isValidColor(value string) bool {
	if hexColor.MatchString(value) {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}
