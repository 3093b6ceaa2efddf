package config

// Default configuration constants
const (
	defaultLogLevel = "info"

	// Replay surface, in cells.
	defaultSurfaceWidth  = 120
	defaultSurfaceHeight = 36

	defaultAccentColor = "#7D56F4"
	defaultBorderColor = "#5C5C70"
	defaultMutedColor  = "#8A8A99"

	minSurfaceWidth  = 8
	minSurfaceHeight = 4
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: LogFormatConsole,
		},
		Workspace: WorkspaceConfig{
			DefaultOrientation:   SplitHorizontal,
			ShareSessionOnSplit:  false,
			SurfaceWidth:         defaultSurfaceWidth,
			SurfaceHeight:        defaultSurfaceHeight,
			HideSinglePaneChrome: true,
		},
		Appearance: AppearanceConfig{
			Accent: defaultAccentColor,
			Border: defaultBorderColor,
			Muted:  defaultMutedColor,
		},
	}
}
