package config

// Config represents the complete configuration for splitforest.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Workspace controls how tabs and splits are created.
	Workspace WorkspaceConfig `mapstructure:"workspace" yaml:"workspace" toml:"workspace"`
	// Appearance controls colors and decorations of the rendered surface.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// LogFormat selects the zerolog output encoding.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format LogFormat `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// File is where the interactive workbench writes its log, since it owns
	// the terminal. Empty means <state dir>/splitforest.log.
	File string `mapstructure:"file" yaml:"file" toml:"file"`
}

// SplitOrientation names the direction of a new split in config files.
type SplitOrientation string

const (
	// SplitHorizontal places the new pane to the right.
	SplitHorizontal SplitOrientation = "horizontal"
	// SplitVertical places the new pane below.
	SplitVertical SplitOrientation = "vertical"
)

// WorkspaceConfig holds tab and split behavior.
type WorkspaceConfig struct {
	// DefaultOrientation is used by the generic "split" action.
	DefaultOrientation SplitOrientation `mapstructure:"default_orientation" yaml:"default_orientation" toml:"default_orientation" jsonschema:"enum=horizontal,enum=vertical"` //nolint:lll // struct tags exceed lll limit
	// ShareSessionOnSplit makes a new pane view the focused pane's session
	// instead of starting a fresh one.
	ShareSessionOnSplit bool `mapstructure:"share_session_on_split" yaml:"share_session_on_split" toml:"share_session_on_split"`
	// SurfaceWidth and SurfaceHeight size the surface when no terminal is attached (replay).
	SurfaceWidth  int `mapstructure:"surface_width" yaml:"surface_width" toml:"surface_width" jsonschema:"minimum=8"`
	SurfaceHeight int `mapstructure:"surface_height" yaml:"surface_height" toml:"surface_height" jsonschema:"minimum=4"`
	// HideSinglePaneChrome drops pane borders while a tab has a single pane.
	HideSinglePaneChrome bool `mapstructure:"hide_single_pane_chrome" yaml:"hide_single_pane_chrome" toml:"hide_single_pane_chrome"`
}

// AppearanceConfig holds the color palette (hex "#RRGGBB" or ANSI 0-255).
type AppearanceConfig struct {
	Accent      string `mapstructure:"accent" yaml:"accent" toml:"accent"`
	Border      string `mapstructure:"border" yaml:"border" toml:"border"`
	Muted       string `mapstructure:"muted" yaml:"muted" toml:"muted"`
	ShowNodeIDs bool   `mapstructure:"show_node_ids" yaml:"show_node_ids" toml:"show_node_ids"`
}
