package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/splitforest/internal/cli/styles"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
)

var (
	configYes        bool
	configForce      bool
	configWrite      bool
	configShowUnknown bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, create and migrate the splitforest configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long: `Write the default configuration and its JSON schema next to it.

An existing config file is left alone unless --force is given.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the config file",
	RunE:  runConfigSchema,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check if any new settings are available.`,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults and adds any missing settings.

Existing settings are never modified. Only missing keys are added with default values.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd, configSchemaCmd, configStatusCmd, configMigrateCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVarP(&configWrite, "write", "w", false, "write the schema file instead of printing it")
	configStatusCmd.Flags().BoolVar(&configShowUnknown, "unknown", false, "also list keys splitforest ignores")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out, err := config.Encode(app.Config)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Println(renderer.RenderUpToDate(path))
		fmt.Println(app.Theme.Subtle.Render("  Use --force to overwrite it."))
		return nil
	}
	if err := config.EnsureDirectories(); err != nil {
		return err
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Println(renderer.RenderWritten("default config", path))

	schemaPath, err := config.GenerateSchemaFile()
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("failed to write config schema")
		return nil
	}
	fmt.Println(renderer.RenderWritten("schema", schemaPath))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if configWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderWritten("schema", path))
		return nil
	}
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if cfgErr := app.ConfigErr(); cfgErr != nil {
		fmt.Println(renderer.RenderError(cfgErr))
	}

	result, err := config.NewMigrator().CheckMigration()
	switch {
	case err != nil:
		fmt.Println(renderer.RenderError(err))
		return nil
	case result == nil:
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	if configShowUnknown {
		fmt.Print(renderer.RenderKeys("Ignored keys", result.UnknownKeys))
	}
	if !result.NeedsMigration() {
		fmt.Println(renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, len(result.MissingKeys)))
	fmt.Println(renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	migrator := config.NewMigrator()

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	result, err := migrator.CheckMigration()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if result == nil {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}
	if !result.NeedsMigration() {
		fmt.Println(renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, len(result.MissingKeys)))
	fmt.Print(renderer.RenderKeys("Missing settings", result.MissingKeys))

	if configYes {
		added, err := migrator.Migrate()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Println(renderer.RenderMigrationSuccess(len(added), configFile))
		return nil
	}

	return runMigrateWithConfirmation(renderer, app.Theme, migrator, configFile)
}

type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel asks for confirmation, then migrates behind a spinner.
type migrateModel struct {
	spinner    spinner.Model
	renderer   *styles.ConfigRenderer
	confirm    styles.ConfirmModel
	state      migrateState
	migrator   *config.Migrator
	configFile string

	result   string
	err      error
	quitting bool
}

type migrateResultMsg struct {
	added []string
	err   error
}

func newMigrateModel(
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	migrator *config.Migrator,
	configFile string,
) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		spinner:    s,
		renderer:   renderer,
		confirm:    styles.NewConfirm(theme, "Add these settings with default values?"),
		state:      migrateStateConfirm,
		migrator:   migrator,
		configFile: configFile,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderMigrationSuccess(len(msg.added), m.configFile)
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = migrateStateRunning
	return m, m.runMigration()
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err)
	case m.state == migrateStateDone:
		return m.result
	case m.state == migrateStateRunning:
		return fmt.Sprintf("\n  %s migrating...\n", m.spinner.View())
	}
	return m.confirm.View()
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		added, err := m.migrator.Migrate()
		return migrateResultMsg{added: added, err: err}
	}
}

func runMigrateWithConfirmation(
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	migrator *config.Migrator,
	configFile string,
) error {
	final, err := tea.NewProgram(newMigrateModel(renderer, theme, migrator, configFile)).Run()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if m, ok := final.(migrateModel); ok && m.err != nil {
		return errors.New("migration failed")
	}
	return nil
}
