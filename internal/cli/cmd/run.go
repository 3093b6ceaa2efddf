package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/splitforest/internal/cli/model"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
	"github.com/bnema/splitforest/internal/ui/coordinator"
)

var (
	runTitle   string
	runNoMouse bool
	runNoWatch bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive split workbench",
	Long: `Open a full-screen workbench with one tab and one pane.

Split panes with | and -, move focus with the arrow keys or h/j/k/l,
click a pane to focus it, and press ? for every binding. Logs go to the
configured log file while the workbench owns the terminal. Config file
changes are applied without a restart.`,
	RunE: runWorkbench,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runTitle, "title", "t", "", "title of the first tab")
	runCmd.Flags().BoolVar(&runNoMouse, "no-mouse", false, "disable click-to-focus")
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runWorkbench(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if _, err := app.UseFileLog(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, logs go to stderr\n", err)
	}
	ctx := logging.WithComponent(app.Ctx(), "run")
	log := logging.FromContext(ctx)

	ws := app.Config.Workspace
	wb := coordinator.NewDefaultWorkbench(ctx, ws, ws.SurfaceWidth, ws.SurfaceHeight)
	m := model.NewWorkbenchModel(ctx, app.Theme, model.WorkbenchModelConfig{
		Workbench:    wb,
		Appearance:   app.Config.Appearance,
		InitialTitle: runTitle,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !runNoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	if mgr := config.GetManager(); mgr != nil && !runNoWatch {
		mgr.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		if err := mgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	_, runErr := p.Run()
	if runErr != nil {
		log.Error().Err(runErr).Msg("workbench exited with error")
	}
	return errors.Join(runErr, wb.Shutdown(ctx))
}
