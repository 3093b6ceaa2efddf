package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/splitforest/internal/cli/model"
	"github.com/bnema/splitforest/internal/cli/scenario"
	"github.com/bnema/splitforest/internal/logging"
	"github.com/bnema/splitforest/internal/ui/coordinator"
)

var (
	replayFrames bool
	replayQuiet  bool
	replayWidth  int
	replayHeight int
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Run a scripted scenario and print the resulting layout",
	Long: `Run the steps of a YAML scenario against a fresh workbench, checking
every tree after each step, and print the final screen.

The screen size comes from the flags, then the scenario, then the
terminal when stdout is one, then workspace.surface_width/height.

Example scenario:

  name: two panes
  steps:
    - action: new_tab
      title: work
    - action: split
      orientation: horizontal
    - action: focus
      direction: left
    - action: expect
      expect:
        panes: 2
        focused_pane: 0`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVarP(&replayFrames, "frames", "f", false, "print the screen after every step")
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "only report failures")
	replayCmd.Flags().IntVar(&replayWidth, "width", 0, "screen width in cells")
	replayCmd.Flags().IntVar(&replayHeight, "height", 0, "screen height in cells, tab bar included")
}

func runReplay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "replay")

	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	settings := s.ApplySettings(app.Config.Workspace)
	width, height := settings.SurfaceWidth, settings.SurfaceHeight
	if s.Width == 0 && s.Height == 0 {
		if w, h, ok := terminalSize(); ok {
			width, height = w, h
		}
	}
	if replayWidth > 0 {
		width = replayWidth
	}
	if replayHeight > 0 {
		height = replayHeight
	}

	wb := coordinator.NewDefaultWorkbench(ctx, settings, width, height)
	defer func() {
		_ = wb.Shutdown(ctx)
	}()

	ok := app.Theme.SuccessStyle
	subtle := app.Theme.Subtle
	runner := scenario.NewRunner(wb)
	runner.OnStep(func(r scenario.Result) {
		if replayQuiet {
			return
		}
		fmt.Printf("%s %s %s\n",
			ok.Render(fmt.Sprintf("%3d", r.Index)),
			lipgloss.NewStyle().Bold(true).Render(r.Step.Action),
			subtle.Render(r.Detail))
		if replayFrames {
			fmt.Println(model.RenderScreen(wb, app.Theme, app.Config.Appearance))
		}
	})

	_, runErr := runner.Run(ctx, s)
	if !replayFrames && !replayQuiet {
		if screen := model.RenderScreen(wb, app.Theme, app.Config.Appearance); screen != "" {
			fmt.Println(screen)
		}
	}
	if runErr != nil {
		fmt.Println(app.Theme.ErrorStyle.Render(runErr.Error()))
		return fmt.Errorf("scenario %q failed", s.Name)
	}
	return nil
}

// terminalSize reports the size of stdout when it is a terminal.
func terminalSize() (width, height int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
