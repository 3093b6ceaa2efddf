package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
	"github.com/bnema/splitforest/internal/ui/coordinator"
)

// ErrExpectationFailed is returned when an expect step does not hold.
var ErrExpectationFailed = errors.New("expectation failed")

// Result records one executed step.
type Result struct {
	Index  int
	Step   Step
	Detail string
}

// Runner executes scenarios against a workbench.
type Runner struct {
	wb        *coordinator.Workbench
	onStep    func(Result)
	lastMoved *bool
}

// NewRunner creates a runner driving wb.
func NewRunner(wb *coordinator.Workbench) *Runner {
	return &Runner{wb: wb}
}

// OnStep sets a callback run after every successful step.
func (r *Runner) OnStep(fn func(Result)) {
	r.onStep = fn
}

// ApplySettings returns base with the scenario's overrides applied.
func (s *Scenario) ApplySettings(base config.WorkspaceConfig) config.WorkspaceConfig {
	if s.Width > 0 {
		base.SurfaceWidth = s.Width
	}
	if s.Height > 0 {
		base.SurfaceHeight = s.Height
	}
	if s.Settings == nil {
		return base
	}
	if o, err := entity.ParseOrientation(s.Settings.DefaultOrientation); err == nil {
		base.DefaultOrientation = config.SplitOrientation(o.String())
	}
	if s.Settings.ShareSessionOnSplit != nil {
		base.ShareSessionOnSplit = *s.Settings.ShareSessionOnSplit
	}
	if s.Settings.HideSinglePaneChrome != nil {
		base.HideSinglePaneChrome = *s.Settings.HideSinglePaneChrome
	}
	return base
}

// Run executes the steps in order and stops at the first failure. Every
// step that changes the layout is followed by a full tree validation.
func (r *Runner) Run(ctx context.Context, s *Scenario) ([]Result, error) {
	log := logging.FromContext(ctx).With().Str("scenario", s.Name).Logger()
	log.Info().Int("steps", len(s.Steps)).Msg("running scenario")

	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		detail, err := r.runStep(ctx, step)
		if err == nil && step.Action != ActionExpect {
			err = r.wb.Validate()
		}
		if err != nil {
			log.Warn().Err(err).Int("step", i+1).Str("action", step.Action).Msg("scenario step failed")
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}

		res := Result{Index: i + 1, Step: step, Detail: detail}
		results = append(results, res)
		log.Debug().Int("step", res.Index).Str("action", step.Action).Str("detail", detail).Msg("scenario step done")
		if r.onStep != nil {
			r.onStep(res)
		}
	}

	log.Info().Int("tabs", len(r.wb.Tabs())).Msg("scenario finished")
	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) (string, error) {
	switch step.Action {
	case ActionNewTab:
		tab, err := r.wb.NewTab(ctx, step.Title)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("opened %s %q", tab.ID, tab.Title), nil

	case ActionSplit:
		orientation := entity.OrientationNone
		if step.Orientation != "" {
			o, err := entity.ParseOrientation(step.Orientation)
			if err != nil {
				return "", err
			}
			orientation = o
		}
		out, err := r.wb.SplitActive(ctx, orientation)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("split into %s and %s", out.First, out.Second), nil

	case ActionClose:
		leaf, err := r.wb.ActiveLeaf()
		if err != nil {
			return "", err
		}
		if err := r.wb.CloseActive(ctx); err != nil {
			return "", err
		}
		return fmt.Sprintf("closed %s", leaf), nil

	case ActionFocus:
		direction, err := entity.ParseDirection(step.Direction)
		if err != nil {
			return "", err
		}
		moved, err := r.wb.MoveFocus(ctx, direction)
		if err != nil {
			return "", err
		}
		r.lastMoved = &moved
		if !moved {
			return fmt.Sprintf("no pane %s", direction), nil
		}
		return r.describeFocus("moved focus " + string(direction))

	case ActionClick:
		ok, err := r.wb.FocusAt(ctx, step.At[0], step.At[1])
		if err != nil {
			return "", err
		}
		if !ok {
			return fmt.Sprintf("no pane at %d,%d", step.At[0], step.At[1]), nil
		}
		return r.describeFocus(fmt.Sprintf("clicked %d,%d", step.At[0], step.At[1]))

	case ActionClone:
		tab, err := r.wb.CloneActiveTab(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("cloned into %s", tab.ID), nil

	case ActionCloseTab:
		if err := r.wb.CloseActiveTab(ctx); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d tabs left", len(r.wb.Tabs())), nil

	case ActionNextTab:
		r.wb.NextTab()
		return fmt.Sprintf("active tab %d", r.wb.ActiveIndex()+1), nil

	case ActionPrevTab:
		r.wb.PrevTab()
		return fmt.Sprintf("active tab %d", r.wb.ActiveIndex()+1), nil

	case ActionSelect:
		if err := r.wb.SelectTab(step.Tab - 1); err != nil {
			return "", err
		}
		return fmt.Sprintf("active tab %d", step.Tab), nil

	case ActionResize:
		r.wb.Resize(ctx, step.Width, step.Height)
		return fmt.Sprintf("resized to %dx%d", step.Width, step.Height), nil

	case ActionExpect:
		return r.check(step.Expect)
	}
	return "", fmt.Errorf("unknown action %q", step.Action)
}

func (r *Runner) describeFocus(prefix string) (string, error) {
	leaf, err := r.wb.ActiveLeaf()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, focus on %s", prefix, leaf), nil
}

func (r *Runner) check(e *Expect) (string, error) {
	var failures []string
	var checked []string
	expectInt := func(name string, want *int, got func() (int, error)) {
		if want == nil {
			return
		}
		value, err := got()
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			return
		}
		if value != *want {
			failures = append(failures, fmt.Sprintf("%s: want %d, got %d", name, *want, value))
			return
		}
		checked = append(checked, fmt.Sprintf("%s=%d", name, value))
	}

	expectInt("tabs", e.Tabs, func() (int, error) { return len(r.wb.Tabs()), nil })
	expectInt("active_tab", e.ActiveTab, func() (int, error) { return r.wb.ActiveIndex() + 1, nil })
	expectInt("sessions", e.Sessions, func() (int, error) { return len(r.wb.Views().Sessions()), nil })
	expectInt("panes", e.Panes, func() (int, error) {
		leaves, err := r.activeLeaves()
		return len(leaves), err
	})
	expectInt("focused_pane", e.FocusedPane, func() (int, error) {
		leaves, err := r.activeLeaves()
		if err != nil {
			return 0, err
		}
		leaf, err := r.wb.ActiveLeaf()
		if err != nil {
			return 0, err
		}
		return slices.Index(leaves, leaf), nil
	})

	if e.Moved != nil {
		switch {
		case r.lastMoved == nil:
			failures = append(failures, "moved: no focus step ran")
		case *r.lastMoved != *e.Moved:
			failures = append(failures, fmt.Sprintf("moved: want %t, got %t", *e.Moved, *r.lastMoved))
		default:
			checked = append(checked, fmt.Sprintf("moved=%t", *r.lastMoved))
		}
	}

	if len(failures) > 0 {
		return "", fmt.Errorf("%w: %s", ErrExpectationFailed, strings.Join(failures, "; "))
	}
	return strings.Join(checked, " "), nil
}

func (r *Runner) activeLeaves() ([]entity.NodeID, error) {
	tab, ok := r.wb.ActiveTab()
	if !ok {
		return nil, coordinator.ErrNoActiveTab
	}
	root, ok := r.wb.Root(tab)
	if !ok {
		return nil, fmt.Errorf("%w: tab %s has no tree", entity.ErrUnknownNode, tab.ID)
	}
	return r.wb.Forest().Leaves(root)
}
