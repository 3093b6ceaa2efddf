// Package scenario replays scripted workbench sessions from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnema/splitforest/internal/domain/entity"
)

// Actions understood in a scenario step.
const (
	ActionNewTab   = "new_tab"
	ActionSplit    = "split"
	ActionClose    = "close"
	ActionFocus    = "focus"
	ActionClick    = "click"
	ActionClone    = "clone_tab"
	ActionCloseTab = "close_tab"
	ActionNextTab  = "next_tab"
	ActionPrevTab  = "prev_tab"
	ActionSelect   = "select_tab"
	ActionResize   = "resize"
	ActionExpect   = "expect"
)

// ErrInvalidScenario is returned for files that parse but cannot be run.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a scripted sequence of workbench intents. Width, Height and
// Settings override the configured values when set.
type Scenario struct {
	Name     string    `yaml:"name"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Settings *Settings `yaml:"settings"`
	Steps    []Step    `yaml:"steps"`
}

// Settings holds the workspace options a scenario may pin.
type Settings struct {
	DefaultOrientation   string `yaml:"default_orientation"`
	ShareSessionOnSplit  *bool  `yaml:"share_session_on_split"`
	HideSinglePaneChrome *bool  `yaml:"hide_single_pane_chrome"`
}

// Step is one intent. Which fields apply depends on Action.
type Step struct {
	Action      string  `yaml:"action"`
	Title       string  `yaml:"title,omitempty"`
	Orientation string  `yaml:"orientation,omitempty"`
	Direction   string  `yaml:"direction,omitempty"`
	At          []int   `yaml:"at,omitempty"`
	Tab         int     `yaml:"tab,omitempty"`
	Width       int     `yaml:"width,omitempty"`
	Height      int     `yaml:"height,omitempty"`
	Expect      *Expect `yaml:"expect,omitempty"`
}

// Expect lists the checks of an expect step. Unset fields are not checked.
// ActiveTab is 1-based like select_tab. FocusedPane is the 0-based index of
// the focused leaf in first-child-first order. Moved checks the outcome of
// the last focus step.
type Expect struct {
	Tabs        *int  `yaml:"tabs"`
	Panes       *int  `yaml:"panes"`
	Sessions    *int  `yaml:"sessions"`
	ActiveTab   *int  `yaml:"active_tab"`
	FocusedPane *int  `yaml:"focused_pane"`
	Moved       *bool `yaml:"moved"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step before anything runs.
func (s *Scenario) Validate() error {
	var errs []error
	if len(s.Steps) == 0 {
		errs = append(errs, errors.New("no steps"))
	}
	if s.Width < 0 || s.Height < 0 {
		errs = append(errs, fmt.Errorf("size %dx%d is negative", s.Width, s.Height))
	}
	if s.Settings != nil && s.Settings.DefaultOrientation != "" {
		if _, err := entity.ParseOrientation(s.Settings.DefaultOrientation); err != nil {
			errs = append(errs, fmt.Errorf("settings: %w", err))
		}
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}

func (st Step) validate() error {
	switch st.Action {
	case ActionNewTab, ActionClose, ActionClone, ActionCloseTab, ActionNextTab, ActionPrevTab:
		return nil
	case ActionSplit:
		if st.Orientation == "" {
			return nil
		}
		_, err := entity.ParseOrientation(st.Orientation)
		return err
	case ActionFocus:
		_, err := entity.ParseDirection(st.Direction)
		return err
	case ActionClick:
		if len(st.At) != 2 {
			return fmt.Errorf("at needs [x, y], got %v", st.At)
		}
		return nil
	case ActionSelect:
		if st.Tab < 1 {
			return fmt.Errorf("tab is 1-based, got %d", st.Tab)
		}
		return nil
	case ActionResize:
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize needs a positive width and height, got %dx%d", st.Width, st.Height)
		}
		return nil
	case ActionExpect:
		if st.Expect == nil {
			return errors.New("expect step has no checks")
		}
		return nil
	case "":
		return errors.New("missing action")
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}
