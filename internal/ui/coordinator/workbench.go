package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/application/usecase"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
	"github.com/bnema/splitforest/internal/ui/component"
	"github.com/bnema/splitforest/internal/ui/focus"
	"github.com/bnema/splitforest/internal/ui/layout"
)

// TabBarHeight is the number of screen rows above the surfaces.
const TabBarHeight = 1

const defaultSessionTitle = "shell"

// ErrNoActiveTab is returned by pane intents when no tab is open.
var ErrNoActiveTab = errors.New("no active tab")

// Tab is one surface hosting one split tree.
type Tab struct {
	ID      string
	Title   string
	Surface *layout.Surface
}

// Workbench turns user intents into split forest operations. It owns the
// tabs; the forest owns the trees inside them.
type Workbench struct {
	splitsUC *usecase.ManageSplitsUseCase
	focus    *focus.Tracker
	views    *component.TerminalViews
	settings config.WorkspaceConfig

	tabs    []*Tab
	active  int
	nextTab int

	width, height int

	onStateChanged func()
}

// WorkbenchConfig holds the collaborators of a Workbench.
type WorkbenchConfig struct {
	SplitsUC *usecase.ManageSplitsUseCase
	Focus    *focus.Tracker
	Views    *component.TerminalViews
	Settings config.WorkspaceConfig
	// Width and Height cover the whole screen, tab bar included.
	Width, Height int
}

// NewWorkbench creates a Workbench with no tabs.
func NewWorkbench(ctx context.Context, cfg WorkbenchConfig) *Workbench {
	log := logging.FromContext(ctx)
	log.Debug().Int("width", cfg.Width).Int("height", cfg.Height).Msg("creating workbench")

	return &Workbench{
		splitsUC: cfg.SplitsUC,
		focus:    cfg.Focus,
		views:    cfg.Views,
		settings: cfg.Settings,
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// NewDefaultWorkbench wires a Workbench with in-memory terminal views and a
// focus tracker.
func NewDefaultWorkbench(ctx context.Context, settings config.WorkspaceConfig, width, height int) *Workbench {
	views := component.NewTerminalViews()
	tracker := focus.NewTracker()
	return NewWorkbench(ctx, WorkbenchConfig{
		SplitsUC: usecase.NewManageSplitsUseCase(views, tracker),
		Focus:    tracker,
		Views:    views,
		Settings: settings,
		Width:    width,
		Height:   height,
	})
}

// SetOnStateChanged sets the callback run after every intent that changed
// the layout.
func (w *Workbench) SetOnStateChanged(fn func()) {
	w.onStateChanged = fn
}

func (w *Workbench) notifyStateChanged() {
	if w.onStateChanged != nil {
		w.onStateChanged()
	}
}

// ApplySettings swaps the workspace settings, e.g. after a config reload.
func (w *Workbench) ApplySettings(settings config.WorkspaceConfig) {
	w.settings = settings
}

func (w *Workbench) Settings() config.WorkspaceConfig { return w.settings }

func (w *Workbench) Forest() *usecase.ManageSplitsUseCase { return w.splitsUC }

func (w *Workbench) Views() *component.TerminalViews { return w.views }

func (w *Workbench) Size() (width, height int) { return w.width, w.height }

// Tabs returns the open tabs in display order.
func (w *Workbench) Tabs() []*Tab {
	out := make([]*Tab, len(w.tabs))
	copy(out, w.tabs)
	return out
}

// ActiveIndex returns the index of the active tab, -1 when none is open.
func (w *Workbench) ActiveIndex() int {
	if len(w.tabs) == 0 {
		return -1
	}
	return w.active
}

// ActiveTab returns the tab receiving pane intents.
func (w *Workbench) ActiveTab() (*Tab, bool) {
	if len(w.tabs) == 0 {
		return nil, false
	}
	return w.tabs[w.active], true
}

// Root returns the root of the tree shown by tab.
func (w *Workbench) Root(tab *Tab) (entity.NodeID, bool) {
	return w.splitsUC.RootForContainer(tab.Surface)
}

// FocusedContent returns the content holding focus in tab.
func (w *Workbench) FocusedContent(tab *Tab) (port.Content, bool) {
	return w.focus.Focused(tab.Surface)
}

// ActiveLeaf returns the focused leaf of the active tab.
func (w *Workbench) ActiveLeaf() (entity.NodeID, error) {
	tab, ok := w.ActiveTab()
	if !ok {
		return entity.NoNode, ErrNoActiveTab
	}
	root, ok := w.Root(tab)
	if !ok {
		return entity.NoNode, fmt.Errorf("%w: tab %s has no tree", entity.ErrUnknownNode, tab.ID)
	}
	return w.splitsUC.FocusedLeaf(root)
}

// NewTab opens a tab with a single pane showing a new session and makes it
// active. An empty title picks a default one.
func (w *Workbench) NewTab(ctx context.Context, title string) (*Tab, error) {
	if title == "" {
		title = defaultSessionTitle
	}
	tab := w.newTab(ctx, title)
	ctx = logging.WithTabID(ctx, tab.ID)

	session := w.views.NewSession(ctx, title)
	view, err := w.views.Create(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if _, err := w.splitsUC.CreateRoot(ctx, tab.Surface, view); err != nil {
		return nil, errors.Join(err, w.views.RequestClose(ctx, view))
	}

	w.insertTab(len(w.tabs), tab)
	logging.FromContext(ctx).Info().Int("tabs", len(w.tabs)).Msg("tab opened")
	w.notifyStateChanged()
	return tab, nil
}

func (w *Workbench) newTab(ctx context.Context, title string) *Tab {
	w.nextTab++
	id := fmt.Sprintf("tab-%d", w.nextTab)
	surface := layout.NewSurface(ctx, id, w.width, max(w.height-TabBarHeight, 0))
	surface.SetOrigin(entity.Point{X: 0, Y: TabBarHeight})
	return &Tab{ID: id, Title: title, Surface: surface}
}

func (w *Workbench) insertTab(at int, tab *Tab) {
	w.tabs = append(w.tabs, nil)
	copy(w.tabs[at+1:], w.tabs[at:])
	w.tabs[at] = tab
	w.active = at
}

func (w *Workbench) dropTab(index int) {
	w.tabs = append(w.tabs[:index], w.tabs[index+1:]...)
	switch {
	case len(w.tabs) == 0:
		w.active = 0
	case w.active > index || w.active >= len(w.tabs):
		w.active--
	}
}

// SplitActive splits the focused pane of the active tab. The new pane shows
// the focused pane's session when sharing is enabled, a new session
// otherwise. OrientationNone means the configured default.
func (w *Workbench) SplitActive(ctx context.Context, orientation entity.Orientation) (*usecase.SplitOutput, error) {
	tab, ok := w.ActiveTab()
	if !ok {
		return nil, ErrNoActiveTab
	}
	ctx = logging.WithTabID(ctx, tab.ID)
	if orientation == entity.OrientationNone {
		orientation = w.settings.Orientation()
	}

	leaf, err := w.ActiveLeaf()
	if err != nil {
		return nil, err
	}
	current, ok := w.splitsUC.ContentOf(leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotAttached, leaf)
	}

	session := current.Session()
	if !w.settings.ShareSessionOnSplit {
		session = w.views.NewSession(ctx, tab.Title).ID
	}
	view, err := w.views.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	out, err := w.splitsUC.Split(ctx, usecase.SplitInput{Leaf: leaf, Content: view, Orientation: orientation})
	if out == nil {
		return nil, errors.Join(err, w.views.RequestClose(ctx, view))
	}
	w.notifyStateChanged()
	return out, err
}

// CloseActive closes the focused pane of the active tab. Closing the last
// pane closes the tab.
func (w *Workbench) CloseActive(ctx context.Context) error {
	tab, ok := w.ActiveTab()
	if !ok {
		return ErrNoActiveTab
	}
	ctx = logging.WithTabID(ctx, tab.ID)

	leaf, err := w.ActiveLeaf()
	if err != nil {
		return err
	}
	_, err = w.splitsUC.Remove(ctx, leaf)
	w.syncTabs(ctx)
	w.notifyStateChanged()
	return err
}

// syncTabs drops the tabs whose tree is gone.
func (w *Workbench) syncTabs(ctx context.Context) {
	for i := len(w.tabs) - 1; i >= 0; i-- {
		if _, hosted := w.Root(w.tabs[i]); !hosted {
			logging.FromContext(ctx).Info().Str("tab_id", w.tabs[i].ID).Msg("tab closed")
			w.dropTab(i)
		}
	}
}

// MoveFocus moves focus to the nearest pane in direction. moved is false
// when no pane lies on that side.
func (w *Workbench) MoveFocus(ctx context.Context, direction entity.Direction) (moved bool, err error) {
	tab, ok := w.ActiveTab()
	if !ok {
		return false, ErrNoActiveTab
	}
	root, ok := w.Root(tab)
	if !ok {
		return false, fmt.Errorf("%w: tab %s has no tree", entity.ErrUnknownNode, tab.ID)
	}
	_, moved, err = w.splitsUC.MoveFocus(logging.WithTabID(ctx, tab.ID), root, direction)
	if moved {
		w.notifyStateChanged()
	}
	return moved, err
}

// FocusAt focuses the pane under the screen cell (x, y) of the active tab.
func (w *Workbench) FocusAt(ctx context.Context, x, y int) (bool, error) {
	tab, ok := w.ActiveTab()
	if !ok {
		return false, ErrNoActiveTab
	}
	leaf, ok := tab.Surface.LeafAt(x, y)
	if !ok {
		return false, nil
	}
	if err := w.splitsUC.FocusGained(logging.WithNodeID(ctx, leaf), leaf); err != nil {
		return false, err
	}
	w.notifyStateChanged()
	return true, nil
}

// CloneActiveTab opens a copy of the active tab's layout right after it.
// Every pane of the copy is a new view on the same session as its original.
func (w *Workbench) CloneActiveTab(ctx context.Context) (*Tab, error) {
	source, ok := w.ActiveTab()
	if !ok {
		return nil, ErrNoActiveTab
	}
	root, ok := w.Root(source)
	if !ok {
		return nil, fmt.Errorf("%w: tab %s has no tree", entity.ErrUnknownNode, source.ID)
	}

	tab := w.newTab(ctx, source.Title)
	ctx = logging.WithTabID(ctx, tab.ID)
	if _, err := w.splitsUC.Clone(ctx, usecase.CloneInput{Source: root, Target: tab.Surface, Factory: w.views}); err != nil {
		return nil, err
	}

	w.insertTab(w.active+1, tab)
	logging.FromContext(ctx).Info().Str("source", source.ID).Int("tabs", len(w.tabs)).Msg("tab cloned")
	w.notifyStateChanged()
	return tab, nil
}

// CloseTab dismisses the tree of the tab at index, closing every pane.
func (w *Workbench) CloseTab(ctx context.Context, index int) error {
	if index < 0 || index >= len(w.tabs) {
		return fmt.Errorf("tab index %d out of range [0,%d)", index, len(w.tabs))
	}
	tab := w.tabs[index]
	ctx = logging.WithTabID(ctx, tab.ID)

	var err error
	if root, ok := w.Root(tab); ok {
		err = w.splitsUC.Dismiss(ctx, root)
	}
	w.syncTabs(ctx)
	w.notifyStateChanged()
	return err
}

// CloseActiveTab closes the active tab.
func (w *Workbench) CloseActiveTab(ctx context.Context) error {
	if len(w.tabs) == 0 {
		return ErrNoActiveTab
	}
	return w.CloseTab(ctx, w.active)
}

// SelectTab makes the tab at index active.
func (w *Workbench) SelectTab(index int) error {
	if index < 0 || index >= len(w.tabs) {
		return fmt.Errorf("tab index %d out of range [0,%d)", index, len(w.tabs))
	}
	w.active = index
	w.notifyStateChanged()
	return nil
}

// NextTab activates the tab to the right, wrapping around.
func (w *Workbench) NextTab() {
	if len(w.tabs) > 1 {
		w.active = (w.active + 1) % len(w.tabs)
		w.notifyStateChanged()
	}
}

// PrevTab activates the tab to the left, wrapping around.
func (w *Workbench) PrevTab() {
	if len(w.tabs) > 1 {
		w.active = (w.active - 1 + len(w.tabs)) % len(w.tabs)
		w.notifyStateChanged()
	}
}

// Resize changes the screen size. Every surface keeps its split proportions.
func (w *Workbench) Resize(ctx context.Context, width, height int) {
	w.width, w.height = width, height
	for _, tab := range w.tabs {
		tab.Surface.Resize(width, max(height-TabBarHeight, 0))
	}
	logging.FromContext(ctx).Debug().Int("width", width).Int("height", height).Msg("workbench resized")
	w.notifyStateChanged()
}

// Validate checks the tree of every tab.
func (w *Workbench) Validate() error {
	var errs []error
	for _, tab := range w.tabs {
		root, ok := w.Root(tab)
		if !ok {
			errs = append(errs, fmt.Errorf("tab %s has no tree", tab.ID))
			continue
		}
		if err := w.splitsUC.Validate(root); err != nil {
			errs = append(errs, fmt.Errorf("tab %s: %w", tab.ID, err))
		}
	}
	return errors.Join(errs...)
}

// Shutdown closes every tab. Tabs that fail to close are reported and left
// open.
func (w *Workbench) Shutdown(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("tabs", len(w.tabs)).Msg("shutting down workbench")

	var errs []error
	for _, tab := range w.Tabs() {
		root, ok := w.Root(tab)
		if !ok {
			continue
		}
		if err := w.splitsUC.Dismiss(logging.WithTabID(ctx, tab.ID), root); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", tab.ID, err))
		}
	}
	w.syncTabs(ctx)

	log.Info().Int("remaining_tabs", len(w.tabs)).Int("sessions", len(w.views.Sessions())).Msg("workbench shut down")
	return errors.Join(errs...)
}
