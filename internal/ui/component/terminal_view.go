package component

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/logging"
)

var (
	// ErrUnknownSession is returned when a view is requested for a session
	// that was never opened or has already ended.
	ErrUnknownSession = errors.New("unknown session")

	// ErrViewClosed is returned when a view is closed twice.
	ErrViewClosed = errors.New("view already closed")
)

// TerminalView is one on-screen view of a terminal session. Several views may
// show the same session.
type TerminalView struct {
	ID      int
	Title   string
	session entity.SessionID
	closed  bool
}

// Session implements port.Content.
func (v *TerminalView) Session() entity.SessionID {
	return v.session
}

func (v *TerminalView) String() string {
	return v.Title
}

// Closed reports whether the view has been released.
func (v *TerminalView) Closed() bool {
	return v.closed
}

// TerminalViews creates and releases terminal views and keeps count of the
// views open on each session. A session ends when its last view closes.
type TerminalViews struct {
	sessions map[entity.SessionID]*entity.Session
	open     map[entity.SessionID]int
	nextView int
	now      func() time.Time
}

// NewTerminalViews creates an empty registry.
func NewTerminalViews() *TerminalViews {
	return &TerminalViews{
		sessions: make(map[entity.SessionID]*entity.Session),
		open:     make(map[entity.SessionID]int),
		now:      time.Now,
	}
}

// NewSession starts a logical session with a fresh id.
func (tv *TerminalViews) NewSession(ctx context.Context, title string) *entity.Session {
	session := &entity.Session{
		ID:        entity.SessionID(uuid.New().String()),
		Title:     title,
		StartedAt: tv.now(),
	}
	tv.sessions[session.ID] = session

	logging.FromContext(ctx).Debug().
		Str("session", session.ShortID()).
		Str("title", title).
		Msg("session started")
	return session
}

// Create implements port.ContentFactory.
func (tv *TerminalViews) Create(ctx context.Context, session entity.SessionID) (port.Content, error) {
	s, ok := tv.sessions[session]
	if !ok || !s.IsActive() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, session)
	}

	tv.nextView++
	tv.open[session]++
	view := &TerminalView{
		ID:      tv.nextView,
		Title:   fmt.Sprintf("%s #%d", s.Title, tv.nextView),
		session: session,
	}

	logging.FromContext(ctx).Debug().
		Int("view", view.ID).
		Str("session", s.ShortID()).
		Int("views_on_session", tv.open[session]).
		Msg("terminal view created")
	return view, nil
}

// RequestClose implements port.ContentLifecycle.
func (tv *TerminalViews) RequestClose(ctx context.Context, content port.Content) error {
	view, ok := content.(*TerminalView)
	if !ok {
		return fmt.Errorf("cannot close %T: not a terminal view", content)
	}
	if view.closed {
		return fmt.Errorf("view %d: %w", view.ID, ErrViewClosed)
	}
	view.closed = true

	log := logging.FromContext(ctx)
	tv.open[view.session]--
	if tv.open[view.session] > 0 {
		log.Debug().Int("view", view.ID).Int("views_on_session", tv.open[view.session]).Msg("terminal view closed")
		return nil
	}

	delete(tv.open, view.session)
	if s, ok := tv.sessions[view.session]; ok {
		s.End(tv.now())
		delete(tv.sessions, view.session)
		log.Info().Int("view", view.ID).Str("session", s.ShortID()).Msg("last view closed, session ended")
	}
	return nil
}

// SessionViews returns how many views are open on session.
func (tv *TerminalViews) SessionViews(session entity.SessionID) int {
	return tv.open[session]
}

// Session returns a live session by id.
func (tv *TerminalViews) Session(id entity.SessionID) (*entity.Session, bool) {
	s, ok := tv.sessions[id]
	return s, ok
}

// Sessions lists live sessions, oldest first.
func (tv *TerminalViews) Sessions() []*entity.Session {
	out := make([]*entity.Session, 0, len(tv.sessions))
	for _, s := range tv.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
