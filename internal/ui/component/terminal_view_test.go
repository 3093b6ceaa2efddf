package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitforest/internal/application/port/mocks"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/ui/component"
)

func TestTerminalViews_CreateBindsToSession(t *testing.T) {
	ctx := context.Background()
	views := component.NewTerminalViews()
	session := views.NewSession(ctx, "shell")

	first, err := views.Create(ctx, session.ID)
	require.NoError(t, err)
	second, err := views.Create(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, first.Session())
	assert.Equal(t, session.ID, second.Session())
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, views.SessionViews(session.ID))

	v1 := first.(*component.TerminalView)
	v2 := second.(*component.TerminalView)
	assert.Equal(t, 1, v1.ID)
	assert.Equal(t, 2, v2.ID)
	assert.Equal(t, "shell #2", v2.Title)
}

func TestTerminalViews_SessionsAreUnique(t *testing.T) {
	ctx := context.Background()
	views := component.NewTerminalViews()

	a := views.NewSession(ctx, "a")
	b := views.NewSession(ctx, "b")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, views.Sessions(), 2)
}

func TestTerminalViews_LastCloseEndsSession(t *testing.T) {
	ctx := context.Background()
	views := component.NewTerminalViews()
	session := views.NewSession(ctx, "shell")

	first, err := views.Create(ctx, session.ID)
	require.NoError(t, err)
	second, err := views.Create(ctx, session.ID)
	require.NoError(t, err)

	require.NoError(t, views.RequestClose(ctx, first))
	_, live := views.Session(session.ID)
	assert.True(t, live)
	assert.True(t, first.(*component.TerminalView).Closed())

	require.NoError(t, views.RequestClose(ctx, second))
	_, live = views.Session(session.ID)
	assert.False(t, live)
	assert.False(t, session.IsActive())
	assert.Equal(t, 0, views.SessionViews(session.ID))

	_, err = views.Create(ctx, session.ID)
	require.ErrorIs(t, err, component.ErrUnknownSession)
}

func TestTerminalViews_CloseErrors(t *testing.T) {
	ctx := context.Background()
	views := component.NewTerminalViews()
	session := views.NewSession(ctx, "shell")
	view, err := views.Create(ctx, session.ID)
	require.NoError(t, err)

	require.NoError(t, views.RequestClose(ctx, view))
	require.ErrorIs(t, views.RequestClose(ctx, view), component.ErrViewClosed)

	foreign := mocks.NewMockContent(t)
	require.Error(t, views.RequestClose(ctx, foreign))

	_, err = views.Create(ctx, entity.SessionID("nope"))
	require.ErrorIs(t, err, component.ErrUnknownSession)
}
