package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitforest/internal/application/port/mocks"
	"github.com/bnema/splitforest/internal/application/usecase"
	"github.com/bnema/splitforest/internal/domain/entity"
)

// threeLeafLayout splits twice: L1 | (L2 / L3).
func threeLeafLayout(t *testing.T, f *forestFixture) entity.NodeID {
	t.Helper()
	ctx := testContext()

	root, err := f.uc.CreateRoot(ctx, f.container, newContent("l1"))
	require.NoError(t, err)
	out := f.split(t, root, newContent("l2"), entity.OrientationHorizontal)
	f.split(t, out.Second, newContent("l3"), entity.OrientationVertical)
	return root
}

// shape describes a tree as nested orientation/leaf markers in pre-order.
func shape(t *testing.T, uc *usecase.ManageSplitsUseCase, node entity.NodeID) []string {
	t.Helper()
	children, internal := uc.ChildrenOf(node)
	if !internal {
		return []string{"leaf"}
	}
	out := []string{uc.OrientationOf(node).String()}
	out = append(out, shape(t, uc, children[0])...)
	return append(out, shape(t, uc, children[1])...)
}

func TestManageSplitsUseCase_Clone_CopiesShapeWithFreshContent(t *testing.T) {
	f := newForestFixture()
	ctx := testContext()
	source := threeLeafLayout(t, f)
	target := newFakeContainer()
	factory := &fakeFactory{}

	clone, err := f.uc.Clone(ctx, usecase.CloneInput{Source: source, Target: target, Factory: factory})
	require.NoError(t, err)

	assert.Equal(t, 2, f.uc.TreeCount())
	assert.Equal(t, shape(t, f.uc, source), shape(t, f.uc, clone))
	n, err := f.uc.NumberOfNodes(clone)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	srcLeaves, err := f.uc.Leaves(source)
	require.NoError(t, err)
	cloneLeaves, err := f.uc.Leaves(clone)
	require.NoError(t, err)
	require.Len(t, cloneLeaves, 3)
	require.Len(t, factory.created, 3)

	for i := range srcLeaves {
		original, ok := f.uc.ContentOf(srcLeaves[i])
		require.True(t, ok)
		copied, ok := f.uc.ContentOf(cloneLeaves[i])
		require.True(t, ok)

		assert.NotSame(t, original, copied)
		assert.Equal(t, original.Session(), copied.Session())
		assert.Same(t, factory.created[i], copied)
	}

	container, ok := f.uc.ContainerOf(clone)
	require.True(t, ok)
	assert.Same(t, target, container)
	require.NoError(t, f.uc.Validate(source))
	require.NoError(t, f.uc.Validate(clone))
}

func TestManageSplitsUseCase_Clone_FocusFollowsActiveLeaf(t *testing.T) {
	f := newForestFixture()
	ctx := testContext()
	source := threeLeafLayout(t, f)

	srcLeaves, err := f.uc.Leaves(source)
	require.NoError(t, err)
	require.NoError(t, f.uc.FocusGained(ctx, srcLeaves[1]))

	target := newFakeContainer()
	clone, err := f.uc.Clone(ctx, usecase.CloneInput{Source: source, Target: target, Factory: &fakeFactory{}})
	require.NoError(t, err)

	cloneLeaves, err := f.uc.Leaves(clone)
	require.NoError(t, err)
	focused, err := f.uc.FocusedLeaf(clone)
	require.NoError(t, err)
	assert.Equal(t, cloneLeaves[1], focused)

	// The source tree keeps its own focus.
	focused, err = f.uc.FocusedLeaf(source)
	require.NoError(t, err)
	assert.Equal(t, srcLeaves[1], focused)
}

func TestManageSplitsUseCase_Clone_FactoryFailureTearsDown(t *testing.T) {
	f := newForestFixture()
	ctx := testContext()
	source := threeLeafLayout(t, f)
	target := newFakeContainer()
	factory := &fakeFactory{failAt: 2}

	_, err := f.uc.Clone(ctx, usecase.CloneInput{Source: source, Target: target, Factory: factory})
	require.Error(t, err)

	assert.Equal(t, 1, f.uc.TreeCount())
	_, hosted := f.uc.RootForContainer(target)
	assert.False(t, hosted)
	require.Len(t, f.lifecycle.closed, 2)
	assert.Same(t, factory.created[0], f.lifecycle.closed[0])
	assert.Same(t, factory.created[1], f.lifecycle.closed[1])
	require.NoError(t, f.uc.Validate(source))
}

func TestManageSplitsUseCase_Clone_Errors(t *testing.T) {
	f := newForestFixture()
	ctx := testContext()
	source := threeLeafLayout(t, f)

	_, err := f.uc.Clone(ctx, usecase.CloneInput{Source: 404, Target: newFakeContainer(), Factory: &fakeFactory{}})
	require.ErrorIs(t, err, entity.ErrUnknownNode)

	_, err = f.uc.Clone(ctx, usecase.CloneInput{Source: source, Target: f.container, Factory: &fakeFactory{}})
	require.ErrorIs(t, err, entity.ErrInvariantViolation)

	_, err = f.uc.Clone(ctx, usecase.CloneInput{Source: source, Target: newFakeContainer()})
	require.Error(t, err)
	assert.Equal(t, 1, f.uc.TreeCount())
}

func TestManageSplitsUseCase_Clone_UsesFactoryPerSession(t *testing.T) {
	f := newForestFixture()
	ctx := testContext()
	c0 := newContent("solo")

	root, err := f.uc.CreateRoot(ctx, f.container, c0)
	require.NoError(t, err)

	factory := mocks.NewMockContentFactory(t)
	copied := newContent("copy")
	factory.EXPECT().Create(ctx, c0.Session()).Return(copied, nil).Once()

	clone, err := f.uc.Clone(ctx, usecase.CloneInput{Source: root, Target: newFakeContainer(), Factory: factory})
	require.NoError(t, err)

	content, ok := f.uc.ContentOf(clone)
	require.True(t, ok)
	assert.Same(t, copied, content)
}
