package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/logging"
)

// CloneInput contains parameters for duplicating a layout.
type CloneInput struct {
	Source  entity.NodeID // any node of the tree to copy
	Target  port.Container
	Factory port.ContentFactory
}

// Clone builds a copy of Source's tree in Target: same shape, same
// orientations, and for every leaf a new content created on the session the
// original leaf shows. Content is never shared between the two trees.
//
// Slot sizes are not copied; every split of the clone starts even.
// If content creation fails the partial clone is dismissed.
func (uc *ManageSplitsUseCase) Clone(ctx context.Context, input CloneInput) (entity.NodeID, error) {
	log := logging.FromContext(ctx)

	source, err := uc.lookup(input.Source)
	if err != nil {
		return entity.NoNode, err
	}
	if input.Factory == nil {
		return entity.NoNode, fmt.Errorf("content factory is required")
	}
	log.Debug().
		Str("source", source.Root().String()).
		Int("nodes", source.NumberOfNodes()).
		Msg("cloning split tree")

	root, err := uc.CreateRoot(ctx, input.Target, nil)
	if err != nil {
		return entity.NoNode, err
	}
	clone := uc.treeOf[root]

	counterpart := map[entity.NodeID]entity.NodeID{source.Root(): root}
	cursor := source.Traverse()
	for node, ok := cursor.Next(); ok; node, ok = cursor.Next() {
		mirror := counterpart[node]

		if pair, internal := source.ChildrenOf(node); internal {
			first, second, err := uc.splitNode(ctx, clone, mirror, uc.orientationOf[node])
			if err != nil {
				return entity.NoNode, uc.abortClone(ctx, root, err)
			}
			counterpart[pair[0]] = first
			counterpart[pair[1]] = second
			continue
		}

		original, attached := uc.contentOf[node]
		if !attached {
			continue
		}
		content, err := input.Factory.Create(ctx, original.Session())
		if err != nil {
			return entity.NoNode, uc.abortClone(ctx, root, fmt.Errorf("create content for %s: %w", original.Session(), err))
		}
		if err := input.Target.AttachContent(ctx, mirror, content); err != nil {
			return entity.NoNode, uc.abortClone(ctx, root, errors.Join(
				fmt.Errorf("attach content to %s: %w", mirror, err),
				uc.lifecycle.RequestClose(ctx, content),
			))
		}
		uc.contentOf[mirror] = content
	}

	focus := clone.LeafOfSubtree(root)
	if active, ok := uc.activeLeaf[source]; ok {
		if mirror, ok := counterpart[active]; ok {
			focus = mirror
		}
	}
	if err := uc.focusLeaf(ctx, clone, focus); err != nil {
		return root, err
	}

	log.Info().
		Str("source", source.Root().String()).
		Str("clone", root.String()).
		Int("nodes", clone.NumberOfNodes()).
		Msg("split tree cloned")
	return root, nil
}

func (uc *ManageSplitsUseCase) abortClone(ctx context.Context, root entity.NodeID, cause error) error {
	logging.FromContext(ctx).Warn().Err(cause).Str("clone", root.String()).Msg("clone failed, tearing down")
	if err := uc.Dismiss(ctx, root); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}
