package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
)

// AssociationService links todos and tags.
type AssociationService struct {
	Store store.Store
}

// Attach links tagID to todoID and returns the todo with its current tag set.
// Attaching a pair that is already linked changes nothing.
func (s *AssociationService) Attach(ctx context.Context, todoID, tagID int64) (domain.Todo, error) {
	var (
		todo    domain.Todo
		created bool
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().GetTodoByID(ctx, todoID)
		if err != nil {
			return err
		}
		if _, err := tx.Tags().GetTagByID(ctx, tagID); err != nil {
			return err
		}

		if created, err = tx.Associations().Attach(ctx, todoID, tagID); err != nil {
			return err
		}

		todo, err = withTags(ctx, tx, t)
		return err
	})
	if err != nil {
		return domain.Todo{}, classify(err, nil)
	}

	if created {
		slogx.FromContext(ctx).Info("tag attached", slog.Int64("todo_id", todoID), slog.Int64("tag_id", tagID))
	}
	return todo, nil
}

// TagsForTodo lists the tags attached to todoID ordered by tag id.
func (s *AssociationService) TagsForTodo(ctx context.Context, todoID int64) ([]domain.Tag, error) {
	tags, err := s.Store.Associations().TagsForTodo(ctx, todoID)
	if err != nil {
		return nil, classify(err, nil)
	}
	return tags, nil
}

// TodoIDsForTag lists todos attached to tagID, restricted to ownerID when set.
func (s *AssociationService) TodoIDsForTag(ctx context.Context, tagID int64, ownerID *int64) ([]int64, error) {
	ids, err := s.Store.Associations().TodoIDsForTag(ctx, tagID, ownerID)
	if err != nil {
		return nil, classify(err, nil)
	}
	return ids, nil
}
