package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store/drivers/sqlite/gen"
)

type associationsRepo struct {
	q *gen.Queries
}

// Attach relies on the (todo_id, tag_id) primary key with ON CONFLICT DO
// NOTHING, so a repeated pair writes nothing and reports false. A missing
// todo or tag fails the foreign key and maps to store.ErrNotFound.
func (r *associationsRepo) Attach(ctx context.Context, todoID, tagID int64) (bool, error) {
	n, err := r.q.AttachTag(ctx, gen.AttachTagParams{TodoID: todoID, TagID: tagID})
	if err != nil {
		return false, mapConstraint(err)
	}
	return n > 0, nil
}

func (r *associationsRepo) TagsForTodo(ctx context.Context, todoID int64) ([]domain.Tag, error) {
	rows, err := r.q.ListTagsForTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}
	return mapTags(rows), nil
}

func (r *associationsRepo) TodoIDsForTag(ctx context.Context, tagID int64, ownerID *int64) ([]int64, error) {
	var (
		ids []int64
		err error
	)
	if ownerID != nil {
		ids, err = r.q.ListTodoIDsForTagByOwner(ctx, gen.ListTodoIDsForTagByOwnerParams{
			TagID:   tagID,
			OwnerID: *ownerID,
		})
	} else {
		ids, err = r.q.ListTodoIDsForTag(ctx, tagID)
	}
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (r *associationsRepo) DetachAllFromTodo(ctx context.Context, todoID int64) (int64, error) {
	return r.q.DeleteTodoTagsByTodo(ctx, todoID)
}

func (r *associationsRepo) DetachAllFromTag(ctx context.Context, tagID int64) (int64, error) {
	return r.q.DeleteTodoTagsByTag(ctx, tagID)
}

func (r *associationsRepo) CountForTodo(ctx context.Context, todoID int64) (int64, error) {
	return r.q.CountTodoTagsByTodo(ctx, todoID)
}

func (r *associationsRepo) CountPair(ctx context.Context, todoID, tagID int64) (int64, error) {
	return r.q.CountTodoTagsPair(ctx, gen.CountTodoTagsPairParams{TodoID: todoID, TagID: tagID})
}
