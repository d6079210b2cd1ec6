package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store/drivers/sqlite/gen"
)

type tagsRepo struct {
	q *gen.Queries
}

func (r *tagsRepo) CreateTag(ctx context.Context, t domain.Tag) (domain.Tag, error) {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}

	id, err := r.q.CreateTag(ctx, gen.CreateTagParams{
		Description: t.Description,
		CreatedAt:   createdAt.UTC(),
	})
	if err != nil {
		return domain.Tag{}, mapConstraint(err)
	}

	return r.GetTagByID(ctx, id)
}

func (r *tagsRepo) GetTagByID(ctx context.Context, id int64) (domain.Tag, error) {
	row, err := r.q.GetTagByID(ctx, id)
	if err != nil {
		return domain.Tag{}, mapNotFound(err)
	}
	return mapTag(row), nil
}

func (r *tagsRepo) GetTagByDescription(ctx context.Context, description string) (domain.Tag, error) {
	row, err := r.q.GetTagByDescription(ctx, description)
	if err != nil {
		return domain.Tag{}, mapNotFound(err)
	}
	return mapTag(row), nil
}

func (r *tagsRepo) ListTags(ctx context.Context, page domain.Page) ([]domain.Tag, error) {
	rows, err := r.q.ListTags(ctx, gen.ListTagsParams{Limit: page.Limit, Offset: page.Skip})
	if err != nil {
		return nil, err
	}
	return mapTags(rows), nil
}

func (r *tagsRepo) CountTagsByDescription(ctx context.Context, description string) (int64, error) {
	return r.q.CountTagsByDescription(ctx, description)
}

func (r *tagsRepo) UpdateTagDescription(ctx context.Context, id int64, description string) (domain.Tag, error) {
	err := affected(r.q.UpdateTagDescription(ctx, gen.UpdateTagDescriptionParams{
		Description: description,
		ID:          id,
	}))
	if err != nil {
		return domain.Tag{}, err
	}

	return r.GetTagByID(ctx, id)
}

func (r *tagsRepo) DeleteTag(ctx context.Context, id int64) (domain.Tag, error) {
	existing, err := r.GetTagByID(ctx, id)
	if err != nil {
		return domain.Tag{}, err
	}

	if err := affected(r.q.DeleteTag(ctx, id)); err != nil {
		return domain.Tag{}, err
	}
	return existing, nil
}
