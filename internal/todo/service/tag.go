package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
)

// TagService manages the global tag namespace.
type TagService struct {
	Store store.Store
}

func normaliseDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", invalid("description must not be empty")
	}
	return description, nil
}

func (s *TagService) Create(ctx context.Context, description string) (domain.Tag, error) {
	description, err := normaliseDescription(description)
	if err != nil {
		return domain.Tag{}, err
	}

	var tag domain.Tag
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Tags().CountTagsByDescription(ctx, description)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateDescription
		}

		tag, err = tx.Tags().CreateTag(ctx, domain.Tag{Description: description})
		return err
	})
	if err != nil {
		return domain.Tag{}, classify(err, ErrDuplicateDescription)
	}

	slogx.FromContext(ctx).Info("tag created", slog.Int64("tag_id", tag.ID))
	return tag, nil
}

func (s *TagService) Get(ctx context.Context, id int64) (domain.Tag, error) {
	t, err := s.Store.Tags().GetTagByID(ctx, id)
	return t, classify(err, nil)
}

func (s *TagService) GetByDescription(ctx context.Context, description string) (domain.Tag, error) {
	t, err := s.Store.Tags().GetTagByDescription(ctx, strings.TrimSpace(description))
	return t, classify(err, nil)
}

func (s *TagService) List(ctx context.Context, skip, limit int64) ([]domain.Tag, error) {
	page, err := NewPage(skip, limit)
	if err != nil {
		return nil, err
	}

	tags, err := s.Store.Tags().ListTags(ctx, page)
	if err != nil {
		return nil, classify(err, nil)
	}
	return tags, nil
}

// Update renames a tag. Renaming a tag to its current description is a no-op.
func (s *TagService) Update(ctx context.Context, id int64, description string) (domain.Tag, error) {
	description, err := normaliseDescription(description)
	if err != nil {
		return domain.Tag{}, err
	}

	var tag domain.Tag
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Tags().GetTagByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Description == description {
			tag = current
			return nil
		}

		tag, err = tx.Tags().UpdateTagDescription(ctx, id, description)
		return err
	})
	return tag, classify(err, ErrDuplicateDescription)
}

// Delete removes the tag and every association row that references it. The
// returned tag lists the todos it was attached to, restricted to viewerID
// when set, read in the same transaction as the delete.
func (s *TagService) Delete(ctx context.Context, id int64, viewerID *int64) (domain.Tag, error) {
	var tag domain.Tag
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		todoIDs, err := tx.Associations().TodoIDsForTag(ctx, id, viewerID)
		if err != nil {
			return err
		}
		if _, err := tx.Associations().DetachAllFromTag(ctx, id); err != nil {
			return err
		}

		tag, err = tx.Tags().DeleteTag(ctx, id)
		if err != nil {
			return err
		}
		tag.TodoIDs = todoIDs
		return nil
	})
	if err != nil {
		return domain.Tag{}, classify(err, nil)
	}

	slogx.FromContext(ctx).Info("tag deleted", slog.Int64("tag_id", id))
	return tag, nil
}
