package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
)

// TodoService manages todos. Every returned todo carries its tag set.
type TodoService struct {
	Store store.Store
}

func normaliseContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", invalid("content must not be empty")
	}
	return content, nil
}

func withTags(ctx context.Context, tx store.Tx, t domain.Todo) (domain.Todo, error) {
	tags, err := tx.Associations().TagsForTodo(ctx, t.ID)
	if err != nil {
		return domain.Todo{}, err
	}
	t.Tags = tags
	return t, nil
}

// Create stores a new incomplete todo for ownerID. dueDate is kept verbatim.
func (s *TodoService) Create(ctx context.Context, ownerID int64, content string, dueDate *string) (domain.Todo, error) {
	content, err := normaliseContent(content)
	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		todo, err = tx.Todos().CreateTodo(ctx, domain.Todo{
			OwnerID: ownerID,
			Content: content,
			DueDate: dueDate,
		})
		return err
	})
	if err != nil {
		return domain.Todo{}, classify(err, nil)
	}

	todo.Tags = []domain.Tag{}
	slogx.FromContext(ctx).Info("todo created", slog.Int64("todo_id", todo.ID))
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, id int64) (domain.Todo, error) {
	var todo domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().GetTodoByID(ctx, id)
		if err != nil {
			return err
		}
		todo, err = withTags(ctx, tx, t)
		return err
	})
	return todo, classify(err, nil)
}

// List returns todos ordered by id. A non-nil ownerID filters before paging.
func (s *TodoService) List(ctx context.Context, ownerID *int64, skip, limit int64) ([]domain.Todo, error) {
	page, err := NewPage(skip, limit)
	if err != nil {
		return nil, err
	}

	var out []domain.Todo
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		todos, err := tx.Todos().ListTodos(ctx, ownerID, page)
		if err != nil {
			return err
		}

		out = make([]domain.Todo, 0, len(todos))
		for _, t := range todos {
			t, err = withTags(ctx, tx, t)
			if err != nil {
				return err
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, nil)
	}
	return out, nil
}

// Update replaces content, due date and completed in one write.
func (s *TodoService) Update(
	ctx context.Context,
	id int64,
	content string,
	dueDate *string,
	completed bool,
) (domain.Todo, error) {
	content, err := normaliseContent(content)
	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().UpdateTodo(ctx, domain.Todo{
			ID:        id,
			Content:   content,
			DueDate:   dueDate,
			Completed: completed,
		})
		if err != nil {
			return err
		}
		todo, err = withTags(ctx, tx, t)
		return err
	})
	return todo, classify(err, nil)
}

// Toggle flips completed, resupplying content and due date unchanged.
func (s *TodoService) Toggle(ctx context.Context, id int64) (domain.Todo, error) {
	var todo domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Todos().GetTodoByID(ctx, id)
		if err != nil {
			return err
		}

		current.Completed = !current.Completed
		t, err := tx.Todos().UpdateTodo(ctx, current)
		if err != nil {
			return err
		}
		todo, err = withTags(ctx, tx, t)
		return err
	})
	return todo, classify(err, nil)
}

// Delete removes the todo and every association row that references it, and
// returns the removed record with the tags it had.
func (s *TodoService) Delete(ctx context.Context, id int64) (domain.Todo, error) {
	var todo domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().GetTodoByID(ctx, id)
		if err != nil {
			return err
		}
		if t, err = withTags(ctx, tx, t); err != nil {
			return err
		}

		if _, err := tx.Associations().DetachAllFromTodo(ctx, id); err != nil {
			return err
		}
		if _, err := tx.Todos().DeleteTodo(ctx, id); err != nil {
			return err
		}

		todo = t
		return nil
	})
	if err != nil {
		return domain.Todo{}, classify(err, nil)
	}

	slogx.FromContext(ctx).Info("todo deleted", slog.Int64("todo_id", id), slog.Int("tags", len(todo.Tags)))
	return todo, nil
}
