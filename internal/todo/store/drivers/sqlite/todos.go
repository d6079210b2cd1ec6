package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store/drivers/sqlite/gen"
)

type todosRepo struct {
	q *gen.Queries
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}

	id, err := r.q.CreateTodo(ctx, gen.CreateTodoParams{
		OwnerID:   t.OwnerID,
		Content:   t.Content,
		DueDate:   mapStringNull(t.DueDate),
		Completed: t.Completed,
		CreatedAt: createdAt.UTC(),
	})
	if err != nil {
		return domain.Todo{}, mapConstraint(err)
	}

	return r.GetTodoByID(ctx, id)
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id int64) (domain.Todo, error) {
	row, err := r.q.GetTodoByID(ctx, id)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) ListTodos(ctx context.Context, ownerID *int64, page domain.Page) ([]domain.Todo, error) {
	var (
		rows []gen.Todo
		err  error
	)
	if ownerID != nil {
		rows, err = r.q.ListTodosByOwner(ctx, gen.ListTodosByOwnerParams{
			OwnerID: *ownerID,
			Limit:   page.Limit,
			Offset:  page.Skip,
		})
	} else {
		rows, err = r.q.ListTodos(ctx, gen.ListTodosParams{
			Limit:  page.Limit,
			Offset: page.Skip,
		})
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTodo(row))
	}
	return out, nil
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	err := affected(r.q.UpdateTodo(ctx, gen.UpdateTodoParams{
		Content:   t.Content,
		DueDate:   mapStringNull(t.DueDate),
		Completed: t.Completed,
		ID:        t.ID,
	}))
	if err != nil {
		return domain.Todo{}, err
	}

	return r.GetTodoByID(ctx, t.ID)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id int64) (domain.Todo, error) {
	existing, err := r.GetTodoByID(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}

	if err := affected(r.q.DeleteTodo(ctx, id)); err != nil {
		return domain.Todo{}, err
	}
	return existing, nil
}
