package http

import (
	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/pkg/todosdk"
)

func userView(u domain.Profile) todosdk.UserResponse {
	return todosdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsActive:  u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func tagSummaries(tags []domain.Tag) []todosdk.TagSummary {
	out := make([]todosdk.TagSummary, 0, len(tags))
	for _, tag := range tags {
		out = append(out, todosdk.TagSummary{ID: tag.ID, Description: tag.Description})
	}
	return out
}

func todoView(t domain.Todo) todosdk.TodoResponse {
	return todosdk.TodoResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Content:   t.Content,
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		Tags:      tagSummaries(t.Tags),
	}
}

func tagView(t domain.Tag) todosdk.TagResponse {
	todos := t.TodoIDs
	if todos == nil {
		todos = []int64{}
	}

	return todosdk.TagResponse{
		ID:          t.ID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		Todos:       todos,
	}
}
