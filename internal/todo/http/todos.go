package http

import (
	"net/http"

	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/pkg/httpx"
	"github.com/aussiebroadwan/tabtodo/pkg/todosdk"
)

// TodoHandler serves the caller's todos.
type TodoHandler struct {
	API *service.API
}

// HandleCreate handles POST /v1/todos
//
//	@Summary		Create Todo
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		todosdk.TodoRequest	true	"content and optional due date"
//	@Success		201		{object}	todosdk.TodoResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos [post].
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req todosdk.TodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	todo, err := h.API.CreateTodo(r.Context(), bearer(r), req.Content, req.DueDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, todoView(todo))
}

// HandleList handles GET /v1/todos
//
//	@Summary		List Todos
//	@Description	Lists the caller's todos ordered by id. limit defaults to and is capped at 100.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			skip	query		int	false	"rows to skip"
//	@Param			limit	query		int	false	"max rows"
//	@Success		200		{array}		todosdk.TodoResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos [get].
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	todos, err := h.API.ListTodos(r.Context(), bearer(r), skip, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]todosdk.TodoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, todoView(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/todos/{id}
//
//	@Summary		Get Todo
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"todo id"
//	@Success		200	{object}	todosdk.TodoResponse
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Failure		404	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos/{id} [get].
func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	todo, err := h.API.GetTodo(r.Context(), bearer(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todoView(todo))
}

// HandleUpdate handles PUT /v1/todos/{id}
//
//	@Summary		Update Todo
//	@Description	Replaces content, due date and completed flag.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"todo id"
//	@Param			request	body		todosdk.UpdateTodoRequest	true	"new field values"
//	@Success		200		{object}	todosdk.TodoResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Failure		404		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos/{id} [put].
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req todosdk.UpdateTodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	todo, err := h.API.UpdateTodo(r.Context(), bearer(r), id, req.Content, req.DueDate, req.Completed)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todoView(todo))
}

// HandleToggle handles POST /v1/todos/{id}/toggle
//
//	@Summary		Toggle Todo
//	@Description	Flips the completed flag.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"todo id"
//	@Success		200	{object}	todosdk.TodoResponse
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Failure		404	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos/{id}/toggle [post].
func (h *TodoHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	todo, err := h.API.ToggleTodo(r.Context(), bearer(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todoView(todo))
}

// HandleDelete handles DELETE /v1/todos/{id}
//
//	@Summary		Delete Todo
//	@Description	Deletes the todo and its tag links, returning the removed todo.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"todo id"
//	@Success		200	{object}	todosdk.TodoResponse
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Failure		404	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos/{id} [delete].
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	todo, err := h.API.DeleteTodo(r.Context(), bearer(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todoView(todo))
}

// HandleAttachTag handles POST /v1/todos/{id}/tags/{tagID}
//
//	@Summary		Attach Tag
//	@Description	Links a tag to a todo. Attaching an already attached tag is a no-op.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int	true	"todo id"
//	@Param			tagID	path		int	true	"tag id"
//	@Success		200		{object}	todosdk.TodoResponse
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Failure		404		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos/{id}/tags/{tagID} [post].
func (h *TodoHandler) HandleAttachTag(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	tagID, err := pathID(r, "tagID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	todo, err := h.API.AttachTag(r.Context(), bearer(r), todoID, tagID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todoView(todo))
}

// HandleListTags handles GET /v1/todos/{id}/tags
//
//	@Summary		List Todo Tags
//	@Description	Lists the tags attached to one of the caller's todos, ordered by tag id.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"todo id"
//	@Success		200	{array}		todosdk.TagSummary
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Failure		404	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/todos/{id}/tags [get].
func (h *TodoHandler) HandleListTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	tags, err := h.API.TodoTags(r.Context(), bearer(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tagSummaries(tags))
}
