package http

import (
	"net/http"

	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/pkg/httpx"
	"github.com/aussiebroadwan/tabtodo/pkg/todosdk"
)

// TagHandler serves the shared tag namespace.
type TagHandler struct {
	API *service.API
}

// HandleCreate handles POST /v1/tags
//
//	@Summary		Create Tag
//	@Tags			Tags
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		todosdk.TagRequest	true	"description"
//	@Success		201		{object}	todosdk.TagResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Failure		409		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/tags [post].
func (h *TagHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req todosdk.TagRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	tag, err := h.API.CreateTag(r.Context(), bearer(r), req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tagView(tag))
}

// HandleList handles GET /v1/tags
//
//	@Summary		List Tags
//	@Tags			Tags
//	@Produce		json
//	@Security		BearerAuth
//	@Param			skip	query		int	false	"rows to skip"
//	@Param			limit	query		int	false	"max rows"
//	@Success		200		{array}		todosdk.TagResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/tags [get].
func (h *TagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pageParams(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	tags, err := h.API.ListTags(r.Context(), bearer(r), skip, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]todosdk.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagView(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/tags/{id}
//
//	@Summary		Get Tag
//	@Tags			Tags
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"tag id"
//	@Success		200	{object}	todosdk.TagResponse
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Failure		404	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/tags/{id} [get].
func (h *TagHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	tag, err := h.API.GetTag(r.Context(), bearer(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tagView(tag))
}

// HandleUpdate handles PUT /v1/tags/{id}
//
//	@Summary		Rename Tag
//	@Tags			Tags
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"tag id"
//	@Param			request	body		todosdk.TagRequest	true	"new description"
//	@Success		200		{object}	todosdk.TagResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Failure		404		{object}	todosdk.APIError	"error, error_description"
//	@Failure		409		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/tags/{id} [put].
func (h *TagHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req todosdk.TagRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	tag, err := h.API.UpdateTag(r.Context(), bearer(r), id, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tagView(tag))
}

// HandleDelete handles DELETE /v1/tags/{id}
//
//	@Summary		Delete Tag
//	@Description	Deletes the tag and detaches it from every todo.
//	@Tags			Tags
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"tag id"
//	@Success		200	{object}	todosdk.TagResponse
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Failure		404	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/tags/{id} [delete].
func (h *TagHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	tag, err := h.API.DeleteTag(r.Context(), bearer(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tagView(tag))
}
