package todosdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Session performs operations on behalf of a logged-in user.
type Session struct {
	client      *SDKClient
	accessToken string
	expiresAt   time.Time
}

func newSession(client *SDKClient, tok *TokenResponse) *Session {
	return &Session{
		client:      client,
		accessToken: tok.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
	}
}

// AccessToken returns the bearer token the session sends.
func (s *Session) AccessToken() string { return s.accessToken }

// ExpiresAt is the client-side estimate of token expiry; zero when unknown.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

func pageQuery(skip, limit int64) string {
	q := url.Values{}
	q.Set("skip", strconv.FormatInt(skip, 10))
	q.Set("limit", strconv.FormatInt(limit, 10))
	return "?" + q.Encode()
}

// WhoAmI returns the user the session's token resolves to.
func (s *Session) WhoAmI(ctx context.Context) (*UserResponse, error) {
	u, err := call[UserResponse](ctx, s.client, http.MethodGet, "/v1/users/me", s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Session) CreateTodo(ctx context.Context, req TodoRequest) (*TodoResponse, error) {
	t, err := call[TodoResponse](ctx, s.client, http.MethodPost, "/v1/todos", s.accessToken, req, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTodos lists the caller's todos. limit 0 asks for the server default.
func (s *Session) ListTodos(ctx context.Context, skip, limit int64) ([]TodoResponse, error) {
	return call[[]TodoResponse](ctx, s.client, http.MethodGet, "/v1/todos"+pageQuery(skip, limit), s.accessToken, nil, http.StatusOK)
}

func (s *Session) GetTodo(ctx context.Context, id int64) (*TodoResponse, error) {
	t, err := call[TodoResponse](ctx, s.client, http.MethodGet, fmt.Sprintf("/v1/todos/%d", id), s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) UpdateTodo(ctx context.Context, id int64, req UpdateTodoRequest) (*TodoResponse, error) {
	t, err := call[TodoResponse](ctx, s.client, http.MethodPut, fmt.Sprintf("/v1/todos/%d", id), s.accessToken, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) ToggleTodo(ctx context.Context, id int64) (*TodoResponse, error) {
	t, err := call[TodoResponse](ctx, s.client, http.MethodPost, fmt.Sprintf("/v1/todos/%d/toggle", id), s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTodo deletes a todo and returns the removed record.
func (s *Session) DeleteTodo(ctx context.Context, id int64) (*TodoResponse, error) {
	t, err := call[TodoResponse](ctx, s.client, http.MethodDelete, fmt.Sprintf("/v1/todos/%d", id), s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TodoTags lists the tags attached to a todo.
func (s *Session) TodoTags(ctx context.Context, todoID int64) ([]TagSummary, error) {
	path := fmt.Sprintf("/v1/todos/%d/tags", todoID)
	return call[[]TagSummary](ctx, s.client, http.MethodGet, path, s.accessToken, nil, http.StatusOK)
}

// AttachTag links a tag to a todo and returns the todo with its tags.
func (s *Session) AttachTag(ctx context.Context, todoID, tagID int64) (*TodoResponse, error) {
	path := fmt.Sprintf("/v1/todos/%d/tags/%d", todoID, tagID)
	t, err := call[TodoResponse](ctx, s.client, http.MethodPost, path, s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) CreateTag(ctx context.Context, req TagRequest) (*TagResponse, error) {
	t, err := call[TagResponse](ctx, s.client, http.MethodPost, "/v1/tags", s.accessToken, req, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) ListTags(ctx context.Context, skip, limit int64) ([]TagResponse, error) {
	return call[[]TagResponse](ctx, s.client, http.MethodGet, "/v1/tags"+pageQuery(skip, limit), s.accessToken, nil, http.StatusOK)
}

func (s *Session) GetTag(ctx context.Context, id int64) (*TagResponse, error) {
	t, err := call[TagResponse](ctx, s.client, http.MethodGet, fmt.Sprintf("/v1/tags/%d", id), s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) UpdateTag(ctx context.Context, id int64, req TagRequest) (*TagResponse, error) {
	t, err := call[TagResponse](ctx, s.client, http.MethodPut, fmt.Sprintf("/v1/tags/%d", id), s.accessToken, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) DeleteTag(ctx context.Context, id int64) (*TagResponse, error) {
	t, err := call[TagResponse](ctx, s.client, http.MethodDelete, fmt.Sprintf("/v1/tags/%d", id), s.accessToken, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
