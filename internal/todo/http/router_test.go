package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	todohttp "github.com/aussiebroadwan/tabtodo/internal/todo/http"
	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/tabtodo/pkg/cryptox"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
	"github.com/aussiebroadwan/tabtodo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tabtodo-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	*httptest.Server
	client *todosdk.SDKClient
	store  *sqlite.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "todo.db")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	tokens, err := service.NewTokenService([]byte("http-test-secret-0123456789abcdefgh"), "tabtodo-test", time.Hour)
	require.NoError(t, err)

	router := todohttp.NewRouter(service.NewAPI(st, tokens), st, "test", slogx.Discard())
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		_ = st.Close()
	})

	return &testServer{Server: srv, client: todosdk.NewSDKClient(srv.URL), store: st}
}

func (s *testServer) session(t *testing.T, username string) *todosdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := s.client.Register(ctx, username, "pw-"+username)
	require.NoError(t, err)

	sess, err := s.client.Login(ctx, username, "pw-"+username)
	require.NoError(t, err)
	return sess
}

func (s *testServer) raw(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestMiddlewareChainBuiltOnce(t *testing.T) {
	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "todo.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := service.NewTokenService([]byte("http-test-secret-0123456789abcdefgh"), "tabtodo-test", time.Hour)
	require.NoError(t, err)

	var built, served atomic.Int64
	counting := func(next http.Handler) http.Handler {
		built.Add(1)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			served.Add(1)
			next.ServeHTTP(w, r)
		})
	}

	router := todohttp.NewRouter(service.NewAPI(st, tokens), st, "test", slogx.Discard(), counting)
	router.ApplyRoutes()

	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
	}

	require.EqualValues(t, 1, built.Load())
	require.EqualValues(t, 3, served.Load())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	live, err := s.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.Nil(t, live.Checks)

	ready, err := s.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, s.store.Close())
	resp := s.raw(t, http.MethodGet, "/readyz", "", "")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	user, err := s.client.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.True(t, user.IsActive)

	_, err = s.client.Register(ctx, "alice", "other")
	require.ErrorIs(t, err, todosdk.ErrDuplicateUsername)

	_, err = s.client.Register(ctx, "  ", "pw")
	require.ErrorIs(t, err, todosdk.ErrInvalidArgument)

	tok, err := s.client.Token(ctx, "alice", "pw123")
	require.NoError(t, err)
	require.Equal(t, "bearer", tok.TokenType)
	require.Equal(t, int64(3600), tok.ExpiresIn)
	require.NotEmpty(t, tok.AccessToken)

	_, err = s.client.Token(ctx, "alice", "wrong")
	require.ErrorIs(t, err, todosdk.ErrInvalidCredentials)
	_, err = s.client.Token(ctx, "nobody", "pw123")
	require.ErrorIs(t, err, todosdk.ErrInvalidCredentials)

	me, err := s.client.NewSessionFromToken(tok.AccessToken).WhoAmI(ctx)
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	t.Run("missing header", func(t *testing.T) {
		resp := s.raw(t, http.MethodGet, "/v1/todos", "", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := s.client.NewSessionFromToken("not-a-jwt").ListTodos(ctx, 0, 0)
		require.ErrorIs(t, err, todosdk.ErrUnauthorized)

		var apiErr *todosdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t)
	sess := s.session(t, "alice")
	tok := sess.AccessToken()

	cases := []struct {
		name, method, path, body string
	}{
		{"non numeric id", http.MethodGet, "/v1/todos/abc", ""},
		{"zero id", http.MethodGet, "/v1/tags/0", ""},
		{"bad skip", http.MethodGet, "/v1/todos?skip=x", ""},
		{"negative limit", http.MethodGet, "/v1/tags?limit=-1", ""},
		{"empty body", http.MethodPost, "/v1/todos", ""},
		{"unknown field", http.MethodPost, "/v1/tags", `{"description":"x","colour":"red"}`},
		{"blank content", http.MethodPost, "/v1/todos", `{"content":"   "}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := s.raw(t, tc.method, tc.path, tok, tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestTodoLifecycle(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	sess := s.session(t, "alice")

	due := "2026-12-01"
	todo, err := sess.CreateTodo(ctx, todosdk.TodoRequest{Content: "  buy milk ", DueDate: &due})
	require.NoError(t, err)
	require.Equal(t, "buy milk", todo.Content)
	require.Equal(t, &due, todo.DueDate)
	require.False(t, todo.Completed)
	require.Empty(t, todo.Tags)
	require.NotNil(t, todo.Tags)

	toggled, err := sess.ToggleTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	updated, err := sess.UpdateTodo(ctx, todo.ID, todosdk.UpdateTodoRequest{Content: "buy oat milk"})
	require.NoError(t, err)
	require.Equal(t, "buy oat milk", updated.Content)
	require.Nil(t, updated.DueDate)
	require.False(t, updated.Completed)

	list, err := sess.ListTodos(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := sess.DeleteTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.Equal(t, todo.ID, deleted.ID)

	_, err = sess.GetTodo(ctx, todo.ID)
	require.ErrorIs(t, err, todosdk.ErrNotFound)
}

func TestTodosArePrivate(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	alice := s.session(t, "alice")
	bob := s.session(t, "bob")

	todo, err := alice.CreateTodo(ctx, todosdk.TodoRequest{Content: "secret"})
	require.NoError(t, err)

	_, err = bob.GetTodo(ctx, todo.ID)
	require.ErrorIs(t, err, todosdk.ErrNotFound)
	_, err = bob.DeleteTodo(ctx, todo.ID)
	require.ErrorIs(t, err, todosdk.ErrNotFound)

	list, err := bob.ListTodos(ctx, 0, 0)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestTagsAndAttach(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	sess := s.session(t, "alice")

	todo, err := sess.CreateTodo(ctx, todosdk.TodoRequest{Content: "buy milk"})
	require.NoError(t, err)

	tag, err := sess.CreateTag(ctx, todosdk.TagRequest{Description: "errand"})
	require.NoError(t, err)
	require.Equal(t, []int64{}, tag.Todos)

	_, err = sess.CreateTag(ctx, todosdk.TagRequest{Description: "errand"})
	require.ErrorIs(t, err, todosdk.ErrDuplicateDescription)

	for range 2 {
		todo, err = sess.AttachTag(ctx, todo.ID, tag.ID)
		require.NoError(t, err)
	}
	require.Equal(t, []todosdk.TagSummary{{ID: tag.ID, Description: "errand"}}, todo.Tags)

	_, err = sess.AttachTag(ctx, todo.ID, 999)
	require.ErrorIs(t, err, todosdk.ErrNotFound)

	onTodo, err := sess.TodoTags(ctx, todo.ID)
	require.NoError(t, err)
	require.Equal(t, []todosdk.TagSummary{{ID: tag.ID, Description: "errand"}}, onTodo)

	_, err = s.session(t, "bob").TodoTags(ctx, todo.ID)
	require.ErrorIs(t, err, todosdk.ErrNotFound)

	got, err := sess.GetTag(ctx, tag.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{todo.ID}, got.Todos)

	renamed, err := sess.UpdateTag(ctx, tag.ID, todosdk.TagRequest{Description: "shopping"})
	require.NoError(t, err)
	require.Equal(t, "shopping", renamed.Description)

	tags, err := sess.ListTags(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	removed, err := sess.DeleteTag(ctx, tag.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{todo.ID}, removed.Todos)

	after, err := sess.GetTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.Empty(t, after.Tags)
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t)

	resp := s.raw(t, http.MethodGet, "/livez", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(slogx.RequestIDHeader))
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
