package service_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginWhoAmI(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, username := range []string{"alice", "bob", "Ünïcødé", "with space"} {
		t.Run(username, func(t *testing.T) {
			user, err := f.api.Register(ctx, username, "pw123")
			require.NoError(t, err)
			require.Equal(t, username, user.Username)
			require.True(t, user.Active)

			tok, err := f.api.Login(ctx, username, "pw123")
			require.NoError(t, err)
			require.Equal(t, "bearer", tok.TokenType)
			require.EqualValues(t, 1800, tok.ExpiresIn)

			me, err := f.api.WhoAmI(ctx, tok.AccessToken)
			require.NoError(t, err)
			require.Equal(t, username, me.Username)
			require.Equal(t, user.ID, me.ID)
		})
	}
}

// credentialFields returns the names of password fields reachable from typ.
func credentialFields(typ reflect.Type, seen map[reflect.Type]bool) []string {
	for typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct || seen[typ] {
		return nil
	}
	seen[typ] = true

	var out []string
	for i := range typ.NumField() {
		f := typ.Field(i)
		if strings.Contains(strings.ToLower(f.Name), "password") {
			out = append(out, typ.Name()+"."+f.Name)
		}
		out = append(out, credentialFields(f.Type, seen)...)
	}
	return out
}

func TestAPIResultsCarryNoPasswordHash(t *testing.T) {
	apiType := reflect.TypeOf(&service.API{})
	for i := range apiType.NumMethod() {
		m := apiType.Method(i)
		for j := range m.Type.NumOut() {
			fields := credentialFields(m.Type.Out(j), map[reflect.Type]bool{})
			require.Empty(t, fields, "API.%s result exposes credentials", m.Name)
		}
	}

	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.api.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	require.IsType(t, domain.Profile{}, registered)

	stored, err := f.store.Users().GetUserByID(ctx, registered.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))
	require.Equal(t, stored.Profile(), registered)

	tok, err := f.api.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	me, err := f.api.WhoAmI(ctx, tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, registered, me)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.api.Register(ctx, "   ", "pw")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = f.api.Register(ctx, "alice", "")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	user, err := f.api.Register(ctx, "  carol  ", "pw")
	require.NoError(t, err)
	require.Equal(t, "carol", user.Username)
}

func TestRegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.api.Register(ctx, "alice", "pw123")
	require.NoError(t, err)

	_, err = f.api.Register(ctx, "alice", "different")
	require.ErrorIs(t, err, service.ErrDuplicateUsername)

	n, err := f.store.Users().CountUsersByUsername(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// The original password still works.
	_, err = f.api.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.api.Register(ctx, "alice", "pw123")
	require.NoError(t, err)

	_, wrongPassword := f.api.Login(ctx, "alice", "nope")
	_, unknownUser := f.api.Login(ctx, "mallory", "pw123")
	_, emptyPassword := f.api.Login(ctx, "alice", "")

	for _, err := range []error{wrongPassword, unknownUser, emptyPassword} {
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
		require.Equal(t, service.ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestRequireIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	t.Run("valid", func(t *testing.T) {
		u, err := f.api.RequireIdentity(ctx, tok)
		require.NoError(t, err)
		require.Equal(t, "alice", u.Username)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := f.api.RequireIdentity(ctx, "not-a-token")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		f.advance(31 * time.Minute)
		defer f.advance(-31 * time.Minute)

		_, err := f.api.RequireIdentity(ctx, tok)
		require.ErrorIs(t, err, service.ErrUnauthorized)

		_, err = f.api.ListTodos(ctx, tok, 0, 0)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("subject no longer resolves", func(t *testing.T) {
		ghost, _, err := f.api.Tokens.Issue("ghost", 0)
		require.NoError(t, err)

		_, err = f.api.RequireIdentity(ctx, ghost)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})
}

func TestTodoLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	t.Run("empty content", func(t *testing.T) {
		_, err := f.api.CreateTodo(ctx, tok, "   ", nil)
		require.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	todo, err := f.api.CreateTodo(ctx, tok, "  buy milk ", ptr("tomorrow-ish"))
	require.NoError(t, err)
	require.Equal(t, "buy milk", todo.Content)
	require.Equal(t, "tomorrow-ish", *todo.DueDate)
	require.False(t, todo.Completed)
	require.Empty(t, todo.Tags)

	t.Run("toggle twice", func(t *testing.T) {
		once, err := f.api.ToggleTodo(ctx, tok, todo.ID)
		require.NoError(t, err)
		require.True(t, once.Completed)
		require.Equal(t, todo.Content, once.Content)
		require.Equal(t, todo.DueDate, once.DueDate)

		twice, err := f.api.ToggleTodo(ctx, tok, todo.ID)
		require.NoError(t, err)
		require.False(t, twice.Completed)
		require.Equal(t, todo.Content, twice.Content)
		require.Equal(t, todo.DueDate, twice.DueDate)
	})

	t.Run("update replaces every field", func(t *testing.T) {
		got, err := f.api.UpdateTodo(ctx, tok, todo.ID, "buy oat milk", nil, true)
		require.NoError(t, err)
		require.Equal(t, "buy oat milk", got.Content)
		require.Nil(t, got.DueDate)
		require.True(t, got.Completed)
		require.Equal(t, todo.CreatedAt, got.CreatedAt)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := f.api.UpdateTodo(ctx, tok, 9999, "x", nil, false)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := f.api.DeleteTodo(ctx, tok, todo.ID)
		require.NoError(t, err)
		require.Equal(t, todo.ID, deleted.ID)

		_, err = f.api.GetTodo(ctx, tok, todo.ID)
		require.ErrorIs(t, err, service.ErrNotFound)

		_, err = f.api.DeleteTodo(ctx, tok, todo.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestListTodosPaging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	var ids []int64
	for _, c := range []string{"one", "two", "three", "four"} {
		td, err := f.api.CreateTodo(ctx, tok, c, nil)
		require.NoError(t, err)
		ids = append(ids, td.ID)
	}

	all, err := f.api.ListTodos(ctx, tok, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)

	page, err := f.api.ListTodos(ctx, tok, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, ids[1], page[0].ID)
	require.Equal(t, ids[2], page[1].ID)

	past, err := f.api.ListTodos(ctx, tok, 10, 5)
	require.NoError(t, err)
	require.Empty(t, past)

	_, err = f.api.ListTodos(ctx, tok, -1, 5)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
	_, err = f.api.ListTodos(ctx, tok, 0, -5)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestTodoOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.login(t, "alice")
	bob := f.login(t, "bob")

	todo, err := f.api.CreateTodo(ctx, alice, "alice only", nil)
	require.NoError(t, err)
	tag, err := f.api.CreateTag(ctx, bob, "shared")
	require.NoError(t, err)

	mine, err := f.api.ListTodos(ctx, bob, 0, 0)
	require.NoError(t, err)
	require.Empty(t, mine)

	checks := map[string]func() error{
		"get":    func() error { _, err := f.api.GetTodo(ctx, bob, todo.ID); return err },
		"update": func() error { _, err := f.api.UpdateTodo(ctx, bob, todo.ID, "pwned", nil, true); return err },
		"toggle": func() error { _, err := f.api.ToggleTodo(ctx, bob, todo.ID); return err },
		"delete": func() error { _, err := f.api.DeleteTodo(ctx, bob, todo.ID); return err },
		"attach": func() error { _, err := f.api.AttachTag(ctx, bob, todo.ID, tag.ID); return err },
	}
	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, check(), service.ErrNotFound)
		})
	}

	got, err := f.api.GetTodo(ctx, alice, todo.ID)
	require.NoError(t, err)
	require.Equal(t, "alice only", got.Content)
	require.False(t, got.Completed)
	require.Empty(t, got.Tags)
}

func TestTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	errand, err := f.api.CreateTag(ctx, tok, "errand")
	require.NoError(t, err)

	t.Run("duplicate", func(t *testing.T) {
		_, err := f.api.CreateTag(ctx, tok, "errand")
		require.ErrorIs(t, err, service.ErrDuplicateDescription)
		_, err = f.api.CreateTag(ctx, tok, "  errand ")
		require.ErrorIs(t, err, service.ErrDuplicateDescription)

		tags, err := f.api.ListTags(ctx, tok, 0, 0)
		require.NoError(t, err)
		count := 0
		for _, tg := range tags {
			if tg.Description == "errand" {
				count++
			}
		}
		require.Equal(t, 1, count)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := f.api.CreateTag(ctx, tok, " ")
		require.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("update", func(t *testing.T) {
		home, err := f.api.CreateTag(ctx, tok, "home")
		require.NoError(t, err)

		_, err = f.api.UpdateTag(ctx, tok, home.ID, "errand")
		require.ErrorIs(t, err, service.ErrDuplicateDescription)

		same, err := f.api.UpdateTag(ctx, tok, home.ID, "home")
		require.NoError(t, err)
		require.Equal(t, "home", same.Description)

		renamed, err := f.api.UpdateTag(ctx, tok, home.ID, "house")
		require.NoError(t, err)
		require.Equal(t, "house", renamed.Description)

		_, err = f.api.UpdateTag(ctx, tok, 9999, "nope")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("get and delete", func(t *testing.T) {
		got, err := f.api.GetTag(ctx, tok, errand.ID)
		require.NoError(t, err)
		require.Equal(t, "errand", got.Description)

		deleted, err := f.api.DeleteTag(ctx, tok, errand.ID)
		require.NoError(t, err)
		require.Equal(t, errand.ID, deleted.ID)

		_, err = f.api.GetTag(ctx, tok, errand.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
		_, err = f.api.DeleteTag(ctx, tok, errand.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestAttachIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	todo, err := f.api.CreateTodo(ctx, tok, "buy milk", nil)
	require.NoError(t, err)
	tag, err := f.api.CreateTag(ctx, tok, "errand")
	require.NoError(t, err)

	first, err := f.api.AttachTag(ctx, tok, todo.ID, tag.ID)
	require.NoError(t, err)
	second, err := f.api.AttachTag(ctx, tok, todo.ID, tag.ID)
	require.NoError(t, err)

	require.Equal(t, first.Tags, second.Tags)
	require.Len(t, second.Tags, 1)

	n, err := f.store.Associations().CountPair(ctx, todo.ID, tag.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	t.Run("missing sides", func(t *testing.T) {
		_, err := f.api.AttachTag(ctx, tok, todo.ID, 9999)
		require.ErrorIs(t, err, service.ErrNotFound)
		_, err = f.api.AttachTag(ctx, tok, 9999, tag.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestDeleteTodoCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	todo, err := f.api.CreateTodo(ctx, tok, "buy milk", nil)
	require.NoError(t, err)
	keep, err := f.api.CreateTodo(ctx, tok, "keep me", nil)
	require.NoError(t, err)
	tag, err := f.api.CreateTag(ctx, tok, "errand")
	require.NoError(t, err)

	_, err = f.api.AttachTag(ctx, tok, todo.ID, tag.ID)
	require.NoError(t, err)
	_, err = f.api.AttachTag(ctx, tok, keep.ID, tag.ID)
	require.NoError(t, err)

	deleted, err := f.api.DeleteTodo(ctx, tok, todo.ID)
	require.NoError(t, err)
	require.Len(t, deleted.Tags, 1)
	require.Equal(t, "errand", deleted.Tags[0].Description)

	n, err := f.store.Associations().CountForTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	tags, err := f.api.ListTags(ctx, tok, 0, 0)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, []int64{keep.ID}, tags[0].TodoIDs)
}

func TestDeleteTagCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	todo, err := f.api.CreateTodo(ctx, tok, "buy milk", nil)
	require.NoError(t, err)
	tag, err := f.api.CreateTag(ctx, tok, "errand")
	require.NoError(t, err)
	_, err = f.api.AttachTag(ctx, tok, todo.ID, tag.ID)
	require.NoError(t, err)

	deleted, err := f.api.DeleteTag(ctx, tok, tag.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{todo.ID}, deleted.TodoIDs)

	got, err := f.api.GetTodo(ctx, tok, todo.ID)
	require.NoError(t, err)
	require.Empty(t, got.Tags)
}

func TestTagViewIsScopedToCaller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.login(t, "alice")
	bob := f.login(t, "bob")

	tag, err := f.api.CreateTag(ctx, alice, "errand")
	require.NoError(t, err)

	aliceTodo, err := f.api.CreateTodo(ctx, alice, "alice's", nil)
	require.NoError(t, err)
	bobTodo, err := f.api.CreateTodo(ctx, bob, "bob's", nil)
	require.NoError(t, err)

	_, err = f.api.AttachTag(ctx, alice, aliceTodo.ID, tag.ID)
	require.NoError(t, err)
	_, err = f.api.AttachTag(ctx, bob, bobTodo.ID, tag.ID)
	require.NoError(t, err)

	asAlice, err := f.api.GetTag(ctx, alice, tag.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{aliceTodo.ID}, asAlice.TodoIDs)

	asBob, err := f.api.GetTag(ctx, bob, tag.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{bobTodo.ID}, asBob.TodoIDs)
}

func TestShoppingListWalkthrough(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.api.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	tok, err := f.api.Login(ctx, "alice", "pw123")
	require.NoError(t, err)

	todo, err := f.api.CreateTodo(ctx, tok.AccessToken, "buy milk", nil)
	require.NoError(t, err)
	tag, err := f.api.CreateTag(ctx, tok.AccessToken, "errand")
	require.NoError(t, err)
	_, err = f.api.AttachTag(ctx, tok.AccessToken, todo.ID, tag.ID)
	require.NoError(t, err)

	got, err := f.api.GetTodo(ctx, tok.AccessToken, todo.ID)
	require.NoError(t, err)
	require.Equal(t, "buy milk", got.Content)
	require.Nil(t, got.DueDate)
	require.False(t, got.Completed)
	require.Len(t, got.Tags, 1)
	require.Equal(t, "errand", got.Tags[0].Description)
	require.True(t, got.HasTag(tag.ID))
}

func TestKind(t *testing.T) {
	require.Equal(t, service.ErrNotFound, service.Kind(service.ErrNotFound))
	require.Equal(t, service.ErrInvalidArgument, service.Kind(errors.Join(errors.New("ctx"), service.ErrInvalidArgument)))
	require.Equal(t, service.ErrUnavailable, service.Kind(errors.New("boom")))
}

func TestUnavailableWhenStoreClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok := f.login(t, "alice")

	require.NoError(t, f.store.Close())

	_, err := f.api.ListTodos(ctx, tok, 0, 0)
	require.ErrorIs(t, err, service.ErrUnavailable)

	_, err = f.api.Register(ctx, "bob", "pw")
	require.ErrorIs(t, err, service.ErrUnavailable)
}

func TestInactiveUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Users().CreateUser(ctx, domain.User{Username: "dormant", PasswordHash: mustHash(t, "pw"), Active: false})
	require.NoError(t, err)

	_, err = f.api.Login(ctx, "dormant", "pw")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	tok, _, err := f.api.Tokens.Issue("dormant", 0)
	require.NoError(t, err)
	_, err = f.api.WhoAmI(ctx, tok)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLookups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice, err := f.api.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	tag, err := f.api.Tags.Create(ctx, "errand")
	require.NoError(t, err)

	t.Run("user by id", func(t *testing.T) {
		cases := []struct {
			name    string
			id      int64
			wantErr error
		}{
			{"found", alice.ID, nil},
			{"missing", alice.ID + 999, service.ErrNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				u, err := f.api.Users.GetByID(ctx, tc.id)
				if tc.wantErr != nil {
					require.ErrorIs(t, err, tc.wantErr)
					return
				}
				require.NoError(t, err)
				require.Equal(t, "alice", u.Username)
				require.Equal(t, alice, u.Profile())
			})
		}
	})

	t.Run("tag by description", func(t *testing.T) {
		cases := []struct {
			name        string
			description string
			wantErr     error
		}{
			{"found", "errand", nil},
			{"found after trimming", "  errand ", nil},
			{"missing", "nope", service.ErrNotFound},
			{"case sensitive", "Errand", service.ErrNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := f.api.Tags.GetByDescription(ctx, tc.description)
				if tc.wantErr != nil {
					require.ErrorIs(t, err, tc.wantErr)
					return
				}
				require.NoError(t, err)
				require.Equal(t, tag.ID, got.ID)
			})
		}
	})
}

func TestTodoTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.login(t, "alice")
	bob := f.login(t, "bob")

	todo, err := f.api.CreateTodo(ctx, alice, "buy milk", nil)
	require.NoError(t, err)

	tags, err := f.api.TodoTags(ctx, alice, todo.ID)
	require.NoError(t, err)
	require.NotNil(t, tags)
	require.Empty(t, tags)

	errand, err := f.api.CreateTag(ctx, alice, "errand")
	require.NoError(t, err)
	home, err := f.api.CreateTag(ctx, alice, "home")
	require.NoError(t, err)
	for _, id := range []int64{home.ID, errand.ID} {
		_, err = f.api.AttachTag(ctx, alice, todo.ID, id)
		require.NoError(t, err)
	}

	tags, err = f.api.TodoTags(ctx, alice, todo.ID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Equal(t, errand.ID, tags[0].ID)
	require.Equal(t, home.ID, tags[1].ID)

	_, err = f.api.TodoTags(ctx, bob, todo.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = f.api.TodoTags(ctx, alice, todo.ID+100)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = f.api.TodoTags(ctx, "garbage", todo.ID)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

// directReads counts tag and association access made outside a transaction.
type directReads struct {
	store.Store
	n int
}

func (d *directReads) Tags() store.Tags { d.n++; return d.Store.Tags() }

func (d *directReads) Associations() store.Associations { d.n++; return d.Store.Associations() }

func TestDeleteTagReadsInsideTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.login(t, "alice")
	bob := f.login(t, "bob")

	tag, err := f.api.CreateTag(ctx, alice, "errand")
	require.NoError(t, err)
	aliceTodo, err := f.api.CreateTodo(ctx, alice, "alice's", nil)
	require.NoError(t, err)
	bobTodo, err := f.api.CreateTodo(ctx, bob, "bob's", nil)
	require.NoError(t, err)
	_, err = f.api.AttachTag(ctx, alice, aliceTodo.ID, tag.ID)
	require.NoError(t, err)
	_, err = f.api.AttachTag(ctx, bob, bobTodo.ID, tag.ID)
	require.NoError(t, err)

	counting := &directReads{Store: f.store}
	f.api.Tags.Store = counting
	f.api.Associations.Store = counting

	deleted, err := f.api.DeleteTag(ctx, bob, tag.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{bobTodo.ID}, deleted.TodoIDs)
	require.Zero(t, counting.n, "tag delete must not read outside its transaction")

	_, err = f.api.DeleteTag(ctx, bob, tag.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTagServiceDeleteUnscoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.login(t, "alice")
	bob := f.login(t, "bob")

	tag, err := f.api.CreateTag(ctx, alice, "errand")
	require.NoError(t, err)
	var ids []int64
	for _, tok := range []string{alice, bob} {
		todo, err := f.api.CreateTodo(ctx, tok, "todo", nil)
		require.NoError(t, err)
		_, err = f.api.AttachTag(ctx, tok, todo.ID, tag.ID)
		require.NoError(t, err)
		ids = append(ids, todo.ID)
	}

	deleted, err := f.api.Tags.Delete(ctx, tag.ID, nil)
	require.NoError(t, err)
	require.Equal(t, ids, deleted.TodoIDs)
}
