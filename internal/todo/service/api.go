package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
)

// API is the access-controlled surface. Every operation other than Register
// and Login resolves the caller from a bearer token first.
//
// Todos are private to their owner: a todo that exists but belongs to
// someone else is reported as ErrNotFound. Tags are shared by everyone, and a
// tag view only lists the caller's own todos.
type API struct {
	Users        *UserService
	Todos        *TodoService
	Tags         *TagService
	Associations *AssociationService
	Tokens       *TokenService
}

// NewAPI wires the services over a single store.
func NewAPI(st store.Store, tokens *TokenService) *API {
	return &API{
		Users:        &UserService{Store: st},
		Todos:        &TodoService{Store: st},
		Tags:         &TagService{Store: st},
		Associations: &AssociationService{Store: st},
		Tokens:       tokens,
	}
}

func (a *API) Register(ctx context.Context, username, password string) (domain.Profile, error) {
	user, err := a.Users.Create(ctx, username, password)
	if err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

// Login exchanges credentials for a bearer token.
func (a *API) Login(ctx context.Context, username, password string) (domain.Token, error) {
	user, err := a.Users.Authenticate(ctx, username, password)
	if err != nil {
		return domain.Token{}, err
	}

	token, ttl, err := a.Tokens.Issue(user.Username, 0)
	if err != nil {
		return domain.Token{}, classify(err, nil)
	}

	slogx.FromContext(ctx).Info("token issued", slog.Int64("user_id", user.ID))
	return domain.Token{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// RequireIdentity resolves token to an active user. Invalid or expired
// tokens, subjects that no longer exist and inactive users are ErrUnauthorized.
func (a *API) RequireIdentity(ctx context.Context, token string) (domain.Profile, error) {
	subject, ok := a.Tokens.Validate(token)
	if !ok {
		return domain.Profile{}, ErrUnauthorized
	}

	user, err := a.Users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Profile{}, ErrUnauthorized
		}
		return domain.Profile{}, err
	}
	if !user.Active {
		return domain.Profile{}, ErrUnauthorized
	}

	return user.Profile(), nil
}

// identify is RequireIdentity plus a context whose logger carries user_id.
func (a *API) identify(ctx context.Context, token string) (context.Context, domain.Profile, error) {
	user, err := a.RequireIdentity(ctx, token)
	if err != nil {
		slogx.FromContext(ctx).Debug("identity rejected", slog.Any("err", err))
		return ctx, domain.Profile{}, err
	}
	return slogx.With(ctx, "user_id", user.ID), user, nil
}

func (a *API) WhoAmI(ctx context.Context, token string) (domain.Profile, error) {
	return a.RequireIdentity(ctx, token)
}

// ownedTodo loads a todo the caller owns.
func (a *API) ownedTodo(ctx context.Context, user domain.Profile, id int64) (domain.Todo, error) {
	todo, err := a.Todos.Get(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}
	if todo.OwnerID != user.ID {
		return domain.Todo{}, ErrNotFound
	}
	return todo, nil
}

func (a *API) CreateTodo(ctx context.Context, token, content string, dueDate *string) (domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Todo{}, err
	}
	return a.Todos.Create(ctx, user.ID, content, dueDate)
}

// ListTodos lists the caller's todos.
func (a *API) ListTodos(ctx context.Context, token string, skip, limit int64) ([]domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return nil, err
	}
	return a.Todos.List(ctx, &user.ID, skip, limit)
}

func (a *API) GetTodo(ctx context.Context, token string, id int64) (domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Todo{}, err
	}
	return a.ownedTodo(ctx, user, id)
}

func (a *API) UpdateTodo(
	ctx context.Context,
	token string,
	id int64,
	content string,
	dueDate *string,
	completed bool,
) (domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Todo{}, err
	}
	if _, err := a.ownedTodo(ctx, user, id); err != nil {
		return domain.Todo{}, err
	}
	return a.Todos.Update(ctx, id, content, dueDate, completed)
}

func (a *API) ToggleTodo(ctx context.Context, token string, id int64) (domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Todo{}, err
	}
	if _, err := a.ownedTodo(ctx, user, id); err != nil {
		return domain.Todo{}, err
	}
	return a.Todos.Toggle(ctx, id)
}

func (a *API) DeleteTodo(ctx context.Context, token string, id int64) (domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Todo{}, err
	}
	if _, err := a.ownedTodo(ctx, user, id); err != nil {
		return domain.Todo{}, err
	}
	return a.Todos.Delete(ctx, id)
}

// tagView fills in the todos attached to tag that the caller can see.
func (a *API) tagView(ctx context.Context, user domain.Profile, tag domain.Tag) (domain.Tag, error) {
	ids, err := a.Associations.TodoIDsForTag(ctx, tag.ID, &user.ID)
	if err != nil {
		return domain.Tag{}, err
	}
	tag.TodoIDs = ids
	return tag, nil
}

func (a *API) CreateTag(ctx context.Context, token, description string) (domain.Tag, error) {
	ctx, _, err := a.identify(ctx, token)
	if err != nil {
		return domain.Tag{}, err
	}

	tag, err := a.Tags.Create(ctx, description)
	if err != nil {
		return domain.Tag{}, err
	}
	tag.TodoIDs = []int64{}
	return tag, nil
}

func (a *API) ListTags(ctx context.Context, token string, skip, limit int64) ([]domain.Tag, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return nil, err
	}

	tags, err := a.Tags.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Tag, 0, len(tags))
	for _, t := range tags {
		v, err := a.tagView(ctx, user, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (a *API) GetTag(ctx context.Context, token string, id int64) (domain.Tag, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Tag{}, err
	}

	tag, err := a.Tags.Get(ctx, id)
	if err != nil {
		return domain.Tag{}, err
	}
	return a.tagView(ctx, user, tag)
}

func (a *API) UpdateTag(ctx context.Context, token string, id int64, description string) (domain.Tag, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Tag{}, err
	}

	tag, err := a.Tags.Update(ctx, id, description)
	if err != nil {
		return domain.Tag{}, err
	}
	return a.tagView(ctx, user, tag)
}

// DeleteTag returns the removed tag with the caller's todos it was attached to.
func (a *API) DeleteTag(ctx context.Context, token string, id int64) (domain.Tag, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Tag{}, err
	}
	return a.Tags.Delete(ctx, id, &user.ID)
}

// TodoTags lists the tags attached to one of the caller's todos.
func (a *API) TodoTags(ctx context.Context, token string, todoID int64) ([]domain.Tag, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return nil, err
	}
	if _, err := a.ownedTodo(ctx, user, todoID); err != nil {
		return nil, err
	}
	return a.Associations.TagsForTodo(ctx, todoID)
}

// AttachTag links a tag to one of the caller's todos.
func (a *API) AttachTag(ctx context.Context, token string, todoID, tagID int64) (domain.Todo, error) {
	ctx, user, err := a.identify(ctx, token)
	if err != nil {
		return domain.Todo{}, err
	}
	if _, err := a.ownedTodo(ctx, user, todoID); err != nil {
		return domain.Todo{}, err
	}
	return a.Associations.Attach(ctx, todoID, tagID)
}
