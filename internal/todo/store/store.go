package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx can hand out the same repos
// bound to the transaction, and so nested transactions are impossible to
// start by accident.
type Store interface {
	Users() Users
	Todos() Todos
	Tags() Tags
	Associations() Associations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A nil return commits; an
	// error or panic rolls back.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u and returns it with its assigned id. A taken
	// username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CountUsersByUsername is 0 or 1 while the unique index holds.
	CountUsersByUsername(ctx context.Context, username string) (int64, error)
}

// Todos returns records without their Tags populated; see Associations.
type Todos interface {
	CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
	GetTodoByID(ctx context.Context, id int64) (domain.Todo, error)

	// ListTodos returns todos ordered by id. A nil ownerID lists every owner.
	ListTodos(ctx context.Context, ownerID *int64, page domain.Page) ([]domain.Todo, error)

	// UpdateTodo replaces content, due date and completed for t.ID.
	UpdateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)

	// DeleteTodo removes the row and returns what was removed.
	DeleteTodo(ctx context.Context, id int64) (domain.Todo, error)
}

type Tags interface {
	// CreateTag inserts a tag. A taken description yields ErrAlreadyExists.
	CreateTag(ctx context.Context, t domain.Tag) (domain.Tag, error)
	GetTagByID(ctx context.Context, id int64) (domain.Tag, error)
	GetTagByDescription(ctx context.Context, description string) (domain.Tag, error)
	ListTags(ctx context.Context, page domain.Page) ([]domain.Tag, error)
	CountTagsByDescription(ctx context.Context, description string) (int64, error)

	// UpdateTagDescription yields ErrAlreadyExists when another tag owns description.
	UpdateTagDescription(ctx context.Context, id int64, description string) (domain.Tag, error)

	// DeleteTag removes the row and returns what was removed.
	DeleteTag(ctx context.Context, id int64) (domain.Tag, error)
}

type Associations interface {
	// Attach links a todo and a tag. Returns true when a new row was written
	// and false when the pair already existed.
	Attach(ctx context.Context, todoID, tagID int64) (bool, error)

	// TagsForTodo lists the tags attached to a todo ordered by tag id.
	TagsForTodo(ctx context.Context, todoID int64) ([]domain.Tag, error)

	// TodoIDsForTag lists attached todo ids in ascending order. A non-nil
	// ownerID restricts the result to that owner's todos.
	TodoIDsForTag(ctx context.Context, tagID int64, ownerID *int64) ([]int64, error)

	// DetachAllFromTodo and DetachAllFromTag return the number of rows removed.
	DetachAllFromTodo(ctx context.Context, todoID int64) (int64, error)
	DetachAllFromTag(ctx context.Context, tagID int64) (int64, error)

	CountForTodo(ctx context.Context, todoID int64) (int64, error)
	CountPair(ctx context.Context, todoID, tagID int64) (int64, error)
}
