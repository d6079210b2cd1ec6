package todosdk

import "time"

// RegisterRequest is the body of POST /v1/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /v1/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserResponse is the outward view of a user. It never includes the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TodoRequest is the body of POST /v1/todos.
type TodoRequest struct {
	Content string  `json:"content"`
	DueDate *string `json:"due_date"`
}

// UpdateTodoRequest is the body of PUT /v1/todos/{id}. Every field is
// replaced, so callers must resupply the values they want to keep.
type UpdateTodoRequest struct {
	Content   string  `json:"content"`
	DueDate   *string `json:"due_date"`
	Completed bool    `json:"completed"`
}

// TagSummary is a tag as embedded in a todo.
type TagSummary struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// TodoResponse is the read shape of a todo.
type TodoResponse struct {
	ID        int64        `json:"id"`
	OwnerID   int64        `json:"owner_id"`
	Content   string       `json:"content"`
	DueDate   *string      `json:"due_date"`
	Completed bool         `json:"completed"`
	CreatedAt time.Time    `json:"created_at"`
	Tags      []TagSummary `json:"tags"`
}

// TagRequest is the body of POST /v1/tags and PUT /v1/tags/{id}.
type TagRequest struct {
	Description string `json:"description"`
}

// TagResponse is the read shape of a tag. Todos lists the ids of the caller's
// todos the tag is attached to.
type TagResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Todos       []int64   `json:"todos"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports dependency status on /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}
