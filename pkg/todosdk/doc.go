/*
Package todosdk provides a client SDK and the wire types for the tabtodo HTTP API.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (register, login, health) and session creation
  - Session: operations that need a bearer token (todos, tags, whoami)

	client := todosdk.NewSDKClient("http://localhost:8080")

	if _, err := client.Register(ctx, "alice", "pw123"); err != nil {
		// errors.Is(err, todosdk.ErrDuplicateUsername)
	}

	session, err := client.Login(ctx, "alice", "pw123")
	todo, err := session.CreateTodo(ctx, todosdk.TodoRequest{Content: "buy milk"})
	tag, err := session.CreateTag(ctx, todosdk.TagRequest{Description: "errand"})
	todo, err = session.AttachTag(ctx, todo.ID, tag.ID)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the server's error code. APIError values compare equal under errors.Is
when their codes match, so the predefined values (ErrNotFound,
ErrUnauthorized, ...) can be used as sentinels.

# Tokens

Access tokens are not refreshed. Once a Session's token has expired every call
fails with ErrUnauthorized and the caller must log in again.
*/
package todosdk
