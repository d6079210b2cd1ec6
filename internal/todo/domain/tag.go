package domain

import "time"

// Tag is a label from the global tag namespace.
type Tag struct {
	ID          int64
	Description string
	CreatedAt   time.Time

	// TodoIDs lists the attached todos visible to the caller. Only populated
	// by operations that return a full tag view.
	TodoIDs []int64
}
