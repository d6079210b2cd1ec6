package domain

import "time"

// Todo is a task owned by exactly one user. OwnerID never changes after creation.
type Todo struct {
	ID        int64
	OwnerID   int64
	Content   string
	DueDate   *string // stored verbatim, nil when absent
	Completed bool
	CreatedAt time.Time

	// Tags attached to the todo, ordered by tag id.
	Tags []Tag
}

// HasTag reports whether the tag with id is attached to t.
func (t Todo) HasTag(id int64) bool {
	for _, tag := range t.Tags {
		if tag.ID == id {
			return true
		}
	}
	return false
}
