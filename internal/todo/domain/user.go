package domain

import "time"

// User is the stored account record. Only UserService and the store see it.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // argon2 encoded
	Active       bool
	CreatedAt    time.Time
}

// Profile is the outward view of a user. It has no credential fields.
type Profile struct {
	ID        int64
	Username  string
	Active    bool
	CreatedAt time.Time
}

func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
