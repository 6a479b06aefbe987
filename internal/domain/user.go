package domain

import "time"

// User is an account that owns plans.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserSummary is the owner projection attached to listed plans.
type UserSummary struct {
	ID       int64
	Username string
	Email    string
}

func (u User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
