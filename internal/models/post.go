package models

import "time"

// Post represents a markdown post owned by a single user. Ownership is fixed
// at creation; UpdatedAt is refreshed on every successful mutation.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
