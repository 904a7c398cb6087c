package models

import "time"

// ForumPost is an immutable record supplied by the upstream data source.
type ForumPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Replies   int       `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}
