package models

import (
	"time"
)

type Category struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Color     *string    `json:"color,omitempty" db:"color"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// CategoryWithCount is a deleted category with the number of active
// snippets still tagged with it.
type CategoryWithCount struct {
	Category
	SnippetCount int `json:"snippet_count" db:"snippet_count"`
}
