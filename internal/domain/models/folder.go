package models

import (
	"time"
)

type Folder struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Color     *string    `json:"color,omitempty" db:"color"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// FolderWithCount is a deleted folder together with the number of
// currently-active snippets that still reference it. Children stay active
// when their folder is soft-deleted; the count tells the user what the
// folder would get back on restore.
type FolderWithCount struct {
	Folder
	SnippetCount int `json:"snippet_count" db:"snippet_count"`
}
