package models

import (
	"time"
)

type Snippet struct {
	ID         string     `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	FolderID   *string    `json:"folder_id,omitempty" db:"folder_id"`     // NULL = unfiled
	CategoryID *string    `json:"category_id,omitempty" db:"category_id"` // NULL = uncategorized
	Title      string     `json:"title" db:"title"`
	Language   string     `json:"language" db:"language"`
	Code       string     `json:"code" db:"code"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
