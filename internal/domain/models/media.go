package models

import (
	"time"
)

// MediaFile is the metadata row for an uploaded asset. The bytes live in
// object storage under StorageKey; the lifecycle core only ever touches
// this row.
type MediaFile struct {
	ID            string     `json:"id" db:"id"`
	UserID        string     `json:"user_id" db:"user_id"`
	MediaFolderID *string    `json:"media_folder_id,omitempty" db:"media_folder_id"`
	CategoryID    *string    `json:"media_category_id,omitempty" db:"media_category_id"`
	Name          string     `json:"name" db:"name"`
	MimeType      string     `json:"mime_type" db:"mime_type"`
	SizeBytes     int64      `json:"size_bytes" db:"size_bytes"`
	StorageKey    string     `json:"storage_key" db:"storage_key"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type MediaFolder struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Color     *string    `json:"color,omitempty" db:"color"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type MediaCategory struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Color     *string    `json:"color,omitempty" db:"color"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// MediaFolderWithCount mirrors FolderWithCount for the media library.
type MediaFolderWithCount struct {
	MediaFolder
	FileCount int `json:"file_count" db:"file_count"`
}

type MediaCategoryWithCount struct {
	MediaCategory
	FileCount int `json:"file_count" db:"file_count"`
}
