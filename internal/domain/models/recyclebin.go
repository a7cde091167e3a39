package models

// RecycleBin is the aggregated per-user view of everything currently
// soft-deleted on the snippet side. Each collection is ordered by
// deleted_at descending so the most recent deletion comes first.
type RecycleBin struct {
	Snippets   []Snippet           `json:"snippets"`
	Folders    []FolderWithCount   `json:"folders"`
	Categories []CategoryWithCount `json:"categories"`
}

// MediaRecycleBin is the parallel aggregate for the media library.
type MediaRecycleBin struct {
	Files      []MediaFile              `json:"files"`
	Folders    []MediaFolderWithCount   `json:"folders"`
	Categories []MediaCategoryWithCount `json:"categories"`
}

// TotalItems reports how many entities the bin currently holds.
func (b *RecycleBin) TotalItems() int {
	return len(b.Snippets) + len(b.Folders) + len(b.Categories)
}

func (b *MediaRecycleBin) TotalItems() int {
	return len(b.Files) + len(b.Folders) + len(b.Categories)
}
