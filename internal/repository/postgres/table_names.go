package postgres

import "fmt"

// TableNames holds dynamically prefixed table names. Each environment
// (dev_, test_, prod_) gets its own set of tables in the same database.
type TableNames struct {
	Snippets        string
	Folders         string
	Categories      string
	MediaFiles      string
	MediaFolders    string
	MediaCategories string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Snippets:        fmt.Sprintf("%ssnippets", prefix),
		Folders:         fmt.Sprintf("%sfolders", prefix),
		Categories:      fmt.Sprintf("%scategories", prefix),
		MediaFiles:      fmt.Sprintf("%smedia_files", prefix),
		MediaFolders:    fmt.Sprintf("%smedia_folders", prefix),
		MediaCategories: fmt.Sprintf("%smedia_categories", prefix),
	}
}
