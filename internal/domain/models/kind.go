package models

import "fmt"

// Kind identifies one of the entity kinds managed by the recycle-bin
// lifecycle. The set is closed: every kind is bound to its own store
// accessor at construction time, so adding a kind is a compile-time
// change, not a string-matched fallthrough.
type Kind string

const (
	KindSnippet       Kind = "snippet"
	KindFolder        Kind = "folder"
	KindCategory      Kind = "category"
	KindMediaFile     Kind = "media-file"
	KindMediaFolder   Kind = "media-folder"
	KindMediaCategory Kind = "media-category"
)

// ParseKind validates a kind string from the request path or body.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSnippet, KindFolder, KindCategory, KindMediaFile, KindMediaFolder, KindMediaCategory:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}
