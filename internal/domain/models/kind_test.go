package models

import "testing"

func TestParseKind(t *testing.T) {
	valid := []string{
		"snippet",
		"folder",
		"category",
		"media-file",
		"media-folder",
		"media-category",
	}
	for _, s := range valid {
		kind, err := ParseKind(s)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", s, err)
		}
		if string(kind) != s {
			t.Errorf("ParseKind(%q) = %q", s, kind)
		}
	}

	invalid := []string{"", "Snippet", "snippets", "media_file", "widget"}
	for _, s := range invalid {
		if _, err := ParseKind(s); err == nil {
			t.Errorf("ParseKind(%q) should fail", s)
		}
	}
}
