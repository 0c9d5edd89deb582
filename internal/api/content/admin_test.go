package contentapi

import (
	"testing"
)

func TestBlockFromInputRejectsUnknownVisibility(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"empty key", "", false},
		{"everyone", "everyone", false},
		{"logged_in", "logged_in", false},
		{"logged_out", "logged_out", false},
		{"legacy role key", "role_editor", false},
		{"typo", "loged_in", true},
		{"garbage", "members-only", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := blockFromInput("page-1", BlockInput{Type: "text", Visibility: tc.key})
			if tc.wantErr && err == nil {
				t.Fatalf("key %q: expected rejection, got nil", tc.key)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("key %q: unexpected error %v", tc.key, err)
			}
		})
	}
}

func TestBlockFromInputDefaultsProps(t *testing.T) {
	block, err := blockFromInput("page-1", BlockInput{Type: "text", Visibility: "everyone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(block.Props) != "{}" {
		t.Fatalf("props = %q, want {}", block.Props)
	}
	if block.PageID != "page-1" {
		t.Fatalf("page id = %q", block.PageID)
	}
}

func TestBlockFromInputNormalizesRoles(t *testing.T) {
	block, err := blockFromInput("page-1", BlockInput{
		Type:            "text",
		Visibility:      "logged_in",
		VisibilityRoles: []string{" editor ", "", "author"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.VisibilityRoles != "editor,author" {
		t.Fatalf("roles = %q", block.VisibilityRoles)
	}
}
