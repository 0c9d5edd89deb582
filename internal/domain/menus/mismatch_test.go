package menus

import (
	"testing"

	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/mismatch"
)

func TestCompareWithPage(t *testing.T) {
	pageID := "3f0a2c9e-0000-0000-0000-000000000001"
	memberPage := &content.Page{
		ID:           pageID,
		WhoCanSee:    "logged_in",
		AllowedRoles: "editor",
	}
	openPage := &content.Page{ID: pageID, WhoCanSee: "everyone"}

	tests := []struct {
		name string
		item MenuItem
		want mismatch.Result
	}{
		{
			name: "custom link has nothing to compare",
			item: MenuItem{Label: "External", URL: "https://example.com"},
			want: mismatch.Neutral,
		},
		{
			name: "matching visibility",
			item: MenuItem{PageID: &pageID, Page: memberPage, Visibility: "logged_in", VisibilityRoles: "editor"},
			want: mismatch.Match,
		},
		{
			name: "item open but page restricted",
			item: MenuItem{PageID: &pageID, Page: memberPage, Visibility: "everyone"},
			want: mismatch.Mismatch,
		},
		{
			name: "item restricted but page open",
			item: MenuItem{PageID: &pageID, Page: openPage, Visibility: "logged_in"},
			want: mismatch.Mismatch,
		},
		{
			name: "legacy role key matches role-restricted page",
			item: MenuItem{PageID: &pageID, Page: memberPage, Visibility: "role_editor"},
			want: mismatch.Match,
		},
		{
			name: "role sets differ",
			item: MenuItem{PageID: &pageID, Page: memberPage, Visibility: "logged_in", VisibilityRoles: "author"},
			want: mismatch.Mismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.CompareWithPage(); got != tt.want {
				t.Fatalf("CompareWithPage() = %v, want %v", got, tt.want)
			}
		})
	}
}
