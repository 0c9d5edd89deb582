package enforcement

import "testing"

func TestIsRedirectLoop(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    bool
	}{
		{"identical", "/members", "/members", true},
		{"trailing slash", "/members/", "/members", true},
		{"fragment ignored", "/members#top", "/members", true},
		{"host case ignored", "https://Example.com/members", "https://example.com/members", true},
		{"bare host trailing slash", "https://example.com/", "https://example.com", true},
		{"different path", "/members", "/login", false},
		{"different host", "https://a.example.com/p", "https://b.example.com/p", false},
		{"query matters", "/members?x=1", "/members", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRedirectLoop(tt.current, tt.target); got != tt.want {
				t.Fatalf("IsRedirectLoop(%q, %q) = %v, want %v", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestIsRedirectLoopAt(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		path   string
		target string
		want   bool
	}{
		{"relative same path", "site.example", "/pages/x", "/pages/x", true},
		{"relative other path", "site.example", "/pages/x", "/login", false},
		{"absolute self address", "site.example", "/pages/x", "https://site.example/pages/x", true},
		{"absolute self trailing slash", "site.example", "/pages/x", "https://site.example/pages/x/", true},
		{"host case ignored", "Site.Example", "/pages/x", "https://site.example/pages/x", true},
		{"same host other path", "site.example", "/pages/x", "https://site.example/login", false},
		{"other host same path", "site.example", "/pages/x", "https://elsewhere.example/pages/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRedirectLoopAt(tt.host, tt.path, tt.target); got != tt.want {
				t.Fatalf("IsRedirectLoopAt(%q, %q, %q) = %v, want %v", tt.host, tt.path, tt.target, got, tt.want)
			}
		})
	}
}
