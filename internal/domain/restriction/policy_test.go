package restriction

import (
	"errors"
	"testing"
)

func TestParseLoginRequirement(t *testing.T) {
	tests := []struct {
		raw     string
		want    LoginRequirement
		wantErr bool
	}{
		{"", RequireNone, false},
		{"everyone", RequireNone, false},
		{"logged_in", RequireLoggedIn, false},
		{"logged_out", RequireLoggedOut, false},
		{" logged_in ", RequireLoggedIn, false},
		{"members", "", true},
		{"LOGGED_IN", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLoginRequirement(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPolicy) {
				t.Fatalf("ParseLoginRequirement(%q) error = %v, want ErrInvalidPolicy", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLoginRequirement(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLoginRequirement(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeRoles(t *testing.T) {
	got := NormalizeRoles([]string{" editor ", "", "Author", "  "})
	want := []string{"editor", "Author"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeRoles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeRoles()[%d] = %q, want %q (case must be preserved)", i, got[i], want[i])
		}
	}
}

func TestPolicyOpen(t *testing.T) {
	if !(Policy{LoginRequirement: RequireNone}).Open() {
		t.Fatal("everyone with no roles should be open")
	}
	if (Policy{LoginRequirement: RequireLoggedIn}).Open() {
		t.Fatal("logged_in should not be open")
	}
	if (Policy{LoginRequirement: RequireNone, AllowedRoles: []string{"editor"}}).Open() {
		t.Fatal("everyone with roles is a restricted (contradictory) state, not open")
	}
	if !(Policy{LoginRequirement: RequireNone, AllowedRoles: []string{"  "}}).Open() {
		t.Fatal("whitespace-only roles normalize away, policy is open")
	}
}
