package roles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	got := Default().AvailableRoles()
	if len(got) != 5 {
		t.Fatalf("expected 5 baseline roles, got %d", len(got))
	}
	if got[0].ID != "administrator" {
		t.Fatalf("expected administrator first, got %s", got[0].ID)
	}
}

func TestLoadFile(t *testing.T) {
	content := `
roles:
  - id: editor
    display_name: Editor
  - id: premium_member
    display_name: Premium Member
`
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	os.WriteFile(path, []byte(content), 0644)

	catalog, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := catalog.AvailableRoles()
	if len(list) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(list))
	}
	if list[1].ID != "premium_member" || list[1].DisplayName != "Premium Member" {
		t.Fatalf("unexpected second role: %+v", list[1])
	}
}

func TestLoadFileRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	os.WriteFile(path, []byte("roles: []\n"), 0644)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty role list")
	}

	os.WriteFile(path, []byte("roles:\n  - display_name: NoID\n"), 0644)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for role without id")
	}
}

func TestKnown(t *testing.T) {
	c := Default()
	if !Known(c, "editor") {
		t.Fatal("editor should be known")
	}
	if !Known(c, " Editor ") {
		t.Fatal("lookup should be case-insensitive and trimmed")
	}
	if Known(c, "premium_member") {
		t.Fatal("premium_member is not in the baseline catalog")
	}
}
