package roles

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Role struct {
	ID          string `yaml:"id" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
}

// Catalog supplies the recognized role identifiers. The baseline
// catalog is a fixed curated tier list; deployments substitute a
// fuller list via SetActive or a roles.yaml file.
type Catalog interface {
	AvailableRoles() []Role
}

// DefaultRoles is the baseline five-tier catalog.
var DefaultRoles = []Role{
	{ID: "administrator", DisplayName: "Administrator"},
	{ID: "editor", DisplayName: "Editor"},
	{ID: "author", DisplayName: "Author"},
	{ID: "contributor", DisplayName: "Contributor"},
	{ID: "subscriber", DisplayName: "Subscriber"},
}

type staticCatalog struct {
	roles []Role
}

func (s *staticCatalog) AvailableRoles() []Role {
	out := make([]Role, len(s.roles))
	copy(out, s.roles)
	return out
}

// Default returns the curated baseline catalog.
func Default() Catalog {
	return &staticCatalog{roles: DefaultRoles}
}

var active Catalog = Default()

// Active is the catalog the application currently serves.
func Active() Catalog {
	return active
}

// SetActive substitutes the deployment's catalog at startup.
func SetActive(c Catalog) {
	if c != nil {
		active = c
	}
}

// FromList builds a catalog from an explicit role list. This is the
// extensibility hook for callers with their own role source.
func FromList(list []Role) Catalog {
	return &staticCatalog{roles: list}
}

// LoadFile reads a roles.yaml catalog:
//
//	roles:
//	  - id: editor
//	    display_name: Editor
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles file: %w", err)
	}
	var doc struct {
		Roles []Role `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse roles file: %w", err)
	}
	if len(doc.Roles) == 0 {
		return nil, fmt.Errorf("roles file %s lists no roles", path)
	}
	for i, r := range doc.Roles {
		if strings.TrimSpace(r.ID) == "" {
			return nil, fmt.Errorf("roles file %s: entry %d has no id", path, i)
		}
	}
	return &staticCatalog{roles: doc.Roles}, nil
}

// Known reports whether id names a role in the catalog,
// case-insensitive.
func Known(c Catalog, id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, r := range c.AvailableRoles() {
		if strings.ToLower(r.ID) == id {
			return true
		}
	}
	return false
}
