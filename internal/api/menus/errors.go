package menusapi

import "fmt"

func errUnknownVisibility(key string) error {
	return fmt.Errorf("unknown visibility key %q", key)
}

func errPageNotFound(id string) error {
	return fmt.Errorf("linked page %s not found", id)
}
