package hier

import (
	"fmt"

	"varc/types"
)

// Table is a map-backed class hierarchy: each declared class maps to the name
// of its parent, or to the empty string for a root class.  A Table is built
// once by the declaration loader and immutable afterwards, which makes it
// safe for concurrent read access without locking.
type Table struct {
	parents map[string]string
}

// NewTable creates a new, empty hierarchy table.
func NewTable() *Table {
	return &Table{parents: make(map[string]string)}
}

// Define declares a class with the given parent.  The parent may be empty for
// a root class and need not be declared yet: dangling parent references are
// detected lazily, when a subclass query first walks through them.
func (t *Table) Define(name, parent string) error {
	if _, ok := t.parents[name]; ok {
		return fmt.Errorf("class `%s` declared multiple times", name)
	}

	t.parents[name] = parent
	return nil
}

// Resolve looks up a class by name, returning the resolved class descriptor
// or a ClassNotFoundError.
func (t *Table) Resolve(name string) (types.Class, error) {
	if _, ok := t.parents[name]; !ok {
		return types.Class{}, &ClassNotFoundError{Name: name}
	}

	return types.Class{Name: name}, nil
}

// IsSubclassOf reports whether sub is super or one of its descendants by
// walking sub's parent chain.  The relation is reflexive.  A chain that
// passes through an undeclared class yields ClassNotFoundError; a chain that
// revisits a class yields CyclicHierarchyError.
func (t *Table) IsSubclassOf(sub, super types.Class) (bool, error) {
	visited := make(map[string]struct{})

	for cur := sub.Name; ; {
		parent, ok := t.parents[cur]
		if !ok {
			return false, &ClassNotFoundError{Name: cur}
		}

		if cur == super.Name {
			return true, nil
		}

		if parent == "" {
			return false, nil
		}

		visited[cur] = struct{}{}
		if _, ok := visited[parent]; ok {
			return false, &CyclicHierarchyError{Name: parent}
		}

		cur = parent
	}
}
