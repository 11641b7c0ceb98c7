package hier

import "fmt"

// ClassNotFoundError reports a reference to a class that cannot be resolved.
// Subtyping cannot be decided without the missing declaration, so this error
// is fatal to the check that raised it: it is never silently treated as "not
// a subtype".
type ClassNotFoundError struct {
	Name string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("class `%s` not found", e.Name)
}

// CyclicHierarchyError reports a class that is declared, directly or
// transitively, as its own ancestor.  The traversal detects the cycle with a
// visited set rather than recursing unboundedly.
type CyclicHierarchyError struct {
	Name string
}

func (e *CyclicHierarchyError) Error() string {
	return fmt.Sprintf("class `%s` is declared as its own ancestor", e.Name)
}
