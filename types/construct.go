package types

import (
	"fmt"
	"sort"

	set "github.com/hashicorp/go-set/v2"
)

// MalformedTypeError reports a type that violates a construction invariant:
// eg. a union containing void, or a nullable mixed.  It is raised at
// declaration time, before the offending signature can ever reach the
// override validator.
type MalformedTypeError struct {
	Reason string
}

func (e *MalformedTypeError) Error() string {
	return "malformed type: " + e.Reason
}

// malformed creates a new malformed type error.
func malformed(reason string, args ...interface{}) error {
	return &MalformedTypeError{Reason: fmt.Sprintf(reason, args...)}
}

// -----------------------------------------------------------------------------

// NewUnion builds a canonical union from the given members.  Nested unions are
// flattened, duplicates are removed, and the members are put into a
// deterministic order so that structurally equal unions compare equal and
// hash alike regardless of declaration order.
//
// A union containing mixed collapses to Mixed: mixed already admits every
// value, so the other members are redundant rather than erroneous.  A union
// containing void is malformed: void is not a value type.  If exactly one
// distinct member survives canonicalization, that member itself is returned:
// a union is never a singleton.
func NewUnion(members ...Type) (Type, error) {
	seen := set.NewHashSet[Type, uint64](len(members))
	var canon []Type

	var add func(m Type) error
	add = func(m Type) error {
		switch v := m.(type) {
		case *Union:
			for _, inner := range v.members {
				if err := add(inner); err != nil {
					return err
				}
			}
		case voidType:
			return malformed("void cannot be a union member")
		case mixedOrVoidType:
			return malformed("implicit type cannot be a union member")
		default:
			if seen.Insert(m) {
				canon = append(canon, m)
			}
		}

		return nil
	}

	for _, m := range members {
		if err := add(m); err != nil {
			return nil, err
		}
	}

	// A union containing mixed is just mixed.
	if seen.Contains(Mixed) {
		return Mixed, nil
	}

	switch len(canon) {
	case 0:
		return nil, malformed("union must have at least one member")
	case 1:
		return canon[0], nil
	}

	sortMembers(canon)
	return &Union{members: canon}, nil
}

// NewNullable builds the nullable form of a type: sugar for a union of the
// type with null.  Nullable mixed is malformed since mixed already includes
// null, and nullable void is malformed since void is not a value type.
func NewNullable(t Type) (Type, error) {
	switch t.(type) {
	case mixedType:
		return nil, malformed("mixed is already nullable")
	case voidType:
		return nil, malformed("void cannot be nullable")
	case mixedOrVoidType:
		return nil, malformed("implicit type cannot be nullable")
	}

	return NewUnion(t, Null)
}

// -----------------------------------------------------------------------------

// sortMembers puts union members into their canonical order: base types
// first, then class types in name order, with null always last.  The order
// itself is arbitrary; all that matters is that it is deterministic.
func sortMembers(members []Type) {
	sort.Slice(members, func(i, j int) bool {
		ri, rj := memberRank(members[i]), memberRank(members[j])
		if ri != rj {
			return ri < rj
		}

		return members[i].Repr() < members[j].Repr()
	})
}

func memberRank(t Type) int {
	switch t {
	case Null:
		return 2
	}

	if _, ok := t.(Class); ok {
		return 1
	}

	return 0
}
