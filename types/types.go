package types

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// Type is the parent interface for all type descriptors.  Descriptors are
// immutable once constructed: the checker only ever reads them.
type Type interface {
	// Repr returns a representative string of the type for purposes of error
	// reporting.
	Repr() string

	// Hash returns a structural hash of the type.  Two types that are equal
	// always have the same hash, and within the closed descriptor set the
	// hash is used to deduplicate union members.
	Hash() uint64

	// equals is the internal, type-specific implementation of Equals.  It
	// should NEVER be called directly except by Equals.
	equals(Type) bool
}

// -----------------------------------------------------------------------------

// Basic represents one of the disjoint base types.  Distinct base types are
// never mutually subtype: scalar widening is a runtime-coercion concern that
// does not exist at this layer.
type Basic int

// Enumeration of the base types.
const (
	Null Basic = iota
	Bool
	Int
	Float
	String
	Array
	Callable
	Object
	Resource
)

func (b Basic) Repr() string {
	switch b {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Callable:
		return "callable"
	case Object:
		return "object"
	default:
		// Resource
		return "resource"
	}
}

func (b Basic) Hash() uint64 {
	return hashTagged('b', byte(b))
}

func (b Basic) equals(other Type) bool {
	if ob, ok := other.(Basic); ok {
		return b == ob
	}

	return false
}

// -----------------------------------------------------------------------------

// Class represents a resolved user-defined class or interface.  The name is an
// opaque key: the checker never interprets its structure and delegates all
// subclass facts to the hierarchy provider that produced it.
type Class struct {
	Name string
}

func (c Class) Repr() string {
	return c.Name
}

func (c Class) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'c'})
	h.Write([]byte(c.Name))
	return h.Sum64()
}

func (c Class) equals(other Type) bool {
	if oc, ok := other.(Class); ok {
		return c.Name == oc.Name
	}

	return false
}

// -----------------------------------------------------------------------------

// voidType is the type of a function that returns no value.  It is only valid
// in return position and is never a member of a union.
type voidType struct{}

// Void is the single void descriptor.
var Void Type = voidType{}

func (voidType) Repr() string {
	return "void"
}

func (voidType) Hash() uint64 {
	return hashTagged('v', 0)
}

func (voidType) equals(other Type) bool {
	return other == Void
}

// -----------------------------------------------------------------------------

// mixedType is the top type: semantically the union of null, every base type,
// and every class type, but represented as a singleton rather than an
// expanded union.  Mixed already includes null, and it does not include void.
type mixedType struct{}

// Mixed is the single mixed descriptor.
var Mixed Type = mixedType{}

func (mixedType) Repr() string {
	return "mixed"
}

func (mixedType) Hash() uint64 {
	return hashTagged('m', 0)
}

func (mixedType) equals(other Type) bool {
	return other == Mixed
}

// -----------------------------------------------------------------------------

// mixedOrVoidType is the synthetic type assumed for a return position with no
// written annotation.  It behaves as the union mixed|void during subtype
// comparison only: it can never be written in source, never appears inside a
// real union, and never escapes the checker as an output type.
type mixedOrVoidType struct{}

// MixedOrVoid is the single implicit-return descriptor.
var MixedOrVoid Type = mixedOrVoidType{}

func (mixedOrVoidType) Repr() string {
	return "mixed|void"
}

func (mixedOrVoidType) Hash() uint64 {
	return hashTagged('i', 0)
}

func (mixedOrVoidType) equals(other Type) bool {
	return other == MixedOrVoid
}

// -----------------------------------------------------------------------------

// Union represents a union type: a canonicalized, non-empty set of at least
// two distinct members, none of which is itself a union, void, or mixed.
// Unions may only be created through NewUnion which establishes those
// invariants, so equality can compare members pairwise.
type Union struct {
	members []Type
}

// Members returns the canonically ordered members of the union.  The returned
// slice must not be mutated.
func (u *Union) Members() []Type {
	return u.members
}

func (u *Union) Repr() string {
	sb := strings.Builder{}

	for i, m := range u.members {
		sb.WriteString(m.Repr())

		if i < len(u.members)-1 {
			sb.WriteRune('|')
		}
	}

	return sb.String()
}

func (u *Union) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'u'})

	// Members are canonically ordered, so chaining their hashes makes the
	// hash independent of the order the union was declared in.
	var buf [8]byte
	for _, m := range u.members {
		binary.LittleEndian.PutUint64(buf[:], m.Hash())
		h.Write(buf[:])
	}

	return h.Sum64()
}

func (u *Union) equals(other Type) bool {
	if ou, ok := other.(*Union); ok {
		if len(u.members) != len(ou.members) {
			return false
		}

		for i, m := range u.members {
			if !Equals(m, ou.members[i]) {
				return false
			}
		}

		return true
	}

	return false
}

// -----------------------------------------------------------------------------

// hashTagged hashes a tag byte and a single payload byte.  It is used for the
// descriptors whose identity isn't derived from any nested content.
func hashTagged(tag, payload byte) uint64 {
	h := fnv.New64a()
	h.Write([]byte{tag, payload})
	return h.Sum64()
}
