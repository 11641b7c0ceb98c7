package check

import (
	"fmt"

	"varc/types"
)

// Violation represents a single way in which an overriding signature breaks
// substitution compatibility with the signature it overrides.  Each concrete
// violation carries the parent and child types involved so an external
// formatter can render its own message; Message provides a default rendering.
type Violation interface {
	Message() string
}

// ArityMismatch indicates the two signatures declare different numbers of
// parameters.  Position-by-position comparison is undefined in this case, so
// the positional checks are skipped when it is present.
type ArityMismatch struct {
	ParentArity, ChildArity int
}

func (v *ArityMismatch) Message() string {
	return fmt.Sprintf("expected %d parameters, found %d", v.ParentArity, v.ChildArity)
}

// ParameterNarrowed indicates a parameter whose overriding type does not
// admit every input the inherited type admits: the override must accept a
// wider-or-equal set of inputs, never a stricter subset.
type ParameterNarrowed struct {
	Position int
	Parent   types.Type
	Child    types.Type
}

func (v *ParameterNarrowed) Message() string {
	return fmt.Sprintf(
		"parameter %d: type '%s' is not a supertype of inherited type '%s'",
		v.Position, v.Child.Repr(), v.Parent.Repr(),
	)
}

// ReturnWidened indicates a return type that promises values the inherited
// return type does not: the override may only narrow what it returns.
type ReturnWidened struct {
	Parent types.Type
	Child  types.Type
}

func (v *ReturnWidened) Message() string {
	return fmt.Sprintf(
		"return type '%s' is not a subtype of inherited type '%s'",
		v.Child.Repr(), v.Parent.Repr(),
	)
}

// VoidWidened indicates an override of a void method that declares a
// non-void return.  No covariant widening from void is permitted.
type VoidWidened struct {
	Child types.Type
}

func (v *VoidWidened) Message() string {
	return fmt.Sprintf(
		"return type '%s' overrides an inherited return type of 'void'",
		v.Child.Repr(),
	)
}

// -----------------------------------------------------------------------------

// Result is the outcome of a single override check.  Violations holds every
// violation found, in declaration order; an empty slice means the override is
// compatible.
type Result struct {
	Violations []Violation
}

// Compatible returns whether the override satisfies every variance rule.
func (r Result) Compatible() bool {
	return len(r.Violations) == 0
}
