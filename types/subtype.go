package types

// Hierarchy supplies user-class subclass facts to the subtype engine.  It is
// an injected capability rather than a global registry so the engine can be
// exercised against a fake, deterministic hierarchy in tests.
//
// IsSubclassOf must be reflexive (a class is a subclass of itself) and must
// terminate even on cyclic or incomplete hierarchy data, reporting such
// conditions as errors rather than false.  Implementations must be safe for
// concurrent read access.
type Hierarchy interface {
	IsSubclassOf(sub, super Class) (bool, error)
}

// implicitReturn is the expansion of MixedOrVoid used during comparison.  It
// is the one union that may contain mixed and void; it is constructed
// directly, never through NewUnion, and never escapes this file.
var implicitReturn = &Union{members: []Type{Mixed, Void}}

// IsSubtype reports whether a is a subtype of b: whether every value of a is
// acceptable where a value of b is expected.  The relation is decided
// structurally; the only external facts consulted are class subclass queries
// against h, whose errors (unresolved class, cyclic hierarchy) are propagated
// unchanged since subtyping cannot be decided without them.
func IsSubtype(a, b Type, h Hierarchy) (bool, error) {
	// The implicit return type compares as the union mixed|void on either
	// side: as a target it admits every return, and as a source it carries
	// void, which no explicit type except void itself subsumes.
	if a == MixedOrVoid {
		a = implicitReturn
	}
	if b == MixedOrVoid {
		b = implicitReturn
	}

	// Union as source: every alternative must satisfy the target.
	if au, ok := a.(*Union); ok {
		for _, m := range au.members {
			ok, err := IsSubtype(m, b, h)
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil
	}

	// Union as target: the source must satisfy at least one alternative.
	if bu, ok := b.(*Union); ok {
		for _, m := range bu.members {
			ok, err := IsSubtype(a, m, h)
			if err != nil || ok {
				return ok, err
			}
		}

		return false, nil
	}

	// Mixed is the top type for everything except void.
	if b == Mixed {
		return a != Void, nil
	}

	// Void relates only to itself: it is not a subtype or supertype of any
	// value type.
	if a == Void || b == Void {
		return a == b, nil
	}

	if ac, ok := a.(Class); ok {
		if bc, ok := b.(Class); ok {
			return h.IsSubclassOf(ac, bc)
		}

		return false, nil
	}

	if ab, ok := a.(Basic); ok {
		if bb, ok := b.(Basic); ok {
			return ab == bb, nil
		}
	}

	return false, nil
}
