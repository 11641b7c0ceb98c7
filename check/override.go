package check

import (
	"varc/types"
)

// Signature is the type-level shape of a method: its parameter types in order
// plus a return type.  A nil parameter or return entry means the position
// carries no written annotation; the implicit type assumed for it (mixed for
// parameters, mixed-or-void for returns) is resolved inside Override and
// never escapes.  Parameter names, default values, by-reference and variadic
// markers play no role in the check and are not modeled.
type Signature struct {
	Params []types.Type
	Return types.Type
}

// Override checks whether child may override parent without breaking
// substitution: a caller holding the parent signature must be able to call
// the child implementation unharmed.  Parameters are checked contravariantly
// and the return covariantly, with the exception that a void return may not
// be widened at all.
//
// Every violation is collected in one pass rather than stopping at the first,
// so a single call yields a complete report.  Class subtype queries go
// through h; its errors abort the check and are returned unchanged.
func Override(parent, child Signature, h types.Hierarchy) (Result, error) {
	var violations []Violation

	if len(parent.Params) != len(child.Params) {
		violations = append(violations, &ArityMismatch{
			ParentArity: len(parent.Params),
			ChildArity:  len(child.Params),
		})
	} else {
		// Contravariance: the parent's declared (or implicit) parameter type
		// must be a subtype of the child's.
		for i := range parent.Params {
			pp := paramType(parent.Params[i])
			cp := paramType(child.Params[i])

			ok, err := types.IsSubtype(pp, cp, h)
			if err != nil {
				return Result{}, err
			}

			if !ok {
				violations = append(violations, &ParameterNarrowed{
					Position: i,
					Parent:   pp,
					Child:    cp,
				})
			}
		}
	}

	pr := returnType(parent.Return)
	cr := returnType(child.Return)

	if pr == types.Void {
		// Overrides of a void method must stay void exactly.
		if cr != types.Void {
			violations = append(violations, &VoidWidened{Child: cr})
		}
	} else {
		// Covariance: the child's return must be a subtype of the parent's.
		ok, err := types.IsSubtype(cr, pr, h)
		if err != nil {
			return Result{}, err
		}

		if !ok {
			violations = append(violations, &ReturnWidened{Parent: pr, Child: cr})
		}
	}

	return Result{Violations: violations}, nil
}

// paramType resolves an unannotated parameter to the implicit mixed type.
func paramType(t types.Type) types.Type {
	if t == nil {
		return types.Mixed
	}

	return t
}

// returnType resolves an unannotated return to the implicit mixed-or-void
// type.
func returnType(t types.Type) types.Type {
	if t == nil {
		return types.MixedOrVoid
	}

	return t
}
