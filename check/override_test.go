package check

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varc/hier"
	"varc/types"
)

// typeCmp compares type descriptors structurally so violation values can be
// diffed with cmp.
var typeCmp = cmp.Comparer(func(a, b types.Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	return types.Equals(a, b)
})

func animalHierarchy(t *testing.T) *hier.Table {
	t.Helper()

	table := hier.NewTable()
	require.NoError(t, table.Define("Animal", ""))
	require.NoError(t, table.Define("Dog", "Animal"))
	return table
}

// assertViolations runs an override check that must succeed mechanically and
// compares the collected violations against the expected ones.
func assertViolations(t *testing.T, parent, child Signature, h types.Hierarchy, want []Violation) {
	t.Helper()

	result, err := Override(parent, child, h)
	require.NoError(t, err)

	if diff := cmp.Diff(want, result.Violations, typeCmp); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, len(want) == 0, result.Compatible())
}

func TestOverrideParamWidenedToMixed(t *testing.T) {
	// parent param int, child param mixed: the child accepts strictly more.
	parent := Signature{Params: []types.Type{types.Int}, Return: types.Void}
	child := Signature{Params: []types.Type{types.Mixed}, Return: types.Void}

	assertViolations(t, parent, child, nil, nil)
}

func TestOverrideParamNarrowedFromMixed(t *testing.T) {
	parent := Signature{Params: []types.Type{types.Mixed}, Return: types.Void}
	child := Signature{Params: []types.Type{types.Int}, Return: types.Void}

	assertViolations(t, parent, child, nil, []Violation{
		&ParameterNarrowed{Position: 0, Parent: types.Mixed, Child: types.Int},
	})
}

func TestOverrideReturnNarrowedToInt(t *testing.T) {
	// Covariance: mixed may be narrowed to int on return.
	parent := Signature{Return: types.Mixed}
	child := Signature{Return: types.Int}

	assertViolations(t, parent, child, nil, nil)
}

func TestOverrideReturnWidenedToMixed(t *testing.T) {
	parent := Signature{Return: types.Int}
	child := Signature{Return: types.Mixed}

	assertViolations(t, parent, child, nil, []Violation{
		&ReturnWidened{Parent: types.Int, Child: types.Mixed},
	})
}

func TestOverrideVoidCannotWiden(t *testing.T) {
	parent := Signature{Return: types.Void}
	child := Signature{Return: types.Int}

	assertViolations(t, parent, child, nil, []Violation{
		&VoidWidened{Child: types.Int},
	})
}

func TestOverrideVoidStaysVoid(t *testing.T) {
	parent := Signature{Return: types.Void}
	child := Signature{Return: types.Void}

	assertViolations(t, parent, child, nil, nil)
}

func TestOverrideImplicitParam(t *testing.T) {
	// An unannotated parent parameter is implicitly mixed: the child may
	// write mixed explicitly but may not narrow it.
	parent := Signature{Params: []types.Type{nil}, Return: types.Void}

	child := Signature{Params: []types.Type{types.Mixed}, Return: types.Void}
	assertViolations(t, parent, child, nil, nil)

	narrowed := Signature{Params: []types.Type{types.Int}, Return: types.Void}
	assertViolations(t, parent, narrowed, nil, []Violation{
		&ParameterNarrowed{Position: 0, Parent: types.Mixed, Child: types.Int},
	})
}

func TestOverrideImplicitReturn(t *testing.T) {
	// An unannotated parent return is implicitly mixed-or-void, which admits
	// an explicit mixed child return.
	parent := Signature{Return: nil}
	child := Signature{Return: types.Mixed}
	assertViolations(t, parent, child, nil, nil)

	// The reverse does not hold: the implicit child return includes void,
	// which an explicit mixed parent return does not subsume.
	parent = Signature{Return: types.Mixed}
	child = Signature{Return: nil}
	assertViolations(t, parent, child, nil, []Violation{
		&ReturnWidened{Parent: types.Mixed, Child: types.MixedOrVoid},
	})
}

func TestOverrideArityMismatch(t *testing.T) {
	parent := Signature{Params: []types.Type{types.Int, types.String}, Return: types.Void}
	child := Signature{Params: []types.Type{types.Int}, Return: types.Int}

	// Positional checks are skipped, but the return is still checked.
	assertViolations(t, parent, child, nil, []Violation{
		&ArityMismatch{ParentArity: 2, ChildArity: 1},
		&VoidWidened{Child: types.Int},
	})
}

func TestOverrideCollectsAllViolations(t *testing.T) {
	parent := Signature{
		Params: []types.Type{types.Mixed, types.Int, types.String},
		Return: types.Int,
	}
	child := Signature{
		Params: []types.Type{types.Int, types.Int, types.Bool},
		Return: types.Mixed,
	}

	assertViolations(t, parent, child, nil, []Violation{
		&ParameterNarrowed{Position: 0, Parent: types.Mixed, Child: types.Int},
		&ParameterNarrowed{Position: 2, Parent: types.String, Child: types.Bool},
		&ReturnWidened{Parent: types.Int, Child: types.Mixed},
	})
}

func TestOverrideWithClassHierarchy(t *testing.T) {
	table := animalHierarchy(t)

	nullableAnimal, err := types.NewNullable(types.Class{Name: "Animal"})
	require.NoError(t, err)

	// Parameter contravariance: Dog may be widened to ?Animal.
	parent := Signature{
		Params: []types.Type{types.Class{Name: "Dog"}},
		Return: types.Class{Name: "Animal"},
	}
	child := Signature{
		Params: []types.Type{nullableAnimal},
		Return: types.Class{Name: "Dog"},
	}

	assertViolations(t, parent, child, table, nil)

	// And the inverse pair narrows the parameter and widens the return.
	assertViolations(t, child, parent, table, []Violation{
		&ParameterNarrowed{Position: 0, Parent: nullableAnimal, Child: types.Class{Name: "Dog"}},
		&ReturnWidened{Parent: types.Class{Name: "Dog"}, Child: types.Class{Name: "Animal"}},
	})
}

func TestOverridePropagatesHierarchyErrors(t *testing.T) {
	table := hier.NewTable()
	require.NoError(t, table.Define("Dog", "Animal"))

	parent := Signature{
		Params: []types.Type{types.Class{Name: "Dog"}},
		Return: types.Void,
	}
	child := Signature{
		Params: []types.Type{types.Class{Name: "Animal"}},
		Return: types.Void,
	}

	// The walk from Dog passes through the undeclared Animal parent.
	_, err := Override(parent, child, table)

	var cnf *hier.ClassNotFoundError
	require.ErrorAs(t, err, &cnf)
}
