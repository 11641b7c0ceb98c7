package decl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varc/hier"
	"varc/types"
)

func writeDeclFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "decls.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDeclFile(t, `
[[classes]]
name = "Animal"

[[classes]]
name = "Dog"
parent = "Animal"

[[overrides]]
name = "Dog.speak"

[overrides.parent]
params = ["int", "?string"]
returns = "void"

[overrides.child]
params = ["mixed", "string|null"]
returns = "void"
`)

	decls, err := Load(path)
	require.NoError(t, err)
	require.Len(t, decls.Overrides, 1)

	over := decls.Overrides[0]
	assert.Equal(t, "Dog.speak", over.Name)

	require.Len(t, over.Parent.Params, 2)
	assert.True(t, types.Equals(over.Parent.Params[0], types.Int))

	nullableString, err := types.NewNullable(types.String)
	require.NoError(t, err)
	assert.True(t, types.Equals(over.Parent.Params[1], nullableString))

	// `?string` and `string|null` are the same canonical type.
	assert.True(t, types.Equals(over.Child.Params[1], nullableString))

	assert.True(t, types.Equals(over.Parent.Return, types.Void))

	got, err := decls.Hierarchy.IsSubclassOf(types.Class{Name: "Dog"}, types.Class{Name: "Animal"})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestLoadUnannotatedPositions(t *testing.T) {
	path := writeDeclFile(t, `
[[overrides]]
name = "speak"

[overrides.parent]
params = [""]
returns = ""

[overrides.child]
params = ["mixed"]
returns = "mixed"
`)

	decls, err := Load(path)
	require.NoError(t, err)
	require.Len(t, decls.Overrides, 1)

	over := decls.Overrides[0]
	require.Len(t, over.Parent.Params, 1)
	assert.Nil(t, over.Parent.Params[0])
	assert.Nil(t, over.Parent.Return)
	assert.NotNil(t, over.Child.Return)
}

func TestLoadRejectsUnknownClass(t *testing.T) {
	path := writeDeclFile(t, `
[[overrides]]
name = "speak"

[overrides.parent]
params = ["Ghost"]
returns = "void"

[overrides.child]
params = ["Ghost"]
returns = "void"
`)

	_, err := Load(path)

	var cnf *hier.ClassNotFoundError
	require.ErrorAs(t, err, &cnf)
}

func TestLoadRejectsMalformedTypes(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{"void in union", "int|void"},
		{"nullable mixed", "?mixed"},
		{"nullable void", "?void"},
		{"empty union member", "int||string"},
		{"nullable union", "?int|string"},
		{"bad identifier", "not a type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDeclFile(t, `
[[overrides]]
name = "speak"

[overrides.parent]
params = ["`+tc.expr+`"]
returns = "void"

[overrides.child]
params = ["mixed"]
returns = "void"
`)

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestLoadRejectsDuplicateClass(t *testing.T) {
	path := writeDeclFile(t, `
[[classes]]
name = "Animal"

[[classes]]
name = "Animal"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnnamedOverride(t *testing.T) {
	path := writeDeclFile(t, `
[[overrides]]

[overrides.parent]
params = []
returns = "void"

[overrides.child]
params = []
returns = "void"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestParseTypeUnionCollapsesMixed(t *testing.T) {
	table := hier.NewTable()

	typ, err := ParseType("mixed|int", table)
	require.NoError(t, err)

	// A written union containing mixed collapses to mixed rather than being
	// rejected.
	assert.True(t, types.Equals(typ, types.Mixed))
}
