package decl

import (
	"fmt"
	"strings"

	"varc/hier"
	"varc/types"
	"varc/util"
)

// baseNames maps written base type names to their descriptors.
var baseNames = map[string]types.Type{
	"null":     types.Null,
	"bool":     types.Bool,
	"int":      types.Int,
	"float":    types.Float,
	"string":   types.String,
	"array":    types.Array,
	"callable": types.Callable,
	"object":   types.Object,
	"resource": types.Resource,
}

// ParseType parses a written type expression into a type descriptor using the
// given class table to resolve class names.  The grammar is deliberately
// small: `a|b|c` builds a union, a leading `?` makes a type nullable, and an
// atom is `void`, `mixed`, a base type name, or a declared class name.  An
// empty expression yields a nil descriptor, meaning the position carries no
// annotation.
func ParseType(expr string, table *hier.Table) (types.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	if rest, ok := strings.CutPrefix(expr, "?"); ok {
		if strings.Contains(rest, "|") {
			return nil, fmt.Errorf("`?` cannot prefix a union type: `%s`", expr)
		}

		inner, err := parseAtom(strings.TrimSpace(rest), table)
		if err != nil {
			return nil, err
		}

		return types.NewNullable(inner)
	}

	if strings.Contains(expr, "|") {
		parts := util.Map(strings.Split(expr, "|"), strings.TrimSpace)
		if util.Contains(parts, "") {
			return nil, fmt.Errorf("union type `%s` has an empty member", expr)
		}

		members, err := util.MapErr(parts, func(part string) (types.Type, error) {
			return parseAtom(part, table)
		})
		if err != nil {
			return nil, err
		}

		return types.NewUnion(members...)
	}

	return parseAtom(expr, table)
}

// parseAtom parses a single type name.
func parseAtom(name string, table *hier.Table) (types.Type, error) {
	switch name {
	case "void":
		return types.Void, nil
	case "mixed":
		return types.Mixed, nil
	}

	if base, ok := baseNames[name]; ok {
		return base, nil
	}

	if !isValidIdentifier(name) {
		return nil, fmt.Errorf("`%s` is not a valid type name", name)
	}

	cls, err := table.Resolve(name)
	if err != nil {
		return nil, err
	}

	return cls, nil
}
