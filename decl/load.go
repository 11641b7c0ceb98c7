// Package decl is the declaration loader: the external glue that turns a TOML
// declaration file into resolved hierarchy and signature values the checker
// core can consume.  The core itself performs no text parsing.
package decl

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"

	"varc/check"
	"varc/hier"
)

// tomlFile represents a declaration file as it is encoded in TOML.
type tomlFile struct {
	Classes   []tomlClass    `toml:"classes"`
	Overrides []tomlOverride `toml:"overrides"`
}

// tomlClass declares a user class and optionally its parent.
type tomlClass struct {
	Name   string `toml:"name"`
	Parent string `toml:"parent"`
}

// tomlOverride pairs a parent method signature with the child signature that
// overrides it.
type tomlOverride struct {
	Name   string        `toml:"name"`
	Parent tomlSignature `toml:"parent"`
	Child  tomlSignature `toml:"child"`
}

// tomlSignature encodes a signature as a list of parameter type expressions
// plus a return type expression.  An empty expression means the position
// carries no annotation.
type tomlSignature struct {
	Params  []string `toml:"params"`
	Returns string   `toml:"returns"`
}

// -----------------------------------------------------------------------------

// Override is a named pair of signatures to be checked.
type Override struct {
	Name          string
	Parent, Child check.Signature
}

// Decls is the fully loaded and resolved content of a declaration file.
type Decls struct {
	Hierarchy *hier.Table
	Overrides []Override
}

// Load reads and resolves the declaration file at the given path.  Any
// failure (unreadable file, invalid TOML, unknown class name, malformed type
// expression) is an input error: the declarations never reach the validator.
func Load(path string) (*Decls, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open declaration file: %w", err)
	}
	defer f.Close()

	buff, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading declaration file: %w", err)
	}

	tf := &tomlFile{}
	if err := toml.Unmarshal(buff, tf); err != nil {
		return nil, fmt.Errorf("error parsing declaration file: %w", err)
	}

	return resolve(tf)
}

// resolve validates the raw declarations and produces resolved signatures.
func resolve(tf *tomlFile) (*Decls, error) {
	table := hier.NewTable()

	for _, cls := range tf.Classes {
		if !isValidIdentifier(cls.Name) {
			return nil, fmt.Errorf("class name `%s` is not a valid identifier", cls.Name)
		}

		if err := table.Define(cls.Name, cls.Parent); err != nil {
			return nil, err
		}
	}

	decls := &Decls{Hierarchy: table}

	for _, over := range tf.Overrides {
		if over.Name == "" {
			return nil, fmt.Errorf("override entry is missing a name")
		}

		parent, err := resolveSignature(over.Parent, table)
		if err != nil {
			return nil, fmt.Errorf("override `%s`: parent: %w", over.Name, err)
		}

		child, err := resolveSignature(over.Child, table)
		if err != nil {
			return nil, fmt.Errorf("override `%s`: child: %w", over.Name, err)
		}

		decls.Overrides = append(decls.Overrides, Override{
			Name:   over.Name,
			Parent: parent,
			Child:  child,
		})
	}

	return decls, nil
}

// resolveSignature parses every type expression of a raw signature.
func resolveSignature(ts tomlSignature, table *hier.Table) (check.Signature, error) {
	sig := check.Signature{}

	for i, expr := range ts.Params {
		// ParseType returns a nil type for an empty expression, which the
		// validator reads as an unannotated position.
		typ, err := ParseType(expr, table)
		if err != nil {
			return check.Signature{}, fmt.Errorf("parameter %d: %w", i, err)
		}

		sig.Params = append(sig.Params, typ)
	}

	ret, err := ParseType(ts.Returns, table)
	if err != nil {
		return check.Signature{}, fmt.Errorf("return: %w", err)
	}
	sig.Return = ret

	return sig, nil
}

// isValidIdentifier returns whether a given string would be a valid class
// identifier.
func isValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
