package cmd

import (
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"varc/check"
	"varc/decl"
	"varc/hier"
	"varc/report"
)

// Checker represents the overall state of a single `varc check` run.
type Checker struct {
	// The absolute path to the declaration file being checked.
	declAbsPath string

	// The loaded declarations: the class hierarchy plus the override pairs.
	decls *decl.Decls

	// The hierarchy provider handed to the validator.  Wraps the loaded
	// table so repeated subclass queries are answered from cache.
	hierarchy *hier.Cached
}

// execCheckCommand executes the check subcommand and handles all errors.
func execCheckCommand(result *olive.ArgParseResult) int {
	declRelPath, _ := result.PrimaryArg()

	declAbsPath, err := filepath.Abs(declRelPath)
	if err != nil {
		report.ReportInputError(err)
		return 2
	}

	c := &Checker{declAbsPath: declAbsPath}

	if !c.Load() {
		return 2
	}

	return c.CheckAll()
}

// Load loads and resolves the declaration file.  It returns false if the
// input is malformed.
func (c *Checker) Load() bool {
	decls, err := decl.Load(c.declAbsPath)
	if err != nil {
		report.ReportInputError(err)
		return false
	}

	c.decls = decls
	c.hierarchy = hier.NewCached(decls.Hierarchy)
	return true
}

// CheckAll validates every override pair in the loaded declarations and
// reports the outcome of each.  The returned value is the process exit code.
func (c *Checker) CheckAll() int {
	exitCode := 0

	for _, over := range c.decls.Overrides {
		result, err := check.Override(over.Parent, over.Child, c.hierarchy)
		if err != nil {
			// Unresolvable or cyclic hierarchy data: the check itself could
			// not be decided, which is an input error rather than a
			// violation.
			report.ReportInputError(err)
			return 2
		}

		if result.Compatible() {
			report.ReportCompatible(over.Name)
			continue
		}

		for _, v := range result.Violations {
			report.ReportViolation(over.Name, v)
		}

		exitCode = 1
	}

	return exitCode
}
