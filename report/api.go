package report

import (
	"fmt"

	"varc/check"
)

// NOTE: All report functions will only display if the appropriate log level
// is set.  Report functions simply fail silently if below their log level.

// ReportViolation reports a single override violation belonging to the named
// override.
func ReportViolation(overrideName string, v check.Violation) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel >= LogLevelError {
		printErrorMessage("Override Error", fmt.Sprintf("%s: %s", overrideName, v.Message()))
	}
}

// ReportCompatible reports that the named override passed every check.
func ReportCompatible(overrideName string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelVerbose {
		printInfoMessage("Compatible", overrideName)
	}
}

// ReportInputError reports an error in the user's input: an unreadable or
// malformed declaration file, an unresolved class, or a malformed type.
func ReportInputError(err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel >= LogLevelError {
		printErrorMessage("Input Error", err.Error())
	}
}

// ReportWarning reports a non-fatal warning.
func ReportWarning(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		printWarningMessage("Warning", fmt.Sprintf(msg, args...))
	}
}

// ReportInfo reports an informational message.
func ReportInfo(tag string, msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelVerbose {
		printInfoMessage(tag, fmt.Sprintf(msg, args...))
	}
}
